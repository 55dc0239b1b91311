package fechas

import (
	"fmt"
	"time"
)

var mesesEs = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatoLargoEs renders a date as a Spanish long-form string,
// e.g. "15 de enero de 2025".
func FormatoLargoEs(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), mesesEs[t.Month()-1], t.Year())
}
