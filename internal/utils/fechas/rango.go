package fechas

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RangoInclusivo converts two YYYY-MM-DD strings into an inclusive local-time
// interval: the first day at 00:00:00.000 through the second day at
// 23:59:59.999. The three numeric components are used as-is to construct the
// dates in the server's local timezone; calendar overflow (e.g. day 31 of a
// 30-day month) is normalized by time.Date, not rejected.
func RangoInclusivo(fechaInicio, fechaFin string) (time.Time, time.Time, error) {
	inicio, err := inicioDelDia(fechaInicio)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fin, err := finDelDia(fechaFin)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return inicio, fin, nil
}

// RangoDelDia returns the inclusive interval covering a single calendar day.
func RangoDelDia(t time.Time) (time.Time, time.Time) {
	inicio := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	fin := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
	return inicio, fin
}

func inicioDelDia(fecha string) (time.Time, error) {
	y, m, d, err := componentes(fecha)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), nil
}

func finDelDia(fecha string) (time.Time, error) {
	y, m, d, err := componentes(fecha)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(y, time.Month(m), d, 23, 59, 59, 999000000, time.Local), nil
}

func componentes(fecha string) (int, int, int, error) {
	parts := strings.Split(fecha, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", fecha)
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in date %q: %w", fecha, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in date %q: %w", fecha, err)
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day in date %q: %w", fecha, err)
	}
	return y, m, d, nil
}
