package domain

import "github.com/shopspring/decimal"

// ResumenSemana aggregates registros over a date interval. FechaInicio and
// FechaFin echo the caller's input strings verbatim so request and response
// can be correlated.
type ResumenSemana struct {
	TotalIngresos  decimal.Decimal `json:"totalIngresos"`
	TotalRegistros int64           `json:"totalRegistros"`
	FechaInicio    string          `json:"fechaInicio"`
	FechaFin       string          `json:"fechaFin"`
}
