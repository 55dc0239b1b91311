package dto

import "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"

// DatosSemana carries the aggregate figures for a date interval.
type DatosSemana struct {
	TotalIngresos  float64 `json:"totalIngresos"`
	TotalRegistros int64   `json:"totalRegistros"`
	FechaInicio    string  `json:"fechaInicio"`
	FechaFin       string  `json:"fechaFin"`
}

// ResumenSemanaResponse is the statistics endpoint envelope.
type ResumenSemanaResponse struct {
	Success bool        `json:"success"`
	Datos   DatosSemana `json:"datos"`
}

// ToResumenSemanaResponse converts the domain summary to the API shape.
func ToResumenSemanaResponse(resumen *domain.ResumenSemana) ResumenSemanaResponse {
	return ResumenSemanaResponse{
		Success: true,
		Datos: DatosSemana{
			TotalIngresos:  resumen.TotalIngresos.Round(2).InexactFloat64(),
			TotalRegistros: resumen.TotalRegistros,
			FechaInicio:    resumen.FechaInicio,
			FechaFin:       resumen.FechaFin,
		},
	}
}
