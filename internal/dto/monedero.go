package dto

import (
	"time"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonederoParams defines query parameters for the wallet report.
type MonederoParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

// GastoResponse is one expense row in the wallet listing.
type GastoResponse struct {
	GastoID     string    `json:"gastoID"`
	Descripcion string    `json:"descripcion"`
	MontoBs     float64   `json:"montoBs"`
	MontoUsd    float64   `json:"montoUsd"`
	Moneda      string    `json:"moneda"`
	TasaCambio  float64   `json:"tasaCambio"`
	FechaHora   time.Time `json:"fechaHora"`
	Notas       string    `json:"notas,omitempty"`
	MetodoPago  string    `json:"metodoPago"`
}

// PaginacionResponse is the page metadata block of the wallet listing.
type PaginacionResponse struct {
	PaginaActual   int   `json:"paginaActual"`
	TotalPaginas   int   `json:"totalPaginas"`
	Limite         int   `json:"limite"`
	TotalGastos    int64 `json:"totalGastos"`
	TieneSiguiente bool  `json:"tieneSiguiente"`
	TieneAnterior  bool  `json:"tieneAnterior"`
}

// MonederoResponse is the wallet report payload. The same shape, zero-filled,
// is returned on internal errors so clients render a consistent UI.
type MonederoResponse struct {
	TotalIngresosBs  float64            `json:"totalIngresosBs"`
	TotalGastosBs    float64            `json:"totalGastosBs"`
	SaldoActualBs    float64            `json:"saldoActualBs"`
	CantidadIngresos int64              `json:"cantidadIngresos"`
	CantidadGastos   int64              `json:"cantidadGastos"`
	UltimosGastos    []GastoResponse    `json:"ultimosGastos"`
	Paginacion       PaginacionResponse `json:"paginacion"`
	FechaCalculo     time.Time          `json:"fechaCalculo"`
}

// ToGastoResponse converts one expense with its payment method name.
func ToGastoResponse(g *domain.GastoConMetodo) GastoResponse {
	return GastoResponse{
		GastoID:     g.GastoID,
		Descripcion: g.Descripcion,
		MontoBs:     g.MontoBs.Round(2).InexactFloat64(),
		MontoUsd:    g.MontoUsd.Round(2).InexactFloat64(),
		Moneda:      string(g.Moneda),
		TasaCambio:  g.TasaCambio.InexactFloat64(),
		FechaHora:   g.FechaHora,
		Notas:       g.Notas,
		MetodoPago:  g.MetodoPagoNombre,
	}
}

// ToMonederoResponse converts the domain report to the API shape.
func ToMonederoResponse(reporte *domain.ReporteMonedero) MonederoResponse {
	gastos := make([]GastoResponse, len(reporte.UltimosGastos))
	for i := range reporte.UltimosGastos {
		gastos[i] = ToGastoResponse(&reporte.UltimosGastos[i])
	}

	return MonederoResponse{
		TotalIngresosBs:  reporte.TotalIngresosBs.InexactFloat64(),
		TotalGastosBs:    reporte.TotalGastosBs.InexactFloat64(),
		SaldoActualBs:    reporte.SaldoActualBs.InexactFloat64(),
		CantidadIngresos: reporte.CantidadIngresos,
		CantidadGastos:   reporte.CantidadGastos,
		UltimosGastos:    gastos,
		Paginacion: PaginacionResponse{
			PaginaActual:   reporte.Paginacion.PaginaActual,
			TotalPaginas:   reporte.Paginacion.TotalPaginas,
			Limite:         reporte.Paginacion.Limite,
			TotalGastos:    reporte.Paginacion.TotalGastos,
			TieneSiguiente: reporte.Paginacion.TieneSiguiente,
			TieneAnterior:  reporte.Paginacion.TieneAnterior,
		},
		FechaCalculo: reporte.FechaCalculo,
	}
}

// MonederoFallbackResponse is the zero-filled payload returned with HTTP 500.
func MonederoFallbackResponse() MonederoResponse {
	return MonederoResponse{
		UltimosGastos: []GastoResponse{},
		FechaCalculo:  time.Now(),
	}
}

// CreateGastoRequest defines the payload to record an expense.
type CreateGastoRequest struct {
	Descripcion  string          `json:"descripcion" binding:"required"`
	MontoBs      decimal.Decimal `json:"montoBs" binding:"required"`
	MontoUsd     decimal.Decimal `json:"montoUsd"`
	Moneda       string          `json:"moneda" binding:"required,oneof=BS USD"`
	TasaCambio   decimal.Decimal `json:"tasaCambio"`
	Notas        string          `json:"notas"`
	MetodoPagoID string          `json:"metodoPagoID" binding:"required"`
}
