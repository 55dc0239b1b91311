package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Paginacion describes the page window of a listing. It is display metadata
// only; wallet totals never depend on it.
type Paginacion struct {
	PaginaActual   int   `json:"paginaActual"`
	TotalPaginas   int   `json:"totalPaginas"`
	Limite         int   `json:"limite"`
	TotalGastos    int64 `json:"totalGastos"`
	TieneSiguiente bool  `json:"tieneSiguiente"`
	TieneAnterior  bool  `json:"tieneAnterior"`
}

// ReporteMonedero is the wallet balance report: full-table income and expense
// totals plus a paginated slice of recent expenses for display.
type ReporteMonedero struct {
	TotalIngresosBs  decimal.Decimal  `json:"totalIngresosBs"`
	TotalGastosBs    decimal.Decimal  `json:"totalGastosBs"`
	SaldoActualBs    decimal.Decimal  `json:"saldoActualBs"`
	CantidadIngresos int64            `json:"cantidadIngresos"`
	CantidadGastos   int64            `json:"cantidadGastos"`
	UltimosGastos    []GastoConMetodo `json:"ultimosGastos"`
	Paginacion       Paginacion       `json:"paginacion"`
	FechaCalculo     time.Time        `json:"fechaCalculo"`
}
