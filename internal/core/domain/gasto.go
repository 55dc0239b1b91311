package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto represents a wallet expense entry.
type Gasto struct {
	GastoID      string          `json:"gastoID"`
	Descripcion  string          `json:"descripcion"`
	MontoBs      decimal.Decimal `json:"montoBs"`
	MontoUsd     decimal.Decimal `json:"montoUsd"`
	Moneda       Moneda          `json:"moneda"`
	TasaCambio   decimal.Decimal `json:"tasaCambio"` // exchange rate at time of entry
	FechaHora    time.Time       `json:"fechaHora"`
	Notas        string          `json:"notas"`
	MetodoPagoID string          `json:"metodoPagoID"`
}

// GastoConMetodo is a gasto joined with its payment method's display name.
type GastoConMetodo struct {
	Gasto
	MetodoPagoNombre string `json:"metodoPagoNombre"`
}

// ResumenGastos holds the database-side aggregate over the whole gastos
// table, independent of any pagination applied to listings.
type ResumenGastos struct {
	TotalBs  decimal.Decimal `json:"totalBs"`
	Cantidad int64           `json:"cantidad"`
}
