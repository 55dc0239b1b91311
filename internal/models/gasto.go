package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto mirrors the gastos table.
type Gasto struct {
	GastoID      string          `db:"gasto_id"`
	Descripcion  string          `db:"descripcion"`
	MontoBs      decimal.Decimal `db:"monto_bs"`
	MontoUsd     decimal.Decimal `db:"monto_usd"`
	Moneda       string          `db:"moneda"`
	TasaCambio   decimal.Decimal `db:"tasa_cambio"`
	FechaHora    time.Time       `db:"fecha_hora"`
	Notas        string          `db:"notas"`
	MetodoPagoID string          `db:"metodo_pago_id"`
}
