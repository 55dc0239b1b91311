package domain

// Moneda identifies the currency scope of a payment method or expense.
type Moneda string

const (
	MonedaBs  Moneda = "BS"
	MonedaUsd Moneda = "USD"
)

// MetodoPago represents a payment method. Each method belongs to exactly one
// currency; mixed-currency methods are not allowed.
type MetodoPago struct {
	MetodoPagoID string `json:"metodoPagoID"`
	Nombre       string `json:"nombre"`
	Moneda       Moneda `json:"moneda"`
	Descripcion  string `json:"descripcion"`
}
