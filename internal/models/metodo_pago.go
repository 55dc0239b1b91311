package models

// MetodoPago mirrors the metodos_pago table.
type MetodoPago struct {
	MetodoPagoID string `db:"metodo_pago_id"`
	Nombre       string `db:"nombre"`
	Moneda       string `db:"moneda"`
	Descripcion  string `db:"descripcion"`
}
