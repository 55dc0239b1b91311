package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RegistroVehiculo represents a vehicle check-in record. Records are created
// at check-in and are immutable afterwards; they are never deleted.
type RegistroVehiculo struct {
	RegistroID     string           `json:"registroID"`
	NombreDueno    string           `json:"nombreDueno"`
	Cedula         string           `json:"cedula"`
	Telefono       string           `json:"telefono"`
	Placa          string           `json:"placa"` // stored normalized: uppercase, no whitespace
	TipoVehiculoID string           `json:"tipoVehiculoID"`
	Color          string           `json:"color"`
	PrecioTotal    decimal.Decimal  `json:"precioTotal"`
	PrecioTotalBs  *decimal.Decimal `json:"precioTotalBs,omitempty"`
	ServicioID     string           `json:"servicioID"`
	EstadoCarroID  string           `json:"estadoCarroID"`
	EstadoPagoID   string           `json:"estadoPagoID"`
	ServiciosExtra []string         `json:"serviciosExtra,omitempty"` // extra service IDs
	FechaHora      time.Time        `json:"fechaHora"`
}

// RegistroDetalle is a registro decorated with the display names of its
// catalog references, used for listing views.
type RegistroDetalle struct {
	RegistroVehiculo
	TipoVehiculo  string   `json:"tipoVehiculo"`
	Servicio      string   `json:"servicio"`
	EstadoCarro   string   `json:"estadoCarro"`
	EstadoPago    string   `json:"estadoPago"`
	NombresExtras []string `json:"nombresExtras,omitempty"`
}

// NormalizarPlaca strips all whitespace from a license plate and upper-cases
// it, so "abc 123" and " ABC123 " resolve to the same key.
func NormalizarPlaca(placa string) string {
	return strings.ToUpper(strings.Join(strings.Fields(placa), ""))
}
