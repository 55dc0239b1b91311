package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistroVehiculo mirrors the registros_vehiculos table.
type RegistroVehiculo struct {
	RegistroID     string           `db:"registro_id"`
	NombreDueno    string           `db:"nombre_dueno"`
	Cedula         string           `db:"cedula"`
	Telefono       string           `db:"telefono"`
	Placa          string           `db:"placa"`
	TipoVehiculoID string           `db:"tipo_vehiculo_id"`
	Color          string           `db:"color"`
	PrecioTotal    decimal.Decimal  `db:"precio_total"`
	PrecioTotalBs  *decimal.Decimal `db:"precio_total_bs"`
	ServicioID     string           `db:"servicio_id"`
	EstadoCarroID  string           `db:"estado_carro_id"`
	EstadoPagoID   string           `db:"estado_pago_id"`
	FechaHora      time.Time        `db:"fecha_hora"`
}
