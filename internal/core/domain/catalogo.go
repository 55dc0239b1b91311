package domain

import "github.com/shopspring/decimal"

// Catalog entities are read-only lookup tables used to populate form choices
// and decorate registros via associations.

// TipoVehiculo is a vehicle type (moto, sedán, camioneta, ...).
type TipoVehiculo struct {
	TipoVehiculoID string `json:"tipoVehiculoID"`
	Nombre         string `json:"nombre"`
}

// Servicio is a wash service with its category name denormalized for display.
type Servicio struct {
	ServicioID string          `json:"servicioID"`
	Nombre     string          `json:"nombre"`
	Categoria  string          `json:"categoria"`
	Precio     decimal.Decimal `json:"precio"`
}

// EstadoCarro is a car-condition entry (e.g. "normal", "muy sucio").
type EstadoCarro struct {
	EstadoCarroID string `json:"estadoCarroID"`
	Nombre        string `json:"nombre"`
}

// EstadoPago is a payment-status entry (e.g. "pagado", "pendiente").
type EstadoPago struct {
	EstadoPagoID string `json:"estadoPagoID"`
	Nombre       string `json:"nombre"`
}

// ServicioExtra is an optional add-on service.
type ServicioExtra struct {
	ServicioExtraID string          `json:"servicioExtraID"`
	Nombre          string          `json:"nombre"`
	Precio          decimal.Decimal `json:"precio"`
}

// DatosFormulario groups all catalogs needed to render the check-in form.
type DatosFormulario struct {
	TiposVehiculo   []TipoVehiculo  `json:"tiposVehiculo"`
	Servicios       []Servicio      `json:"servicios"`
	EstadosCarro    []EstadoCarro   `json:"estadosCarro"`
	EstadosPago     []EstadoPago    `json:"estadosPago"`
	ServiciosExtras []ServicioExtra `json:"serviciosExtras"`
}
