package dto

import (
	"time"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRegistroRequest defines the payload for a vehicle check-in.
type CreateRegistroRequest struct {
	NombreDueno    string           `json:"nombreDueno" binding:"required"`
	Cedula         string           `json:"cedula" binding:"required"`
	Telefono       string           `json:"telefono"`
	Placa          string           `json:"placa" binding:"required,placa"`
	TipoVehiculoID string           `json:"tipoVehiculoID" binding:"required"`
	Color          string           `json:"color"`
	PrecioTotal    decimal.Decimal  `json:"precioTotal" binding:"required"`
	PrecioTotalBs  *decimal.Decimal `json:"precioTotalBs"`
	ServicioID     string           `json:"servicioID" binding:"required"`
	EstadoCarroID  string           `json:"estadoCarroID" binding:"required"`
	EstadoPagoID   string           `json:"estadoPagoID" binding:"required"`
	ServiciosExtra []string         `json:"serviciosExtra"`
}

// RegistroResponse is a full check-in record in API responses.
type RegistroResponse struct {
	RegistroID     string    `json:"registroID"`
	NombreDueno    string    `json:"nombreDueno"`
	Cedula         string    `json:"cedula"`
	Telefono       string    `json:"telefono"`
	Placa          string    `json:"placa"`
	TipoVehiculoID string    `json:"tipoVehiculoID"`
	Color          string    `json:"color"`
	PrecioTotal    float64   `json:"precioTotal"`
	PrecioTotalBs  *float64  `json:"precioTotalBs,omitempty"`
	ServicioID     string    `json:"servicioID"`
	EstadoCarroID  string    `json:"estadoCarroID"`
	EstadoPagoID   string    `json:"estadoPagoID"`
	ServiciosExtra []string  `json:"serviciosExtra,omitempty"`
	FechaHora      time.Time `json:"fechaHora"`
}

// ToRegistroResponse converts a domain registro to the API shape.
func ToRegistroResponse(r *domain.RegistroVehiculo) RegistroResponse {
	resp := RegistroResponse{
		RegistroID:     r.RegistroID,
		NombreDueno:    r.NombreDueno,
		Cedula:         r.Cedula,
		Telefono:       r.Telefono,
		Placa:          r.Placa,
		TipoVehiculoID: r.TipoVehiculoID,
		Color:          r.Color,
		PrecioTotal:    r.PrecioTotal.Round(2).InexactFloat64(),
		ServicioID:     r.ServicioID,
		EstadoCarroID:  r.EstadoCarroID,
		EstadoPagoID:   r.EstadoPagoID,
		ServiciosExtra: r.ServiciosExtra,
		FechaHora:      r.FechaHora,
	}
	if r.PrecioTotalBs != nil {
		bs := r.PrecioTotalBs.Round(2).InexactFloat64()
		resp.PrecioTotalBs = &bs
	}
	return resp
}

// RegistroDetalleResponse is a registro decorated with catalog names for the
// day listing shown alongside the check-in form.
type RegistroDetalleResponse struct {
	RegistroResponse
	TipoVehiculo  string   `json:"tipoVehiculo"`
	Servicio      string   `json:"servicio"`
	EstadoCarro   string   `json:"estadoCarro"`
	EstadoPago    string   `json:"estadoPago"`
	NombresExtras []string `json:"nombresExtras,omitempty"`
}

// TipoVehiculoResponse is a vehicle-type catalog entry.
type TipoVehiculoResponse struct {
	TipoVehiculoID string `json:"tipoVehiculoID"`
	Nombre         string `json:"nombre"`
}

// ServicioResponse is a service catalog entry with its category name.
type ServicioResponse struct {
	ServicioID string  `json:"servicioID"`
	Nombre     string  `json:"nombre"`
	Categoria  string  `json:"categoria"`
	Precio     float64 `json:"precio"`
}

// EstadoCarroResponse is a car-condition catalog entry.
type EstadoCarroResponse struct {
	EstadoCarroID string `json:"estadoCarroID"`
	Nombre        string `json:"nombre"`
}

// EstadoPagoResponse is a payment-status catalog entry.
type EstadoPagoResponse struct {
	EstadoPagoID string `json:"estadoPagoID"`
	Nombre       string `json:"nombre"`
}

// ServicioExtraResponse is an extra-service catalog entry.
type ServicioExtraResponse struct {
	ServicioExtraID string  `json:"servicioExtraID"`
	Nombre          string  `json:"nombre"`
	Precio          float64 `json:"precio"`
}

// DatosFormularioData groups the catalogs for the check-in form.
type DatosFormularioData struct {
	TiposVehiculo   []TipoVehiculoResponse  `json:"tiposVehiculo"`
	Servicios       []ServicioResponse      `json:"servicios"`
	EstadosCarro    []EstadoCarroResponse   `json:"estadosCarro"`
	EstadosPago     []EstadoPagoResponse    `json:"estadosPago"`
	ServiciosExtras []ServicioExtraResponse `json:"serviciosExtras"`
}

// DatosFormularioResponse is the form bootstrap payload: today's registros
// plus every catalog.
type DatosFormularioResponse struct {
	Registros       []RegistroDetalleResponse `json:"registros"`
	DatosFormulario DatosFormularioData       `json:"datosFormulario"`
}

// ToDatosFormularioResponse converts today's registros and catalogs.
func ToDatosFormularioResponse(registros []domain.RegistroDetalle, datos *domain.DatosFormulario) DatosFormularioResponse {
	registroResponses := make([]RegistroDetalleResponse, len(registros))
	for i, r := range registros {
		registroResponses[i] = RegistroDetalleResponse{
			RegistroResponse: ToRegistroResponse(&r.RegistroVehiculo),
			TipoVehiculo:     r.TipoVehiculo,
			Servicio:         r.Servicio,
			EstadoCarro:      r.EstadoCarro,
			EstadoPago:       r.EstadoPago,
			NombresExtras:    r.NombresExtras,
		}
	}

	formData := DatosFormularioData{
		TiposVehiculo:   make([]TipoVehiculoResponse, len(datos.TiposVehiculo)),
		Servicios:       make([]ServicioResponse, len(datos.Servicios)),
		EstadosCarro:    make([]EstadoCarroResponse, len(datos.EstadosCarro)),
		EstadosPago:     make([]EstadoPagoResponse, len(datos.EstadosPago)),
		ServiciosExtras: make([]ServicioExtraResponse, len(datos.ServiciosExtras)),
	}
	for i, t := range datos.TiposVehiculo {
		formData.TiposVehiculo[i] = TipoVehiculoResponse{TipoVehiculoID: t.TipoVehiculoID, Nombre: t.Nombre}
	}
	for i, s := range datos.Servicios {
		formData.Servicios[i] = ServicioResponse{
			ServicioID: s.ServicioID,
			Nombre:     s.Nombre,
			Categoria:  s.Categoria,
			Precio:     s.Precio.Round(2).InexactFloat64(),
		}
	}
	for i, e := range datos.EstadosCarro {
		formData.EstadosCarro[i] = EstadoCarroResponse{EstadoCarroID: e.EstadoCarroID, Nombre: e.Nombre}
	}
	for i, e := range datos.EstadosPago {
		formData.EstadosPago[i] = EstadoPagoResponse{EstadoPagoID: e.EstadoPagoID, Nombre: e.Nombre}
	}
	for i, e := range datos.ServiciosExtras {
		formData.ServiciosExtras[i] = ServicioExtraResponse{
			ServicioExtraID: e.ServicioExtraID,
			Nombre:          e.Nombre,
			Precio:          e.Precio.Round(2).InexactFloat64(),
		}
	}

	return DatosFormularioResponse{
		Registros:       registroResponses,
		DatosFormulario: formData,
	}
}

// VehiculoPrellenado is the projection returned by the plate lookup: just the
// identity, contact and vehicle fields needed to pre-fill a new check-in.
type VehiculoPrellenado struct {
	NombreDueno    string `json:"nombreDueno"`
	Cedula         string `json:"cedula"`
	Telefono       string `json:"telefono"`
	Placa          string `json:"placa"`
	TipoVehiculoID string `json:"tipoVehiculoID"`
	Color          string `json:"color"`
}

// VerificarPlacaResponse is the plate lookup envelope.
type VerificarPlacaResponse struct {
	Encontrado bool                `json:"encontrado"`
	Vehiculo   *VehiculoPrellenado `json:"vehiculo,omitempty"`
	Mensaje    string              `json:"mensaje"`
}

// ToVerificarPlacaResponse projects a found registro into the pre-fill shape.
func ToVerificarPlacaResponse(r *domain.RegistroVehiculo) VerificarPlacaResponse {
	return VerificarPlacaResponse{
		Encontrado: true,
		Vehiculo: &VehiculoPrellenado{
			NombreDueno:    r.NombreDueno,
			Cedula:         r.Cedula,
			Telefono:       r.Telefono,
			Placa:          r.Placa,
			TipoVehiculoID: r.TipoVehiculoID,
			Color:          r.Color,
		},
		Mensaje: "Vehículo encontrado, datos cargados",
	}
}
