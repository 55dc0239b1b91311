package dto

import "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"

// MetodoPagoResponse is a payment method in API responses.
type MetodoPagoResponse struct {
	MetodoPagoID string `json:"metodoPagoID"`
	Nombre       string `json:"nombre"`
	Moneda       string `json:"moneda"`
	Descripcion  string `json:"descripcion,omitempty"`
}

// DatosInicialesResponse is returned by the wallet bootstrap endpoint.
type DatosInicialesResponse struct {
	MetodosPago []MetodoPagoResponse `json:"metodosPago"`
	Message     string               `json:"message"`
}

// ToDatosInicialesResponse converts the method list plus a message.
func ToDatosInicialesResponse(metodos []domain.MetodoPago, message string) DatosInicialesResponse {
	responses := make([]MetodoPagoResponse, len(metodos))
	for i, m := range metodos {
		responses[i] = MetodoPagoResponse{
			MetodoPagoID: m.MetodoPagoID,
			Nombre:       m.Nombre,
			Moneda:       string(m.Moneda),
			Descripcion:  m.Descripcion,
		}
	}
	return DatosInicialesResponse{MetodosPago: responses, Message: message}
}
