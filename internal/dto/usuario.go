package dto

import (
	"time"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/utils/fechas"
)

// UsuarioResponse is one user row in the listing.
type UsuarioResponse struct {
	UsuarioID string    `json:"usuarioID"`
	Username  string    `json:"username"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"createdAt"`
}

// EstadisticasUsuarios holds the per-role counts of the listing.
type EstadisticasUsuarios struct {
	Administradores     int       `json:"administradores"`
	Estandar            int       `json:"estandar"`
	UltimaActualizacion time.Time `json:"ultimaActualizacion"`
}

// DataUsuarios is the data block of the user listing envelope.
type DataUsuarios struct {
	Usuarios     []UsuarioResponse    `json:"usuarios"`
	Total        int                  `json:"total"`
	Estadisticas EstadisticasUsuarios `json:"estadisticas"`
}

// ListaUsuariosResponse is the user listing envelope.
type ListaUsuariosResponse struct {
	Success bool         `json:"success"`
	Data    DataUsuarios `json:"data"`
}

// ToListaUsuariosResponse converts the domain listing to the API shape.
func ToListaUsuariosResponse(listado *domain.ListadoUsuarios) ListaUsuariosResponse {
	usuarios := make([]UsuarioResponse, len(listado.Usuarios))
	for i, u := range listado.Usuarios {
		usuarios[i] = UsuarioResponse{
			UsuarioID: u.UsuarioID,
			Username:  u.Username,
			Rol:       u.Rol,
			CreatedAt: u.CreatedAt,
		}
	}
	return ListaUsuariosResponse{
		Success: true,
		Data: DataUsuarios{
			Usuarios: usuarios,
			Total:    listado.Total,
			Estadisticas: EstadisticasUsuarios{
				Administradores:     listado.Administradores,
				Estandar:            listado.Estandar,
				UltimaActualizacion: listado.UltimaActualizacion,
			},
		},
	}
}

// PerfilResponse is the profile payload: the creation date both as ISO and as
// a Spanish long-form string.
type PerfilResponse struct {
	Username                string `json:"username"`
	CreatedAt               string `json:"createdAt"`
	FechaCreacionFormateada string `json:"fechaCreacionFormateada"`
}

// ToPerfilResponse converts a user to the profile shape.
func ToPerfilResponse(u *domain.Usuario) PerfilResponse {
	return PerfilResponse{
		Username:                u.Username,
		CreatedAt:               u.CreatedAt.Format(time.RFC3339),
		FechaCreacionFormateada: fechas.FormatoLargoEs(u.CreatedAt),
	}
}
