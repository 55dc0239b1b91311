package domain

import "time"

// Roles observed in the system.
const (
	RolAdmin   = "admin"
	RolUsuario = "usuario"
)

// Usuario represents a system user. Credentials live with the external
// identity provider; this service only reads identity data.
type Usuario struct {
	UsuarioID string    `json:"usuarioID"`
	Username  string    `json:"username"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListadoUsuarios is the user listing with per-role counts.
type ListadoUsuarios struct {
	Usuarios            []Usuario `json:"usuarios"`
	Total               int       `json:"total"`
	Administradores     int       `json:"administradores"`
	Estandar            int       `json:"estandar"`
	UltimaActualizacion time.Time `json:"ultimaActualizacion"`
}
