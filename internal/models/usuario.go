package models

import "time"

// Usuario mirrors the usuarios table.
type Usuario struct {
	UsuarioID string    `db:"usuario_id"`
	Username  string    `db:"username"`
	Rol       string    `db:"rol"`
	CreatedAt time.Time `db:"created_at"`
}
