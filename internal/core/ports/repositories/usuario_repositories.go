package repositories

import (
	"context"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
)

// UsuarioRepository defines read operations over system users. User accounts
// are provisioned by the external identity provider's sync, not here.
type UsuarioRepository interface {
	// FindUsuarios returns all users, newest first.
	FindUsuarios(ctx context.Context) ([]domain.Usuario, error)

	// FindPrimerUsuario returns the earliest created user, or
	// apperrors.ErrNotFound when the table is empty.
	FindPrimerUsuario(ctx context.Context) (*domain.Usuario, error)
}
