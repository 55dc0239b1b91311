package repositories

import (
	"context"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
)

// MetodoPagoRepository defines persistence operations for payment methods.
type MetodoPagoRepository interface {
	// SaveMetodosPago inserts the given methods in one transaction.
	SaveMetodosPago(ctx context.Context, metodos []domain.MetodoPago) error

	ListMetodosPago(ctx context.Context) ([]domain.MetodoPago, error)

	// FindMetodoPagoByID returns apperrors.ErrNotFound when absent.
	FindMetodoPagoByID(ctx context.Context, metodoPagoID string) (*domain.MetodoPago, error)
}
