package repositories

import (
	"context"
	"time"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegistroRepository defines persistence operations for vehicle check-ins.
type RegistroRepository interface {
	// SaveRegistro persists a new check-in together with its extra-service
	// associations, atomically.
	SaveRegistro(ctx context.Context, registro domain.RegistroVehiculo) error

	// FindRegistrosEnRango returns registros with fecha_hora inside the
	// inclusive interval, decorated with catalog names, newest first.
	FindRegistrosEnRango(ctx context.Context, desde, hasta time.Time) ([]domain.RegistroDetalle, error)

	// SumPreciosEnRango returns SUM(precio_total) (0 when no rows) and the
	// row count over the inclusive interval.
	SumPreciosEnRango(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, int64, error)

	// SumPreciosBs returns the income total in Bs over the whole table
	// (rows with a non-null precio_total_bs) and how many rows contributed.
	SumPreciosBs(ctx context.Context) (decimal.Decimal, int64, error)

	// FindUltimoPorPlaca returns the most recent registro for a normalized
	// plate, or apperrors.ErrNotFound.
	FindUltimoPorPlaca(ctx context.Context, placa string) (*domain.RegistroVehiculo, error)
}
