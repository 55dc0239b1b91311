package repositories

import (
	"context"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
)

// GastoRepository defines persistence operations for wallet expenses.
type GastoRepository interface {
	SaveGasto(ctx context.Context, gasto domain.Gasto) error

	// AggregateGastos computes SUM(monto_bs) and COUNT(*) over the whole
	// gastos table in a single query, independent of any pagination.
	AggregateGastos(ctx context.Context) (domain.ResumenGastos, error)

	// FindGastosPaginados returns a page of gastos ordered by fecha_hora
	// descending, each joined with its payment method name.
	FindGastosPaginados(ctx context.Context, limit, offset int) ([]domain.GastoConMetodo, error)
}
