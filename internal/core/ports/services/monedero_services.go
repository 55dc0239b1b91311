package services

import (
	"context"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/dto"
)

// MonederoSvcFacade exposes the wallet: balance report, payment-method
// seeding and expense creation.
type MonederoSvcFacade interface {
	// Reporte computes the balance (full-table sums) and a display page of
	// recent gastos. Page/limit are clamped to sane values.
	Reporte(ctx context.Context, pagina, limite int) (*domain.ReporteMonedero, error)

	// DatosIniciales seeds the fixed payment methods when the table is empty
	// and returns the full list. The returned bool reports whether seeding
	// happened on this call.
	DatosIniciales(ctx context.Context) ([]domain.MetodoPago, bool, error)

	// CreateGasto validates the payment method's currency scope against the
	// gasto's currency before persisting.
	CreateGasto(ctx context.Context, req dto.CreateGastoRequest) (*domain.GastoConMetodo, error)
}
