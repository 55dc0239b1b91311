package services

import (
	"context"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/dto"
)

// RegistroSvcFacade exposes vehicle check-in operations.
type RegistroSvcFacade interface {
	CreateRegistro(ctx context.Context, req dto.CreateRegistroRequest) (*domain.RegistroVehiculo, error)

	// DatosFormulario returns today's registros plus the catalogs needed to
	// render the check-in form.
	DatosFormulario(ctx context.Context) ([]domain.RegistroDetalle, *domain.DatosFormulario, error)

	// VerificarPlaca returns the latest registro for a plate. The plate is
	// normalized first; an empty result is apperrors.ErrValidation, an
	// unknown plate apperrors.ErrNotFound.
	VerificarPlaca(ctx context.Context, placa string) (*domain.RegistroVehiculo, error)
}
