package repositories

import (
	"context"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
)

// CatalogoRepository reads the lookup tables that populate the check-in form.
type CatalogoRepository interface {
	GetDatosFormulario(ctx context.Context) (*domain.DatosFormulario, error)
}
