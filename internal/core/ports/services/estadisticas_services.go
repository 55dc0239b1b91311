package services

import (
	"context"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
)

// EstadisticasSvcFacade exposes revenue statistics over date intervals.
type EstadisticasSvcFacade interface {
	// ResumenSemana aggregates registros between two YYYY-MM-DD dates,
	// inclusive of both whole days. Returns apperrors.ErrValidation when a
	// date is missing or unparseable; no query is performed in that case.
	ResumenSemana(ctx context.Context, fechaInicio, fechaFin string) (*domain.ResumenSemana, error)
}
