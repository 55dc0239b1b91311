package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/apperrors"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	portsrepo "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/repositories"
	portssvc "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/services"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/utils/fechas"
)

// estadisticasService implements the EstadisticasSvcFacade interface.
type estadisticasService struct {
	BaseService
	registroRepo portsrepo.RegistroRepository
}

// NewEstadisticasService creates a new statistics service.
func NewEstadisticasService(registroRepo portsrepo.RegistroRepository) portssvc.EstadisticasSvcFacade {
	return &estadisticasService{registroRepo: registroRepo}
}

var _ portssvc.EstadisticasSvcFacade = (*estadisticasService)(nil)

// ResumenSemana aggregates registros over the inclusive interval spanned by
// the two dates. The input strings are echoed back verbatim.
func (s *estadisticasService) ResumenSemana(ctx context.Context, fechaInicio, fechaFin string) (*domain.ResumenSemana, error) {
	if fechaInicio == "" || fechaFin == "" {
		return nil, fmt.Errorf("fechaInicio y fechaFin son requeridas: %w", apperrors.ErrValidation)
	}

	desde, hasta, err := fechas.RangoInclusivo(fechaInicio, fechaFin)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	total, cantidad, err := s.registroRepo.SumPreciosEnRango(ctx, desde, hasta)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate registros for interval",
			slog.String("fecha_inicio", fechaInicio),
			slog.String("fecha_fin", fechaFin))
		return nil, fmt.Errorf("failed to aggregate registros: %w", err)
	}

	s.LogInfo(ctx, "Weekly statistics computed",
		slog.String("fecha_inicio", fechaInicio),
		slog.String("fecha_fin", fechaFin),
		slog.Int64("total_registros", cantidad))

	return &domain.ResumenSemana{
		TotalIngresos:  total,
		TotalRegistros: cantidad,
		FechaInicio:    fechaInicio,
		FechaFin:       fechaFin,
	}, nil
}
