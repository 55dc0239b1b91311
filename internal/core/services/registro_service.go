package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/apperrors"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	portsrepo "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/repositories"
	portssvc "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/services"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/dto"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/utils/fechas"
	"github.com/google/uuid"
)

// registroService implements the RegistroSvcFacade interface.
type registroService struct {
	BaseService
	registroRepo portsrepo.RegistroRepository
	catalogoRepo portsrepo.CatalogoRepository
}

// NewRegistroService creates a new vehicle check-in service.
func NewRegistroService(registroRepo portsrepo.RegistroRepository, catalogoRepo portsrepo.CatalogoRepository) portssvc.RegistroSvcFacade {
	return &registroService{
		registroRepo: registroRepo,
		catalogoRepo: catalogoRepo,
	}
}

var _ portssvc.RegistroSvcFacade = (*registroService)(nil)

// CreateRegistro persists a new check-in. The plate is normalized before
// storage so later lookups are case- and whitespace-insensitive.
func (s *registroService) CreateRegistro(ctx context.Context, req dto.CreateRegistroRequest) (*domain.RegistroVehiculo, error) {
	placa := domain.NormalizarPlaca(req.Placa)
	if placa == "" {
		return nil, fmt.Errorf("placa vacía: %w", apperrors.ErrValidation)
	}

	registro := domain.RegistroVehiculo{
		RegistroID:     uuid.NewString(),
		NombreDueno:    req.NombreDueno,
		Cedula:         req.Cedula,
		Telefono:       req.Telefono,
		Placa:          placa,
		TipoVehiculoID: req.TipoVehiculoID,
		Color:          req.Color,
		PrecioTotal:    req.PrecioTotal,
		PrecioTotalBs:  req.PrecioTotalBs,
		ServicioID:     req.ServicioID,
		EstadoCarroID:  req.EstadoCarroID,
		EstadoPagoID:   req.EstadoPagoID,
		ServiciosExtra: req.ServiciosExtra,
		FechaHora:      time.Now(),
	}

	if err := s.registroRepo.SaveRegistro(ctx, registro); err != nil {
		s.LogError(ctx, err, "Failed to save registro", slog.String("placa", placa))
		return nil, fmt.Errorf("failed to save registro: %w", err)
	}

	s.LogInfo(ctx, "Registro created",
		slog.String("registro_id", registro.RegistroID),
		slog.String("placa", placa))
	return &registro, nil
}

// DatosFormulario returns today's registros plus every catalog needed by the
// check-in form.
func (s *registroService) DatosFormulario(ctx context.Context) ([]domain.RegistroDetalle, *domain.DatosFormulario, error) {
	desde, hasta := fechas.RangoDelDia(time.Now())

	registros, err := s.registroRepo.FindRegistrosEnRango(ctx, desde, hasta)
	if err != nil {
		s.LogError(ctx, err, "Failed to list today's registros")
		return nil, nil, fmt.Errorf("failed to list today's registros: %w", err)
	}

	datos, err := s.catalogoRepo.GetDatosFormulario(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load form catalogs")
		return nil, nil, fmt.Errorf("failed to load form catalogs: %w", err)
	}

	return registros, datos, nil
}

// VerificarPlaca finds the most recent registro matching the normalized
// plate, for pre-filling a repeat customer's check-in form.
func (s *registroService) VerificarPlaca(ctx context.Context, placa string) (*domain.RegistroVehiculo, error) {
	normalizada := domain.NormalizarPlaca(placa)
	if normalizada == "" {
		return nil, fmt.Errorf("placa requerida: %w", apperrors.ErrValidation)
	}

	registro, err := s.registroRepo.FindUltimoPorPlaca(ctx, normalizada)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Plate lookup hit", slog.String("placa", normalizada))
	return registro, nil
}
