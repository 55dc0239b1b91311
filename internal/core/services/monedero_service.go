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
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/utils/paginacion"
	"github.com/google/uuid"
)

// metodosPagoIniciales are the fixed payment methods seeded on first use:
// four per currency.
var metodosPagoIniciales = []domain.MetodoPago{
	{Nombre: "Punto de Venta", Moneda: domain.MonedaBs, Descripcion: "Pago con tarjeta por punto de venta"},
	{Nombre: "Pago Móvil", Moneda: domain.MonedaBs, Descripcion: "Transferencia por pago móvil interbancario"},
	{Nombre: "Transferencia Bs", Moneda: domain.MonedaBs, Descripcion: "Transferencia bancaria en bolívares"},
	{Nombre: "Efectivo Bs", Moneda: domain.MonedaBs, Descripcion: "Efectivo en bolívares"},
	{Nombre: "Efectivo USD", Moneda: domain.MonedaUsd, Descripcion: "Efectivo en dólares"},
	{Nombre: "Zelle", Moneda: domain.MonedaUsd, Descripcion: "Transferencia Zelle"},
	{Nombre: "Binance", Moneda: domain.MonedaUsd, Descripcion: "Pago por Binance"},
	{Nombre: "Zinli", Moneda: domain.MonedaUsd, Descripcion: "Pago por Zinli"},
}

// monederoService implements the MonederoSvcFacade interface.
type monederoService struct {
	BaseService
	registroRepo   portsrepo.RegistroRepository
	gastoRepo      portsrepo.GastoRepository
	metodoPagoRepo portsrepo.MetodoPagoRepository
}

// NewMonederoService creates a new wallet service.
func NewMonederoService(
	registroRepo portsrepo.RegistroRepository,
	gastoRepo portsrepo.GastoRepository,
	metodoPagoRepo portsrepo.MetodoPagoRepository,
) portssvc.MonederoSvcFacade {
	return &monederoService{
		registroRepo:   registroRepo,
		gastoRepo:      gastoRepo,
		metodoPagoRepo: metodoPagoRepo,
	}
}

var _ portssvc.MonederoSvcFacade = (*monederoService)(nil)

// Reporte computes the wallet balance and a display page of recent gastos.
// The income and expense totals always cover the whole tables; pagination
// only shapes UltimosGastos.
func (s *monederoService) Reporte(ctx context.Context, pagina, limite int) (*domain.ReporteMonedero, error) {
	pagina, limite = paginacion.Normalizar(pagina, limite)

	totalIngresos, cantidadIngresos, err := s.registroRepo.SumPreciosBs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum registro income")
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}

	resumenGastos, err := s.gastoRepo.AggregateGastos(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate gastos")
		return nil, fmt.Errorf("failed to aggregate gastos: %w", err)
	}

	offset := (pagina - 1) * limite
	ultimosGastos, err := s.gastoRepo.FindGastosPaginados(ctx, limite, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list gastos page",
			slog.Int("pagina", pagina), slog.Int("limite", limite))
		return nil, fmt.Errorf("failed to list gastos: %w", err)
	}

	// Raw sums first, then each displayed figure rounded to 2 decimals
	// independently.
	ingresosBs := totalIngresos.Round(2)
	gastosBs := resumenGastos.TotalBs.Round(2)
	saldo := ingresosBs.Sub(gastosBs).Round(2)

	s.LogInfo(ctx, "Wallet report computed",
		slog.Int64("cantidad_ingresos", cantidadIngresos),
		slog.Int64("cantidad_gastos", resumenGastos.Cantidad))

	return &domain.ReporteMonedero{
		TotalIngresosBs:  ingresosBs,
		TotalGastosBs:    gastosBs,
		SaldoActualBs:    saldo,
		CantidadIngresos: cantidadIngresos,
		CantidadGastos:   resumenGastos.Cantidad,
		UltimosGastos:    ultimosGastos,
		Paginacion:       paginacion.Calcular(pagina, limite, resumenGastos.Cantidad),
		FechaCalculo:     time.Now(),
	}, nil
}

// DatosIniciales seeds the fixed payment methods when the table is empty.
// Calling it again is a no-op: existing rows are returned untouched.
func (s *monederoService) DatosIniciales(ctx context.Context) ([]domain.MetodoPago, bool, error) {
	existentes, err := s.metodoPagoRepo.ListMetodosPago(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment methods")
		return nil, false, fmt.Errorf("failed to list payment methods: %w", err)
	}

	if len(existentes) > 0 {
		return existentes, false, nil
	}

	metodos := make([]domain.MetodoPago, len(metodosPagoIniciales))
	for i, m := range metodosPagoIniciales {
		m.MetodoPagoID = uuid.NewString()
		metodos[i] = m
	}

	if err := s.metodoPagoRepo.SaveMetodosPago(ctx, metodos); err != nil {
		s.LogError(ctx, err, "Failed to seed payment methods")
		return nil, false, fmt.Errorf("failed to seed payment methods: %w", err)
	}

	s.LogInfo(ctx, "Payment methods seeded", slog.Int("count", len(metodos)))
	return metodos, true, nil
}

// CreateGasto persists an expense after checking that the referenced payment
// method exists and its currency scope matches the gasto's currency.
func (s *monederoService) CreateGasto(ctx context.Context, req dto.CreateGastoRequest) (*domain.GastoConMetodo, error) {
	metodo, err := s.metodoPagoRepo.FindMetodoPagoByID(ctx, req.MetodoPagoID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payment method %s: %w", req.MetodoPagoID, err)
	}

	if metodo.Moneda != domain.Moneda(req.Moneda) {
		return nil, fmt.Errorf("el método de pago %q es de moneda %s, no %s: %w",
			metodo.Nombre, metodo.Moneda, req.Moneda, apperrors.ErrValidation)
	}

	gasto := domain.Gasto{
		GastoID:      uuid.NewString(),
		Descripcion:  req.Descripcion,
		MontoBs:      req.MontoBs,
		MontoUsd:     req.MontoUsd,
		Moneda:       domain.Moneda(req.Moneda),
		TasaCambio:   req.TasaCambio,
		FechaHora:    time.Now(),
		Notas:        req.Notas,
		MetodoPagoID: req.MetodoPagoID,
	}

	if err := s.gastoRepo.SaveGasto(ctx, gasto); err != nil {
		s.LogError(ctx, err, "Failed to save gasto")
		return nil, fmt.Errorf("failed to save gasto: %w", err)
	}

	s.LogInfo(ctx, "Gasto created", slog.String("gasto_id", gasto.GastoID))
	return &domain.GastoConMetodo{Gasto: gasto, MetodoPagoNombre: metodo.Nombre}, nil
}
