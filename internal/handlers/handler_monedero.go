package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/apperrors"
	portssvc "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/services"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/dto"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
)

// monederoHandler handles HTTP requests for the wallet.
type monederoHandler struct {
	monederoService portssvc.MonederoSvcFacade
}

func newMonederoHandler(ms portssvc.MonederoSvcFacade) *monederoHandler {
	return &monederoHandler{
		monederoService: ms,
	}
}

// registerMonederoRoutes registers routes related to the wallet.
func registerMonederoRoutes(rg *gin.RouterGroup, monederoService portssvc.MonederoSvcFacade) {
	h := newMonederoHandler(monederoService)

	monedero := rg.Group("/monedero")
	{
		monedero.GET("", h.reporte)
		monedero.GET("/datos-iniciales", h.datosIniciales)
		monedero.POST("/gastos", h.createGasto)
	}
}

// reporte godoc
// @Summary Wallet balance report
// @Description Returns income/expense totals in Bs plus a page of recent expenses
// @Tags monedero
// @Produce  json
// @Param   page query int false "Page number (default 1)"
// @Param   limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.MonederoResponse
// @Failure 500 {object} dto.MonederoResponse "Zero-filled payload"
// @Security BearerAuth
// @Router /monedero [get]
func (h *monederoHandler) reporte(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonederoParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind wallet query params", slog.String("error", err.Error()))
		// Malformed params fall back to defaults rather than failing the report
		params = dto.MonederoParams{Page: 1, Limit: 10}
	}

	reporte, err := h.monederoService.Reporte(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		logger.Error("Failed to build wallet report", slog.String("error", err.Error()))
		// Clients render the same shape either way, so errors carry zeros
		c.JSON(http.StatusInternalServerError, dto.MonederoFallbackResponse())
		return
	}

	c.JSON(http.StatusOK, dto.ToMonederoResponse(reporte))
}

// datosIniciales godoc
// @Summary Wallet bootstrap data
// @Description Returns all payment methods, seeding the fixed set on first call
// @Tags monedero
// @Produce  json
// @Success 200 {object} dto.DatosInicialesResponse
// @Failure 500 {object} map[string]string "Failed to load payment methods"
// @Security BearerAuth
// @Router /monedero/datos-iniciales [get]
func (h *monederoHandler) datosIniciales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	metodos, seeded, err := h.monederoService.DatosIniciales(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load initial wallet data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cargar los métodos de pago"})
		return
	}

	message := "Métodos de pago cargados"
	if seeded {
		message = "Métodos de pago inicializados"
	}

	c.JSON(http.StatusOK, dto.ToDatosInicialesResponse(metodos, message))
}

// createGasto godoc
// @Summary Record an expense
// @Description Persists a wallet expense after validating the payment method's currency
// @Tags monedero
// @Accept  json
// @Produce  json
// @Param   gasto body dto.CreateGastoRequest true "Expense details"
// @Success 201 {object} dto.GastoResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Payment method not found"
// @Failure 500 {object} map[string]string "Failed to record expense"
// @Security BearerAuth
// @Router /monedero/gastos [post]
func (h *monederoHandler) createGasto(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateGastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGasto", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	gasto, err := h.monederoService.CreateGasto(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Expense references unknown payment method", slog.String("metodo_pago_id", req.MetodoPagoID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Método de pago no encontrado"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating gasto", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create gasto", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al registrar el gasto"})
		return
	}

	logger.Info("Gasto created", slog.String("gasto_id", gasto.GastoID))
	c.JSON(http.StatusCreated, dto.ToGastoResponse(gasto))
}
