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

// registroHandler handles HTTP requests for vehicle check-ins.
type registroHandler struct {
	registroService portssvc.RegistroSvcFacade
}

func newRegistroHandler(rs portssvc.RegistroSvcFacade) *registroHandler {
	return &registroHandler{
		registroService: rs,
	}
}

// registerRegistroRoutes registers routes related to vehicle check-ins.
func registerRegistroRoutes(rg *gin.RouterGroup, registroService portssvc.RegistroSvcFacade) {
	h := newRegistroHandler(registroService)

	registros := rg.Group("/registros-vehiculos")
	{
		registros.POST("", h.createRegistro)
		registros.GET("/datos-formulario", h.datosFormulario)
		registros.GET("/verificar-placa", h.verificarPlaca)
	}
}

// createRegistro godoc
// @Summary Create a vehicle check-in
// @Description Records a vehicle entering the wash, with its services and extras
// @Tags registros
// @Accept  json
// @Produce  json
// @Param   registro body dto.CreateRegistroRequest true "Check-in details"
// @Success 201 {object} dto.RegistroResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create check-in"
// @Security BearerAuth
// @Router /registros-vehiculos [post]
func (h *registroHandler) createRegistro(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRegistro", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	registro, err := h.registroService.CreateRegistro(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating registro", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create registro", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al registrar el vehículo"})
		return
	}

	logger.Info("Registro created", slog.String("registro_id", registro.RegistroID))
	c.JSON(http.StatusCreated, dto.ToRegistroResponse(registro))
}

// datosFormulario godoc
// @Summary Check-in form bootstrap data
// @Description Returns today's check-ins plus every catalog the form needs
// @Tags registros
// @Produce  json
// @Success 200 {object} dto.DatosFormularioResponse
// @Failure 500 {object} map[string]string "Failed to load form data"
// @Security BearerAuth
// @Router /registros-vehiculos/datos-formulario [get]
func (h *registroHandler) datosFormulario(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	registros, datos, err := h.registroService.DatosFormulario(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load form data", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cargar los datos del formulario"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDatosFormularioResponse(registros, datos))
}

// verificarPlaca godoc
// @Summary Look up a plate
// @Description Returns the latest check-in data for a plate, for pre-filling the form
// @Tags registros
// @Produce  json
// @Param   placa query string true "License plate"
// @Success 200 {object} dto.VerificarPlacaResponse
// @Failure 400 {object} map[string]string "Missing plate"
// @Failure 500 {object} map[string]string "Failed to look up plate"
// @Security BearerAuth
// @Router /registros-vehiculos/verificar-placa [get]
func (h *registroHandler) verificarPlaca(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	placa := c.Query("placa")

	registro, err := h.registroService.VerificarPlaca(c.Request.Context(), placa)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// An unknown plate is a normal outcome: the client shows a blank form
			c.JSON(http.StatusOK, dto.VerificarPlacaResponse{
				Encontrado: false,
				Mensaje:    "Vehículo no registrado anteriormente",
			})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Plate lookup without a plate")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere el parámetro placa"})
			return
		}
		logger.Error("Failed to look up plate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar la placa"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVerificarPlacaResponse(registro))
}
