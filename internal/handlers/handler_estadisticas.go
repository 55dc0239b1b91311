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

// estadisticasHandler handles HTTP requests for revenue statistics.
type estadisticasHandler struct {
	estadisticasService portssvc.EstadisticasSvcFacade
}

func newEstadisticasHandler(es portssvc.EstadisticasSvcFacade) *estadisticasHandler {
	return &estadisticasHandler{
		estadisticasService: es,
	}
}

// registerEstadisticasRoutes registers routes related to statistics.
func registerEstadisticasRoutes(rg *gin.RouterGroup, estadisticasService portssvc.EstadisticasSvcFacade) {
	h := newEstadisticasHandler(estadisticasService)

	estadisticas := rg.Group("/estadisticas")
	{
		estadisticas.GET("/semana", h.resumenSemana)
	}
}

// resumenSemana godoc
// @Summary Weekly revenue summary
// @Description Aggregates check-in revenue between two dates, both days inclusive
// @Tags estadisticas
// @Produce  json
// @Param   fechaInicio query string true "Start date (YYYY-MM-DD)"
// @Param   fechaFin query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.ResumenSemanaResponse
// @Failure 400 {object} map[string]string "Missing or malformed dates"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Security BearerAuth
// @Router /estadisticas/semana [get]
func (h *estadisticasHandler) resumenSemana(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fechaInicio := c.Query("fechaInicio")
	fechaFin := c.Query("fechaFin")

	resumen, err := h.estadisticasService.ResumenSemana(c.Request.Context(), fechaInicio, fechaFin)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid date interval for weekly summary",
				slog.String("fechaInicio", fechaInicio),
				slog.String("fechaFin", fechaFin))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Se requieren fechaInicio y fechaFin en formato YYYY-MM-DD"})
			return
		}
		logger.Error("Failed to compute weekly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al calcular el resumen semanal"})
		return
	}

	c.JSON(http.StatusOK, dto.ToResumenSemanaResponse(resumen))
}
