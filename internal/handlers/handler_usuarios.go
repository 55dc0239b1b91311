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

// usuarioHandler handles HTTP requests for user listing and the profile.
type usuarioHandler struct {
	usuarioService portssvc.UsuarioSvcFacade
}

func newUsuarioHandler(us portssvc.UsuarioSvcFacade) *usuarioHandler {
	return &usuarioHandler{
		usuarioService: us,
	}
}

// registerUsuarioRoutes registers routes related to users.
func registerUsuarioRoutes(rg *gin.RouterGroup, usuarioService portssvc.UsuarioSvcFacade) {
	h := newUsuarioHandler(usuarioService)

	rg.GET("/usuarios/lista", h.listUsuarios)
	rg.GET("/perfil", h.perfil)
}

// listUsuarios godoc
// @Summary List users
// @Description Returns all users newest-first with per-role counts
// @Tags usuarios
// @Produce  json
// @Success 200 {object} dto.ListaUsuariosResponse
// @Failure 500 {object} map[string]string "Failed to list users"
// @Security BearerAuth
// @Router /usuarios/lista [get]
func (h *usuarioHandler) listUsuarios(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	listado, err := h.usuarioService.ListUsuarios(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list usuarios", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al listar los usuarios"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListaUsuariosResponse(listado))
}

// perfil godoc
// @Summary Operator profile
// @Description Returns the account that set up the system, with a formatted creation date
// @Tags usuarios
// @Produce  json
// @Success 200 {object} dto.PerfilResponse
// @Failure 404 {object} map[string]string "No users exist"
// @Failure 500 {object} map[string]string "Failed to load profile"
// @Security BearerAuth
// @Router /perfil [get]
func (h *usuarioHandler) perfil(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	usuario, err := h.usuarioService.Perfil(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Profile requested but no users exist")
			c.JSON(http.StatusNotFound, gin.H{"error": "No hay usuarios registrados"})
			return
		}
		logger.Error("Failed to load profile", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al cargar el perfil"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPerfilResponse(usuario))
}
