package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	portsrepo "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/repositories"
	portssvc "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/services"
)

// usuarioService implements the UsuarioSvcFacade interface.
type usuarioService struct {
	BaseService
	usuarioRepo portsrepo.UsuarioRepository
}

// NewUsuarioService creates a new user service.
func NewUsuarioService(usuarioRepo portsrepo.UsuarioRepository) portssvc.UsuarioSvcFacade {
	return &usuarioService{usuarioRepo: usuarioRepo}
}

var _ portssvc.UsuarioSvcFacade = (*usuarioService)(nil)

// ListUsuarios returns all users newest-first with per-role counts. The
// listing timestamp is the response time.
func (s *usuarioService) ListUsuarios(ctx context.Context) (*domain.ListadoUsuarios, error) {
	usuarios, err := s.usuarioRepo.FindUsuarios(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list usuarios")
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}

	administradores := 0
	for _, u := range usuarios {
		if u.Rol == domain.RolAdmin {
			administradores++
		}
	}

	s.LogInfo(ctx, "Usuarios listed", slog.Int("count", len(usuarios)))

	return &domain.ListadoUsuarios{
		Usuarios:            usuarios,
		Total:               len(usuarios),
		Administradores:     administradores,
		Estandar:            len(usuarios) - administradores,
		UltimaActualizacion: time.Now(),
	}, nil
}

// Perfil returns the earliest created user (single-tenant assumption).
func (s *usuarioService) Perfil(ctx context.Context) (*domain.Usuario, error) {
	usuario, err := s.usuarioRepo.FindPrimerUsuario(ctx)
	if err != nil {
		return nil, err
	}
	return usuario, nil
}
