package services

import (
	"context"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
)

// UsuarioSvcFacade exposes user listing and the profile lookup.
type UsuarioSvcFacade interface {
	ListUsuarios(ctx context.Context) (*domain.ListadoUsuarios, error)

	// Perfil returns the earliest created user. Single-tenant assumption:
	// the deployment has one operator account of interest.
	Perfil(ctx context.Context) (*domain.Usuario, error)
}
