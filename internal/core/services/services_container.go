package services

import (
	portsrepo "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/repositories"
	portssvc "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Estadisticas: NewEstadisticasService(repos.Registro),
		Monedero:     NewMonederoService(repos.Registro, repos.Gasto, repos.MetodoPago),
		Registro:     NewRegistroService(repos.Registro, repos.Catalogo),
		Usuario:      NewUsuarioService(repos.Usuario),
	}
}
