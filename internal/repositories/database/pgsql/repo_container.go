package pgsql

import (
	portsrepo "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates a provider with all pgsql-backed repositories
// sharing one connection pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Registro:   newPgxRegistroRepository(db),
		Gasto:      newPgxGastoRepository(db),
		MetodoPago: newPgxMetodoPagoRepository(db),
		Usuario:    newPgxUsuarioRepository(db),
		Catalogo:   newPgxCatalogoRepository(db),
	}
}
