package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/apperrors"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	portsrepo "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/repositories"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUsuarioRepository reads system users.
type PgxUsuarioRepository struct {
	BaseRepository
}

func newPgxUsuarioRepository(db *pgxpool.Pool) portsrepo.UsuarioRepository {
	return &PgxUsuarioRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.UsuarioRepository = (*PgxUsuarioRepository)(nil)

func toDomainUsuario(m models.Usuario) domain.Usuario {
	return domain.Usuario{
		UsuarioID: m.UsuarioID,
		Username:  m.Username,
		Rol:       m.Rol,
		CreatedAt: m.CreatedAt,
	}
}

// FindUsuarios returns all users, newest first.
func (r *PgxUsuarioRepository) FindUsuarios(ctx context.Context) ([]domain.Usuario, error) {
	query := `
        SELECT usuario_id, username, rol, created_at
        FROM usuarios
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query usuarios: %w", err)
	}
	defer rows.Close()

	usuarios := []domain.Usuario{}
	for rows.Next() {
		var m models.Usuario
		if err := rows.Scan(&m.UsuarioID, &m.Username, &m.Rol, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan usuario row: %w", err)
		}
		usuarios = append(usuarios, toDomainUsuario(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating usuario rows: %w", rows.Err())
	}

	return usuarios, nil
}

// FindPrimerUsuario returns the earliest created user.
func (r *PgxUsuarioRepository) FindPrimerUsuario(ctx context.Context) (*domain.Usuario, error) {
	query := `
        SELECT usuario_id, username, rol, created_at
        FROM usuarios
        ORDER BY created_at ASC
        LIMIT 1;
    `
	var m models.Usuario
	err := r.Pool.QueryRow(ctx, query).Scan(&m.UsuarioID, &m.Username, &m.Rol, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find primer usuario: %w", err)
	}

	usuario := toDomainUsuario(m)
	return &usuario, nil
}
