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

// PgxMetodoPagoRepository persists payment methods.
type PgxMetodoPagoRepository struct {
	BaseRepository
}

func newPgxMetodoPagoRepository(db *pgxpool.Pool) portsrepo.MetodoPagoRepository {
	return &PgxMetodoPagoRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.MetodoPagoRepository = (*PgxMetodoPagoRepository)(nil)

func toDomainMetodoPago(m models.MetodoPago) domain.MetodoPago {
	return domain.MetodoPago{
		MetodoPagoID: m.MetodoPagoID,
		Nombre:       m.Nombre,
		Moneda:       domain.Moneda(m.Moneda),
		Descripcion:  m.Descripcion,
	}
}

// SaveMetodosPago inserts the given methods in one transaction so the seed
// either lands complete or not at all.
func (r *PgxMetodoPagoRepository) SaveMetodosPago(ctx context.Context, metodos []domain.MetodoPago) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
        INSERT INTO metodos_pago (metodo_pago_id, nombre, moneda, descripcion)
        VALUES ($1, $2, $3, $4);
    `
	for _, metodo := range metodos {
		_, err = tx.Exec(ctx, query,
			metodo.MetodoPagoID, metodo.Nombre, string(metodo.Moneda), metodo.Descripcion)
		if err != nil {
			return fmt.Errorf("failed to insert metodo de pago %s: %w", metodo.Nombre, err)
		}
	}

	return r.Commit(ctx, tx)
}

// ListMetodosPago returns every payment method ordered by name.
func (r *PgxMetodoPagoRepository) ListMetodosPago(ctx context.Context) ([]domain.MetodoPago, error) {
	query := `
        SELECT metodo_pago_id, nombre, moneda, descripcion
        FROM metodos_pago
        ORDER BY nombre;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query metodos de pago: %w", err)
	}
	defer rows.Close()

	metodos := []domain.MetodoPago{}
	for rows.Next() {
		var m models.MetodoPago
		if err := rows.Scan(&m.MetodoPagoID, &m.Nombre, &m.Moneda, &m.Descripcion); err != nil {
			return nil, fmt.Errorf("failed to scan metodo de pago row: %w", err)
		}
		metodos = append(metodos, toDomainMetodoPago(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating metodo de pago rows: %w", rows.Err())
	}

	return metodos, nil
}

// FindMetodoPagoByID returns the payment method or apperrors.ErrNotFound.
func (r *PgxMetodoPagoRepository) FindMetodoPagoByID(ctx context.Context, metodoPagoID string) (*domain.MetodoPago, error) {
	query := `
        SELECT metodo_pago_id, nombre, moneda, descripcion
        FROM metodos_pago
        WHERE metodo_pago_id = $1;
    `
	var m models.MetodoPago
	err := r.Pool.QueryRow(ctx, query, metodoPagoID).Scan(
		&m.MetodoPagoID, &m.Nombre, &m.Moneda, &m.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find metodo de pago %s: %w", metodoPagoID, err)
	}

	metodo := toDomainMetodoPago(m)
	return &metodo, nil
}
