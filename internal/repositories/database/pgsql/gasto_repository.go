package pgsql

import (
	"context"
	"fmt"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	portsrepo "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/repositories"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxGastoRepository persists wallet expenses.
type PgxGastoRepository struct {
	BaseRepository
}

func newPgxGastoRepository(db *pgxpool.Pool) portsrepo.GastoRepository {
	return &PgxGastoRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.GastoRepository = (*PgxGastoRepository)(nil)

func toModelGasto(d domain.Gasto) models.Gasto {
	return models.Gasto{
		GastoID:      d.GastoID,
		Descripcion:  d.Descripcion,
		MontoBs:      d.MontoBs,
		MontoUsd:     d.MontoUsd,
		Moneda:       string(d.Moneda),
		TasaCambio:   d.TasaCambio,
		FechaHora:    d.FechaHora,
		Notas:        d.Notas,
		MetodoPagoID: d.MetodoPagoID,
	}
}

func toDomainGasto(m models.Gasto) domain.Gasto {
	return domain.Gasto{
		GastoID:      m.GastoID,
		Descripcion:  m.Descripcion,
		MontoBs:      m.MontoBs,
		MontoUsd:     m.MontoUsd,
		Moneda:       domain.Moneda(m.Moneda),
		TasaCambio:   m.TasaCambio,
		FechaHora:    m.FechaHora,
		Notas:        m.Notas,
		MetodoPagoID: m.MetodoPagoID,
	}
}

// SaveGasto inserts a new expense row.
func (r *PgxGastoRepository) SaveGasto(ctx context.Context, gasto domain.Gasto) error {
	modelGasto := toModelGasto(gasto)

	query := `
        INSERT INTO gastos (
            gasto_id, descripcion, monto_bs, monto_usd, moneda,
            tasa_cambio, fecha_hora, notas, metodo_pago_id
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelGasto.GastoID,
		modelGasto.Descripcion,
		modelGasto.MontoBs,
		modelGasto.MontoUsd,
		modelGasto.Moneda,
		modelGasto.TasaCambio,
		modelGasto.FechaHora,
		modelGasto.Notas,
		modelGasto.MetodoPagoID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert gasto: %w", err)
	}
	return nil
}

// AggregateGastos computes the Bs total and row count over every expense in a
// single query. Pagination never affects these numbers.
func (r *PgxGastoRepository) AggregateGastos(ctx context.Context) (domain.ResumenGastos, error) {
	query := `SELECT COALESCE(SUM(monto_bs), 0), COUNT(*) FROM gastos;`

	var resumen domain.ResumenGastos
	if err := r.Pool.QueryRow(ctx, query).Scan(&resumen.TotalBs, &resumen.Cantidad); err != nil {
		return domain.ResumenGastos{}, fmt.Errorf("failed to aggregate gastos: %w", err)
	}
	return resumen, nil
}

// FindGastosPaginados returns a page of expenses newest-first, each joined
// with its payment method name.
func (r *PgxGastoRepository) FindGastosPaginados(ctx context.Context, limit, offset int) ([]domain.GastoConMetodo, error) {
	query := `
        SELECT g.gasto_id, g.descripcion, g.monto_bs, g.monto_usd, g.moneda,
               g.tasa_cambio, g.fecha_hora, g.notas, g.metodo_pago_id,
               mp.nombre AS metodo_pago
        FROM gastos g
        JOIN metodos_pago mp ON mp.metodo_pago_id = g.metodo_pago_id
        ORDER BY g.fecha_hora DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query gastos page: %w", err)
	}
	defer rows.Close()

	gastos := []domain.GastoConMetodo{}
	for rows.Next() {
		var m models.Gasto
		var metodoNombre string

		err := rows.Scan(
			&m.GastoID, &m.Descripcion, &m.MontoBs, &m.MontoUsd, &m.Moneda,
			&m.TasaCambio, &m.FechaHora, &m.Notas, &m.MetodoPagoID,
			&metodoNombre,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gasto row: %w", err)
		}

		gastos = append(gastos, domain.GastoConMetodo{
			Gasto:            toDomainGasto(m),
			MetodoPagoNombre: metodoNombre,
		})
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating gasto rows: %w", rows.Err())
	}

	return gastos, nil
}
