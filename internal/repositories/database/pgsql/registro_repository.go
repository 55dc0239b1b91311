package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/apperrors"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	portsrepo "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/repositories"
	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxRegistroRepository persists vehicle check-ins.
type PgxRegistroRepository struct {
	BaseRepository
}

func newPgxRegistroRepository(db *pgxpool.Pool) portsrepo.RegistroRepository {
	return &PgxRegistroRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.RegistroRepository = (*PgxRegistroRepository)(nil)

func toModelRegistro(d domain.RegistroVehiculo) models.RegistroVehiculo {
	return models.RegistroVehiculo{
		RegistroID:     d.RegistroID,
		NombreDueno:    d.NombreDueno,
		Cedula:         d.Cedula,
		Telefono:       d.Telefono,
		Placa:          d.Placa,
		TipoVehiculoID: d.TipoVehiculoID,
		Color:          d.Color,
		PrecioTotal:    d.PrecioTotal,
		PrecioTotalBs:  d.PrecioTotalBs,
		ServicioID:     d.ServicioID,
		EstadoCarroID:  d.EstadoCarroID,
		EstadoPagoID:   d.EstadoPagoID,
		FechaHora:      d.FechaHora,
	}
}

func toDomainRegistro(m models.RegistroVehiculo) domain.RegistroVehiculo {
	return domain.RegistroVehiculo{
		RegistroID:     m.RegistroID,
		NombreDueno:    m.NombreDueno,
		Cedula:         m.Cedula,
		Telefono:       m.Telefono,
		Placa:          m.Placa,
		TipoVehiculoID: m.TipoVehiculoID,
		Color:          m.Color,
		PrecioTotal:    m.PrecioTotal,
		PrecioTotalBs:  m.PrecioTotalBs,
		ServicioID:     m.ServicioID,
		EstadoCarroID:  m.EstadoCarroID,
		EstadoPagoID:   m.EstadoPagoID,
		FechaHora:      m.FechaHora,
	}
}

// SaveRegistro inserts the check-in and its extra-service rows in one
// transaction.
func (r *PgxRegistroRepository) SaveRegistro(ctx context.Context, registro domain.RegistroVehiculo) error {
	modelRegistro := toModelRegistro(registro)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
        INSERT INTO registros_vehiculos (
            registro_id, nombre_dueno, cedula, telefono, placa,
            tipo_vehiculo_id, color, precio_total, precio_total_bs,
            servicio_id, estado_carro_id, estado_pago_id, fecha_hora
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err = tx.Exec(ctx, query,
		modelRegistro.RegistroID,
		modelRegistro.NombreDueno,
		modelRegistro.Cedula,
		modelRegistro.Telefono,
		modelRegistro.Placa,
		modelRegistro.TipoVehiculoID,
		modelRegistro.Color,
		modelRegistro.PrecioTotal,
		modelRegistro.PrecioTotalBs,
		modelRegistro.ServicioID,
		modelRegistro.EstadoCarroID,
		modelRegistro.EstadoPagoID,
		modelRegistro.FechaHora,
	)
	if err != nil {
		return fmt.Errorf("failed to insert registro: %w", err)
	}

	for _, extraID := range registro.ServiciosExtra {
		_, err = tx.Exec(ctx,
			`INSERT INTO registro_servicios_extra (registro_id, servicio_extra_id) VALUES ($1, $2);`,
			modelRegistro.RegistroID, extraID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert registro extra service: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindRegistrosEnRango returns registros inside the inclusive interval,
// decorated with their catalog names and extra-service names, newest first.
func (r *PgxRegistroRepository) FindRegistrosEnRango(ctx context.Context, desde, hasta time.Time) ([]domain.RegistroDetalle, error) {
	query := `
        SELECT
            r.registro_id, r.nombre_dueno, r.cedula, r.telefono, r.placa,
            r.tipo_vehiculo_id, r.color, r.precio_total, r.precio_total_bs,
            r.servicio_id, r.estado_carro_id, r.estado_pago_id, r.fecha_hora,
            tv.nombre AS tipo_vehiculo,
            s.nombre AS servicio,
            ec.nombre AS estado_carro,
            ep.nombre AS estado_pago,
            COALESCE(se.ids, '{}') AS extra_ids,
            COALESCE(se.nombres, '{}') AS extra_nombres
        FROM registros_vehiculos r
        JOIN tipos_vehiculo tv ON tv.tipo_vehiculo_id = r.tipo_vehiculo_id
        JOIN servicios s ON s.servicio_id = r.servicio_id
        JOIN estados_carro ec ON ec.estado_carro_id = r.estado_carro_id
        JOIN estados_pago ep ON ep.estado_pago_id = r.estado_pago_id
        LEFT JOIN LATERAL (
            SELECT array_agg(x.servicio_extra_id) AS ids, array_agg(x.nombre) AS nombres
            FROM registro_servicios_extra rse
            JOIN servicios_extra x ON x.servicio_extra_id = rse.servicio_extra_id
            WHERE rse.registro_id = r.registro_id
        ) se ON true
        WHERE r.fecha_hora BETWEEN $1 AND $2
        ORDER BY r.fecha_hora DESC;
    `
	rows, err := r.Pool.Query(ctx, query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("failed to query registros in range: %w", err)
	}
	defer rows.Close()

	detalles := []domain.RegistroDetalle{}
	for rows.Next() {
		var m models.RegistroVehiculo
		var detalle domain.RegistroDetalle
		var extraIDs, extraNombres []string

		err := rows.Scan(
			&m.RegistroID, &m.NombreDueno, &m.Cedula, &m.Telefono, &m.Placa,
			&m.TipoVehiculoID, &m.Color, &m.PrecioTotal, &m.PrecioTotalBs,
			&m.ServicioID, &m.EstadoCarroID, &m.EstadoPagoID, &m.FechaHora,
			&detalle.TipoVehiculo, &detalle.Servicio,
			&detalle.EstadoCarro, &detalle.EstadoPago,
			&extraIDs, &extraNombres,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registro row: %w", err)
		}

		detalle.RegistroVehiculo = toDomainRegistro(m)
		detalle.ServiciosExtra = extraIDs
		detalle.NombresExtras = extraNombres
		detalles = append(detalles, detalle)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating registro rows: %w", rows.Err())
	}

	return detalles, nil
}

// SumPreciosEnRango computes the db-side sum of precio_total and the row
// count over the inclusive interval. A null sum reads as zero.
func (r *PgxRegistroRepository) SumPreciosEnRango(ctx context.Context, desde, hasta time.Time) (decimal.Decimal, int64, error) {
	query := `
        SELECT COALESCE(SUM(precio_total), 0), COUNT(*)
        FROM registros_vehiculos
        WHERE fecha_hora BETWEEN $1 AND $2;
    `
	var total decimal.Decimal
	var cantidad int64
	if err := r.Pool.QueryRow(ctx, query, desde, hasta).Scan(&total, &cantidad); err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum precios in range: %w", err)
	}
	return total, cantidad, nil
}

// SumPreciosBs computes the income total in Bs over the whole table, counting
// only rows with a non-null precio_total_bs.
func (r *PgxRegistroRepository) SumPreciosBs(ctx context.Context) (decimal.Decimal, int64, error) {
	query := `
        SELECT COALESCE(SUM(precio_total_bs), 0), COUNT(*)
        FROM registros_vehiculos
        WHERE precio_total_bs IS NOT NULL;
    `
	var total decimal.Decimal
	var cantidad int64
	if err := r.Pool.QueryRow(ctx, query).Scan(&total, &cantidad); err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum precios in Bs: %w", err)
	}
	return total, cantidad, nil
}

// FindUltimoPorPlaca returns the most recent registro for a normalized plate.
func (r *PgxRegistroRepository) FindUltimoPorPlaca(ctx context.Context, placa string) (*domain.RegistroVehiculo, error) {
	query := `
        SELECT registro_id, nombre_dueno, cedula, telefono, placa,
               tipo_vehiculo_id, color, precio_total, precio_total_bs,
               servicio_id, estado_carro_id, estado_pago_id, fecha_hora
        FROM registros_vehiculos
        WHERE placa = $1
        ORDER BY fecha_hora DESC
        LIMIT 1;
    `
	var m models.RegistroVehiculo
	err := r.Pool.QueryRow(ctx, query, placa).Scan(
		&m.RegistroID, &m.NombreDueno, &m.Cedula, &m.Telefono, &m.Placa,
		&m.TipoVehiculoID, &m.Color, &m.PrecioTotal, &m.PrecioTotalBs,
		&m.ServicioID, &m.EstadoCarroID, &m.EstadoPagoID, &m.FechaHora,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find registro by placa %s: %w", placa, err)
	}

	registro := toDomainRegistro(m)
	return &registro, nil
}
