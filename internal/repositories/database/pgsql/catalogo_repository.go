package pgsql

import (
	"context"
	"fmt"

	"github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/domain"
	portsrepo "github.com/Juanjalvarezz27/SIGEAT-sub001/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCatalogoRepository reads the form lookup tables.
type PgxCatalogoRepository struct {
	BaseRepository
}

func newPgxCatalogoRepository(db *pgxpool.Pool) portsrepo.CatalogoRepository {
	return &PgxCatalogoRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CatalogoRepository = (*PgxCatalogoRepository)(nil)

// GetDatosFormulario loads every catalog needed by the check-in form.
func (r *PgxCatalogoRepository) GetDatosFormulario(ctx context.Context) (*domain.DatosFormulario, error) {
	tiposVehiculo, err := r.listTiposVehiculo(ctx)
	if err != nil {
		return nil, err
	}
	servicios, err := r.listServicios(ctx)
	if err != nil {
		return nil, err
	}
	estadosCarro, err := r.listEstadosCarro(ctx)
	if err != nil {
		return nil, err
	}
	estadosPago, err := r.listEstadosPago(ctx)
	if err != nil {
		return nil, err
	}
	serviciosExtras, err := r.listServiciosExtra(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DatosFormulario{
		TiposVehiculo:   tiposVehiculo,
		Servicios:       servicios,
		EstadosCarro:    estadosCarro,
		EstadosPago:     estadosPago,
		ServiciosExtras: serviciosExtras,
	}, nil
}

func (r *PgxCatalogoRepository) listTiposVehiculo(ctx context.Context) ([]domain.TipoVehiculo, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT tipo_vehiculo_id, nombre FROM tipos_vehiculo ORDER BY nombre;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tipos de vehiculo: %w", err)
	}
	defer rows.Close()

	tipos := []domain.TipoVehiculo{}
	for rows.Next() {
		var t domain.TipoVehiculo
		if err := rows.Scan(&t.TipoVehiculoID, &t.Nombre); err != nil {
			return nil, fmt.Errorf("failed to scan tipo de vehiculo row: %w", err)
		}
		tipos = append(tipos, t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating tipo de vehiculo rows: %w", rows.Err())
	}
	return tipos, nil
}

func (r *PgxCatalogoRepository) listServicios(ctx context.Context) ([]domain.Servicio, error) {
	query := `
        SELECT s.servicio_id, s.nombre, cs.nombre AS categoria, s.precio
        FROM servicios s
        JOIN categorias_servicio cs ON cs.categoria_servicio_id = s.categoria_servicio_id
        ORDER BY cs.nombre, s.nombre;
    `
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query servicios: %w", err)
	}
	defer rows.Close()

	servicios := []domain.Servicio{}
	for rows.Next() {
		var s domain.Servicio
		if err := rows.Scan(&s.ServicioID, &s.Nombre, &s.Categoria, &s.Precio); err != nil {
			return nil, fmt.Errorf("failed to scan servicio row: %w", err)
		}
		servicios = append(servicios, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating servicio rows: %w", rows.Err())
	}
	return servicios, nil
}

func (r *PgxCatalogoRepository) listEstadosCarro(ctx context.Context) ([]domain.EstadoCarro, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT estado_carro_id, nombre FROM estados_carro ORDER BY nombre;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query estados de carro: %w", err)
	}
	defer rows.Close()

	estados := []domain.EstadoCarro{}
	for rows.Next() {
		var e domain.EstadoCarro
		if err := rows.Scan(&e.EstadoCarroID, &e.Nombre); err != nil {
			return nil, fmt.Errorf("failed to scan estado de carro row: %w", err)
		}
		estados = append(estados, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating estado de carro rows: %w", rows.Err())
	}
	return estados, nil
}

func (r *PgxCatalogoRepository) listEstadosPago(ctx context.Context) ([]domain.EstadoPago, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT estado_pago_id, nombre FROM estados_pago ORDER BY nombre;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query estados de pago: %w", err)
	}
	defer rows.Close()

	estados := []domain.EstadoPago{}
	for rows.Next() {
		var e domain.EstadoPago
		if err := rows.Scan(&e.EstadoPagoID, &e.Nombre); err != nil {
			return nil, fmt.Errorf("failed to scan estado de pago row: %w", err)
		}
		estados = append(estados, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating estado de pago rows: %w", rows.Err())
	}
	return estados, nil
}

func (r *PgxCatalogoRepository) listServiciosExtra(ctx context.Context) ([]domain.ServicioExtra, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT servicio_extra_id, nombre, precio FROM servicios_extra ORDER BY nombre;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query servicios extra: %w", err)
	}
	defer rows.Close()

	extras := []domain.ServicioExtra{}
	for rows.Next() {
		var e domain.ServicioExtra
		if err := rows.Scan(&e.ServicioExtraID, &e.Nombre, &e.Precio); err != nil {
			return nil, fmt.Errorf("failed to scan servicio extra row: %w", err)
		}
		extras = append(extras, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating servicio extra rows: %w", rows.Err())
	}
	return extras, nil
}
