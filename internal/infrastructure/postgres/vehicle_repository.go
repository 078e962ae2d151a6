package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

const vehicleColumns = `id, code, name, registration_number, vehicle_type, capacity_tons, created_at, updated_at`

// VehicleRepo implementación de VehicleRepository. capacity_tons (NUMERIC) se escanea a
// decimal.Decimal gracias al codec registrado en NewPool.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador.
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	query := `INSERT INTO vehicles (` + vehicleColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Code, v.Name, v.RegistrationNumber, v.VehicleType, v.CapacityTons, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return mapInsertError(err, string(entity.EntityVehicle), "insert vehicle")
	}
	return nil
}

func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	return r.getOne(ctx, "get vehicle", `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id)
}

func (r *VehicleRepo) GetByRegistration(ctx context.Context, registration string) (*entity.Vehicle, error) {
	return r.getOne(ctx, "get vehicle by registration",
		`SELECT `+vehicleColumns+` FROM vehicles WHERE upper(registration_number) = upper($1)`, registration)
}

func (r *VehicleRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Vehicle, error) {
	v, err := scanVehicle(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

func (r *VehicleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error) {
	rows, err := r.q.Query(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY code LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := row.Scan(&v.ID, &v.Code, &v.Name, &v.RegistrationNumber, &v.VehicleType, &v.CapacityTons, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
