package repository

import (
	"context"

	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

// VehicleRepository define el puerto de persistencia para Vehicle.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id string) (*entity.Vehicle, error)
	GetByRegistration(ctx context.Context, registration string) (*entity.Vehicle, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error)
}
