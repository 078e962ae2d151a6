package repository

import (
	"context"

	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Create devuelve domain.ErrCodeConflict si el código ya existe y domain.ErrDuplicate
// si se repite el NIT/cédula.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (*entity.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
