package repository

import (
	"context"

	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

// VendorRepository define el puerto de persistencia para Vendor.
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error)
}
