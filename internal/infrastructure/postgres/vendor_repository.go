package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implementación de VendorRepository.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, code, name, tax_id, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, v.ID, v.Code, v.Name, v.TaxID, v.Email, v.Phone, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return mapInsertError(err, string(entity.EntityVendor), "insert vendor")
	}
	return nil
}

func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	query := `
		SELECT id, code, name, tax_id, email, phone, created_at, updated_at
		FROM vendors WHERE id = $1`
	var v entity.Vendor
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Code, &v.Name, &v.TaxID, &v.Email, &v.Phone, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

func (r *VendorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error) {
	query := `
		SELECT id, code, name, tax_id, email, phone, created_at, updated_at
		FROM vendors ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Code, &v.Name, &v.TaxID, &v.Email, &v.Phone, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
