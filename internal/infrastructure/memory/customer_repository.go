package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo repositorio de clientes en memoria.
type CustomerRepo struct {
	mu    sync.RWMutex
	codes *CodeIndex
	byID  map[string]entity.Customer
}

// NewCustomerRepository construye el repositorio sobre el índice de códigos de clientes.
func NewCustomerRepository(codes *CodeIndex) *CustomerRepo {
	return &CustomerRepo{codes: codes, byID: make(map[string]entity.Customer)}
}

// Create persiste el cliente reservando su código.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byID {
		if customer.TaxID != "" && c.TaxID == customer.TaxID {
			return fmt.Errorf("tax_id %s: %w", customer.TaxID, domain.ErrDuplicate)
		}
	}
	if err := r.codes.claim(customer.Code); err != nil {
		return err
	}
	r.byID[customer.ID] = *customer
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// GetByTaxID obtiene un cliente por NIT/cédula; nil si no existe.
func (r *CustomerRepo) GetByTaxID(ctx context.Context, taxID string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.byID {
		if c.TaxID == taxID {
			return &c, nil
		}
	}
	return nil, nil
}

// List lista clientes ordenados por código.
func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	r.mu.RLock()
	list := make([]*entity.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		c := c
		list = append(list, &c)
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return paginate(list, limit, offset), nil
}

// Update actualiza datos de contacto; el código almacenado no se toca.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[customer.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Name = customer.Name
	cur.Email = customer.Email
	cur.Phone = customer.Phone
	cur.Address = customer.Address
	cur.UpdatedAt = customer.UpdatedAt
	r.byID[customer.ID] = cur
	return nil
}
