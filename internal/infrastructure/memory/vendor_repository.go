package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo repositorio de proveedores en memoria.
type VendorRepo struct {
	mu    sync.RWMutex
	codes *CodeIndex
	byID  map[string]entity.Vendor
}

// NewVendorRepository construye el repositorio.
func NewVendorRepository(codes *CodeIndex) *VendorRepo {
	return &VendorRepo{codes: codes, byID: make(map[string]entity.Vendor)}
}

func (r *VendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.codes.claim(vendor.Code); err != nil {
		return err
	}
	r.byID[vendor.ID] = *vendor
	return nil
}

func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *VendorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error) {
	r.mu.RLock()
	list := make([]*entity.Vendor, 0, len(r.byID))
	for _, v := range r.byID {
		v := v
		list = append(list, &v)
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return paginate(list, limit, offset), nil
}
