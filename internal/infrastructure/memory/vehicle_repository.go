package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo repositorio de vehículos en memoria.
type VehicleRepo struct {
	mu    sync.RWMutex
	codes *CodeIndex
	byID  map[string]entity.Vehicle
}

// NewVehicleRepository construye el repositorio.
func NewVehicleRepository(codes *CodeIndex) *VehicleRepo {
	return &VehicleRepo{codes: codes, byID: make(map[string]entity.Vehicle)}
}

func (r *VehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.byID {
		if strings.EqualFold(v.RegistrationNumber, vehicle.RegistrationNumber) {
			return fmt.Errorf("placa %s: %w", vehicle.RegistrationNumber, domain.ErrDuplicate)
		}
	}
	if err := r.codes.claim(vehicle.Code); err != nil {
		return err
	}
	r.byID[vehicle.ID] = *vehicle
	return nil
}

func (r *VehicleRepo) GetByID(ctx context.Context, id string) (*entity.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *VehicleRepo) GetByRegistration(ctx context.Context, registration string) (*entity.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.byID {
		if strings.EqualFold(v.RegistrationNumber, registration) {
			return &v, nil
		}
	}
	return nil, nil
}

func (r *VehicleRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error) {
	r.mu.RLock()
	list := make([]*entity.Vehicle, 0, len(r.byID))
	for _, v := range r.byID {
		v := v
		list = append(list, &v)
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return paginate(list, limit, offset), nil
}
