package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Transporte-api/internal/application/codes"
	"github.com/jhoicas/Transporte-api/internal/application/dto"
	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
	"github.com/jhoicas/Transporte-api/internal/domain/repository"
)

// VehicleUseCase casos de uso para la flota.
type VehicleUseCase struct {
	repo  repository.VehicleRepository
	codes *codes.Generator
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository, gen *codes.Generator) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, codes: gen}
}

// Create registra un vehículo. La placa es única; el código se deriva del nombre.
func (uc *VehicleUseCase) Create(ctx context.Context, in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	reg := strings.ToUpper(strings.TrimSpace(in.RegistrationNumber))
	if reg == "" || in.CapacityTons.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByRegistration(ctx, reg)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	vehicle := &entity.Vehicle{
		Name:               in.Name,
		RegistrationNumber: reg,
		VehicleType:        in.VehicleType,
		CapacityTons:       in.CapacityTons,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	_, err = uc.codes.Create(ctx, in.Name, func(ctx context.Context, code string) error {
		vehicle.ID = uuid.New().String()
		vehicle.Code = code
		return uc.repo.Create(ctx, vehicle)
	})
	if err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// GetByID obtiene un vehículo; nil si no existe.
func (uc *VehicleUseCase) GetByID(ctx context.Context, id string) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(ctx, id)
	if err != nil || vehicle == nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// List lista vehículos con paginación.
func (uc *VehicleUseCase) List(ctx context.Context, limit, offset int) (*dto.VehicleListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return &dto.VehicleListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:                 v.ID,
		Code:               v.Code,
		Name:               v.Name,
		RegistrationNumber: v.RegistrationNumber,
		VehicleType:        v.VehicleType,
		CapacityTons:       v.CapacityTons,
		CreatedAt:          v.CreatedAt,
	}
}
