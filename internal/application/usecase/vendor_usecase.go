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

// VendorUseCase casos de uso para proveedores.
type VendorUseCase struct {
	repo  repository.VendorRepository
	codes *codes.Generator
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository, gen *codes.Generator) *VendorUseCase {
	return &VendorUseCase{repo: repo, codes: gen}
}

// Create crea un proveedor con código generado.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vendor := &entity.Vendor{
		Name:      in.Name,
		TaxID:     strings.TrimSpace(in.TaxID),
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := uc.codes.Create(ctx, in.Name, func(ctx context.Context, code string) error {
		vendor.ID = uuid.New().String()
		vendor.Code = code
		return uc.repo.Create(ctx, vendor)
	})
	if err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor; nil si no existe.
func (uc *VendorUseCase) GetByID(ctx context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(ctx, id)
	if err != nil || vendor == nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// List lista proveedores con paginación.
func (uc *VendorUseCase) List(ctx context.Context, limit, offset int) (*dto.VendorListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVendorResponse(v))
	}
	return &dto.VendorListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:        v.ID,
		Code:      v.Code,
		Name:      v.Name,
		TaxID:     v.TaxID,
		Email:     v.Email,
		Phone:     v.Phone,
		CreatedAt: v.CreatedAt,
	}
}
