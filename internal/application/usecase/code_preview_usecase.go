package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Transporte-api/internal/application/codes"
	"github.com/jhoicas/Transporte-api/internal/application/dto"
	"github.com/jhoicas/Transporte-api/internal/domain"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

const (
	maxPreviewLength   = 10
	maxPreviewPadWidth = 18
)

// CodePreviewUseCase muestra el código que recibiría una entidad nueva sin reservarlo.
type CodePreviewUseCase struct {
	generators map[entity.EntityType]*codes.Generator
}

// NewCodePreviewUseCase construye el caso de uso con un generador por tipo de entidad.
func NewCodePreviewUseCase(generators map[entity.EntityType]*codes.Generator) *CodePreviewUseCase {
	return &CodePreviewUseCase{generators: generators}
}

// Preview calcula el próximo código para name. Otro alta puede tomarlo antes.
// Los campos en cero de opts conservan la configuración del tipo de entidad.
func (uc *CodePreviewUseCase) Preview(ctx context.Context, kind entity.EntityType, name string, opts codes.Options) (*dto.CodePreviewResponse, error) {
	gen, ok := uc.generators[kind]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if opts.MaxLength < 0 || opts.MaxLength > maxPreviewLength || opts.PadWidth < 0 || opts.PadWidth > maxPreviewPadWidth {
		return nil, fmt.Errorf("%w: max_length debe estar entre 1 y %d y pad_width entre 1 y %d",
			domain.ErrInvalidInput, maxPreviewLength, maxPreviewPadWidth)
	}
	code, err := gen.GenerateWithOptions(ctx, name, codes.Options{MaxLength: opts.MaxLength, PadWidth: opts.PadWidth})
	if err != nil {
		return nil, err
	}
	return &dto.CodePreviewResponse{Entity: string(kind), Name: name, Code: code}, nil
}
