package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Transporte-api/internal/application/codes"
	"github.com/jhoicas/Transporte-api/internal/application/usecase"
	"github.com/jhoicas/Transporte-api/internal/domain/entity"
)

// CodeHandler expone la vista previa de códigos.
type CodeHandler struct {
	uc *usecase.CodePreviewUseCase
}

// NewCodeHandler construye el handler.
func NewCodeHandler(uc *usecase.CodePreviewUseCase) *CodeHandler {
	return &CodeHandler{uc: uc}
}

// Preview GET /api/codes/:entity/preview?name=...&max_length=&pad_width=
func (h *CodeHandler) Preview(c *fiber.Ctx) error {
	kind := entity.EntityType(c.Params("entity"))
	if !kind.Valid() {
		return notFound(c, "tipo de entidad")
	}
	opts := codes.Options{
		MaxLength: c.QueryInt("max_length", 0),
		PadWidth:  c.QueryInt("pad_width", 0),
	}
	out, err := h.uc.Preview(c.UserContext(), kind, c.Query("name"), opts)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}
