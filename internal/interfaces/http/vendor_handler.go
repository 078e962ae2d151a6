package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Transporte-api/internal/application/dto"
	"github.com/jhoicas/Transporte-api/internal/application/usecase"
)

// VendorHandler maneja las peticiones HTTP de proveedores.
type VendorHandler struct {
	uc *usecase.VendorUseCase
}

// NewVendorHandler construye el handler.
func NewVendorHandler(uc *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// Create POST /api/vendors
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	vendor, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, "proveedor duplicado")
	}
	return c.Status(fiber.StatusCreated).JSON(vendor)
}

// GetByID GET /api/vendors/:id
func (h *VendorHandler) GetByID(c *fiber.Ctx) error {
	vendor, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, "")
	}
	if vendor == nil {
		return notFound(c, "proveedor")
	}
	return c.JSON(vendor)
}

// List GET /api/vendors
func (h *VendorHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(list)
}
