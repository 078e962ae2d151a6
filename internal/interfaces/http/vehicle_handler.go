package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Transporte-api/internal/application/dto"
	"github.com/jhoicas/Transporte-api/internal/application/usecase"
)

// VehicleHandler maneja las peticiones HTTP de la flota.
type VehicleHandler struct {
	uc *usecase.VehicleUseCase
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(uc *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// Create POST /api/vehicles
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	vehicle, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, "ya existe un vehículo con esa placa")
	}
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

// GetByID GET /api/vehicles/:id
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	vehicle, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err, "")
	}
	if vehicle == nil {
		return notFound(c, "vehículo")
	}
	return c.JSON(vehicle)
}

// List GET /api/vehicles
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(list)
}
