package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Transporte-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC    *usecase.CustomerUseCase
	VendorUC      *usecase.VendorUseCase
	VehicleUC     *usecase.VehicleUseCase
	CodePreviewUC *usecase.CodePreviewUseCase
	JWTSecret     string
	JWTIssuer     string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	vendors := api.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)

	vehicles := api.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)

	codeHandler := NewCodeHandler(deps.CodePreviewUC)
	api.Get("/codes/:entity/preview", codeHandler.Preview)
}
