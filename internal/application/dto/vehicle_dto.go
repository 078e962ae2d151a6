package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVehicleRequest entrada para crear un vehículo.
type CreateVehicleRequest struct {
	Name               string          `json:"name"`
	RegistrationNumber string          `json:"registration_number"`
	VehicleType        string          `json:"vehicle_type"`
	CapacityTons       decimal.Decimal `json:"capacity_tons"`
}

// VehicleResponse salida de un vehículo.
type VehicleResponse struct {
	ID                 string          `json:"id"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	RegistrationNumber string          `json:"registration_number"`
	VehicleType        string          `json:"vehicle_type"`
	CapacityTons       decimal.Decimal `json:"capacity_tons"`
	CreatedAt          time.Time       `json:"created_at"`
}

// VehicleListResponse lista paginada de vehículos.
type VehicleListResponse struct {
	Items []VehicleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
