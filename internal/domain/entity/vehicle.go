package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle representa un vehículo de la flota.
type Vehicle struct {
	ID                 string
	Code               string
	Name               string // marca/modelo o alias, ej. "Tata Ace"
	RegistrationNumber string // placa
	VehicleType        string // camión, furgón, tractomula...
	CapacityTons       decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
