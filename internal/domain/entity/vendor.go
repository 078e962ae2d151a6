package entity

import "time"

// Vendor representa un proveedor (transportista tercero, taller, combustible).
type Vendor struct {
	ID        string
	Code      string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
