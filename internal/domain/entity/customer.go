package entity

import "time"

// Customer representa un cliente de transporte.
// Code se asigna una sola vez al crearlo y no cambia aunque cambie el nombre.
type Customer struct {
	ID        string
	Code      string
	Name      string
	TaxID     string // NIT o Cédula
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
