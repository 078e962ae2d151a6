package dto

import "time"

// CreateVendorRequest entrada para crear un proveedor.
type CreateVendorRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// VendorResponse salida de un proveedor.
type VendorResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// VendorListResponse lista paginada de proveedores.
type VendorListResponse struct {
	Items []VendorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
