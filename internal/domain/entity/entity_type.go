package entity

// EntityType tipo de entidad con código propio. Los códigos son únicos dentro de cada tipo.
type EntityType string

const (
	EntityCustomer EntityType = "customers"
	EntityVendor   EntityType = "vendors"
	EntityVehicle  EntityType = "vehicles"
)

// Valid indica si t es un tipo de entidad conocido.
func (t EntityType) Valid() bool {
	switch t {
	case EntityCustomer, EntityVendor, EntityVehicle:
		return true
	}
	return false
}
