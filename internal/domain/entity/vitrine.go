package entity

// Estados válidos de una vitrina.
const (
	VitrineStatusActive   = "active"
	VitrineStatusInactive = "inactive"
)

// Vitrine representa una vitrina física (punto de venta) que mantiene stock de varios productos.
type Vitrine struct {
	ID           string // vitrine_id, asignado por el administrador (ej. "V-001")
	LocationName string
	City         string
	Status       string // active, inactive
	Notes        string
}

// IsActive indica si la vitrina está operativa.
func (v *Vitrine) IsActive() bool {
	return v != nil && v.Status == VitrineStatusActive
}
