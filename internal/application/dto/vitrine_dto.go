package dto

// VitrineResponse salida de una vitrina.
type VitrineResponse struct {
	ID           string `json:"vitrine_id"`
	LocationName string `json:"location_name"`
	City         string `json:"city,omitempty"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}

// CreateVitrineRequest entrada para crear una vitrina. Si ID viene vacío se genera uno.
type CreateVitrineRequest struct {
	ID           string `json:"vitrine_id"`
	LocationName string `json:"location_name" validate:"required"`
	City         string `json:"city"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive"`
	Notes        string `json:"notes"`
}

// UpdateVitrineRequest entrada para actualizar una vitrina.
type UpdateVitrineRequest struct {
	LocationName string `json:"location_name" validate:"required"`
	City         string `json:"city"`
	Status       string `json:"status" validate:"required,oneof=active inactive"`
	Notes        string `json:"notes"`
}
