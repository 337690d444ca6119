package dto

import "github.com/shopspring/decimal"

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID                 string           `json:"product_id"`
	Name               string           `json:"name"`
	SKU                string           `json:"sku,omitempty"`
	StandardPrice      *decimal.Decimal `json:"standard_price"`
	MinStockPerVitrine *int64           `json:"min_stock_per_vitrine"`
	Notes              string           `json:"notes,omitempty"`
}

// CreateProductRequest entrada para crear un producto. Si ID viene vacío se genera uno.
type CreateProductRequest struct {
	ID                 string           `json:"product_id"`
	Name               string           `json:"name" validate:"required"`
	SKU                string           `json:"sku"`
	StandardPrice      *decimal.Decimal `json:"standard_price"`
	MinStockPerVitrine *int64           `json:"min_stock_per_vitrine"`
	Notes              string           `json:"notes"`
}

// UpdateProductRequest entrada para actualizar un producto (reemplazo completo).
type UpdateProductRequest struct {
	Name               string           `json:"name" validate:"required"`
	SKU                string           `json:"sku"`
	StandardPrice      *decimal.Decimal `json:"standard_price"`
	MinStockPerVitrine *int64           `json:"min_stock_per_vitrine"`
	Notes              string           `json:"notes"`
}
