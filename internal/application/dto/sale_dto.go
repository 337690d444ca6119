package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest venta desde la vitrina del vendedor.
// VitrineID es opcional: si viene, debe coincidir con la vitrina asignada.
type RecordSaleRequest struct {
	VitrineID string `json:"vitrine_id"`
	ProductID string `json:"product_id" validate:"required"`
	Qty       int64  `json:"qty" validate:"required,min=1"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           string          `json:"id"`
	VitrineID    string          `json:"vitrine_id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	Qty          int64           `json:"qty"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
	Revenue      decimal.Decimal `json:"revenue"`
	Status       string          `json:"status"`
	SoldAt       time.Time       `json:"sold_at"`
}

// SaleListResponse listado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Limit int            `json:"limit"`
}
