package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusConfirmed = "confirmed"
	SaleStatusCancelled = "cancelled"
)

// Sale representa una venta registrada por un vendedor en su vitrina.
// El stock actual no se guarda: la vista v_stock_current lo deriva de reposiciones y ventas.
type Sale struct {
	ID           string
	VitrineID    string
	ProductID    string
	Qty          int64
	PricePerItem decimal.Decimal
	Revenue      decimal.Decimal // PricePerItem * Qty
	Status       string
	SoldAt       time.Time
}
