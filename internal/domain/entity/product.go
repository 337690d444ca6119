package entity

import "github.com/shopspring/decimal"

// Product representa un artículo del catálogo común a todas las vitrinas.
// StandardPrice y MinStockPerVitrine son opcionales en la tabla products.
type Product struct {
	ID                 string
	Name               string
	SKU                string
	StandardPrice      decimal.NullDecimal
	MinStockPerVitrine *int64 // umbral por defecto; la vista de semáforo puede sobrescribirlo por vitrina
	Notes              string
}

// Price devuelve el precio estándar o cero si no está definido.
func (p *Product) Price() decimal.Decimal {
	if p == nil || !p.StandardPrice.Valid {
		return decimal.Zero
	}
	return p.StandardPrice.Decimal
}
