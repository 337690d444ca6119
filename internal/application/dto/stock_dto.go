package dto

import "github.com/shopspring/decimal"

// StockRowResponse fila de stock clasificada con nombres para mostrar.
type StockRowResponse struct {
	VitrineID      string           `json:"vitrine_id"`
	LocationName   string           `json:"location_name,omitempty"`
	ProductID      string           `json:"product_id"`
	ProductName    string           `json:"product_name,omitempty"`
	StockQty       int64            `json:"stock_qty"`
	MinStock       *int64           `json:"min_stock"`
	TargetStock    *decimal.Decimal `json:"target_stock,omitempty"`
	Status         string           `json:"status"`
	UpstreamStatus string           `json:"upstream_status,omitempty"`
}

// StockSummary agregado del semáforo. Warnings = filas en low.
type StockSummary struct {
	TotalStock int64 `json:"total_stock"`
	Critical   int   `json:"critical"`
	Warnings   int   `json:"warnings"`
	OK         int   `json:"ok"`
	Rows       int   `json:"rows"`
}

// CaseSummary agregado de una vitrina.
type CaseSummary struct {
	VitrineID    string       `json:"vitrine_id"`
	LocationName string       `json:"location_name,omitempty"`
	Summary      StockSummary `json:"summary"`
}

// CurrentStockResponse listado de v_stock_current.
type CurrentStockResponse struct {
	Items   []StockRowResponse `json:"items"`
	Summary StockSummary       `json:"summary"`
}

// RefillListResponse lista de reposición priorizada (critical primero).
type RefillListResponse struct {
	VitrineID string             `json:"vitrine_id,omitempty"`
	Items     []StockRowResponse `json:"items"`
	Cases     []CaseSummary      `json:"cases"`
	Summary   StockSummary       `json:"summary"`
}
