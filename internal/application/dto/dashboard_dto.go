package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellerDashboardResponse stock de la vitrina propia del vendedor.
type SellerDashboardResponse struct {
	Vitrine VitrineResponse    `json:"vitrine"`
	Summary StockSummary       `json:"summary"`
	Items   []StockRowResponse `json:"items"`
}

// MonthlySummaryResponse fila de v_monthly_summary.
type MonthlySummaryResponse struct {
	BillingMonth time.Time       `json:"billing_month"`
	VitrineID    string          `json:"vitrine_id,omitempty"`
	QtySum       int64           `json:"qty_sum"`
	RevenueSum   decimal.Decimal `json:"revenue_sum"`
}

// FleetDashboardResponse vista general del administrador.
type FleetDashboardResponse struct {
	TotalStock     int64                    `json:"total_stock"`
	ActiveVitrines int                      `json:"active_vitrines"`
	TotalVitrines  int                      `json:"total_vitrines"`
	CriticalCount  int                      `json:"critical_count"`
	WarningCount   int                      `json:"warning_count"`
	RevenueSum     decimal.Decimal          `json:"revenue_sum"`
	Monthly        []MonthlySummaryResponse `json:"monthly"`
	NeedsRefill    []StockRowResponse       `json:"needs_refill"`
}
