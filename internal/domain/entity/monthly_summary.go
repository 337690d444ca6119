package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary fila de la vista v_monthly_summary (ventas facturables por vitrina y mes).
type MonthlySummary struct {
	BillingMonth time.Time
	VitrineID    string
	QtySum       int64
	RevenueSum   decimal.Decimal
}
