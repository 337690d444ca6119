package repository

import (
	"context"

	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
)

// SummaryRepository consultas de solo lectura sobre v_monthly_summary.
type SummaryRepository interface {
	// ListMonthly devuelve las últimas `limit` filas, de la más reciente a la más antigua.
	ListMonthly(ctx context.Context, limit int) ([]*entity.MonthlySummary, error)
}
