package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

type SummaryRepo struct {
	q Querier
}

func NewSummaryRepository(q Querier) *SummaryRepo {
	return &SummaryRepo{q: q}
}

// ListMonthly filas de v_monthly_summary de la más reciente a la más antigua.
func (r *SummaryRepo) ListMonthly(ctx context.Context, limit int) ([]*entity.MonthlySummary, error) {
	const query = `
		SELECT billing_month, COALESCE(vitrine_id::text, ''),
		       COALESCE(qty_sum, 0)::bigint, COALESCE(revenue_sum, 0)
		FROM v_monthly_summary
		ORDER BY billing_month DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list v_monthly_summary: %w", err)
	}
	defer rows.Close()
	var list []*entity.MonthlySummary
	for rows.Next() {
		var m entity.MonthlySummary
		if err := rows.Scan(&m.BillingMonth, &m.VitrineID, &m.QtySum, &m.RevenueSum); err != nil {
			return nil, fmt.Errorf("scan monthly summary: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
