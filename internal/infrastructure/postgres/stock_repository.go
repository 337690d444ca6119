package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
	"github.com/jhoicas/Vitrinas-api/internal/domain/stock"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo lee las vistas v_stock_current y v_stock_traffic_light.
// Las columnas se leen tal cual (numeric, nullable); stock.ParseRow las valida.
type StockRepo struct {
	q Querier
}

func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func (r *StockRepo) ListCurrent(ctx context.Context) ([]stock.RawRow, error) {
	const query = `
		SELECT vitrine_id::text, product_id::text, stock_qty::numeric,
		       NULL::numeric, NULL::numeric, NULL::text
		FROM v_stock_current
		ORDER BY vitrine_id, product_id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list v_stock_current: %w", err)
	}
	return collectRawRows(rows)
}

// ListTrafficLight vitrineID vacío devuelve toda la red.
func (r *StockRepo) ListTrafficLight(ctx context.Context, vitrineID string) ([]stock.RawRow, error) {
	const query = `
		SELECT vitrine_id::text, product_id::text, stock_qty::numeric,
		       min_stock::numeric, target_stock::numeric, ampel::text
		FROM v_stock_traffic_light
		WHERE ($1 = '' OR vitrine_id::text = $1)
		ORDER BY vitrine_id, product_id`
	rows, err := r.q.Query(ctx, query, vitrineID)
	if err != nil {
		return nil, fmt.Errorf("list v_stock_traffic_light: %w", err)
	}
	return collectRawRows(rows)
}

func collectRawRows(rows pgx.Rows) ([]stock.RawRow, error) {
	defer rows.Close()
	var list []stock.RawRow
	for rows.Next() {
		var raw stock.RawRow
		if err := rows.Scan(&raw.VitrineID, &raw.ProductID, &raw.StockQty, &raw.MinStock, &raw.TargetStock, &raw.Ampel); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, raw)
	}
	return list, rows.Err()
}
