package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id::text, vitrine_id, product_id, qty::bigint, price_per_item, revenue, status, sold_at`

// SaleRepo implementación de SaleRepository sobre la tabla sales.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta; la DB genera id y sold_at.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	const query = `
		INSERT INTO sales (vitrine_id, product_id, qty, price_per_item, revenue, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text, sold_at`
	err := r.q.QueryRow(ctx, query,
		s.VitrineID, s.ProductID, s.Qty, s.PricePerItem, s.Revenue, s.Status,
	).Scan(&s.ID, &s.SoldAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) ListByVitrine(ctx context.Context, vitrineID string, limit int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE vitrine_id = $1 ORDER BY sold_at DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, vitrineID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales by vitrine: %w", err)
	}
	return collectSales(rows)
}

func (r *SaleRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY sold_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return collectSales(rows)
}

func collectSales(rows pgx.Rows) ([]*entity.Sale, error) {
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.VitrineID, &s.ProductID, &s.Qty, &s.PricePerItem, &s.Revenue, &s.Status, &s.SoldAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
