package repository

import (
	"context"

	"github.com/jhoicas/Vitrinas-api/internal/domain/stock"
)

// StockRepository lee las vistas de stock del backend. Devuelve filas crudas:
// la validación y conversión a stock.Record la hace stock.ParseRows.
type StockRepository interface {
	// ListCurrent lee v_stock_current (toda la red).
	ListCurrent(ctx context.Context) ([]stock.RawRow, error)
	// ListTrafficLight lee v_stock_traffic_light; vitrineID vacío = toda la red.
	ListTrafficLight(ctx context.Context, vitrineID string) ([]stock.RawRow, error)
}
