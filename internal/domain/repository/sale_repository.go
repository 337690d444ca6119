package repository

import (
	"context"

	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale (DIP).
type SaleRepository interface {
	// Create inserta la venta y completa ID y SoldAt generados por la DB.
	Create(ctx context.Context, s *entity.Sale) error
	// ListByVitrine últimas ventas de una vitrina, de la más reciente a la más antigua.
	ListByVitrine(ctx context.Context, vitrineID string, limit int) ([]*entity.Sale, error)
	// ListRecent últimas ventas de toda la red.
	ListRecent(ctx context.Context, limit int) ([]*entity.Sale, error)
}
