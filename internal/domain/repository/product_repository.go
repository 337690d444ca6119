package repository

import (
	"context"

	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// List devuelve el catálogo completo ordenado por nombre.
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForShare bloquea la fila en modo compartido (dentro de una transacción).
	GetByIDForShare(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id string) error
}
