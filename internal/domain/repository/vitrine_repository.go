package repository

import (
	"context"

	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
)

// VitrineRepository define el puerto de persistencia para Vitrine (DIP).
type VitrineRepository interface {
	List(ctx context.Context) ([]*entity.Vitrine, error)
	GetByID(ctx context.Context, id string) (*entity.Vitrine, error)
	Create(ctx context.Context, v *entity.Vitrine) error
	Update(ctx context.Context, v *entity.Vitrine) error
}
