package repository

import (
	"context"

	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para AppUser (DIP).
// Las identidades las crea el proveedor de autenticación; aquí solo se leen y editan perfiles.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*entity.AppUser, error)
	// List devuelve los perfiles del más reciente al más antiguo.
	List(ctx context.Context) ([]*entity.AppUser, error)
	// UpdateAccess actualiza rol, vitrina y estado activo.
	UpdateAccess(ctx context.Context, u *entity.AppUser) error
}
