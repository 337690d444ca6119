package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
)

// UserUseCase administración de perfiles de app_users (solo admin).
type UserUseCase struct {
	userRepo    repository.UserRepository
	vitrineRepo repository.VitrineRepository
}

func NewUserUseCase(userRepo repository.UserRepository, vitrineRepo repository.VitrineRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, vitrineRepo: vitrineRepo}
}

func (uc *UserUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// UpdateAccess cambia rol, vitrina y estado de un usuario.
//   - un seller activo necesita vitrina; un admin puede no tenerla.
//   - la vitrina indicada debe existir.
//   - un admin no puede quitarse a sí mismo el rol ni desactivarse.
func (uc *UserUseCase) UpdateAccess(ctx context.Context, actor entity.Actor, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	role := strings.TrimSpace(in.Role)
	vitrineID := strings.TrimSpace(in.VitrineID)
	if !entity.ValidRole(role) {
		return nil, fmt.Errorf("%w: role debe ser admin o seller", domain.ErrInvalidInput)
	}
	if role == entity.RoleSeller && in.Active && vitrineID == "" {
		return nil, fmt.Errorf("%w: un seller activo necesita vitrina asignada", domain.ErrInvalidInput)
	}
	if userID == actor.UserID && (role != entity.RoleAdmin || !in.Active) {
		return nil, fmt.Errorf("%w: no puede quitarse el acceso de administrador a sí mismo", domain.ErrConflict)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if vitrineID != "" {
		v, err := uc.vitrineRepo.GetByID(ctx, vitrineID)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, fmt.Errorf("%w: vitrina %s no existe", domain.ErrInvalidInput, vitrineID)
		}
	}

	user.Role = role
	user.VitrineID = vitrineID
	user.Active = in.Active
	if err := uc.userRepo.UpdateAccess(ctx, user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

func toUserResponse(u *entity.AppUser) dto.UserResponse {
	return dto.UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		Role:      u.Role,
		VitrineID: u.VitrineID,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
