package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/application/ports"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
)

// AuthUseCase login contra el proveedor de identidad y resolución del perfil de aplicación.
type AuthUseCase struct {
	idp      ports.IdentityProvider
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(idp ports.IdentityProvider, userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{idp: idp, userRepo: userRepo}
}

// Login reenvía las credenciales al proveedor y exige perfil activo en app_users.
// Si la identidad existe pero no tiene perfil se cierra la sesión recién abierta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son requeridos", domain.ErrInvalidInput)
	}
	sess, err := uc.idp.SignIn(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		_ = uc.idp.SignOut(ctx, sess.AccessToken)
		if user == nil {
			return nil, domain.ErrUserNotLinked
		}
		return nil, domain.ErrInactiveUser
	}
	return &dto.LoginResponse{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		TokenType:    sess.TokenType,
		ExpiresIn:    sess.ExpiresIn,
		User:         *toUserResponse(user),
	}, nil
}

// Logout revoca la sesión en el proveedor.
func (uc *AuthUseCase) Logout(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return domain.ErrUnauthorized
	}
	return uc.idp.SignOut(ctx, accessToken)
}

// ResolveActor carga el perfil del usuario del token; lo usa el middleware en cada petición.
func (uc *AuthUseCase) ResolveActor(ctx context.Context, userID string) (entity.Actor, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return entity.Actor{}, err
	}
	if user == nil {
		return entity.Actor{}, domain.ErrUserNotLinked
	}
	if !user.Active {
		return entity.Actor{}, domain.ErrInactiveUser
	}
	return entity.NewActor(user), nil
}

// Me devuelve el perfil del actor autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, actor entity.Actor) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotLinked
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.AppUser) *dto.UserResponse {
	return &dto.UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		Role:      u.Role,
		VitrineID: u.VitrineID,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
