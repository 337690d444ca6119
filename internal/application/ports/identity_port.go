package ports

import (
	"context"

	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
)

// IdentityProvider puerto de salida hacia el proveedor de identidad (Supabase Auth).
// Las contraseñas nunca se verifican localmente: solo se reenvían al proveedor.
type IdentityProvider interface {
	// SignIn devuelve domain.ErrUnauthorized si las credenciales son incorrectas.
	SignIn(ctx context.Context, email, password string) (*dto.AuthSession, error)
	// SignOut revoca la sesión asociada al access token.
	SignOut(ctx context.Context, accessToken string) error
}

// RefillPDFRenderer genera el PDF de la lista de reposición.
type RefillPDFRenderer interface {
	RenderRefillList(ctx context.Context, list *dto.RefillListResponse) ([]byte, error)
}
