// Package supabase adaptador del API de autenticación de Supabase (GoTrue).
// Solo reenvía credenciales y tokens; la verificación local de tokens vive en pkg/jwt.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/application/ports"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/pkg/config"
)

var _ ports.IdentityProvider = (*AuthClient)(nil)

// AuthClient cliente HTTP de GoTrue basado en fiber.Agent.
type AuthClient struct {
	baseURL string
	anonKey string
	timeout time.Duration
}

// NewAuthClient construye el cliente. Timeout cero usa 10 s.
func NewAuthClient(cfg config.SupabaseConfig) *AuthClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AuthClient{baseURL: cfg.URL, anonKey: cfg.AnonKey, timeout: timeout}
}

type passwordGrant struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// errorResponse GoTrue usa error/error_description (OAuth) o msg según la versión.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e errorResponse) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// SignIn POST /auth/v1/token?grant_type=password.
// 400/401 (credenciales incorrectas o email sin confirmar) se traduce a domain.ErrUnauthorized.
func (c *AuthClient) SignIn(ctx context.Context, email, password string) (*dto.AuthSession, error) {
	if c.baseURL == "" {
		return nil, errors.New("supabase: SUPABASE_URL no configurado")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := fiber.Post(c.baseURL + "/auth/v1/token?grant_type=password").
		Set("apikey", c.anonKey).
		Timeout(c.timeout).
		JSON(passwordGrant{Email: email, Password: password})

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("supabase: sign-in: %w", errors.Join(errs...))
	}
	switch {
	case code == fiber.StatusBadRequest || code == fiber.StatusUnauthorized:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, decodeError(body))
	case code != fiber.StatusOK:
		return nil, fmt.Errorf("supabase: sign-in HTTP %d: %s", code, decodeError(body))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("supabase: decodificar sesión: %w", err)
	}
	if tr.AccessToken == "" || tr.User.ID == "" {
		return nil, errors.New("supabase: respuesta de sesión incompleta")
	}
	return &dto.AuthSession{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		TokenType:    tr.TokenType,
		ExpiresIn:    tr.ExpiresIn,
		UserID:       tr.User.ID,
		Email:        tr.User.Email,
	}, nil
}

// SignOut POST /auth/v1/logout. Un token ya expirado (401) no es un error para el cliente.
func (c *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	if c.baseURL == "" {
		return errors.New("supabase: SUPABASE_URL no configurado")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	a := fiber.Post(c.baseURL+"/auth/v1/logout").
		Set("apikey", c.anonKey).
		Set(fiber.HeaderAuthorization, "Bearer "+accessToken).
		Timeout(c.timeout)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("supabase: sign-out: %w", errors.Join(errs...))
	}
	if code == fiber.StatusNoContent || code == fiber.StatusOK || code == fiber.StatusUnauthorized {
		return nil
	}
	return fmt.Errorf("supabase: sign-out HTTP %d: %s", code, decodeError(body))
}

func decodeError(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		if s := er.text(); s != "" {
			return s
		}
	}
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}
