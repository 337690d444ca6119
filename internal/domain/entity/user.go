package entity

import "time"

// Roles válidos para AppUser.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// AppUser es el perfil de aplicación de una identidad del proveedor de autenticación (tabla app_users).
// UserID coincide con el "sub" del token de acceso.
type AppUser struct {
	UserID    string
	Email     string
	Role      string // admin, seller
	VitrineID string // vacío = sin vitrina asignada
	Active    bool
	CreatedAt time.Time
}

// ValidRole indica si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSeller
}
