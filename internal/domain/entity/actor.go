package entity

// Actor es el usuario autenticado de la petición en curso.
// Se resuelve por petición en el middleware y se pasa explícitamente a los casos de uso.
type Actor struct {
	UserID    string
	Email     string
	Role      string
	VitrineID string
}

// NewActor construye el actor a partir del perfil de aplicación.
func NewActor(u *AppUser) Actor {
	return Actor{
		UserID:    u.UserID,
		Email:     u.Email,
		Role:      u.Role,
		VitrineID: u.VitrineID,
	}
}

// IsAdmin indica si el actor tiene rol admin.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// IsSeller indica si el actor tiene rol seller.
func (a Actor) IsSeller() bool { return a.Role == RoleSeller }

// HasVitrine indica si el actor tiene una vitrina asignada.
func (a Actor) HasVitrine() bool { return a.VitrineID != "" }
