package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `user_id::text, email, role, vitrine_id, active, created_at`

// UserRepo implementación de UserRepository sobre app_users.
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

func scanUser(row pgx.Row) (*entity.AppUser, error) {
	var (
		u         entity.AppUser
		vitrineID *string
	)
	if err := row.Scan(&u.UserID, &u.Email, &u.Role, &vitrineID, &u.Active, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.VitrineID = derefString(vitrineID)
	return &u, nil
}

// GetByID devuelve (nil, nil) si el usuario no tiene perfil en app_users.
func (r *UserRepo) GetByID(ctx context.Context, userID string) (*entity.AppUser, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM app_users WHERE user_id::text = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get app_user: %w", err)
	}
	return u, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.AppUser, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM app_users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list app_users: %w", err)
	}
	defer rows.Close()
	var list []*entity.AppUser
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan app_user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// UpdateAccess actualiza rol, vitrina asignada y estado activo.
func (r *UserRepo) UpdateAccess(ctx context.Context, u *entity.AppUser) error {
	const query = `
		UPDATE app_users SET role = $2, vitrine_id = $3, active = $4
		WHERE user_id::text = $1`
	cmd, err := r.q.Exec(ctx, query, u.UserID, u.Role, nullableString(u.VitrineID), u.Active)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update app_user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
