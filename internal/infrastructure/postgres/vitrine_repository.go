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

var _ repository.VitrineRepository = (*VitrineRepo)(nil)

const vitrineColumns = `vitrine_id, location_name, COALESCE(city, ''), status, notes`

// VitrineRepo implementación de VitrineRepository sobre la tabla vitrines.
type VitrineRepo struct {
	q Querier
}

// NewVitrineRepository construye el adaptador. Acepta pool o tx (Querier).
func NewVitrineRepository(q Querier) *VitrineRepo {
	return &VitrineRepo{q: q}
}

func scanVitrine(row pgx.Row) (*entity.Vitrine, error) {
	var (
		v     entity.Vitrine
		notes *string
	)
	if err := row.Scan(&v.ID, &v.LocationName, &v.City, &v.Status, &notes); err != nil {
		return nil, err
	}
	v.Notes = derefString(notes)
	return &v, nil
}

// List devuelve todas las vitrinas ordenadas por ID.
func (r *VitrineRepo) List(ctx context.Context) ([]*entity.Vitrine, error) {
	rows, err := r.q.Query(ctx, `SELECT `+vitrineColumns+` FROM vitrines ORDER BY vitrine_id`)
	if err != nil {
		return nil, fmt.Errorf("list vitrines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vitrine
	for rows.Next() {
		v, err := scanVitrine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vitrine: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// GetByID obtiene una vitrina; devuelve (nil, nil) si no existe.
func (r *VitrineRepo) GetByID(ctx context.Context, id string) (*entity.Vitrine, error) {
	v, err := scanVitrine(r.q.QueryRow(ctx, `SELECT `+vitrineColumns+` FROM vitrines WHERE vitrine_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vitrine: %w", err)
	}
	return v, nil
}

// Create persiste una nueva vitrina.
func (r *VitrineRepo) Create(ctx context.Context, v *entity.Vitrine) error {
	const query = `
		INSERT INTO vitrines (vitrine_id, location_name, city, status, notes)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, v.ID, v.LocationName, v.City, v.Status, nullableString(v.Notes))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vitrine: %w", err)
	}
	return nil
}

// Update actualiza una vitrina existente; ErrNotFound si no hay fila.
func (r *VitrineRepo) Update(ctx context.Context, v *entity.Vitrine) error {
	const query = `
		UPDATE vitrines SET location_name = $2, city = $3, status = $4, notes = $5
		WHERE vitrine_id = $1`
	cmd, err := r.q.Exec(ctx, query, v.ID, v.LocationName, v.City, v.Status, nullableString(v.Notes))
	if err != nil {
		return fmt.Errorf("update vitrine: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
