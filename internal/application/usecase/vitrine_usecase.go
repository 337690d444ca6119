package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
)

// VitrineUseCase administración de vitrinas (solo admin).
type VitrineUseCase struct {
	repo repository.VitrineRepository
}

func NewVitrineUseCase(repo repository.VitrineRepository) *VitrineUseCase {
	return &VitrineUseCase{repo: repo}
}

func (uc *VitrineUseCase) List(ctx context.Context, actor entity.Actor) ([]dto.VitrineResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VitrineResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toVitrineResponse(v))
	}
	return out, nil
}

func (uc *VitrineUseCase) GetByID(ctx context.Context, actor entity.Actor, id string) (*dto.VitrineResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	out := toVitrineResponse(v)
	return &out, nil
}

// Create crea una vitrina; ID vacío genera un UUID y Status vacío equivale a active.
func (uc *VitrineUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateVitrineRequest) (*dto.VitrineResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	v := &entity.Vitrine{
		ID:           strings.TrimSpace(in.ID),
		LocationName: strings.TrimSpace(in.LocationName),
		City:         strings.TrimSpace(in.City),
		Status:       strings.TrimSpace(in.Status),
		Notes:        in.Notes,
	}
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.Status == "" {
		v.Status = entity.VitrineStatusActive
	}
	if err := validateVitrine(v); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	out := toVitrineResponse(v)
	return &out, nil
}

func (uc *VitrineUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateVitrineRequest) (*dto.VitrineResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	v := &entity.Vitrine{
		ID:           id,
		LocationName: strings.TrimSpace(in.LocationName),
		City:         strings.TrimSpace(in.City),
		Status:       strings.TrimSpace(in.Status),
		Notes:        in.Notes,
	}
	if err := validateVitrine(v); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	out := toVitrineResponse(v)
	return &out, nil
}

func validateVitrine(v *entity.Vitrine) error {
	if v.LocationName == "" {
		return fmt.Errorf("%w: location_name es requerido", domain.ErrInvalidInput)
	}
	if v.Status != entity.VitrineStatusActive && v.Status != entity.VitrineStatusInactive {
		return fmt.Errorf("%w: status debe ser active o inactive", domain.ErrInvalidInput)
	}
	return nil
}

func toVitrineResponse(v *entity.Vitrine) dto.VitrineResponse {
	return dto.VitrineResponse{
		ID:           v.ID,
		LocationName: v.LocationName,
		City:         v.City,
		Status:       v.Status,
		Notes:        v.Notes,
	}
}
