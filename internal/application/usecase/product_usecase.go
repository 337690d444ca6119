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
	"github.com/shopspring/decimal"
)

// ProductUseCase catálogo: lectura para cualquier rol, escritura solo admin.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve el catálogo ordenado por nombre. Los vendedores lo necesitan para registrar ventas.
func (uc *ProductUseCase) List(ctx context.Context, _ entity.Actor) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Create crea un producto. ID vacío genera un UUID.
func (uc *ProductUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	p := &entity.Product{
		ID:                 strings.TrimSpace(in.ID),
		Name:               strings.TrimSpace(in.Name),
		SKU:                strings.TrimSpace(in.SKU),
		StandardPrice:      nullDecimal(in.StandardPrice),
		MinStockPerVitrine: in.MinStockPerVitrine,
		Notes:              in.Notes,
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Update reemplaza los campos editables de un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	p := &entity.Product{
		ID:                 id,
		Name:               strings.TrimSpace(in.Name),
		SKU:                strings.TrimSpace(in.SKU),
		StandardPrice:      nullDecimal(in.StandardPrice),
		MinStockPerVitrine: in.MinStockPerVitrine,
		Notes:              in.Notes,
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Delete elimina un producto; domain.ErrConflict si ya tiene ventas o stock.
func (uc *ProductUseCase) Delete(ctx context.Context, actor entity.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

func validateProduct(p *entity.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if p.StandardPrice.Valid && p.StandardPrice.Decimal.IsNegative() {
		return fmt.Errorf("%w: standard_price no puede ser negativo", domain.ErrInvalidInput)
	}
	if p.MinStockPerVitrine != nil && *p.MinStockPerVitrine < 0 {
		return fmt.Errorf("%w: min_stock_per_vitrine no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	out := dto.ProductResponse{
		ID:                 p.ID,
		Name:               p.Name,
		SKU:                p.SKU,
		MinStockPerVitrine: p.MinStockPerVitrine,
		Notes:              p.Notes,
	}
	if p.StandardPrice.Valid {
		price := p.StandardPrice.Decimal
		out.StandardPrice = &price
	}
	return out
}
