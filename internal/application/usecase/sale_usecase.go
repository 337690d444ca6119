package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// SaleUseCase registro y consulta de ventas.
type SaleUseCase struct {
	tx          SaleTxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx SaleTxRunner, saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{tx: tx, saleRepo: saleRepo, productRepo: productRepo}
}

// RecordSale registra una venta confirmada en la vitrina del vendedor.
// El precio por unidad es el standard_price del producto (0 si no tiene) leído en la misma transacción.
func (uc *SaleUseCase) RecordSale(ctx context.Context, actor entity.Actor, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if !actor.IsSeller() {
		return nil, domain.ErrForbidden
	}
	if !actor.HasVitrine() {
		return nil, domain.ErrNoCaseAssigned
	}
	vitrineID := strings.TrimSpace(in.VitrineID)
	if vitrineID != "" && vitrineID != actor.VitrineID {
		return nil, fmt.Errorf("%w: solo puede vender en su propia vitrina", domain.ErrForbidden)
	}
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id es requerido", domain.ErrInvalidInput)
	}
	if in.Qty < 1 {
		return nil, fmt.Errorf("%w: qty debe ser al menos 1", domain.ErrInvalidInput)
	}

	var (
		sale        *entity.Sale
		productName string
	)
	err := uc.tx.RunSale(ctx, func(products repository.ProductRepository, sales repository.SaleRepository) error {
		product, err := products.GetByIDForShare(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		price := product.Price()
		s := &entity.Sale{
			VitrineID:    actor.VitrineID,
			ProductID:    product.ID,
			Qty:          in.Qty,
			PricePerItem: price,
			Revenue:      price.Mul(decimal.NewFromInt(in.Qty)),
			Status:       entity.SaleStatusConfirmed,
		}
		if err := sales.Create(ctx, s); err != nil {
			return err
		}
		sale, productName = s, product.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := toSaleResponse(sale, productName)
	return &out, nil
}

// RecentForSeller últimas dto.SellerSalesLimit ventas de la vitrina del actor.
func (uc *SaleUseCase) RecentForSeller(ctx context.Context, actor entity.Actor) (*dto.SaleListResponse, error) {
	if !actor.HasVitrine() {
		return nil, domain.ErrNoCaseAssigned
	}
	sales, err := uc.saleRepo.ListByVitrine(ctx, actor.VitrineID, dto.SellerSalesLimit)
	if err != nil {
		return nil, err
	}
	return uc.toList(ctx, sales, dto.SellerSalesLimit)
}

// ListAll últimas ventas de toda la red (admin). limit <= 0 usa dto.DefaultSalesLimit.
func (uc *SaleUseCase) ListAll(ctx context.Context, actor entity.Actor, limit int) (*dto.SaleListResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	limit = dto.ClampLimit(limit, dto.DefaultSalesLimit, dto.MaxSalesLimit)
	sales, err := uc.saleRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return uc.toList(ctx, sales, limit)
}

func (uc *SaleUseCase) toList(ctx context.Context, sales []*entity.Sale, limit int) (*dto.SaleListResponse, error) {
	names := map[string]string{}
	if len(sales) > 0 {
		products, err := uc.productRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range products {
			names[p.ID] = p.Name
		}
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, toSaleResponse(s, names[s.ProductID]))
	}
	return &dto.SaleListResponse{Items: items, Limit: limit}, nil
}

func toSaleResponse(s *entity.Sale, productName string) dto.SaleResponse {
	return dto.SaleResponse{
		ID:           s.ID,
		VitrineID:    s.VitrineID,
		ProductID:    s.ProductID,
		ProductName:  productName,
		Qty:          s.Qty,
		PricePerItem: s.PricePerItem,
		Revenue:      s.Revenue,
		Status:       s.Status,
		SoldAt:       s.SoldAt,
	}
}
