package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
	"github.com/jhoicas/Vitrinas-api/internal/domain/stock"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// StockUseCase lecturas de stock clasificadas con el semáforo para vendedores y administradores.
type StockUseCase struct {
	stockRepo   repository.StockRepository
	vitrineRepo repository.VitrineRepository
	productRepo repository.ProductRepository
	summaryRepo repository.SummaryRepository
	classifier  *stock.Classifier
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	stockRepo repository.StockRepository,
	vitrineRepo repository.VitrineRepository,
	productRepo repository.ProductRepository,
	summaryRepo repository.SummaryRepository,
	classifier *stock.Classifier,
) *StockUseCase {
	return &StockUseCase{
		stockRepo:   stockRepo,
		vitrineRepo: vitrineRepo,
		productRepo: productRepo,
		summaryRepo: summaryRepo,
		classifier:  classifier,
	}
}

// catalog nombres para enriquecer las filas.
type catalog struct {
	vitrines map[string]*entity.Vitrine
	products map[string]string
}

func (c catalog) row(cs stock.ClassifiedStock) dto.StockRowResponse {
	out := dto.StockRowResponse{
		VitrineID:      cs.CaseID,
		ProductID:      cs.ProductID,
		ProductName:    c.products[cs.ProductID],
		StockQty:       cs.QuantityOnHand,
		MinStock:       cs.MinimumThreshold,
		TargetStock:    cs.TargetStock,
		Status:         string(cs.Status),
		UpstreamStatus: cs.UpstreamStatus,
	}
	if v := c.vitrines[cs.CaseID]; v != nil {
		out.LocationName = v.LocationName
	}
	return out
}

func (c catalog) rows(classified []stock.ClassifiedStock) []dto.StockRowResponse {
	out := make([]dto.StockRowResponse, 0, len(classified))
	for _, cs := range classified {
		out = append(out, c.row(cs))
	}
	return out
}

func newCatalog(vitrines []*entity.Vitrine, products []*entity.Product) catalog {
	c := catalog{
		vitrines: make(map[string]*entity.Vitrine, len(vitrines)),
		products: make(map[string]string, len(products)),
	}
	for _, v := range vitrines {
		c.vitrines[v.ID] = v
	}
	for _, p := range products {
		c.products[p.ID] = p.Name
	}
	return c
}

func toSummary(a stock.Aggregate) dto.StockSummary {
	return dto.StockSummary{
		TotalStock: a.TotalQuantity,
		Critical:   a.CriticalCount,
		Warnings:   a.LowCount,
		OK:         a.OkCount,
		Rows:       a.Rows(),
	}
}

// classify parsea y clasifica las filas crudas. Un dato inválido es un error del backend, no del cliente.
func (uc *StockUseCase) classify(raw []stock.RawRow) ([]stock.ClassifiedStock, error) {
	records, err := stock.ParseRows(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidStockData, err)
	}
	classified, err := uc.classifier.ClassifyAll(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidStockData, err)
	}
	return classified, nil
}

func requireAdmin(actor entity.Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// SellerDashboard stock de la vitrina asignada al actor (nunca de otra).
func (uc *StockUseCase) SellerDashboard(ctx context.Context, actor entity.Actor) (*dto.SellerDashboardResponse, error) {
	if !actor.HasVitrine() {
		return nil, domain.ErrNoCaseAssigned
	}

	var (
		vitrine  *entity.Vitrine
		raw      []stock.RawRow
		products []*entity.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		vitrine, err = uc.vitrineRepo.GetByID(gctx, actor.VitrineID)
		return err
	})
	g.Go(func() (err error) {
		raw, err = uc.stockRepo.ListTrafficLight(gctx, actor.VitrineID)
		return err
	})
	g.Go(func() (err error) {
		products, err = uc.productRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if vitrine == nil {
		return nil, domain.ErrNotFound
	}

	classified, err := uc.classify(raw)
	if err != nil {
		return nil, err
	}
	cat := newCatalog([]*entity.Vitrine{vitrine}, products)
	return &dto.SellerDashboardResponse{
		Vitrine: toVitrineResponse(vitrine),
		Summary: toSummary(stock.Summarize(classified)),
		Items:   cat.rows(classified),
	}, nil
}

// FleetDashboard resumen de toda la red para el administrador.
// TotalStock sale de v_stock_current; los conteos de semáforo y NeedsRefill de v_stock_traffic_light.
// RevenueSum suma las últimas dto.MonthlyRowsLimit filas de v_monthly_summary.
func (uc *StockUseCase) FleetDashboard(ctx context.Context, actor entity.Actor) (*dto.FleetDashboardResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var (
		raw      []stock.RawRow
		current  []stock.RawRow
		vitrines []*entity.Vitrine
		products []*entity.Product
		monthly  []*entity.MonthlySummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		raw, err = uc.stockRepo.ListTrafficLight(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		current, err = uc.stockRepo.ListCurrent(gctx)
		return err
	})
	g.Go(func() (err error) {
		vitrines, err = uc.vitrineRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = uc.productRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		monthly, err = uc.summaryRepo.ListMonthly(gctx, dto.MonthlyRowsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	classified, err := uc.classify(raw)
	if err != nil {
		return nil, err
	}
	agg := stock.Summarize(classified)
	currentClassified, err := uc.classify(current)
	if err != nil {
		return nil, err
	}
	cat := newCatalog(vitrines, products)

	active := 0
	for _, v := range vitrines {
		if v.IsActive() {
			active++
		}
	}
	revenue := decimal.Zero
	months := make([]dto.MonthlySummaryResponse, 0, len(monthly))
	for _, m := range monthly {
		revenue = revenue.Add(m.RevenueSum)
		months = append(months, dto.MonthlySummaryResponse{
			BillingMonth: m.BillingMonth,
			VitrineID:    m.VitrineID,
			QtySum:       m.QtySum,
			RevenueSum:   m.RevenueSum,
		})
	}

	return &dto.FleetDashboardResponse{
		TotalStock:     stock.Summarize(currentClassified).TotalQuantity,
		ActiveVitrines: active,
		TotalVitrines:  len(vitrines),
		CriticalCount:  agg.CriticalCount,
		WarningCount:   agg.LowCount,
		RevenueSum:     revenue,
		Monthly:        months,
		NeedsRefill:    cat.rows(stock.NeedsRefill(classified)),
	}, nil
}

// CurrentStock listado de v_stock_current. La vista no trae umbral: solo se distingue critical de ok.
func (uc *StockUseCase) CurrentStock(ctx context.Context, actor entity.Actor) (*dto.CurrentStockResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var (
		raw      []stock.RawRow
		vitrines []*entity.Vitrine
		products []*entity.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		raw, err = uc.stockRepo.ListCurrent(gctx)
		return err
	})
	g.Go(func() (err error) {
		vitrines, err = uc.vitrineRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = uc.productRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	classified, err := uc.classify(raw)
	if err != nil {
		return nil, err
	}
	cat := newCatalog(vitrines, products)
	return &dto.CurrentStockResponse{
		Items:   cat.rows(classified),
		Summary: toSummary(stock.Summarize(classified)),
	}, nil
}

// RefillList todas las filas del semáforo en orden de reposición (critical, low, ok).
// vitrineID vacío = toda la red.
func (uc *StockUseCase) RefillList(ctx context.Context, actor entity.Actor, vitrineID string) (*dto.RefillListResponse, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var (
		raw      []stock.RawRow
		vitrines []*entity.Vitrine
		products []*entity.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		raw, err = uc.stockRepo.ListTrafficLight(gctx, vitrineID)
		return err
	})
	g.Go(func() (err error) {
		vitrines, err = uc.vitrineRepo.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		products, err = uc.productRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat := newCatalog(vitrines, products)
	if vitrineID != "" && cat.vitrines[vitrineID] == nil {
		return nil, domain.ErrNotFound
	}

	classified, err := uc.classify(raw)
	if err != nil {
		return nil, err
	}
	byCase := stock.SummarizeByCase(classified)
	cases := make([]dto.CaseSummary, 0, len(byCase))
	for _, ca := range byCase {
		cs := dto.CaseSummary{VitrineID: ca.CaseID, Summary: toSummary(ca.Aggregate)}
		if v := cat.vitrines[ca.CaseID]; v != nil {
			cs.LocationName = v.LocationName
		}
		cases = append(cases, cs)
	}

	return &dto.RefillListResponse{
		VitrineID: vitrineID,
		Items:     cat.rows(stock.PrioritizedRefillOrder(classified)),
		Cases:     cases,
		Summary:   toSummary(stock.Summarize(classified)),
	}, nil
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
