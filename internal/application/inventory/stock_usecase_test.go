package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/application/inventory"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/jhoicas/Vitrinas-api/internal/domain/stock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeStock struct {
	current  []stock.RawRow
	traffic  []stock.RawRow
	err      error
	lastCase string
}

func (f *fakeStock) ListCurrent(context.Context) ([]stock.RawRow, error) {
	return f.current, f.err
}

func (f *fakeStock) ListTrafficLight(_ context.Context, vitrineID string) ([]stock.RawRow, error) {
	f.lastCase = vitrineID
	if vitrineID == "" {
		return f.traffic, f.err
	}
	var out []stock.RawRow
	for _, r := range f.traffic {
		if *r.VitrineID == vitrineID {
			out = append(out, r)
		}
	}
	return out, f.err
}

type fakeVitrines struct{ list []*entity.Vitrine }

func (f *fakeVitrines) List(context.Context) ([]*entity.Vitrine, error) { return f.list, nil }
func (f *fakeVitrines) GetByID(_ context.Context, id string) (*entity.Vitrine, error) {
	for _, v := range f.list {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}
func (f *fakeVitrines) Create(context.Context, *entity.Vitrine) error { return nil }
func (f *fakeVitrines) Update(context.Context, *entity.Vitrine) error { return nil }

type fakeProducts struct{ list []*entity.Product }

func (f *fakeProducts) List(context.Context) ([]*entity.Product, error) { return f.list, nil }
func (f *fakeProducts) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProducts) GetByIDForShare(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProducts) Create(context.Context, *entity.Product) error { return nil }
func (f *fakeProducts) Update(context.Context, *entity.Product) error { return nil }
func (f *fakeProducts) Delete(context.Context, string) error          { return nil }

type fakeSummary struct {
	rows  []*entity.MonthlySummary
	limit int
}

func (f *fakeSummary) ListMonthly(_ context.Context, limit int) ([]*entity.MonthlySummary, error) {
	f.limit = limit
	return f.rows, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func s(v string) *string { return &v }

func raw(caseID, productID string, qty, threshold int64, ampel string) stock.RawRow {
	return stock.RawRow{
		VitrineID: s(caseID),
		ProductID: s(productID),
		StockQty:  decimal.NewNullDecimal(decimal.NewFromInt(qty)),
		MinStock:  decimal.NewNullDecimal(decimal.NewFromInt(threshold)),
		Ampel:     s(ampel),
	}
}

var (
	admin  = entity.Actor{UserID: "u-admin", Role: entity.RoleAdmin}
	seller = entity.Actor{UserID: "u-seller", Role: entity.RoleSeller, VitrineID: "V1"}
)

type fixture struct {
	stock   *fakeStock
	summary *fakeSummary
	uc      *inventory.StockUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	st := &fakeStock{
		traffic: []stock.RawRow{
			raw("V1", "P1", 10, 3, "grün"),
			raw("V1", "P2", 0, 3, "rot"),
			raw("V2", "P1", 2, 3, "gelb"),
			raw("V2", "P2", 5, 3, "grün"),
		},
		current: []stock.RawRow{
			{VitrineID: s("V1"), ProductID: s("P1"), StockQty: decimal.NewNullDecimal(decimal.NewFromInt(10))},
			{VitrineID: s("V1"), ProductID: s("P2")},
		},
	}
	vitrines := &fakeVitrines{list: []*entity.Vitrine{
		{ID: "V1", LocationName: "Bahnhof", Status: entity.VitrineStatusActive},
		{ID: "V2", LocationName: "Markt", Status: entity.VitrineStatusInactive},
	}}
	products := &fakeProducts{list: []*entity.Product{{ID: "P1", Name: "Ring"}, {ID: "P2", Name: "Kette"}}}
	summary := &fakeSummary{rows: []*entity.MonthlySummary{
		{BillingMonth: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), RevenueSum: decimal.RequireFromString("100.50")},
		{BillingMonth: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), RevenueSum: decimal.RequireFromString("20")},
	}}
	classifier, err := stock.NewClassifier(stock.DefaultPolicy())
	require.NoError(t, err)
	return fixture{
		stock:   st,
		summary: summary,
		uc:      inventory.NewStockUseCase(st, vitrines, products, summary, classifier),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSellerDashboard_SoloSuVitrina(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.SellerDashboard(context.Background(), seller)
	require.NoError(t, err)

	assert.Equal(t, "V1", f.stock.lastCase)
	assert.Equal(t, "Bahnhof", out.Vitrine.LocationName)
	assert.Equal(t, dto.StockSummary{TotalStock: 10, Critical: 1, Warnings: 0, OK: 1, Rows: 2}, out.Summary)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Ring", out.Items[0].ProductName)
	assert.Equal(t, "ok", out.Items[0].Status)
	assert.Equal(t, "critical", out.Items[1].Status)
}

func TestSellerDashboard_SinVitrina(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.SellerDashboard(context.Background(), entity.Actor{UserID: "x", Role: entity.RoleSeller})
	assert.ErrorIs(t, err, domain.ErrNoCaseAssigned)
}

func TestFleetDashboard_Totales(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.FleetDashboard(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, int64(10), out.TotalStock, "el total sale de v_stock_current, no del semáforo")
	assert.Equal(t, 1, out.ActiveVitrines)
	assert.Equal(t, 2, out.TotalVitrines)
	assert.Equal(t, 1, out.CriticalCount)
	assert.Equal(t, 1, out.WarningCount)
	assert.True(t, out.RevenueSum.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, dto.MonthlyRowsLimit, f.summary.limit)

	require.Len(t, out.NeedsRefill, 2)
	assert.Equal(t, "critical", out.NeedsRefill[0].Status)
	assert.Equal(t, "Bahnhof", out.NeedsRefill[0].LocationName)
	assert.Equal(t, "low", out.NeedsRefill[1].Status)
	assert.Equal(t, "V2", out.NeedsRefill[1].VitrineID)
}

func TestFleetDashboard_TotalIncluyeFilasFueraDelSemaforo(t *testing.T) {
	f := newFixture(t)
	f.stock.current = append(f.stock.current,
		stock.RawRow{VitrineID: s("V2"), ProductID: s("P3"), StockQty: decimal.NewNullDecimal(decimal.NewFromInt(7))})

	out, err := f.uc.FleetDashboard(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, int64(17), out.TotalStock)
	assert.Equal(t, 1, out.CriticalCount, "los conteos siguen saliendo del semáforo")
}

func TestFleetDashboard_SellerProhibido(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.FleetDashboard(context.Background(), seller)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCurrentStock_SinUmbralSoloCritico(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.CurrentStock(context.Background(), admin)
	require.NoError(t, err)

	require.Len(t, out.Items, 2)
	assert.Equal(t, "ok", out.Items[0].Status)
	assert.Equal(t, "critical", out.Items[1].Status, "stock_qty NULL cuenta como 0")
	assert.Equal(t, int64(10), out.Summary.TotalStock)
	assert.Equal(t, 0, out.Summary.Warnings)
}

func TestRefillList_OrdenYAgregadosPorVitrina(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.RefillList(context.Background(), admin, "")
	require.NoError(t, err)

	statuses := make([]string, 0, len(out.Items))
	for _, it := range out.Items {
		statuses = append(statuses, it.Status)
	}
	assert.Equal(t, []string{"critical", "low", "ok", "ok"}, statuses)

	require.Len(t, out.Cases, 2)
	assert.Equal(t, "V1", out.Cases[0].VitrineID)
	assert.Equal(t, "Bahnhof", out.Cases[0].LocationName)
	assert.Equal(t, 1, out.Cases[0].Summary.Critical)
	assert.Equal(t, 1, out.Cases[1].Summary.Warnings)
	assert.Equal(t, 4, out.Summary.Rows)
}

func TestRefillList_FiltroPorVitrina(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.RefillList(context.Background(), admin, "V2")
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, "V2", f.stock.lastCase)

	_, err = f.uc.RefillList(context.Background(), admin, "V404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStock_FilaInvalidaEsErrorDeBackend(t *testing.T) {
	f := newFixture(t)
	f.stock.traffic = append(f.stock.traffic, raw("V1", "P3", -1, 3, ""))

	_, err := f.uc.RefillList(context.Background(), admin, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStockData)
	assert.False(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestStock_ErrorDeRepositorio(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("db caída")
	f.stock.err = boom

	_, err := f.uc.FleetDashboard(context.Background(), admin)
	assert.ErrorIs(t, err, boom)
}

// ── PDF ──────────────────────────────────────────────────────────────────────

type fakeRenderer struct {
	got *dto.RefillListResponse
}

func (r *fakeRenderer) RenderRefillList(_ context.Context, list *dto.RefillListResponse) ([]byte, error) {
	r.got = list
	return []byte("%PDF-fake"), nil
}

func TestRefillPDF_NombreDeArchivo(t *testing.T) {
	f := newFixture(t)
	r := &fakeRenderer{}
	uc := inventory.NewRefillPDFUseCase(f.uc, r)

	doc, name, err := uc.Download(context.Background(), admin, "V1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), doc)
	assert.Regexp(t, `^auffuellliste-\d{4}-\d{2}-\d{2}-V1\.pdf$`, name)
	require.NotNil(t, r.got)
	assert.Equal(t, "V1", r.got.VitrineID)

	_, _, err = uc.Download(context.Background(), seller, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
