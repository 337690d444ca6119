package usecase_test

import (
	"context"
	"testing"

	"github.com/jhoicas/Vitrinas-api/internal/application/dto"
	"github.com/jhoicas/Vitrinas-api/internal/application/usecase"
	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleUC(products ...*entity.Product) (*usecase.SaleUseCase, *fakeTx) {
	prods := newFakeProducts(products...)
	sales := &fakeSales{}
	tx := &fakeTx{products: prods, sales: sales}
	return usecase.NewSaleUseCase(tx, sales, prods), tx
}

func ring() *entity.Product {
	return &entity.Product{ID: "P1", Name: "Ring", StandardPrice: decimal.NewNullDecimal(decimal.RequireFromString("12.50"))}
}

func TestRecordSale_PrecioEstandarPorCantidad(t *testing.T) {
	uc, tx := newSaleUC(ring())

	out, err := uc.RecordSale(context.Background(), seller, dto.RecordSaleRequest{ProductID: "P1", Qty: 3})
	require.NoError(t, err)

	assert.Equal(t, "V1", out.VitrineID)
	assert.Equal(t, "Ring", out.ProductName)
	assert.True(t, out.PricePerItem.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, out.Revenue.Equal(decimal.RequireFromString("37.50")))
	assert.Equal(t, entity.SaleStatusConfirmed, out.Status)
	assert.Equal(t, "sale-1", out.ID)
	assert.Equal(t, 1, tx.products.forShare, "el precio se lee con FOR SHARE dentro de la tx")
	require.Len(t, tx.sales.created, 1)
}

func TestRecordSale_SinPrecioEsCero(t *testing.T) {
	uc, _ := newSaleUC(&entity.Product{ID: "P2", Name: "Kette"})

	out, err := uc.RecordSale(context.Background(), seller, dto.RecordSaleRequest{ProductID: "P2", Qty: 2})
	require.NoError(t, err)
	assert.True(t, out.PricePerItem.IsZero())
	assert.True(t, out.Revenue.IsZero())
}

func TestRecordSale_OtraVitrinaProhibida(t *testing.T) {
	uc, tx := newSaleUC(ring())

	_, err := uc.RecordSale(context.Background(), seller, dto.RecordSaleRequest{VitrineID: "V2", ProductID: "P1", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 0, tx.calls)
}

func TestRecordSale_Validaciones(t *testing.T) {
	uc, _ := newSaleUC(ring())
	ctx := context.Background()

	_, err := uc.RecordSale(ctx, seller, dto.RecordSaleRequest{ProductID: "P1", Qty: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordSale(ctx, seller, dto.RecordSaleRequest{ProductID: " ", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordSale(ctx, admin, dto.RecordSaleRequest{ProductID: "P1", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	noCase := entity.Actor{UserID: "u2", Role: entity.RoleSeller}
	_, err = uc.RecordSale(ctx, noCase, dto.RecordSaleRequest{ProductID: "P1", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrNoCaseAssigned)
}

func TestRecordSale_ProductoInexistenteHaceRollback(t *testing.T) {
	uc, tx := newSaleUC(ring())

	_, err := uc.RecordSale(context.Background(), seller, dto.RecordSaleRequest{ProductID: "NOPE", Qty: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, tx.rolledBack)
	assert.Empty(t, tx.sales.created)
}

func TestRecentForSeller_UltimasDiezDeSuVitrina(t *testing.T) {
	uc, tx := newSaleUC(ring())
	tx.sales.stored = []*entity.Sale{
		{ID: "s1", VitrineID: "V1", ProductID: "P1", Qty: 1},
		{ID: "s2", VitrineID: "V2", ProductID: "P1", Qty: 1},
	}

	out, err := uc.RecentForSeller(context.Background(), seller)
	require.NoError(t, err)
	assert.Equal(t, "V1", tx.sales.byCase)
	assert.Equal(t, dto.SellerSalesLimit, tx.sales.limit)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Ring", out.Items[0].ProductName)
}

func TestListAll_SoloAdminYLimitePorDefecto(t *testing.T) {
	uc, tx := newSaleUC(ring())

	_, err := uc.ListAll(context.Background(), seller, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.ListAll(context.Background(), admin, 0)
	require.NoError(t, err)
	assert.Equal(t, dto.DefaultSalesLimit, tx.sales.limit)
	assert.Equal(t, dto.DefaultSalesLimit, out.Limit)
	assert.Empty(t, out.Items)

	_, err = uc.ListAll(context.Background(), admin, 100000)
	require.NoError(t, err)
	assert.Equal(t, dto.MaxSalesLimit, tx.sales.limit)
}
