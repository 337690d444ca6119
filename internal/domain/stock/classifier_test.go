package stock_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/stock"
)

func ptr(n int64) *int64 { return &n }

func rec(caseID, productID string, qty int64, threshold *int64) stock.Record {
	return stock.Record{CaseID: caseID, ProductID: productID, QuantityOnHand: qty, MinimumThreshold: threshold}
}

func defaultClassifier(t *testing.T) *stock.Classifier {
	t.Helper()
	c, err := stock.NewClassifier(stock.DefaultPolicy())
	require.NoError(t, err)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Classify
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_CeroEsCriticoSinImportarUmbral(t *testing.T) {
	c := defaultClassifier(t)
	for _, th := range []*int64{nil, ptr(0), ptr(1), ptr(5), ptr(1000)} {
		got, err := c.Classify(rec("V1", "P1", 0, th))
		require.NoError(t, err)
		assert.Equal(t, stock.StatusCritical, got.Status, "qty 0 debe ser critical (min=%v)", th)
	}
}

func TestClassify_EntreCeroYUmbralEsLow(t *testing.T) {
	c := defaultClassifier(t)
	for qty := int64(1); qty <= 5; qty++ {
		got, err := c.Classify(rec("V1", "P1", qty, ptr(5)))
		require.NoError(t, err)
		assert.Equal(t, stock.StatusLow, got.Status, "qty %d con min 5 debe ser low", qty)
	}
}

func TestClassify_SobreUmbralEsOK(t *testing.T) {
	c := defaultClassifier(t)
	for _, qty := range []int64{6, 7, 50} {
		got, err := c.Classify(rec("V1", "P1", qty, ptr(5)))
		require.NoError(t, err)
		assert.Equal(t, stock.StatusOK, got.Status)
	}
}

func TestClassify_SinUmbralNuncaEsLow(t *testing.T) {
	c := defaultClassifier(t)
	got, err := c.Classify(rec("V1", "P1", 1, nil))
	require.NoError(t, err)
	assert.Equal(t, stock.StatusOK, got.Status)
	assert.Equal(t, int64(0), got.Threshold())
	assert.Nil(t, got.MinimumThreshold)
}

func TestClassify_CantidadNegativa_ValidationError(t *testing.T) {
	c := defaultClassifier(t)
	_, err := c.Classify(rec("V1", "P1", -1, ptr(5)))
	require.Error(t, err)

	var ve *stock.ValidationError
	require.True(t, errors.As(err, &ve), "debe ser *stock.ValidationError")
	assert.Equal(t, "quantity_on_hand", ve.Field)
	assert.Equal(t, -1, ve.Index)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClassify_ConservaCamposDeOrigen(t *testing.T) {
	c := defaultClassifier(t)
	target := decimal.NewFromInt(12)
	in := stock.Record{
		CaseID: "V9", ProductID: "P3", QuantityOnHand: 4,
		MinimumThreshold: ptr(2), TargetStock: &target, UpstreamStatus: "grün",
	}
	got, err := c.Classify(in)
	require.NoError(t, err)
	assert.Equal(t, in, got.Record)
}

func TestClassify_PoliticaCriticalAtOrBelow(t *testing.T) {
	c, err := stock.NewClassifier(stock.Policy{CriticalAtOrBelow: 2})
	require.NoError(t, err)

	got, _ := c.Classify(rec("V1", "P1", 2, ptr(5)))
	assert.Equal(t, stock.StatusCritical, got.Status)
	got, _ = c.Classify(rec("V1", "P1", 3, ptr(5)))
	assert.Equal(t, stock.StatusLow, got.Status)
}

func TestClassify_PoliticaCriticalRatio(t *testing.T) {
	c, err := stock.NewClassifier(stock.Policy{CriticalRatio: decimal.RequireFromString("0.5")})
	require.NoError(t, err)

	got, _ := c.Classify(rec("V1", "P1", 5, ptr(10)))
	assert.Equal(t, stock.StatusCritical, got.Status, "5 <= 10*0.5")
	got, _ = c.Classify(rec("V1", "P1", 6, ptr(10)))
	assert.Equal(t, stock.StatusLow, got.Status)
	got, _ = c.Classify(rec("V1", "P1", 1, nil))
	assert.Equal(t, stock.StatusOK, got.Status, "sin umbral el ratio no aplica")
}

func TestClassify_PoliticaHonorUpstream(t *testing.T) {
	r := rec("V1", "P1", 8, ptr(5))
	r.UpstreamStatus = "rot"

	off := defaultClassifier(t)
	got, _ := off.Classify(r)
	assert.Equal(t, stock.StatusOK, got.Status, "sin HonorUpstream la etiqueta se ignora")

	on, err := stock.NewClassifier(stock.Policy{HonorUpstream: true})
	require.NoError(t, err)
	got, _ = on.Classify(r)
	assert.Equal(t, stock.StatusCritical, got.Status)

	r.UpstreamStatus = "gelb"
	got, _ = on.Classify(r)
	assert.Equal(t, stock.StatusOK, got.Status, "solo las etiquetas críticas escalan")
}

func TestNewClassifier_PoliticaInvalida(t *testing.T) {
	_, err := stock.NewClassifier(stock.Policy{CriticalAtOrBelow: -1})
	assert.Error(t, err)
	_, err = stock.NewClassifier(stock.Policy{CriticalRatio: decimal.NewFromInt(2)})
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// ClassifyAll
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifyAll_EjemploTresNiveles(t *testing.T) {
	c := defaultClassifier(t)
	in := []stock.Record{
		rec("V1", "A", 0, ptr(5)),
		rec("V1", "B", 3, ptr(5)),
		rec("V1", "C", 10, ptr(5)),
	}
	out, err := c.ClassifyAll(in)
	require.NoError(t, err)
	require.Len(t, out, len(in))

	statuses := []stock.Status{out[0].Status, out[1].Status, out[2].Status}
	assert.Equal(t, []stock.Status{stock.StatusCritical, stock.StatusLow, stock.StatusOK}, statuses)
	for i := range in {
		assert.Equal(t, in[i].ProductID, out[i].ProductID, "debe preservar el orden")
	}

	assert.Equal(t, stock.Aggregate{TotalQuantity: 13, CriticalCount: 1, LowCount: 1, OkCount: 1}, stock.Summarize(out))
}

func TestClassifyAll_ErrorIndicaFila(t *testing.T) {
	c := defaultClassifier(t)
	_, err := c.ClassifyAll([]stock.Record{rec("V1", "A", 1, nil), rec("V1", "B", -4, nil)})
	require.Error(t, err)

	var ve *stock.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 1, ve.Index)
	assert.Equal(t, "B", ve.ProductID)
}

func TestClassifyAll_Vacio(t *testing.T) {
	out, err := defaultClassifier(t).ClassifyAll(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
