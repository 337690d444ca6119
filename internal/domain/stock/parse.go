package stock

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// RawRow fila tal como llega de las vistas v_stock_current / v_stock_traffic_light:
// columnas anulables y NUMERIC sin garantía de ser enteros.
type RawRow struct {
	VitrineID   *string
	ProductID   *string
	StockQty    decimal.NullDecimal
	MinStock    decimal.NullDecimal
	TargetStock decimal.NullDecimal
	Ampel       *string
}

// ParseRow valida una fila cruda y la convierte en Record.
//   - vitrine_id y product_id son obligatorios.
//   - stock_qty NULL cuenta como 0; debe ser entero. El signo lo valida Classify.
//   - min_stock NULL queda como "sin umbral"; si viene debe ser entero no negativo.
func ParseRow(raw RawRow) (Record, error) {
	r := Record{
		CaseID:         trimmed(raw.VitrineID),
		ProductID:      trimmed(raw.ProductID),
		UpstreamStatus: trimmed(raw.Ampel),
	}
	if r.CaseID == "" {
		return Record{}, invalid(r, "vitrine_id", "vacío")
	}
	if r.ProductID == "" {
		return Record{}, invalid(r, "product_id", "vacío")
	}

	if raw.StockQty.Valid {
		qty, reason := integral(raw.StockQty.Decimal)
		if reason != "" {
			return Record{}, invalid(r, "stock_qty", reason+" ("+raw.StockQty.Decimal.String()+")")
		}
		r.QuantityOnHand = qty
	}

	if raw.MinStock.Valid {
		threshold, reason := integral(raw.MinStock.Decimal)
		if reason != "" {
			return Record{}, invalid(r, "min_stock", reason+" ("+raw.MinStock.Decimal.String()+")")
		}
		if threshold < 0 {
			return Record{}, invalid(r, "min_stock", "negativo ("+raw.MinStock.Decimal.String()+")")
		}
		r.MinimumThreshold = &threshold
	}

	if raw.TargetStock.Valid {
		target := raw.TargetStock.Decimal
		r.TargetStock = &target
	}
	return r, nil
}

// ParseRows aplica ParseRow a todo el lote; el error indica la posición de la fila.
func ParseRows(rows []RawRow) ([]Record, error) {
	out := make([]Record, 0, len(rows))
	for i, raw := range rows {
		r, err := ParseRow(raw)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Index = i
			}
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// integral devuelve el valor como int64 o el motivo por el que no es representable.
func integral(d decimal.Decimal) (int64, string) {
	if !d.Equal(d.Truncate(0)) {
		return 0, "no es entero"
	}
	if d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
		return 0, "fuera de rango"
	}
	return d.IntPart(), ""
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
