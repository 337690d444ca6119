package stock

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// upstreamCriticalLabels etiquetas de la vista de semáforo que significan "crítico".
var upstreamCriticalLabels = map[string]struct{}{
	"rot":      {},
	"red":      {},
	"critical": {},
	"kritisch": {},
}

// Policy parámetros de la regla de "crítico". La regla de negocio real la define la vista
// v_stock_traffic_light; mientras no se confirme, se configura en lugar de fijarse en código.
type Policy struct {
	// CriticalAtOrBelow: cantidad a partir de la cual (inclusive) la fila es crítica. Por defecto 0.
	CriticalAtOrBelow int64
	// CriticalRatio: si es > 0, también es crítica toda fila con cantidad <= umbral * ratio.
	CriticalRatio decimal.Decimal
	// HonorUpstream: respeta la etiqueta crítica que envía la vista (ej. "rot").
	HonorUpstream bool
}

// DefaultPolicy regla mínima: crítico solo en cero.
func DefaultPolicy() Policy {
	return Policy{}
}

// Validate verifica que la política sea coherente.
func (p Policy) Validate() error {
	if p.CriticalAtOrBelow < 0 {
		return errors.New("stock: CriticalAtOrBelow no puede ser negativo")
	}
	if p.CriticalRatio.IsNegative() || p.CriticalRatio.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("stock: CriticalRatio debe estar entre 0 y 1, recibido %s", p.CriticalRatio)
	}
	return nil
}

// Classifier aplica la política de semáforo. Es inmutable tras construirse.
type Classifier struct {
	policy Policy
}

// NewClassifier construye el clasificador con la política indicada.
func NewClassifier(policy Policy) (*Classifier, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{policy: policy}, nil
}

// Policy devuelve la política activa.
func (c *Classifier) Policy() Policy { return c.policy }

// Classify calcula el estado de una fila. Orden de reglas (gana la primera):
//  1. critical: cantidad <= CriticalAtOrBelow, o condición crítica adicional de la política.
//  2. low: cantidad <= umbral mínimo.
//  3. ok.
func (c *Classifier) Classify(r Record) (ClassifiedStock, error) {
	if r.QuantityOnHand < 0 {
		return ClassifiedStock{}, invalid(r, "quantity_on_hand", fmt.Sprintf("negativa (%d)", r.QuantityOnHand))
	}
	if r.Threshold() < 0 {
		return ClassifiedStock{}, invalid(r, "minimum_threshold", fmt.Sprintf("negativo (%d)", r.Threshold()))
	}
	return ClassifiedStock{Record: r, Status: c.status(r)}, nil
}

func (c *Classifier) status(r Record) Status {
	qty := r.QuantityOnHand
	threshold := r.Threshold()

	switch {
	case qty <= c.policy.CriticalAtOrBelow:
		return StatusCritical
	case c.policy.HonorUpstream && isUpstreamCritical(r.UpstreamStatus):
		return StatusCritical
	case c.belowCriticalRatio(qty, threshold):
		return StatusCritical
	case qty <= threshold:
		return StatusLow
	default:
		return StatusOK
	}
}

func (c *Classifier) belowCriticalRatio(qty, threshold int64) bool {
	if threshold <= 0 || !c.policy.CriticalRatio.IsPositive() {
		return false
	}
	limit := decimal.NewFromInt(threshold).Mul(c.policy.CriticalRatio)
	return decimal.NewFromInt(qty).LessThanOrEqual(limit)
}

func isUpstreamCritical(label string) bool {
	_, ok := upstreamCriticalLabels[strings.ToLower(strings.TrimSpace(label))]
	return ok
}

// ClassifyAll clasifica el lote preservando orden y longitud (sin filtrar).
// Falla en la primera fila inválida indicando su posición.
func (c *Classifier) ClassifyAll(records []Record) ([]ClassifiedStock, error) {
	out := make([]ClassifiedStock, 0, len(records))
	for i, r := range records {
		cs, err := c.Classify(r)
		if err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				ve.Index = i
			}
			return nil, err
		}
		out = append(out, cs)
	}
	return out, nil
}
