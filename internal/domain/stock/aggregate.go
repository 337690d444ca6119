package stock

import "sort"

// Aggregate totales de un conjunto de filas clasificadas.
type Aggregate struct {
	TotalQuantity int64
	CriticalCount int
	LowCount      int
	OkCount       int
}

// Rows número de filas contabilizadas.
func (a Aggregate) Rows() int { return a.CriticalCount + a.LowCount + a.OkCount }

func (a *Aggregate) add(cs ClassifiedStock) {
	a.TotalQuantity += cs.QuantityOnHand
	switch cs.Status {
	case StatusCritical:
		a.CriticalCount++
	case StatusLow:
		a.LowCount++
	default:
		a.OkCount++
	}
}

// Summarize reduce las filas a sus totales. Lista vacía = Aggregate cero.
// El resultado no depende del orden de entrada.
func Summarize(classified []ClassifiedStock) Aggregate {
	var a Aggregate
	for _, cs := range classified {
		a.add(cs)
	}
	return a
}

// CaseAggregate totales de una vitrina.
type CaseAggregate struct {
	CaseID string
	Aggregate
}

// SummarizeByCase totales por vitrina, en el orden en que aparece cada vitrina por primera vez.
func SummarizeByCase(classified []ClassifiedStock) []CaseAggregate {
	index := make(map[string]int)
	var out []CaseAggregate
	for _, cs := range classified {
		i, ok := index[cs.CaseID]
		if !ok {
			i = len(out)
			index[cs.CaseID] = i
			out = append(out, CaseAggregate{CaseID: cs.CaseID})
		}
		out[i].add(cs)
	}
	return out
}

// PrioritizedRefillOrder ordena critical → low → ok de forma estable: dentro de un mismo
// estado se conserva el orden de entrada (p. ej. agrupación por vitrina o producto).
// Devuelve un slice nuevo; la entrada no se modifica.
func PrioritizedRefillOrder(classified []ClassifiedStock) []ClassifiedStock {
	out := make([]ClassifiedStock, len(classified))
	copy(out, classified)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Status.rank() < out[j].Status.rank()
	})
	return out
}

// NeedsRefill filas que no están en ok, en orden de prioridad de reposición.
func NeedsRefill(classified []ClassifiedStock) []ClassifiedStock {
	pending := make([]ClassifiedStock, 0, len(classified))
	for _, cs := range classified {
		if cs.Status != StatusOK {
			pending = append(pending, cs)
		}
	}
	return PrioritizedRefillOrder(pending)
}
