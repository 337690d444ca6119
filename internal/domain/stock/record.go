// Package stock clasifica el stock por vitrina/producto en el semáforo de reposición
// (critical / low / ok) y deriva los agregados que consumen los dashboards.
//
// Todo el paquete es puro: no hace I/O, no guarda estado y es seguro para uso concurrente.
package stock

import "github.com/shopspring/decimal"

// Status nivel del semáforo de stock.
type Status string

const (
	StatusCritical Status = "critical"
	StatusLow      Status = "low"
	StatusOK       Status = "ok"
)

// rank orden de urgencia de reposición (0 = más urgente).
func (s Status) rank() int {
	switch s {
	case StatusCritical:
		return 0
	case StatusLow:
		return 1
	default:
		return 2
	}
}

// Record una fila de stock para una combinación (vitrina, producto).
// Es una instantánea leída del backend; este paquete nunca la modifica.
type Record struct {
	CaseID           string
	ProductID        string
	QuantityOnHand   int64
	MinimumThreshold *int64           // nil = sin umbral definido
	TargetStock      *decimal.Decimal // solo informativo
	UpstreamStatus   string           // etiqueta opaca de la vista (ej. "rot", "gelb", "grün")
}

// Threshold devuelve el umbral mínimo; un umbral no definido cuenta como 0,
// de modo que la fila nunca queda en "low", solo en "critical" al llegar a cero.
func (r Record) Threshold() int64 {
	if r.MinimumThreshold == nil {
		return 0
	}
	return *r.MinimumThreshold
}

// ClassifiedStock fila de stock con su estado calculado.
type ClassifiedStock struct {
	Record
	Status Status
}
