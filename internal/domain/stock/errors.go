package stock

import (
	"fmt"

	"github.com/jhoicas/Vitrinas-api/internal/domain"
)

// ValidationError indica datos de stock corruptos (cantidad negativa, cantidades no enteras, ids vacíos).
// No es una condición recuperable: el llamador no debe silenciarla.
// errors.Is(err, domain.ErrInvalidInput) es true.
type ValidationError struct {
	Index     int // posición en el lote; -1 si se validó una sola fila
	CaseID    string
	ProductID string
	Field     string
	Reason    string
}

func (e *ValidationError) Error() string {
	where := fmt.Sprintf("vitrina=%q producto=%q", e.CaseID, e.ProductID)
	if e.Index >= 0 {
		where = fmt.Sprintf("fila %d (%s)", e.Index, where)
	}
	return fmt.Sprintf("stock inválido en %s: %s %s", where, e.Field, e.Reason)
}

// Is permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == domain.ErrInvalidInput
}

func invalid(r Record, field, reason string) *ValidationError {
	return &ValidationError{Index: -1, CaseID: r.CaseID, ProductID: r.ProductID, Field: field, Reason: reason}
}
