package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Límites de listados de ventas.
const (
	DefaultSalesLimit = 100
	MaxSalesLimit     = 500
	SellerSalesLimit  = 10
	MonthlyRowsLimit  = 20
)

// ClampLimit aplica el valor por defecto si limit <= 0 y lo acota a max.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
