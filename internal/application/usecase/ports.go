package usecase

import (
	"context"

	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
)

// SaleTxRunner ejecuta fn dentro de una transacción, con repositorios atados a esa tx.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(products repository.ProductRepository, sales repository.SaleRepository) error) error
}
