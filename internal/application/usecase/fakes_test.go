package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/Vitrinas-api/internal/domain"
	"github.com/jhoicas/Vitrinas-api/internal/domain/entity"
	"github.com/jhoicas/Vitrinas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProducts struct {
	items      map[string]*entity.Product
	order      []string
	forShare   int
	deleteErr  error
	createErr  error
	lastUpdate *entity.Product
}

func newFakeProducts(ps ...*entity.Product) *fakeProducts {
	f := &fakeProducts{items: map[string]*entity.Product{}}
	for _, p := range ps {
		f.items[p.ID] = p
		f.order = append(f.order, p.ID)
	}
	return f
}

func (f *fakeProducts) List(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.items[id])
	}
	return out, nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.items[id], nil
}

func (f *fakeProducts) GetByIDForShare(ctx context.Context, id string) (*entity.Product, error) {
	f.forShare++
	return f.GetByID(ctx, id)
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.items[p.ID]; ok {
		return domain.ErrDuplicate
	}
	f.items[p.ID] = p
	f.order = append(f.order, p.ID)
	return nil
}

func (f *fakeProducts) Update(_ context.Context, p *entity.Product) error {
	if _, ok := f.items[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[p.ID] = p
	f.lastUpdate = p
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeSales struct {
	created []*entity.Sale
	stored  []*entity.Sale
	limit   int
	byCase  string
}

func (f *fakeSales) Create(_ context.Context, s *entity.Sale) error {
	s.ID = "sale-1"
	s.SoldAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSales) ListByVitrine(_ context.Context, vitrineID string, limit int) ([]*entity.Sale, error) {
	f.byCase, f.limit = vitrineID, limit
	var out []*entity.Sale
	for _, s := range f.stored {
		if s.VitrineID == vitrineID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSales) ListRecent(_ context.Context, limit int) ([]*entity.Sale, error) {
	f.limit = limit
	return f.stored, nil
}

// fakeTx ejecuta fn con los mismos repos; rolledBack indica que fn devolvió error.
type fakeTx struct {
	products   *fakeProducts
	sales      *fakeSales
	calls      int
	rolledBack bool
}

func (f *fakeTx) RunSale(_ context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	f.calls++
	if err := fn(f.products, f.sales); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

type fakeVitrines struct {
	items map[string]*entity.Vitrine
}

func newFakeVitrines(vs ...*entity.Vitrine) *fakeVitrines {
	f := &fakeVitrines{items: map[string]*entity.Vitrine{}}
	for _, v := range vs {
		f.items[v.ID] = v
	}
	return f
}

func (f *fakeVitrines) List(context.Context) ([]*entity.Vitrine, error) {
	out := make([]*entity.Vitrine, 0, len(f.items))
	for _, v := range f.items {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVitrines) GetByID(_ context.Context, id string) (*entity.Vitrine, error) {
	return f.items[id], nil
}

func (f *fakeVitrines) Create(_ context.Context, v *entity.Vitrine) error {
	if _, ok := f.items[v.ID]; ok {
		return domain.ErrDuplicate
	}
	f.items[v.ID] = v
	return nil
}

func (f *fakeVitrines) Update(_ context.Context, v *entity.Vitrine) error {
	if _, ok := f.items[v.ID]; !ok {
		return domain.ErrNotFound
	}
	f.items[v.ID] = v
	return nil
}

type fakeUsers struct {
	items   map[string]*entity.AppUser
	updated *entity.AppUser
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.AppUser, error) {
	u, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) List(context.Context) ([]*entity.AppUser, error) {
	out := make([]*entity.AppUser, 0, len(f.items))
	for _, u := range f.items {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) UpdateAccess(_ context.Context, u *entity.AppUser) error {
	f.updated = u
	f.items[u.UserID] = u
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Actores
// ──────────────────────────────────────────────────────────────────────────────

var (
	admin  = entity.Actor{UserID: "u-admin", Role: entity.RoleAdmin}
	seller = entity.Actor{UserID: "u-seller", Role: entity.RoleSeller, VitrineID: "V1"}
)
