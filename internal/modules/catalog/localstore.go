package catalog

import (
	"context"

	"github.com/appvendas/vendas-backend/internal/domain"
	"github.com/appvendas/vendas-backend/internal/store"
)

type localRepo struct{ store *store.Store }

func NewLocalRepository(s *store.Store) Repository { return &localRepo{store: s} }

func (r *localRepo) CreateProductIdempotent(ctx context.Context, p domain.Product) (domain.Product, bool, error) {
	stored, created := r.store.AddProduct(p)
	return stored, created, nil
}

func (r *localRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return r.store.Products(), nil
}

func (r *localRepo) UpdateProduct(ctx context.Context, name string, p domain.Product) (domain.Product, error) {
	updated, ok := r.store.UpdateProduct(name, p)
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return updated, nil
}

func (r *localRepo) DeleteProduct(ctx context.Context, name string) error {
	if !r.store.RemoveProduct(name) {
		return ErrProductNotFound
	}
	return nil
}

func (r *localRepo) CreatePaymentMethodIdempotent(ctx context.Context, m domain.PaymentMethod) (domain.PaymentMethod, bool, error) {
	stored, created := r.store.AddPaymentMethod(m)
	return stored, created, nil
}

func (r *localRepo) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return r.store.PaymentMethods(), nil
}
