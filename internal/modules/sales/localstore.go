package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/appvendas/vendas-backend/internal/domain"
	"github.com/appvendas/vendas-backend/internal/store"
)

type localRepo struct{ store *store.Store }

func NewLocalRepository(s *store.Store) Repository { return &localRepo{store: s} }

func (r *localRepo) Upsert(ctx context.Context, sale domain.Sale) error {
	r.store.UpsertSale(sale)
	return nil
}

func (r *localRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Sale, error) {
	sale, ok := r.store.SaleByID(id)
	if !ok {
		return domain.Sale{}, ErrNotFound
	}
	return sale, nil
}

func (r *localRepo) ListAll(ctx context.Context) ([]domain.Sale, error) {
	return r.store.Sales(), nil
}

func (r *localRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if !r.store.RemoveSale(id) {
		return ErrNotFound
	}
	return nil
}
