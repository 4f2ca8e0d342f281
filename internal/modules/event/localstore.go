package event

import (
	"context"

	"github.com/appvendas/vendas-backend/internal/domain"
	"github.com/appvendas/vendas-backend/internal/store"
)

type localRepo struct{ store *store.Store }

func NewLocalRepository(s *store.Store) Repository { return &localRepo{store: s} }

func (r *localRepo) CreateIdempotent(ctx context.Context, e domain.Event) (domain.Event, bool, error) {
	stored, created := r.store.AddEvent(e)
	return stored, created, nil
}

func (r *localRepo) List(ctx context.Context) ([]domain.Event, error) {
	return r.store.Events(), nil
}

func (r *localRepo) DeleteCascade(ctx context.Context, name string) (int, error) {
	removed, ok := r.store.RemoveEventCascade(name)
	if !ok {
		return 0, ErrNotFound
	}
	return removed, nil
}
