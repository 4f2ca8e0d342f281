package user

import (
	"context"

	"github.com/appvendas/vendas-backend/internal/domain"
	"github.com/appvendas/vendas-backend/internal/store"
)

// localRepo serves the same Repository contract from the snapshot store when
// the server runs without a database.
type localRepo struct{ store *store.Store }

func NewLocalRepository(s *store.Store) Repository { return &localRepo{store: s} }

func (r *localRepo) CreateIdempotent(ctx context.Context, u domain.User) (domain.User, bool, error) {
	stored, created := r.store.AddUser(u)
	return stored, created, nil
}

func (r *localRepo) List(ctx context.Context) ([]domain.User, error) {
	return r.store.Users(), nil
}
