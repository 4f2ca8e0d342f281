package user

import (
	"context"
	"strings"

	"github.com/appvendas/vendas-backend/internal/compose"
	"github.com/appvendas/vendas-backend/internal/domain"
)

// Service defines seller business logic.
type Service interface {
	// Create registers a seller. Creating an existing name succeeds and
	// returns the stored record unchanged.
	Create(ctx context.Context, req CreateUserRequest) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateUserRequest) (domain.User, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.User{}, compose.NewError("name", "name is required")
	}
	u, _, err := s.repo.CreateIdempotent(ctx, domain.User{Name: req.Name})
	return u, err
}

func (s *service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}
