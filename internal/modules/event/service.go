package event

import (
	"context"
	"strings"

	"github.com/appvendas/vendas-backend/internal/compose"
	"github.com/appvendas/vendas-backend/internal/domain"
)

// Service defines event business logic.
type Service interface {
	// Create registers an event. Creating an existing name succeeds and
	// returns the stored record unchanged.
	Create(ctx context.Context, req CreateEventRequest) (domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	// Delete cascades: the event and all its sales go together.
	Delete(ctx context.Context, name string) (DeleteResult, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateEventRequest) (domain.Event, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Event{}, compose.NewError("name", "name is required")
	}
	e, _, err := s.repo.CreateIdempotent(ctx, domain.Event{Name: req.Name, Date: req.Date})
	return e, err
}

func (s *service) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, name string) (DeleteResult, error) {
	if strings.TrimSpace(name) == "" {
		return DeleteResult{}, compose.NewError("name", "name is required")
	}
	removed, err := s.repo.DeleteCascade(ctx, name)
	if err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{EventName: name, RemovedSales: removed}, nil
}
