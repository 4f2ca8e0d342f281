package event

import (
	"context"
	"errors"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// ErrNotFound is returned when no event matches the given name.
var ErrNotFound = errors.New("event not found")

// Repository defines data access for events.
type Repository interface {
	// CreateIdempotent stores the event unless the normalized name is taken,
	// in which case the existing record is returned with created=false.
	CreateIdempotent(ctx context.Context, e domain.Event) (domain.Event, bool, error)
	List(ctx context.Context) ([]domain.Event, error)
	// DeleteCascade removes the event and every sale recorded under it as
	// one all-or-nothing operation, reporting how many sales went with it.
	DeleteCascade(ctx context.Context, name string) (int, error)
}
