package sales

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// ErrNotFound is returned when no sale matches the given id.
var ErrNotFound = errors.New("sale not found")

// Repository defines data access for sales.
type Repository interface {
	// Upsert inserts the sale or replaces the record with the same id,
	// items included, as one all-or-nothing operation.
	Upsert(ctx context.Context, sale domain.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Sale, error)
	ListAll(ctx context.Context) ([]domain.Sale, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
