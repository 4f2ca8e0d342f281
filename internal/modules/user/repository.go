package user

import (
	"context"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// Repository defines data access for sellers.
type Repository interface {
	// CreateIdempotent stores the user unless the normalized name is taken,
	// in which case the existing record is returned with created=false.
	CreateIdempotent(ctx context.Context, u domain.User) (domain.User, bool, error)
	List(ctx context.Context) ([]domain.User, error)
}
