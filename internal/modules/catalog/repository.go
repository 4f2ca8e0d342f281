package catalog

import (
	"context"
	"errors"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// ErrProductNotFound is returned when no product matches the given name.
var ErrProductNotFound = errors.New("product not found")

// Repository defines data access for the product catalog and the payment
// method list. The two share a module because they share a storage slot and
// a setup flow.
type Repository interface {
	CreateProductIdempotent(ctx context.Context, p domain.Product) (domain.Product, bool, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, name string, p domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, name string) error

	CreatePaymentMethodIdempotent(ctx context.Context, m domain.PaymentMethod) (domain.PaymentMethod, bool, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}
