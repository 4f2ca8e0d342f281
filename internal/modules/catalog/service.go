package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/appvendas/vendas-backend/internal/compose"
	"github.com/appvendas/vendas-backend/internal/domain"
)

// Service defines catalog business logic.
type Service interface {
	// CreateProduct registers a product. Creating an existing name succeeds
	// and returns the stored record unchanged.
	CreateProduct(ctx context.Context, req SaveProductRequest) (domain.Product, error)
	// ListProducts returns the catalog; availableOnly narrows it to what can
	// go on a new sale.
	ListProducts(ctx context.Context, availableOnly bool) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, name string, req SaveProductRequest) (domain.Product, error)
	DeleteProduct(ctx context.Context, name string) error

	CreatePaymentMethod(ctx context.Context, req CreatePaymentMethodRequest) (domain.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req SaveProductRequest) (domain.Product, error) {
	p, err := productFromRequest(req)
	if err != nil {
		return domain.Product{}, err
	}
	stored, _, err := s.repo.CreateProductIdempotent(ctx, p)
	return stored, err
}

func (s *service) ListProducts(ctx context.Context, availableOnly bool) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if !availableOnly {
		return products, nil
	}
	available := products[:0]
	for _, p := range products {
		if p.Status == domain.ProductAvailable {
			available = append(available, p)
		}
	}
	return available, nil
}

func (s *service) UpdateProduct(ctx context.Context, name string, req SaveProductRequest) (domain.Product, error) {
	req.Name = name
	p, err := productFromRequest(req)
	if err != nil {
		return domain.Product{}, err
	}
	return s.repo.UpdateProduct(ctx, name, p)
}

func (s *service) DeleteProduct(ctx context.Context, name string) error {
	return s.repo.DeleteProduct(ctx, name)
}

func (s *service) CreatePaymentMethod(ctx context.Context, req CreatePaymentMethodRequest) (domain.PaymentMethod, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.PaymentMethod{}, compose.NewError("name", "name is required")
	}
	m, _, err := s.repo.CreatePaymentMethodIdempotent(ctx, domain.PaymentMethod{Name: req.Name})
	return m, err
}

func (s *service) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return s.repo.ListPaymentMethods(ctx)
}

func productFromRequest(req SaveProductRequest) (domain.Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Product{}, compose.NewError("name", "name is required")
	}
	if req.Price.LessThan(decimal.Zero) {
		return domain.Product{}, compose.NewError("price", "price cannot be negative")
	}
	status := domain.ProductStatus(req.Status)
	if req.Status == "" {
		status = domain.ProductAvailable
	}
	switch status {
	case domain.ProductAvailable, domain.ProductUnavailable:
	default:
		return domain.Product{}, compose.NewError("status",
			fmt.Sprintf("invalid status %q (allowed: available, unavailable)", req.Status))
	}
	return domain.Product{Name: req.Name, Price: req.Price, Status: status}, nil
}
