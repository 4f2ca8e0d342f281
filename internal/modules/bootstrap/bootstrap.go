package bootstrap

import (
	"context"

	"github.com/appvendas/vendas-backend/internal/domain"
	"github.com/appvendas/vendas-backend/internal/modules/catalog"
	"github.com/appvendas/vendas-backend/internal/modules/event"
	"github.com/appvendas/vendas-backend/internal/modules/sales"
	"github.com/appvendas/vendas-backend/internal/modules/user"
	"github.com/appvendas/vendas-backend/internal/report"
)

// Data is everything the client needs to start a session, fetched in one
// call.
type Data struct {
	Users          []domain.User          `json:"users"`
	Events         []domain.Event         `json:"events"`
	PaymentMethods []domain.PaymentMethod `json:"payment_methods"`
	Products       []domain.Product       `json:"products"`
	Sales          []domain.Sale          `json:"sales"`
}

// Service assembles the bootstrap payload from the other modules'
// repositories.
type Service interface {
	Fetch(ctx context.Context) (Data, error)
}

type service struct {
	users   user.Repository
	events  event.Repository
	catalog catalog.Repository
	sales   sales.Repository
}

func NewService(users user.Repository, events event.Repository, catalogRepo catalog.Repository, salesRepo sales.Repository) Service {
	return &service{users: users, events: events, catalog: catalogRepo, sales: salesRepo}
}

func (s *service) Fetch(ctx context.Context) (Data, error) {
	var data Data
	var err error

	if data.Users, err = s.users.List(ctx); err != nil {
		return Data{}, err
	}
	if data.Events, err = s.events.List(ctx); err != nil {
		return Data{}, err
	}
	if data.PaymentMethods, err = s.catalog.ListPaymentMethods(ctx); err != nil {
		return Data{}, err
	}
	if data.Products, err = s.catalog.ListProducts(ctx); err != nil {
		return Data{}, err
	}
	all, err := s.sales.ListAll(ctx)
	if err != nil {
		return Data{}, err
	}
	// Sales ship pre-sorted the way the list renders them.
	data.Sales = report.Filter(all, report.Criteria{})
	return data, nil
}
