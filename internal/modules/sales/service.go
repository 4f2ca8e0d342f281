package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appvendas/vendas-backend/internal/compose"
	"github.com/appvendas/vendas-backend/internal/domain"
	"github.com/appvendas/vendas-backend/internal/modules/catalog"
	"github.com/appvendas/vendas-backend/internal/report"
)

// ErrCustomerNotFound is returned when no past sale carries the given CPF.
// It is informational: the form simply is not prefilled.
var ErrCustomerNotFound = errors.New("no customer recorded with this CPF")

// Service defines sale business logic.
type Service interface {
	// Save creates a sale or replaces an edited one. Edits keep the
	// original id and creation time; everything else is taken from the
	// request as submitted.
	Save(ctx context.Context, req SaveSaleRequest) (domain.Sale, error)
	// List returns the sales matching the criteria, most recent first.
	List(ctx context.Context, criteria report.Criteria) ([]domain.Sale, error)
	Get(ctx context.Context, id string) (domain.Sale, error)
	Delete(ctx context.Context, id string) error
	// LookupCustomer returns the customer fields of the most recent sale
	// carrying the CPF, for prefilling the form.
	LookupCustomer(ctx context.Context, cpf string) (CustomerInfo, error)
}

type service struct {
	repo    Repository
	catalog catalog.Repository
}

// NewService creates a sale service. The catalog repository supplies product
// prices and the known payment methods at save time.
func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalog: catalogRepo}
}

func (s *service) Save(ctx context.Context, req SaveSaleRequest) (domain.Sale, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("load product catalog: %w", err)
	}
	methods, err := s.catalog.ListPaymentMethods(ctx)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("load payment methods: %w", err)
	}

	draft := compose.StartNew(compose.Context{
		UserName:  req.UserName,
		EventName: req.EventName,
		EventDate: req.EventDate,
	})

	// The id is client-generated and stable across edits. When the record
	// already exists this is a replace-on-save edit and the stored creation
	// time wins; an unknown id is a first save under that id.
	editing := false
	var previousCreatedAt time.Time
	var capturedLines map[string]domain.LineItem
	if req.ID != "" {
		id, err := uuid.Parse(req.ID)
		if err != nil {
			return domain.Sale{}, compose.NewError("id", "must be a valid uuid")
		}
		draft.ID = id
		existing, err := s.repo.GetByID(ctx, id)
		switch {
		case err == nil:
			editing = true
			previousCreatedAt = existing.CreatedAt
			// Lines already on the sale keep the name and price captured
			// at sale time; the catalog only prices genuinely new lines.
			draft = compose.LoadForEdit(existing)
			draft.Items = nil
			capturedLines = make(map[string]domain.LineItem, len(existing.Items))
			for _, it := range existing.Items {
				capturedLines[domain.NormalizeName(it.ProductName)] = it
			}
		case errors.Is(err, ErrNotFound):
		default:
			return domain.Sale{}, err
		}
	}

	draft.UserName = req.UserName
	draft.EventName = req.EventName
	draft.EventDate = req.EventDate

	draft.FirstName = req.FirstName
	draft.LastName = req.LastName
	draft.CPF = req.CPF
	draft.Email = req.Email
	draft.AreaCode = req.AreaCode
	draft.Phone = req.Phone
	draft.Street = req.Street
	draft.StreetNumber = req.StreetNumber
	draft.Complement = req.Complement
	draft.Neighborhood = req.Neighborhood
	draft.City = req.City
	draft.State = req.State
	draft.PostalCode = req.PostalCode
	draft.PaymentMethod = req.PaymentMethod
	draft.Note = req.Note

	index := newProductIndex(products)
	for _, item := range req.Items {
		if line, ok := capturedLines[domain.NormalizeName(item.ProductName)]; ok {
			err = draft.AddPricedItem(line.ProductName, item.Units, line.UnitPrice)
		} else {
			err = draft.AddItem(index, item.ProductName, item.Units)
		}
		if err != nil {
			return domain.Sale{}, err
		}
	}

	sale, err := compose.Finalize(draft, editing, previousCreatedAt, methods)
	if err != nil {
		return domain.Sale{}, err
	}
	if err := s.repo.Upsert(ctx, sale); err != nil {
		return domain.Sale{}, fmt.Errorf("failed to persist sale: %w", err)
	}
	return sale, nil
}

func (s *service) List(ctx context.Context, criteria report.Criteria) ([]domain.Sale, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return report.Filter(all, criteria), nil
}

func (s *service) Get(ctx context.Context, id string) (domain.Sale, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.Sale{}, compose.NewError("id", "must be a valid uuid")
	}
	return s.repo.GetByID(ctx, parsed)
}

func (s *service) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return compose.NewError("id", "must be a valid uuid")
	}
	return s.repo.Delete(ctx, parsed)
}

func (s *service) LookupCustomer(ctx context.Context, cpf string) (CustomerInfo, error) {
	if !compose.ValidCPF(cpf) {
		return CustomerInfo{}, compose.NewError("cpf", "must match the format XXX.XXX.XXX-XX")
	}
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return CustomerInfo{}, err
	}
	// Filter with no criteria orders most recent first, so the first hit is
	// the freshest address on record.
	for _, sale := range report.Filter(all, report.Criteria{}) {
		if sale.CPF != cpf {
			continue
		}
		return CustomerInfo{
			FirstName:    sale.FirstName,
			LastName:     sale.LastName,
			CPF:          sale.CPF,
			Email:        sale.Email,
			AreaCode:     sale.AreaCode,
			Phone:        sale.Phone,
			Street:       sale.Street,
			StreetNumber: sale.StreetNumber,
			Complement:   sale.Complement,
			Neighborhood: sale.Neighborhood,
			City:         sale.City,
			State:        sale.State,
			PostalCode:   sale.PostalCode,
		}, nil
	}
	return CustomerInfo{}, ErrCustomerNotFound
}

// productIndex adapts the catalog list to the composer's lookup interface,
// keyed by normalized name.
type productIndex map[string]domain.Product

func newProductIndex(products []domain.Product) productIndex {
	index := make(productIndex, len(products))
	for _, p := range products {
		index[domain.NormalizeName(p.Name)] = p
	}
	return index
}

func (idx productIndex) ProductByName(name string) (domain.Product, bool) {
	p, ok := idx[domain.NormalizeName(name)]
	return p, ok
}
