package sales

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appvendas/vendas-backend/internal/compose"
	"github.com/appvendas/vendas-backend/internal/domain"
	"github.com/appvendas/vendas-backend/internal/report"
)

type fakeRepo struct {
	sales map[uuid.UUID]domain.Sale
}

func newFakeRepo() *fakeRepo { return &fakeRepo{sales: make(map[uuid.UUID]domain.Sale)} }

func (r *fakeRepo) Upsert(_ context.Context, sale domain.Sale) error {
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return domain.Sale{}, ErrNotFound
	}
	return s, nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]domain.Sale, error) {
	out := make([]domain.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.sales[id]; !ok {
		return ErrNotFound
	}
	delete(r.sales, id)
	return nil
}

type fakeCatalogRepo struct {
	products []domain.Product
	methods  []domain.PaymentMethod
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		products: []domain.Product{
			{Name: "Caneca", Price: decimal.NewFromInt(25), Status: domain.ProductAvailable},
			{Name: "Camisa", Price: decimal.NewFromInt(60), Status: domain.ProductAvailable},
		},
		methods: []domain.PaymentMethod{{Name: "Pix"}, {Name: "Dinheiro"}},
	}
}

func (r *fakeCatalogRepo) CreateProductIdempotent(_ context.Context, p domain.Product) (domain.Product, bool, error) {
	r.products = append(r.products, p)
	return p, true, nil
}

func (r *fakeCatalogRepo) ListProducts(_ context.Context) ([]domain.Product, error) {
	return r.products, nil
}

func (r *fakeCatalogRepo) UpdateProduct(_ context.Context, _ string, p domain.Product) (domain.Product, error) {
	return p, nil
}

func (r *fakeCatalogRepo) DeleteProduct(_ context.Context, _ string) error { return nil }

func (r *fakeCatalogRepo) CreatePaymentMethodIdempotent(_ context.Context, m domain.PaymentMethod) (domain.PaymentMethod, bool, error) {
	return m, true, nil
}

func (r *fakeCatalogRepo) ListPaymentMethods(_ context.Context) ([]domain.PaymentMethod, error) {
	return r.methods, nil
}

func validRequest() SaveSaleRequest {
	return SaveSaleRequest{
		UserName:      "Ana",
		EventName:     "Feira",
		EventDate:     "2026-07-01",
		FirstName:     "Maria",
		PaymentMethod: "Pix",
		Items: []LineItemInput{
			{ProductName: "Caneca", Units: 2},
		},
	}
}

func TestSaveCreatesSale(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeCatalogRepo())

	sale, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, sale.ID)
	assert.False(t, sale.CreatedAt.IsZero())
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(50)))
	require.Len(t, sale.Items, 1)
	assert.True(t, sale.Items[0].UnitPrice.Equal(decimal.NewFromInt(25)), "unit price comes from the catalog")

	stored, err := repo.GetByID(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale, stored)
}

func TestSaveEditPreservesIdAndCreationTime(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeCatalogRepo())

	first, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.ID = first.ID.String()
	req.FirstName = "Joana"
	req.Items = []LineItemInput{{ProductName: "Camisa", Units: 1}}

	edited, err := svc.Save(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, edited.ID)
	assert.Equal(t, first.CreatedAt, edited.CreatedAt)
	assert.Equal(t, "Joana", edited.FirstName)
	assert.True(t, edited.TotalAmount.Equal(decimal.NewFromInt(60)))

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1, "an edit replaces, never duplicates")
}

func TestSaveEditKeepsCapturedPrices(t *testing.T) {
	repo := newFakeRepo()
	catalog := newFakeCatalogRepo()
	svc := NewService(repo, catalog)

	first, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)

	// Reprice the product after the sale; re-submitting the unchanged
	// record must not pick up the new price.
	catalog.products[0].Price = decimal.NewFromInt(40)

	req := validRequest()
	req.ID = first.ID.String()
	edited, err := svc.Save(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, edited.Items, 1)
	assert.True(t, edited.Items[0].UnitPrice.Equal(decimal.NewFromInt(25)))
	assert.True(t, edited.TotalAmount.Equal(first.TotalAmount))
}

func TestSaveEditSurvivesCatalogRemoval(t *testing.T) {
	repo := newFakeRepo()
	catalog := newFakeCatalogRepo()
	svc := NewService(repo, catalog)

	first, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)

	// The sold product goes unavailable and then disappears entirely; the
	// sale's own lines must stay editable either way.
	catalog.products[0].Status = domain.ProductUnavailable

	req := validRequest()
	req.ID = first.ID.String()
	req.Note = "embrulhar para presente"
	edited, err := svc.Save(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "embrulhar para presente", edited.Note)

	catalog.products = catalog.products[1:]
	req.Items[0].Units = 5
	edited, err = svc.Save(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, edited.Items, 1)
	assert.Equal(t, 5, edited.Items[0].Units)
	assert.True(t, edited.Items[0].UnitPrice.Equal(decimal.NewFromInt(25)))
}

func TestSaveEditPricesNewLinesFromCatalog(t *testing.T) {
	repo := newFakeRepo()
	catalog := newFakeCatalogRepo()
	svc := NewService(repo, catalog)

	first, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.ID = first.ID.String()
	req.Items = append(req.Items, LineItemInput{ProductName: "Camisa", Units: 1})

	edited, err := svc.Save(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, edited.Items, 2)
	assert.True(t, edited.Items[1].UnitPrice.Equal(decimal.NewFromInt(60)))

	// A line that was never on the sale still goes through the catalog,
	// availability included.
	catalog.products = append(catalog.products,
		domain.Product{Name: "Poster", Price: decimal.NewFromInt(15), Status: domain.ProductUnavailable})
	req.Items = append(req.Items, LineItemInput{ProductName: "Poster", Units: 1})
	_, err = svc.Save(context.Background(), req)
	var verr *compose.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSaveWithUnknownIdIsAFirstSave(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeCatalogRepo())

	clientID := uuid.New()
	req := validRequest()
	req.ID = clientID.String()

	sale, err := svc.Save(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, clientID, sale.ID)
}

func TestSaveRejectsMalformedId(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalogRepo())

	req := validRequest()
	req.ID = "not-a-uuid"

	_, err := svc.Save(context.Background(), req)
	var verr *compose.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSaveRejectsUnknownProduct(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalogRepo())

	req := validRequest()
	req.Items = []LineItemInput{{ProductName: "Chaveiro", Units: 1}}

	_, err := svc.Save(context.Background(), req)
	var verr *compose.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestSaveRejectsUnknownPaymentMethod(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalogRepo())

	req := validRequest()
	req.PaymentMethod = "Cheque"

	_, err := svc.Save(context.Background(), req)
	var verr *compose.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestListAppliesCriteria(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeCatalogRepo())

	_, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.EventName = "Mercado"
	_, err = svc.Save(context.Background(), other)
	require.NoError(t, err)

	got, err := svc.List(context.Background(), report.Criteria{EventName: "Feira"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Feira", got[0].EventName)
}

func TestDeleteUnknownSale(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalogRepo())
	err := svc.Delete(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupCustomerReturnsMostRecentMatch(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeCatalogRepo())

	old := validRequest()
	old.CPF = "123.456.789-01"
	old.City = "Campinas"
	oldSale, err := svc.Save(context.Background(), old)
	require.NoError(t, err)

	// Backdate the first sale so the second is unambiguously fresher.
	oldStored := repo.sales[oldSale.ID]
	oldStored.CreatedAt = time.Now().Add(-24 * time.Hour)
	repo.sales[oldSale.ID] = oldStored

	fresh := validRequest()
	fresh.CPF = "123.456.789-01"
	fresh.City = "São Paulo"
	_, err = svc.Save(context.Background(), fresh)
	require.NoError(t, err)

	info, err := svc.LookupCustomer(context.Background(), "123.456.789-01")
	require.NoError(t, err)
	assert.Equal(t, "São Paulo", info.City)
}

func TestLookupCustomerUnknownCPF(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalogRepo())

	_, err := svc.LookupCustomer(context.Background(), "999.999.999-99")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestLookupCustomerRejectsMalformedCPF(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalogRepo())

	_, err := svc.LookupCustomer(context.Background(), "99999999999")
	var verr *compose.ValidationError
	require.ErrorAs(t, err, &verr)
}
