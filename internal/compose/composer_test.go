package compose

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appvendas/vendas-backend/internal/domain"
)

type fakeCatalog map[string]domain.Product

func (c fakeCatalog) ProductByName(name string) (domain.Product, bool) {
	p, ok := c[domain.NormalizeName(name)]
	return p, ok
}

func testCatalog() fakeCatalog {
	return fakeCatalog{
		"caneca": {Name: "Caneca", Price: decimal.NewFromInt(25), Status: domain.ProductAvailable},
		"camisa": {Name: "Camisa", Price: decimal.NewFromInt(60), Status: domain.ProductAvailable},
		"poster": {Name: "Poster", Price: decimal.NewFromInt(15), Status: domain.ProductUnavailable},
	}
}

func testMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{{Name: "Pix"}, {Name: "Dinheiro"}}
}

func TestStartNewStampsContext(t *testing.T) {
	d := StartNew(Context{UserName: "Ana", EventName: "Feira", EventDate: "2026-07-01"})

	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.Equal(t, "Ana", d.UserName)
	assert.Equal(t, "Feira", d.EventName)
	assert.Equal(t, "2026-07-01", d.EventDate)
	assert.True(t, d.TotalAmount.IsZero())
}

func TestAddItemMergesExistingLine(t *testing.T) {
	d := StartNew(Context{})
	catalog := testCatalog()

	require.NoError(t, d.AddItem(catalog, "Caneca", 2))
	require.NoError(t, d.AddItem(catalog, "caneca ", 3))

	require.Len(t, d.Items, 1)
	assert.Equal(t, 5, d.Items[0].Units)
	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(125)))
}

func TestAddItemRejections(t *testing.T) {
	tests := []struct {
		name    string
		product string
		units   int
		field   string
	}{
		{"empty name", "", 1, "product"},
		{"zero units", "Caneca", 0, "units"},
		{"negative units", "Caneca", -2, "units"},
		{"unknown product", "Chaveiro", 1, "product"},
		{"unavailable product", "Poster", 1, "product"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := StartNew(Context{})
			err := d.AddItem(testCatalog(), tt.product, tt.units)
			require.Error(t, err)
			verr, ok := err.(*ValidationError)
			require.True(t, ok)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Empty(t, d.Items)
		})
	}
}

func TestAddItemCapturesPriceAtAddTime(t *testing.T) {
	d := StartNew(Context{})
	catalog := testCatalog()
	require.NoError(t, d.AddItem(catalog, "Camisa", 1))

	// A later catalog price change must not touch the draft line.
	catalog["camisa"] = domain.Product{Name: "Camisa", Price: decimal.NewFromInt(90), Status: domain.ProductAvailable}
	assert.True(t, d.Items[0].UnitPrice.Equal(decimal.NewFromInt(60)))
	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(60)))
}

func TestAddPricedItemBypassesCatalog(t *testing.T) {
	d := StartNew(Context{})

	// Neither product exists in any catalog; the captured price stands.
	require.NoError(t, d.AddPricedItem("Caneca Antiga", 2, decimal.NewFromInt(18)))
	require.NoError(t, d.AddPricedItem("Caneca Antiga", 1, decimal.NewFromInt(18)))

	require.Len(t, d.Items, 1)
	assert.Equal(t, 3, d.Items[0].Units)
	assert.True(t, d.Items[0].UnitPrice.Equal(decimal.NewFromInt(18)))
	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(54)))
}

func TestAddPricedItemRejections(t *testing.T) {
	d := StartNew(Context{})

	err := d.AddPricedItem("", 1, decimal.NewFromInt(10))
	require.Error(t, err)

	err = d.AddPricedItem("Caneca", 0, decimal.NewFromInt(10))
	require.Error(t, err)
	assert.Empty(t, d.Items)
}

func TestRemoveItemRecomputesTotal(t *testing.T) {
	d := StartNew(Context{})
	catalog := testCatalog()
	require.NoError(t, d.AddItem(catalog, "Caneca", 1))
	require.NoError(t, d.AddItem(catalog, "Camisa", 1))

	d.RemoveItem("Caneca")

	require.Len(t, d.Items, 1)
	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(60)))
}

func TestValidateReportsEveryViolatedField(t *testing.T) {
	d := StartNew(Context{})
	d.CPF = "12345678900"
	d.AreaCode = "abc"

	verr := d.Validate(testMethods())
	require.NotNil(t, verr)

	fields := make(map[string]bool)
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["cpf"])
	assert.True(t, fields["area_code"])
	assert.True(t, fields["items"])
	assert.True(t, fields["payment_method"])
}

func TestValidateAcceptsEmptyOptionalFields(t *testing.T) {
	d := StartNew(Context{})
	require.NoError(t, d.AddItem(testCatalog(), "Caneca", 1))
	d.PaymentMethod = "Pix"

	assert.Nil(t, d.Validate(testMethods()))
}

func TestValidateRejectsUnknownPaymentMethod(t *testing.T) {
	d := StartNew(Context{})
	require.NoError(t, d.AddItem(testCatalog(), "Caneca", 1))
	d.PaymentMethod = "Cheque"

	verr := d.Validate(testMethods())
	require.NotNil(t, verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "payment_method", verr.Fields[0].Field)
}

func TestFinalizeTrimsTextFields(t *testing.T) {
	d := StartNew(Context{UserName: "Ana"})
	require.NoError(t, d.AddItem(testCatalog(), "Caneca", 2))
	d.PaymentMethod = "Pix"
	d.FirstName = "  Maria "
	d.CPF = " 123.456.789-01 "
	d.Note = " trocar embalagem "

	sale, err := Finalize(d, false, time.Time{}, testMethods())
	require.NoError(t, err)
	assert.Equal(t, "Maria", sale.FirstName)
	assert.Equal(t, "123.456.789-01", sale.CPF)
	assert.Equal(t, "trocar embalagem", sale.Note)
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(50)))
}

func TestFinalizePreservesCreationTimeOnEdit(t *testing.T) {
	original := time.Date(2026, 7, 1, 14, 30, 0, 0, time.UTC)
	d := StartNew(Context{})
	require.NoError(t, d.AddItem(testCatalog(), "Caneca", 1))
	d.PaymentMethod = "Pix"

	sale, err := Finalize(d, true, original, testMethods())
	require.NoError(t, err)
	assert.Equal(t, original, sale.CreatedAt)

	fresh, err := Finalize(d, false, original, testMethods())
	require.NoError(t, err)
	assert.NotEqual(t, original, fresh.CreatedAt)
}

func TestFinalizeInvalidDraftReturnsValidationError(t *testing.T) {
	d := StartNew(Context{})
	_, err := Finalize(d, false, time.Time{}, testMethods())
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestLoadForEditClonesItems(t *testing.T) {
	sale := domain.Sale{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		Items: []domain.LineItem{
			{ProductName: "Caneca", Units: 1, UnitPrice: decimal.NewFromInt(25)},
		},
	}

	d := LoadForEdit(sale)
	d.Items[0].Units = 10

	assert.Equal(t, 1, sale.Items[0].Units)
}

func TestValidCPF(t *testing.T) {
	assert.True(t, ValidCPF("123.456.789-01"))
	assert.False(t, ValidCPF("12345678901"))
	assert.False(t, ValidCPF("123.456.789-0"))
	assert.False(t, ValidCPF("abc.def.ghi-jk"))
}

func TestValidAreaCode(t *testing.T) {
	assert.True(t, ValidAreaCode("11"))
	assert.False(t, ValidAreaCode("1"))
	assert.False(t, ValidAreaCode("111"))
	assert.False(t, ValidAreaCode("1a"))
}
