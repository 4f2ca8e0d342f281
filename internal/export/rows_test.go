package export

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appvendas/vendas-backend/internal/domain"
)

func exportSale(items ...domain.LineItem) domain.Sale {
	return domain.Sale{
		ID:            uuid.New(),
		CreatedAt:     time.Date(2026, 7, 1, 14, 30, 0, 0, time.UTC),
		UserName:      "Ana",
		EventName:     "Feira",
		EventDate:     "2026-07-01",
		FirstName:     "Maria",
		LastName:      "Silva",
		CPF:           "123.456.789-01",
		AreaCode:      "11",
		Phone:         "98765-4321",
		PaymentMethod: "Pix",
		TotalAmount:   decimal.NewFromFloat(12.5),
		Items:         items,
	}
}

func namedItem(n int) domain.LineItem {
	return domain.LineItem{ProductName: "Produto " + string(rune('A'+n)), Units: n + 1, UnitPrice: decimal.NewFromInt(10)}
}

func TestWideHeadersCarryPositionalPairs(t *testing.T) {
	hdr := WideHeaders(2)

	base := len(baseHeaders())
	require.Len(t, hdr, base+5)
	assert.Equal(t, "Produto 1", hdr[base])
	assert.Equal(t, "Qtd 1", hdr[base+1])
	assert.Equal(t, "Produto 2", hdr[base+2])
	assert.Equal(t, "Qtd 2", hdr[base+3])
	assert.Equal(t, "Produtos Adicionais", hdr[base+4])
}

func TestWideRowsPadAndOverflow(t *testing.T) {
	short := exportSale(namedItem(0))
	long := exportSale(namedItem(0), namedItem(1), namedItem(2), namedItem(3))

	rows := WideRows([]domain.Sale{short, long}, 2)
	require.Len(t, rows, 2)
	base := len(baseHeaders())

	// One item: second pair empty, no overflow.
	assert.Equal(t, "Produto A", rows[0][base])
	assert.Equal(t, "1", rows[0][base+1])
	assert.Equal(t, "", rows[0][base+2])
	assert.Equal(t, "", rows[0][base+3])
	assert.Equal(t, "-", rows[0][base+4])

	// Four items: two positional, two joined in the overflow column.
	assert.Equal(t, "Produto C (3); Produto D (4)", rows[1][base+4])
}

func TestWideRowsMatchHeaderWidth(t *testing.T) {
	rows := WideRows([]domain.Sale{exportSale(namedItem(0))}, DefaultProductColumns)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(WideHeaders(DefaultProductColumns)))
}

func TestNarrowRowsJoinItems(t *testing.T) {
	rows := NarrowRows([]domain.Sale{exportSale(namedItem(0), namedItem(1))})
	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(NarrowHeaders()))
	assert.Equal(t, "Produto A (1), Produto B (2)", rows[0][len(rows[0])-1])
}

func TestBaseRowFormatting(t *testing.T) {
	row := baseRow(exportSale(namedItem(0)))

	assert.Equal(t, "2026-07-01 14:30", row[3])
	assert.Equal(t, "-", row[6], "customer code column is a placeholder")
	assert.Equal(t, "(11) 98765-4321", row[9])
	assert.Equal(t, "-", row[12], "empty complement renders as a dash")
	assert.Equal(t, "12.50", row[18])
	assert.Equal(t, "-", row[19], "empty note renders as a dash")
}

func TestBaseRowPhoneWithoutAreaCode(t *testing.T) {
	s := exportSale(namedItem(0))
	s.AreaCode = ""
	row := baseRow(s)
	assert.Equal(t, "98765-4321", row[9])
}
