package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/appvendas/vendas-backend/internal/domain"
)

func TestWriteSpreadsheetEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSpreadsheet(&buf, nil)
	assert.ErrorIs(t, err, ErrNoSales)
	assert.Zero(t, buf.Len(), "no partial output on the empty case")
}

func TestWriteSpreadsheetRoundTrip(t *testing.T) {
	sales := []domain.Sale{
		exportSale(namedItem(0), namedItem(1)),
		exportSale(namedItem(2)),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSpreadsheet(&buf, sales))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per sale")

	assert.Equal(t, "Vendedor", rows[0][0])
	assert.Equal(t, "Ana", rows[1][0])
	assert.Equal(t, "Feira", rows[1][1])
	assert.Equal(t, "Produto A", rows[1][len(baseHeaders())])
}

func TestWritePDFEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, nil)
	assert.ErrorIs(t, err, ErrNoSales)
	assert.Zero(t, buf.Len())
}

func TestWritePDFProducesADocument(t *testing.T) {
	sales := []domain.Sale{exportSale(namedItem(0))}

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sales))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
