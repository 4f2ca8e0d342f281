package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// PDFFilename is deterministic, matching the spreadsheet naming.
func PDFFilename() string { return "relatorio-vendas.pdf" }

// Relative column widths for the narrow shape, scaled to the usable page
// width at render time. Index-aligned with NarrowHeaders.
var narrowWeights = []float64{
	9, 9, 7, 9, // seller, event, event date, recorded at
	8, 8, 5, 10, 12, 9, // name, surname, code, cpf, email, phone
	9, 4, 6, 7, 7, 3, 7, // street, number, complement, neighborhood, city, state, cep
	8, 6, 8, // payment method, total, note
	14, // products
}

// WritePDF renders the narrow row shape as a landscape A4 table. It returns
// ErrNoSales before producing any output when sales is empty.
func WritePDF(w io.Writer, sales []domain.Sale) error {
	if len(sales) == 0 {
		return ErrNoSales
	}
	rows := NarrowRows(sales)
	headers := NarrowHeaders()

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // headers carry accents
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	widths := scaleWidths(narrowWeights, pageWidth-left-right)

	pdf.SetFont("Helvetica", "B", 6.5)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, tr(h), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 6.5)
	for _, row := range rows {
		for i, cell := range row {
			pdf.CellFormat(widths[i], 5, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func scaleWidths(weights []float64, usable float64) []float64 {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = w / sum * usable
	}
	return out
}
