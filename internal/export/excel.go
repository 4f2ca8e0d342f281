package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/appvendas/vendas-backend/internal/domain"
)

const sheetName = "Vendas"

// SpreadsheetFilename is deterministic so repeated exports of the same view
// land on the same file.
func SpreadsheetFilename() string { return "relatorio-vendas.xlsx" }

// WriteSpreadsheet renders the wide row shape as an xlsx workbook. It
// returns ErrNoSales before producing any output when sales is empty.
func WriteSpreadsheet(w io.Writer, sales []domain.Sale) error {
	if len(sales) == 0 {
		return ErrNoSales
	}
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	hdr := WideHeaders(DefaultProductColumns)
	if err := f.SetSheetRow(sheetName, "A1", &hdr); err != nil {
		return err
	}
	for i, row := range WideRows(sales, DefaultProductColumns) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}
