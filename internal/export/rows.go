// Package export flattens sale records into tabular rows and writes them as
// a spreadsheet or a print-style PDF. Two shapes exist: a wide one with
// positional product/unit column pairs, and a narrow one with a single
// joined products column.
package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// DefaultProductColumns is how many (product, units) column pairs the wide
// shape carries before overflowing into the additional-products column.
const DefaultProductColumns = 5

// ErrNoSales is returned by the writers before any output is produced when
// there is nothing to export; handlers surface it instead of an empty file.
var ErrNoSales = errors.New("no sales to export")

// Headers are in Portuguese because the files land in front of the sellers;
// code and JSON stay in English like the rest of the repo.
func baseHeaders() []string {
	return []string{
		"Vendedor", "Evento", "Data do Evento", "Registrado em",
		"Nome", "Sobrenome", "Código", "CPF", "E-mail", "Telefone",
		"Endereço", "Número", "Complemento", "Bairro", "Cidade", "UF", "CEP",
		"Forma de Pagamento", "Total", "Observação",
	}
}

// WideHeaders is the header row for the wide shape with maxCols product
// column pairs.
func WideHeaders(maxCols int) []string {
	hdr := baseHeaders()
	for i := 1; i <= maxCols; i++ {
		hdr = append(hdr, fmt.Sprintf("Produto %d", i), fmt.Sprintf("Qtd %d", i))
	}
	return append(hdr, "Produtos Adicionais")
}

// WideRows renders one row per sale. The first maxCols line items fill the
// positional columns; the rest are concatenated into the last column.
func WideRows(sales []domain.Sale, maxCols int) [][]string {
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		row := baseRow(s)
		for i := 0; i < maxCols; i++ {
			if i < len(s.Items) {
				row = append(row, s.Items[i].ProductName, strconv.Itoa(s.Items[i].Units))
			} else {
				row = append(row, "", "")
			}
		}
		extra := "-"
		if len(s.Items) > maxCols {
			parts := make([]string, 0, len(s.Items)-maxCols)
			for _, it := range s.Items[maxCols:] {
				parts = append(parts, formatItem(it))
			}
			extra = strings.Join(parts, "; ")
		}
		rows = append(rows, append(row, extra))
	}
	return rows
}

// NarrowHeaders is the header row for the narrow (print-style) shape.
func NarrowHeaders() []string {
	return append(baseHeaders(), "Produtos")
}

// NarrowRows renders one row per sale with every line item joined into one
// products column.
func NarrowRows(sales []domain.Sale) [][]string {
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		parts := make([]string, 0, len(s.Items))
		for _, it := range s.Items {
			parts = append(parts, formatItem(it))
		}
		rows = append(rows, append(baseRow(s), strings.Join(parts, ", ")))
	}
	return rows
}

func baseRow(s domain.Sale) []string {
	phone := s.Phone
	if s.AreaCode != "" {
		phone = "(" + s.AreaCode + ") " + s.Phone
	}
	return []string{
		s.UserName, s.EventName, s.EventDate, s.CreatedAt.Format("2006-01-02 15:04"),
		s.FirstName, s.LastName,
		// customer code was never captured; the placeholder column keeps
		// the sheet layout stable.
		"-",
		s.CPF, s.Email, phone,
		s.Street, s.StreetNumber, orDash(s.Complement), s.Neighborhood, s.City, s.State, s.PostalCode,
		s.PaymentMethod, s.TotalAmount.StringFixed(2), orDash(s.Note),
	}
}

func formatItem(it domain.LineItem) string {
	return fmt.Sprintf("%s (%d)", it.ProductName, it.Units)
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
