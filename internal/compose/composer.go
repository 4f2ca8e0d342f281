// Package compose builds immutable sale records out of mutable drafts: a
// draft collects customer fields and line items while the form is open, and
// Finalize validates it and freezes it into a domain.Sale for persistence.
package compose

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// Catalog resolves product names to their current catalog entry.
type Catalog interface {
	ProductByName(name string) (domain.Product, bool)
}

// Context is the session state stamped onto every new draft: who is selling,
// at which event.
type Context struct {
	UserName  string
	EventName string
	EventDate string
}

// Draft is the mutable working copy of a sale being composed or edited.
// ID and CreatedAt are fixed at construction; Finalize decides which
// CreatedAt wins for edits.
type Draft struct {
	ID        uuid.UUID
	CreatedAt time.Time

	UserName  string
	EventName string
	EventDate string

	FirstName    string
	LastName     string
	CPF          string
	Email        string
	AreaCode     string
	Phone        string
	Street       string
	StreetNumber string
	Complement   string
	Neighborhood string
	City         string
	State        string
	PostalCode   string

	PaymentMethod string
	Note          string
	Items         []domain.LineItem
	TotalAmount   decimal.Decimal
}

// StartNew opens a fresh draft with a generated id and the session context
// copied in.
func StartNew(ctx Context) *Draft {
	return &Draft{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		UserName:    ctx.UserName,
		EventName:   ctx.EventName,
		EventDate:   ctx.EventDate,
		TotalAmount: decimal.Zero,
	}
}

// LoadForEdit copies an existing sale into a working draft. The items slice
// is cloned so draft edits never leak into the stored record.
func LoadForEdit(sale domain.Sale) *Draft {
	return &Draft{
		ID:        sale.ID,
		CreatedAt: sale.CreatedAt,

		UserName:  sale.UserName,
		EventName: sale.EventName,
		EventDate: sale.EventDate,

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

		PaymentMethod: sale.PaymentMethod,
		Note:          sale.Note,
		Items:         domain.CloneItems(sale.Items),
		TotalAmount:   sale.TotalAmount,
	}
}

// AddItem adds units of a catalog product to the draft. Adding a product
// already on the draft merges into the existing line instead of duplicating
// it; the unit price is captured from the catalog at add time.
func (d *Draft) AddItem(catalog Catalog, productName string, units int) error {
	name := strings.TrimSpace(productName)
	if name == "" {
		return NewError("product", "product name is required")
	}
	if units <= 0 {
		return NewError("units", "units must be a positive integer")
	}
	p, ok := catalog.ProductByName(name)
	if !ok {
		return NewError("product", fmt.Sprintf("unknown product %q", name))
	}
	if p.Status != domain.ProductAvailable {
		return NewError("product", fmt.Sprintf("product %q is unavailable", p.Name))
	}
	for i := range d.Items {
		if d.Items[i].ProductName == p.Name {
			d.Items[i].Units += units
			d.RecomputeTotal()
			return nil
		}
	}
	d.Items = append(d.Items, domain.LineItem{
		ProductName: p.Name,
		Units:       units,
		UnitPrice:   p.Price,
	})
	d.RecomputeTotal()
	return nil
}

// AddPricedItem adds units of a product at a previously captured unit price,
// bypassing the catalog entirely. Edits use it for lines already on the sale:
// the name and price recorded at sale time survive later catalog changes,
// including the product going unavailable or disappearing.
func (d *Draft) AddPricedItem(productName string, units int, unitPrice decimal.Decimal) error {
	name := strings.TrimSpace(productName)
	if name == "" {
		return NewError("product", "product name is required")
	}
	if units <= 0 {
		return NewError("units", "units must be a positive integer")
	}
	for i := range d.Items {
		if d.Items[i].ProductName == name {
			d.Items[i].Units += units
			d.RecomputeTotal()
			return nil
		}
	}
	d.Items = append(d.Items, domain.LineItem{
		ProductName: name,
		Units:       units,
		UnitPrice:   unitPrice,
	})
	d.RecomputeTotal()
	return nil
}

// RemoveItem deletes the line for productName if present.
func (d *Draft) RemoveItem(productName string) {
	for i := range d.Items {
		if d.Items[i].ProductName == productName {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			d.RecomputeTotal()
			return
		}
	}
}

// RecomputeTotal re-derives TotalAmount from the items. AddItem and
// RemoveItem call it; callers mutating Items directly must too.
func (d *Draft) RecomputeTotal() {
	d.TotalAmount = domain.Total(d.Items)
}

// Validate checks everything that must hold before the draft may be saved
// and reports every violated field. A nil result means the draft is valid.
func (d *Draft) Validate(methods []domain.PaymentMethod) *ValidationError {
	var fields []FieldViolation
	if cpf := strings.TrimSpace(d.CPF); cpf != "" && !ValidCPF(cpf) {
		fields = append(fields, FieldViolation{Field: "cpf", Message: "must match the format XXX.XXX.XXX-XX"})
	}
	if code := strings.TrimSpace(d.AreaCode); code != "" && !ValidAreaCode(code) {
		fields = append(fields, FieldViolation{Field: "area_code", Message: "must be exactly 2 digits"})
	}
	if len(d.Items) == 0 {
		fields = append(fields, FieldViolation{Field: "items", Message: "at least one line item is required"})
	}
	if d.PaymentMethod == "" {
		fields = append(fields, FieldViolation{Field: "payment_method", Message: "payment method is required"})
	} else if !knownMethod(methods, d.PaymentMethod) {
		fields = append(fields, FieldViolation{Field: "payment_method", Message: fmt.Sprintf("unknown payment method %q", d.PaymentMethod)})
	}
	if fields == nil {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func knownMethod(methods []domain.PaymentMethod, name string) bool {
	for _, m := range methods {
		if m.Name == name {
			return true
		}
	}
	return false
}

// Finalize validates the draft and freezes it into the sale to persist.
// Editing keeps the original creation time; a new sale is stamped now.
func Finalize(d *Draft, editing bool, previousCreatedAt time.Time, methods []domain.PaymentMethod) (domain.Sale, error) {
	if verr := d.Validate(methods); verr != nil {
		return domain.Sale{}, verr
	}
	d.RecomputeTotal()
	createdAt := time.Now().UTC()
	if editing {
		createdAt = previousCreatedAt
	}
	return domain.Sale{
		ID:        d.ID,
		CreatedAt: createdAt,

		UserName:  d.UserName,
		EventName: d.EventName,
		EventDate: d.EventDate,

		FirstName:    strings.TrimSpace(d.FirstName),
		LastName:     strings.TrimSpace(d.LastName),
		CPF:          strings.TrimSpace(d.CPF),
		Email:        strings.TrimSpace(d.Email),
		AreaCode:     strings.TrimSpace(d.AreaCode),
		Phone:        strings.TrimSpace(d.Phone),
		Street:       strings.TrimSpace(d.Street),
		StreetNumber: strings.TrimSpace(d.StreetNumber),
		Complement:   strings.TrimSpace(d.Complement),
		Neighborhood: strings.TrimSpace(d.Neighborhood),
		City:         strings.TrimSpace(d.City),
		State:        strings.TrimSpace(d.State),
		PostalCode:   strings.TrimSpace(d.PostalCode),

		PaymentMethod: d.PaymentMethod,
		TotalAmount:   d.TotalAmount,
		Note:          strings.TrimSpace(d.Note),
		Items:         domain.CloneItems(d.Items),
	}, nil
}
