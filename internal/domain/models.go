package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus controls whether a product can be added to new sales.
type ProductStatus string

const (
	ProductAvailable   ProductStatus = "available"
	ProductUnavailable ProductStatus = "unavailable"
)

// User is a seller recording sales under their own name.
type User struct {
	Name string `json:"name"`
}

// Event is a fair or market edition where sales are recorded.
type Event struct {
	Name string `json:"name"`
	Date string `json:"date"` // ISO date, YYYY-MM-DD
}

// PaymentMethod is a named way of paying, referenced by sales.
type PaymentMethod struct {
	Name string `json:"name"`
}

// Product is a catalog entry. Sales copy its name and price at sale time and
// never track later catalog changes.
type Product struct {
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Status ProductStatus   `json:"status"`
}

// LineItem is one product entry within a sale.
type LineItem struct {
	ProductName string          `json:"product_name"`
	Units       int             `json:"units"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Sale is the denormalized record of one sale at an event. ID and CreatedAt
// are immutable once first persisted; edits replace every other field.
type Sale struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserName  string `json:"user_name"`
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"`

	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	AreaCode     string `json:"area_code"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	StreetNumber string `json:"street_number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`

	PaymentMethod string          `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Note          string          `json:"note,omitempty"`
	Items         []LineItem      `json:"items"`
}

// NormalizeName is the uniqueness key for named records: users, events,
// payment methods and products are unique by case-insensitive trimmed name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Total sums units*unitPrice over the items.
func Total(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Units))))
	}
	return total
}

// CloneItems returns an independent copy of a line-item slice.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
