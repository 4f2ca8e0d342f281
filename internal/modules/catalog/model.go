package catalog

import "github.com/shopspring/decimal"

// SaveProductRequest is the payload for creating or updating a product.
type SaveProductRequest struct {
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Status string          `json:"status,omitempty"` // available | unavailable, defaults to available
}

// CreatePaymentMethodRequest is the payload for registering a payment method.
type CreatePaymentMethodRequest struct {
	Name string `json:"name"`
}
