package sales

// LineItemInput names a catalog product and how many units were sold; the
// unit price is captured from the catalog server-side.
type LineItemInput struct {
	ProductName string `json:"product_name"`
	Units       int    `json:"units"`
}

// SaveSaleRequest is the payload for creating a sale or re-submitting an
// edited one. An edit sends the same id with the whole record; the original
// creation time is preserved server-side.
type SaveSaleRequest struct {
	ID string `json:"id,omitempty"`

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
	Note          string          `json:"note,omitempty"`
	Items         []LineItemInput `json:"items"`
}

// CustomerInfo is the reusable part of a past sale, returned by the
// lookup-by-CPF endpoint to prefill the form for a returning customer.
type CustomerInfo struct {
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
}
