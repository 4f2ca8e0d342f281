package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/appvendas/vendas-backend/internal/compose"
)

// ErrNotFound means the postal code is unknown to the lookup service. It is
// informational, not a failure: the form fields stay as they are.
var ErrNotFound = errors.New("postal code not found")

// Address is the result of a postal-code lookup, ready to prefill the
// address fields of the sale form.
type Address struct {
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Client resolves postal codes to addresses. The interface exists so the
// handler can be tested without the external service.
type Client interface {
	Lookup(ctx context.Context, cep string) (*Address, error)
}

var nonDigits = regexp.MustCompile(`\D`)

// viaCEPClient talks to a ViaCEP-compatible API.
type viaCEPClient struct {
	baseURL string
	http    *http.Client
}

// NewViaCEPClient builds the default client. An empty baseURL targets the
// public ViaCEP service.
func NewViaCEPClient(baseURL string) Client {
	if baseURL == "" {
		baseURL = "https://viacep.com.br"
	}
	return &viaCEPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *viaCEPClient) Lookup(ctx context.Context, cep string) (*Address, error) {
	digits := nonDigits.ReplaceAllString(cep, "")
	if len(digits) != 8 {
		return nil, compose.NewError("cep", "must contain 8 digits")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("postal code service unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("postal code service returned status %d", resp.StatusCode)
	}

	// ViaCEP answers 200 with {"erro": true} for unknown codes.
	var body struct {
		Cep         string          `json:"cep"`
		Logradouro  string          `json:"logradouro"`
		Complemento string          `json:"complemento"`
		Bairro      string          `json:"bairro"`
		Localidade  string          `json:"localidade"`
		UF          string          `json:"uf"`
		Erro        json.RawMessage `json:"erro"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode postal code response: %w", err)
	}
	if len(body.Erro) > 0 {
		return nil, ErrNotFound
	}

	return &Address{
		PostalCode:   body.Cep,
		Street:       body.Logradouro,
		Complement:   body.Complemento,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
