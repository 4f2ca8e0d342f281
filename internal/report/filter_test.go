package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appvendas/vendas-backend/internal/domain"
)

func saleAt(created time.Time, user, event, firstName, cpf string) domain.Sale {
	return domain.Sale{
		ID:        uuid.New(),
		CreatedAt: created,
		UserName:  user,
		EventName: event,
		FirstName: firstName,
		CPF:       cpf,
	}
}

func TestFilterNoCriteriaSortsMostRecentFirst(t *testing.T) {
	base := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		saleAt(base, "Ana", "Feira", "Maria", ""),
		saleAt(base.Add(2*time.Hour), "Ana", "Feira", "Joana", ""),
		saleAt(base.Add(time.Hour), "Ana", "Feira", "Clara", ""),
	}

	got := Filter(sales, Criteria{})

	require.Len(t, got, 3)
	assert.Equal(t, "Joana", got[0].FirstName)
	assert.Equal(t, "Clara", got[1].FirstName)
	assert.Equal(t, "Maria", got[2].FirstName)
}

func TestFilterTiesKeepOriginalOrder(t *testing.T) {
	same := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		saleAt(same, "Ana", "Feira", "Primeira", ""),
		saleAt(same, "Ana", "Feira", "Segunda", ""),
		saleAt(same, "Ana", "Feira", "Terceira", ""),
	}

	got := Filter(sales, Criteria{})

	require.Len(t, got, 3)
	assert.Equal(t, "Primeira", got[0].FirstName)
	assert.Equal(t, "Segunda", got[1].FirstName)
	assert.Equal(t, "Terceira", got[2].FirstName)
}

func TestFilterCombinesCriteriaWithAnd(t *testing.T) {
	now := time.Now()
	sales := []domain.Sale{
		saleAt(now, "Ana", "Feira", "Maria", ""),
		saleAt(now, "Bia", "Feira", "Maria", ""),
		saleAt(now, "Ana", "Mercado", "Maria", ""),
	}

	got := Filter(sales, Criteria{EventName: "Feira", UserName: "Ana"})

	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].UserName)
	assert.Equal(t, "Feira", got[0].EventName)
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	now := time.Now()
	sales := []domain.Sale{
		saleAt(now, "Ana", "Feira de Inverno", "Maria", "123.456.789-01"),
		saleAt(now, "Ana", "Mercado", "Joana", "987.654.321-00"),
	}

	assert.Len(t, Filter(sales, Criteria{Search: "MARIA"}), 1)
	assert.Len(t, Filter(sales, Criteria{Search: "inverno"}), 1)
	assert.Len(t, Filter(sales, Criteria{Search: "456.789"}), 1)
	assert.Len(t, Filter(sales, Criteria{Search: "  joana "}), 1)
	assert.Empty(t, Filter(sales, Criteria{Search: "nadaver"}))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	base := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		saleAt(base, "Ana", "Feira", "Primeira", ""),
		saleAt(base.Add(time.Hour), "Ana", "Feira", "Segunda", ""),
	}

	Filter(sales, Criteria{})

	assert.Equal(t, "Primeira", sales[0].FirstName)
	assert.Equal(t, "Segunda", sales[1].FirstName)
}
