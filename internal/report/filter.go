// Package report derives the sales-list and dashboard views from the raw
// sale collection. Everything here is a pure function: inputs are never
// mutated and results are recomputed per request.
package report

import (
	"sort"
	"strings"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// Criteria narrows the visible sales list. Empty fields are inactive;
// active ones combine with AND.
type Criteria struct {
	Search    string
	EventName string
	UserName  string
}

// Filter returns the sales matching every active criterion, most recent
// first. Ties on creation time keep their original relative order.
func Filter(sales []domain.Sale, c Criteria) []domain.Sale {
	search := strings.ToLower(strings.TrimSpace(c.Search))
	out := make([]domain.Sale, 0, len(sales))
	for _, s := range sales {
		if c.EventName != "" && s.EventName != c.EventName {
			continue
		}
		if c.UserName != "" && s.UserName != c.UserName {
			continue
		}
		if search != "" && !matchesSearch(s, search) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Free-text search covers first name, last name, CPF and event name,
// case-insensitively, any one match qualifying.
func matchesSearch(s domain.Sale, search string) bool {
	for _, field := range []string{s.FirstName, s.LastName, s.CPF, s.EventName} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
