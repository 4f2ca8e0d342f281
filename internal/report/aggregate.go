package report

import (
	"sort"

	"github.com/appvendas/vendas-backend/internal/domain"
)

// ProductUnits is the units-sold total for one product.
type ProductUnits struct {
	ProductName string `json:"product_name"`
	Units       int    `json:"units"`
}

// EventCount is the number of sale records for one event.
type EventCount struct {
	EventName string `json:"event_name"`
	Sales     int    `json:"sales"`
}

// UserSummary is one seller's units and sale count.
type UserSummary struct {
	UserName   string `json:"user_name"`
	TotalUnits int    `json:"total_units"`
	SaleCount  int    `json:"sale_count"`
}

// UnitsByProduct sums line-item units per product across all sales, sorted
// descending by units. Ties keep first-encounter order.
func UnitsByProduct(sales []domain.Sale) []ProductUnits {
	index := make(map[string]int)
	var out []ProductUnits
	for _, s := range sales {
		for _, it := range s.Items {
			if i, ok := index[it.ProductName]; ok {
				out[i].Units += it.Units
				continue
			}
			index[it.ProductName] = len(out)
			out = append(out, ProductUnits{ProductName: it.ProductName, Units: it.Units})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Units > out[j].Units })
	return out
}

// CountByEvent counts sale records (not units) per event, sorted descending.
func CountByEvent(sales []domain.Sale) []EventCount {
	index := make(map[string]int)
	var out []EventCount
	for _, s := range sales {
		if i, ok := index[s.EventName]; ok {
			out[i].Sales++
			continue
		}
		index[s.EventName] = len(out)
		out = append(out, EventCount{EventName: s.EventName, Sales: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sales > out[j].Sales })
	return out
}

// SummaryByUser totals units and sale count per seller, sorted descending by
// units.
func SummaryByUser(sales []domain.Sale) []UserSummary {
	index := make(map[string]int)
	var out []UserSummary
	for _, s := range sales {
		units := 0
		for _, it := range s.Items {
			units += it.Units
		}
		if i, ok := index[s.UserName]; ok {
			out[i].TotalUnits += units
			out[i].SaleCount++
			continue
		}
		index[s.UserName] = len(out)
		out = append(out, UserSummary{UserName: s.UserName, TotalUnits: units, SaleCount: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalUnits > out[j].TotalUnits })
	return out
}
