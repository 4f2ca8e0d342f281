package reports

import (
	"context"
	"io"

	"github.com/appvendas/vendas-backend/internal/domain"
	"github.com/appvendas/vendas-backend/internal/export"
	"github.com/appvendas/vendas-backend/internal/modules/sales"
	"github.com/appvendas/vendas-backend/internal/report"
)

// Dashboard bundles the three summary views shown together.
type Dashboard struct {
	UnitsByProduct []report.ProductUnits `json:"units_by_product"`
	CountByEvent   []report.EventCount   `json:"count_by_event"`
	SummaryByUser  []report.UserSummary  `json:"summary_by_user"`
}

// Service defines reporting business logic.
type Service interface {
	// Dashboard recomputes the three summaries, optionally scoped to one
	// event. Recomputation per request is deliberate: the collections are
	// session-sized.
	Dashboard(ctx context.Context, eventName string) (Dashboard, error)
	// WriteSpreadsheet streams the filtered sales as an xlsx workbook.
	WriteSpreadsheet(ctx context.Context, criteria report.Criteria, w io.Writer) error
	// WritePDF streams the filtered sales as a print-style PDF.
	WritePDF(ctx context.Context, criteria report.Criteria, w io.Writer) error
}

type service struct {
	sales sales.Repository
}

func NewService(salesRepo sales.Repository) Service { return &service{sales: salesRepo} }

func (s *service) Dashboard(ctx context.Context, eventName string) (Dashboard, error) {
	all, err := s.sales.ListAll(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	if eventName != "" {
		all = report.Filter(all, report.Criteria{EventName: eventName})
	}
	return Dashboard{
		UnitsByProduct: report.UnitsByProduct(all),
		CountByEvent:   report.CountByEvent(all),
		SummaryByUser:  report.SummaryByUser(all),
	}, nil
}

func (s *service) WriteSpreadsheet(ctx context.Context, criteria report.Criteria, w io.Writer) error {
	filtered, err := s.filtered(ctx, criteria)
	if err != nil {
		return err
	}
	return export.WriteSpreadsheet(w, filtered)
}

func (s *service) WritePDF(ctx context.Context, criteria report.Criteria, w io.Writer) error {
	filtered, err := s.filtered(ctx, criteria)
	if err != nil {
		return err
	}
	return export.WritePDF(w, filtered)
}

func (s *service) filtered(ctx context.Context, criteria report.Criteria) ([]domain.Sale, error) {
	all, err := s.sales.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return report.Filter(all, criteria), nil
}
