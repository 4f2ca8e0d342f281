package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appvendas/vendas-backend/internal/export"
	"github.com/appvendas/vendas-backend/internal/report"
)

// Handler exposes reporting HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Get("/dashboard", h.dashboard)              // GET /api/v1/reports/dashboard?event=
		r.Get("/export/spreadsheet", h.exportExcel)   // GET /api/v1/reports/export/spreadsheet?search=&event=&user=
		r.Get("/export/pdf", h.exportPDF)             // GET /api/v1/reports/export/pdf?search=&event=&user=
	})
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.service.Dashboard(r.Context(), r.URL.Query().Get("event"))
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, dash)
}

func (h *Handler) exportExcel(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.service.WriteSpreadsheet, export.SpreadsheetFilename(),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (h *Handler) exportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.service.WritePDF, export.PDFFilename(), "application/pdf")
}

type writeFunc func(ctx context.Context, criteria report.Criteria, w io.Writer) error

// export renders into a buffer first so an empty result becomes a clean 404
// instead of a half-written download.
func (h *Handler) export(w http.ResponseWriter, r *http.Request, write writeFunc, filename, contentType string) {
	q := r.URL.Query()
	criteria := report.Criteria{
		Search:    q.Get("search"),
		EventName: q.Get("event"),
		UserName:  q.Get("user"),
	}

	var buf bytes.Buffer
	err := write(r.Context(), criteria, &buf)
	if errors.Is(err, export.ErrNoSales) {
		respond(w, http.StatusNotFound, map[string]string{"error": "no sales to export"})
		return
	}
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
