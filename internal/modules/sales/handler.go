package sales

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appvendas/vendas-backend/internal/compose"
	"github.com/appvendas/vendas-backend/internal/report"
)

// Handler exposes sale HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/sales", func(r chi.Router) {
		r.Post("/", h.save)         // POST   /api/v1/sales
		r.Get("/", h.list)          // GET    /api/v1/sales?search=&event=&user=
		r.Get("/{id}", h.get)       // GET    /api/v1/sales/{id}
		r.Delete("/{id}", h.delete) // DELETE /api/v1/sales/{id}?confirm=true
	})
	r.Get("/api/v1/customers/{cpf}", h.lookupCustomer) // GET /api/v1/customers/{cpf}
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req SaveSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	sale, err := h.service.Save(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, sale)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sales, err := h.service.List(r.Context(), report.Criteria{
		Search:    q.Get("search"),
		EventName: q.Get("event"),
		UserName:  q.Get("user"),
	})
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, sales)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	sale, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, sale)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	// The UI asks "are you sure" before issuing this; the confirmation
	// travels with the request.
	if r.URL.Query().Get("confirm") != "true" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "destructive operation: pass confirm=true"})
		return
	}
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"deleted": chi.URLParam(r, "id")})
}

func (h *Handler) lookupCustomer(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.LookupCustomer(r.Context(), chi.URLParam(r, "cpf"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, info)
}

func respondError(w http.ResponseWriter, err error) {
	var verr *compose.ValidationError
	switch {
	case errors.As(err, &verr):
		respond(w, http.StatusBadRequest, map[string]interface{}{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCustomerNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
