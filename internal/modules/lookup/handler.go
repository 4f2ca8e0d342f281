package lookup

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/appvendas/vendas-backend/internal/compose"
)

// Handler exposes the postal-code lookup endpoint.
type Handler struct{ client Client }

func NewHandler(client Client) *Handler { return &Handler{client: client} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/api/v1/lookup/cep/{cep}", h.lookupCEP) // GET /api/v1/lookup/cep/{cep}
}

func (h *Handler) lookupCEP(w http.ResponseWriter, r *http.Request) {
	addr, err := h.client.Lookup(r.Context(), chi.URLParam(r, "cep"))
	if err != nil {
		var verr *compose.ValidationError
		switch {
		case errors.As(err, &verr):
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, ErrNotFound):
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		default:
			// The lookup is a convenience; an unreachable service is a
			// gateway problem, not a client mistake.
			respond(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return
	}
	respond(w, http.StatusOK, addr)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
