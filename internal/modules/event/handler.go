package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/appvendas/vendas-backend/internal/compose"
)

// Handler exposes event HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/events", func(r chi.Router) {
		r.Post("/", h.create)         // POST   /api/v1/events
		r.Get("/", h.list)            // GET    /api/v1/events
		r.Delete("/{name}", h.delete) // DELETE /api/v1/events/{name}?confirm=true
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	e, err := h.service.Create(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, e)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, events)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	// Deleting an event drops all its sales; the explicit confirmation the
	// UI collects travels with the request.
	if r.URL.Query().Get("confirm") != "true" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "destructive operation: pass confirm=true"})
		return
	}
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid event name"})
		return
	}
	result, err := h.service.Delete(r.Context(), name)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, result)
}

func statusFor(err error) int {
	var verr *compose.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
