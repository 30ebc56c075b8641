package accounts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler exposes account HTTP endpoints.
type Handler struct{ svc *Service }

// NewHandler wires a handler to the account service.
func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// Register adds the account routes to r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/signup", h.Signup)
	r.Get("/accounts/{id}", h.GetAccount)
}

// Routes returns a chi.Router with all account routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	out := h.svc.Register(r.Context(), req)
	switch out.Kind {
	case Accepted:
		writeJSON(w, http.StatusOK, SignupResponse{AccountID: out.Account.ID})
	case Rejected:
		writeJSON(w, http.StatusUnprocessableEntity, RejectionResponse{Message: out.Code})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": ErrNotFound.Error()})
		return
	}
	a, err := h.svc.GetByID(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
