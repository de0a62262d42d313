package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/blackos-labs/agency-backoffice/pkg/logging"
)

// ListCache caches the full leads list between mutations.
type ListCache interface {
	Get(ctx context.Context) ([]*Lead, bool)
	Set(ctx context.Context, leads []*Lead)
	Invalidate(ctx context.Context)
}

// Notifier is told about newly created leads. Implementations must be
// best-effort; a notification failure never fails the request.
type Notifier interface {
	LeadCreated(ctx context.Context, lead *Lead)
}

// Handler handles HTTP requests for leads.
type Handler struct {
	repo     Repository
	cache    ListCache
	notifier Notifier
	logger   *logging.Logger
}

// NewHandler creates a new leads handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// WithCache attaches an optional list cache.
func (h *Handler) WithCache(c ListCache) *Handler {
	h.cache = c
	return h
}

// WithNotifier attaches an optional new-lead notifier.
func (h *Handler) WithNotifier(n Notifier) *Handler {
	h.notifier = n
	return h
}

// List handles GET /api/leads. A store failure degrades to an empty array
// with a 500 status so the admin table renders an empty state.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.cache != nil {
		if cached, ok := h.cache.Get(r.Context()); ok {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	all, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list leads", "error", err)
		writeJSON(w, http.StatusInternalServerError, []*Lead{})
		return
	}
	if all == nil {
		all = []*Lead{}
	}

	if h.cache != nil {
		h.cache.Set(r.Context(), all)
	}
	writeJSON(w, http.StatusOK, all)
}

// Create handles POST /api/leads.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create lead", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create lead")
		return
	}

	h.logger.Info("lead created", "id", lead.ID, "name", lead.Name)
	h.invalidate(r.Context())
	if h.notifier != nil {
		h.notifier.LeadCreated(r.Context(), lead)
	}

	writeJSON(w, http.StatusCreated, lead)
}

// Update handles PUT /api/leads/{id}. The patch is merged into the stored
// document; any client-supplied identifier is discarded.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, "lead not found")
		return
	}

	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.repo.Update(r.Context(), id, patch); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, "lead not found")
			return
		}
		h.logger.Error("failed to update lead", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to update lead")
		return
	}

	h.invalidate(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete handles DELETE /api/leads/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, "lead not found")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			writeError(w, http.StatusNotFound, "lead not found")
			return
		}
		h.logger.Error("failed to delete lead", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete lead")
		return
	}

	h.invalidate(r.Context())
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) invalidate(ctx context.Context) {
	if h.cache != nil {
		h.cache.Invalidate(ctx)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
