package meetings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/blackos-labs/agency-backoffice/pkg/logging"
)

// Handler handles HTTP requests for meetings.
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new meetings handler.
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, logger: logger}
}

// List handles GET /api/meetings. With ?upcoming=true only non-completed
// future meetings are returned, soonest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list meetings", "error", err)
		writeJSON(w, http.StatusInternalServerError, []*Meeting{})
		return
	}
	if r.URL.Query().Get("upcoming") == "true" {
		all = Upcoming(all)
	}
	if all == nil {
		all = []*Meeting{}
	}
	writeJSON(w, http.StatusOK, all)
}

// Create handles POST /api/meetings.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to create meeting", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create meeting")
		return
	}

	h.logger.Info("meeting created", "id", m.ID, "lead_id", m.LeadID, "datetime", m.Datetime)
	writeJSON(w, http.StatusCreated, m)
}

// Patch handles PATCH /api/meetings/{id}. Only supplied fields are
// applied; nextMeetingDatetime also schedules a follow-up for the same
// lead within the same store transaction.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, "meeting not found")
		return
	}

	var req PatchMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, next, err := h.repo.Patch(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrMeetingNotFound) {
			writeError(w, http.StatusNotFound, "meeting not found")
			return
		}
		h.logger.Error("failed to patch meeting", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to update meeting")
		return
	}

	if next != nil {
		h.logger.Info("follow-up meeting created", "id", next.ID, "lead_id", next.LeadID)
	}
	writeJSON(w, http.StatusOK, PatchResponse{Meeting: updated, NextMeeting: next})
}

// Delete handles DELETE /api/meetings/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, "meeting not found")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrMeetingNotFound) {
			writeError(w, http.StatusNotFound, "meeting not found")
			return
		}
		h.logger.Error("failed to delete meeting", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete meeting")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
