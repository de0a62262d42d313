package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/blackos-labs/agency-backoffice/pkg/logging"
)

// DashboardHandler serves the back-office overview metrics. It runs its
// counts through database/sql so reporting queries stay independent of the
// repositories.
type DashboardHandler struct {
	db     *sql.DB
	logger *logging.Logger
}

// DashboardResponse contains the overview numbers shown on /admin.
type DashboardResponse struct {
	TotalLeads   int64      `json:"totalLeads"`
	OpenMeetings int64      `json:"openMeetings"`
	NextMeeting  *time.Time `json:"nextMeeting"`
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(db *sql.DB, logger *logging.Logger) *DashboardHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardHandler{db: db, logger: logger}
}

// GetDashboard returns the overview metrics.
// GET /admin/api/dashboard
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		jsonError(w, "dashboard disabled", http.StatusServiceUnavailable)
		return
	}

	totalLeads, err := h.countLeads(r.Context())
	if err != nil {
		h.logger.Error("failed to count leads", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	openMeetings, err := h.countOpenMeetings(r.Context())
	if err != nil {
		h.logger.Error("failed to count meetings", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	nextMeeting, err := h.nextMeetingTime(r.Context())
	if err != nil {
		h.logger.Error("failed to find next meeting", "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := DashboardResponse{
		TotalLeads:   totalLeads,
		OpenMeetings: openMeetings,
		NextMeeting:  nextMeeting,
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *DashboardHandler) countLeads(ctx context.Context) (int64, error) {
	var n int64
	err := h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&n)
	return n, err
}

func (h *DashboardHandler) countOpenMeetings(ctx context.Context) (int64, error) {
	var n int64
	err := h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM meetings WHERE completed = false`).Scan(&n)
	return n, err
}

func (h *DashboardHandler) nextMeetingTime(ctx context.Context) (*time.Time, error) {
	var next sql.NullTime
	err := h.db.QueryRowContext(ctx,
		`SELECT MIN(datetime) FROM meetings WHERE completed = false AND datetime >= now()`,
	).Scan(&next)
	if err != nil {
		return nil, err
	}
	if !next.Valid {
		return nil, nil
	}
	t := next.Time.UTC()
	return &t, nil
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
