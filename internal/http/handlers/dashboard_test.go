package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/blackos-labs/agency-backoffice/pkg/logging"
)

func TestDashboardHandler(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	handler := NewDashboardHandler(db, logging.Default())

	next := time.Date(2026, 9, 3, 14, 30, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM leads").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM meetings WHERE completed = false").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	mock.ExpectQuery("SELECT MIN\\(datetime\\) FROM meetings").
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(next))

	req := httptest.NewRequest(http.MethodGet, "/admin/api/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.GetDashboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp DashboardResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TotalLeads != 42 {
		t.Fatalf("expected 42 leads, got %d", resp.TotalLeads)
	}
	if resp.OpenMeetings != 5 {
		t.Fatalf("expected 5 open meetings, got %d", resp.OpenMeetings)
	}
	if resp.NextMeeting == nil || !resp.NextMeeting.Equal(next) {
		t.Fatalf("expected next meeting %v, got %v", next, resp.NextMeeting)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDashboardHandlerNoUpcomingMeeting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	handler := NewDashboardHandler(db, logging.Default())

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM leads").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM meetings WHERE completed = false").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT MIN\\(datetime\\) FROM meetings").
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(nil))

	rec := httptest.NewRecorder()
	handler.GetDashboard(rec, httptest.NewRequest(http.MethodGet, "/admin/api/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var resp DashboardResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.NextMeeting != nil {
		t.Fatalf("expected no next meeting, got %v", resp.NextMeeting)
	}
}

func TestDashboardHandlerQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	handler := NewDashboardHandler(db, logging.Default())

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM leads").
		WillReturnError(errors.New("connection reset"))

	rec := httptest.NewRecorder()
	handler.GetDashboard(rec, httptest.NewRequest(http.MethodGet, "/admin/api/dashboard", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestDashboardHandlerDisabled(t *testing.T) {
	handler := NewDashboardHandler(nil, nil)

	rec := httptest.NewRecorder()
	handler.GetDashboard(rec, httptest.NewRequest(http.MethodGet, "/admin/api/dashboard", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}
