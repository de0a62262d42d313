package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blackos-labs/agency-backoffice/internal/auth"
	"github.com/blackos-labs/agency-backoffice/internal/leads"
	"github.com/blackos-labs/agency-backoffice/internal/meetings"
	"github.com/blackos-labs/agency-backoffice/internal/webui"
	"github.com/blackos-labs/agency-backoffice/pkg/logging"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.Default()
	cfg := &Config{
		Logger:          logger,
		LeadsHandler:    leads.NewHandler(leads.NewInMemoryRepository(), logger),
		MeetingsHandler: meetings.NewHandler(meetings.NewInMemoryRepository(), logger),
		AuthHandler:     auth.NewHandler(auth.NewInMemoryRepository(), testSecret, time.Hour, logger),
		Pages:           webui.NewHandler(),
		SessionSecret:   testSecret,
	}
	return New(cfg)
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestRouterLeadsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	payload := leads.CreateLeadRequest{
		Name:    "Router Test",
		Phone:   "9876543210",
		Source:  "Justdial",
		Handler: "Anas",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	listRR := httptest.NewRecorder()
	router.ServeHTTP(listRR, listReq)

	var list []map[string]any
	if err := json.NewDecoder(listRR.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0]["name"] != "Router Test" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestRouterMeetingsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	payload := meetings.CreateMeetingRequest{
		LeadID:   "1f9e26c9-5a88-4d0d-a2c5-49af45a93a20",
		Datetime: "2026-09-03T14:30:00Z",
		Notes:    "kickoff call",
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/meetings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}
}

func TestRouterAdminRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/admin", "/admin/leads", "/admin/meetings", "/admin/api/dashboard"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusSeeOther {
			t.Fatalf("%s: expected redirect %d, got %d", path, http.StatusSeeOther, rr.Code)
		}
		if got := rr.Header().Get("Location"); got != "/login" {
			t.Fatalf("%s: expected redirect to /login, got %q", path, got)
		}
	}
}

func TestRouterAdminWithSessionCookie(t *testing.T) {
	router := newTestRouter(t)

	// Sign up and log in through the API, then reuse the issued cookie.
	signupBody, _ := json.Marshal(auth.SignupRequest{Username: "anas", Email: "anas@blackos.example", Password: "hunter22"})
	signupReq := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewReader(signupBody))
	signupRR := httptest.NewRecorder()
	router.ServeHTTP(signupRR, signupReq)
	if signupRR.Code != http.StatusOK {
		t.Fatalf("signup failed: %d %s", signupRR.Code, signupRR.Body.String())
	}

	loginBody, _ := json.Marshal(auth.LoginRequest{Email: "anas@blackos.example", Password: "hunter22"})
	loginReq := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(loginBody))
	loginRR := httptest.NewRecorder()
	router.ServeHTTP(loginRR, loginReq)
	if loginRR.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", loginRR.Code, loginRR.Body.String())
	}

	cookies := loginRR.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/leads", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d with session, got %d", http.StatusOK, rr.Code)
	}
}

func TestRouterPublicPages(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/", "/login"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusOK, rr.Code)
		}
	}
}
