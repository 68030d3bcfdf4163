package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/healthkiosk/platform/internal/booking"
	"github.com/healthkiosk/platform/internal/http/handlers"
	"github.com/healthkiosk/platform/internal/session"
	"github.com/healthkiosk/platform/pkg/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.Default()
	kioskHandler := handlers.NewKioskHandler(
		session.NewMemoryKV(), booking.NewFinalizer(30), nil, logger, 0, 0)

	cfg := &Config{
		Logger: logger,
		Kiosk:  kioskHandler,
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

func TestRouterCatalogEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp handlers.CatalogResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode catalog response: %v", err)
	}
	if len(resp.Symptoms) == 0 || len(resp.TimeSlots) == 0 {
		t.Fatalf("expected non-empty catalog, got %d symptoms, %d slots",
			len(resp.Symptoms), len(resp.TimeSlots))
	}
}

func TestRouterKioskRoutesAreDeviceScoped(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(map[string]string{"language": "english"})
	req := httptest.NewRequest(http.MethodPost, "/kiosk/kiosk-a/language", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	// kiosk-b is untouched by kiosk-a's selection
	req = httptest.NewRequest(http.MethodGet, "/kiosk/kiosk-b/state", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	var state handlers.StateResponse
	if err := json.NewDecoder(rr.Body).Decode(&state); err != nil {
		t.Fatalf("failed to decode state response: %v", err)
	}
	if state.Language != "hindi" {
		t.Errorf("expected default language hindi, got %q", state.Language)
	}
	if state.Step != "language_select" {
		t.Errorf("expected step language_select, got %q", state.Step)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
