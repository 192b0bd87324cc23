package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payment-analyzer-service/internal/adapters/presence"
	"payment-analyzer-service/internal/api/dto"
)

func TestPresenceHandlerRoundTrip(t *testing.T) {
	store := presence.NewMemoryPresenceStore()
	handler := &PresenceHandler{Store: store}

	req := httptest.NewRequest(http.MethodPut, "/presence", bytes.NewBufferString(`{"online": true}`))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/presence", nil)
	w = httptest.NewRecorder()

	handler.Handle(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res dto.PresenceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Online {
		t.Error("expected online after update")
	}
}

func TestPresenceHandlerRequiresOnlineField(t *testing.T) {
	handler := &PresenceHandler{Store: presence.NewMemoryPresenceStore()}

	req := httptest.NewRequest(http.MethodPut, "/presence", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPresenceHandlerMethodNotAllowed(t *testing.T) {
	handler := &PresenceHandler{Store: presence.NewMemoryPresenceStore()}

	req := httptest.NewRequest(http.MethodPost, "/presence", nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
