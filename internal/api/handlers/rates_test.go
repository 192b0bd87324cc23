package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payment-analyzer-service/internal/api/dto"
)

func TestRateHandlerGet(t *testing.T) {
	handler := &RateHandler{Repo: &fakeRateRepo{rates: testRates}}

	req := httptest.NewRequest(http.MethodGet, "/rates", nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res dto.RateTableResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.WeekdayRatePence != 1050 {
		t.Errorf("weekday_rate_pence = %d, want 1050", res.WeekdayRatePence)
	}
	if res.SaturdayRatePence != 1200 {
		t.Errorf("saturday_rate_pence = %d, want 1200", res.SaturdayRatePence)
	}
}

func TestRateHandlerPut(t *testing.T) {
	repo := &fakeRateRepo{rates: testRates}
	handler := &RateHandler{Repo: repo}

	body := []byte(`{
		"weekday_rate_pence": 1100,
		"saturday_rate_pence": 1250,
		"early_bonus_pence": 500,
		"attendance_bonus_pence": 300,
		"unloading_bonus_pence": 400
	}`)

	req := httptest.NewRequest(http.MethodPut, "/rates", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if repo.rates.WeekdayRate != 1100 {
		t.Errorf("stored weekday rate = %d, want 1100", repo.rates.WeekdayRate)
	}
}

func TestRateHandlerPutRejectsNegative(t *testing.T) {
	handler := &RateHandler{Repo: &fakeRateRepo{rates: testRates}}

	body := []byte(`{
		"weekday_rate_pence": -1,
		"saturday_rate_pence": 1250,
		"early_bonus_pence": 500,
		"attendance_bonus_pence": 300,
		"unloading_bonus_pence": 400
	}`)

	req := httptest.NewRequest(http.MethodPut, "/rates", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRateHandlerMethodNotAllowed(t *testing.T) {
	handler := &RateHandler{Repo: &fakeRateRepo{rates: testRates}}

	req := httptest.NewRequest(http.MethodDelete, "/rates", nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
