package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"payment-analyzer-service/internal/api/dto"
)

func TestEstimateHandler(t *testing.T) {
	handler := &EstimateHandler{Rates: &fakeRateRepo{rates: testRates}}

	// 2026-03-04 is a Wednesday.
	body := []byte(`{"date": "2026-03-04", "consignments": 20}`)

	req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Estimate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var res dto.EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.DayKind != "weekday" {
		t.Errorf("day_kind = %q, want weekday", res.DayKind)
	}
	if res.BasePayPence != 21000 {
		t.Errorf("base_pay_pence = %d, want 21000", res.BasePayPence)
	}
	if res.BonusTotalPence != 1200 {
		t.Errorf("bonus_total_pence = %d, want 1200", res.BonusTotalPence)
	}
	if res.ExpectedTotalPence != 22200 {
		t.Errorf("expected_total_pence = %d, want 22200", res.ExpectedTotalPence)
	}
	if res.ExpectedTotal != "£222.00" {
		t.Errorf("expected_total = %q, want £222.00", res.ExpectedTotal)
	}
}

func TestEstimateHandlerMethodNotAllowed(t *testing.T) {
	handler := &EstimateHandler{Rates: &fakeRateRepo{rates: testRates}}

	req := httptest.NewRequest(http.MethodGet, "/estimates", nil)
	w := httptest.NewRecorder()

	handler.Estimate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestEstimateHandlerBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{invalid-json}`},
		{"unknown field", `{"date": "2026-03-04", "consignments": 1, "extra": true}`},
		{"bad date", `{"date": "04/03/2026", "consignments": 1}`},
		{"negative count", `{"date": "2026-03-04", "consignments": -3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &EstimateHandler{Rates: &fakeRateRepo{rates: testRates}}

			req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Estimate(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestEstimateHandlerSunday(t *testing.T) {
	handler := &EstimateHandler{Rates: &fakeRateRepo{rates: testRates}}

	// 2026-03-01 is a Sunday.
	body := []byte(`{"date": "2026-03-01", "consignments": 20}`)

	req := httptest.NewRequest(http.MethodPost, "/estimates", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Estimate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var res dto.EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.DayKind != "rest" {
		t.Errorf("day_kind = %q, want rest", res.DayKind)
	}
	if res.ExpectedTotalPence != 0 {
		t.Errorf("expected_total_pence = %d, want 0", res.ExpectedTotalPence)
	}
}
