package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"payment-analyzer-service/internal/api/dto"
	"payment-analyzer-service/internal/domain"
	"payment-analyzer-service/internal/ports"
	"payment-analyzer-service/internal/services"
)

type EstimateHandler struct {
	Rates ports.RateTableRepository
}

// Estimate evaluates the expected payment for a single day and count.
// The rule table comes from the settings store; the response carries the
// structured breakdown plus a formatted total for display.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EstimateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
		return
	}

	rates, err := h.Rates.GetRateTable(r.Context())
	if err != nil {
		log.Printf("get rate table failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	breakdown, err := services.EvaluatePayment(date, req.Consignments, rates)
	if err != nil {
		if errors.Is(err, services.ErrNegativeCount) {
			writeError(w, r, http.StatusBadRequest, "consignments must be non-negative")
			return
		}
		log.Printf("evaluate payment failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.EstimateResponse{
		Date:               date.Format("2006-01-02"),
		DayKind:            domain.ClassifyDay(date).String(),
		Consignments:       req.Consignments,
		BasePayPence:       int64(breakdown.BasePay),
		BonusTotalPence:    int64(breakdown.BonusTotal),
		ExpectedTotalPence: int64(breakdown.ExpectedTotal),
		ExpectedTotal:      breakdown.ExpectedTotal.GBP(),
	}

	writeJSON(w, r, http.StatusOK, res)
}
