package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"payment-analyzer-service/internal/api/dto"
	"payment-analyzer-service/internal/domain"
	"payment-analyzer-service/internal/ports"
)

// DayHandler records per-day consignment counts.
type DayHandler struct {
	Repo ports.ConsignmentRepository
}

func (h *DayHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.UpsertDayRequest

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

	if req.Consignments < 0 {
		writeError(w, r, http.StatusBadRequest, "consignments must be non-negative")
		return
	}

	rec := domain.DayRecord{WorkDate: date, Consignments: req.Consignments}
	if err := h.Repo.UpsertDay(r.Context(), rec); err != nil {
		log.Printf("upsert day failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.UpsertDayResponse{
		Date:         date.Format("2006-01-02"),
		Consignments: req.Consignments,
	})
}
