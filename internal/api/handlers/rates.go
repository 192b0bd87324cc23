package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"payment-analyzer-service/internal/api/dto"
	"payment-analyzer-service/internal/domain"
	"payment-analyzer-service/internal/ports"
)

// RateHandler exposes the rule-table settings.
type RateHandler struct {
	Repo ports.RateTableRepository
}

func (h *RateHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.put(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *RateHandler) get(w http.ResponseWriter, r *http.Request) {
	rt, err := h.Repo.GetRateTable(r.Context())
	if err != nil {
		log.Printf("get rate table failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RateTableResponse{
		WeekdayRatePence:     int64(rt.WeekdayRate),
		SaturdayRatePence:    int64(rt.SaturdayRate),
		EarlyBonusPence:      int64(rt.EarlyBonus),
		AttendanceBonusPence: int64(rt.AttendanceBonus),
		UnloadingBonusPence:  int64(rt.UnloadingBonus),
	})
}

func (h *RateHandler) put(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveRateTableRequest

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

	rt := domain.RateTable{
		WeekdayRate:     domain.Pence(req.WeekdayRatePence),
		SaturdayRate:    domain.Pence(req.SaturdayRatePence),
		EarlyBonus:      domain.Pence(req.EarlyBonusPence),
		AttendanceBonus: domain.Pence(req.AttendanceBonusPence),
		UnloadingBonus:  domain.Pence(req.UnloadingBonusPence),
	}

	if err := rt.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, "rates and bonuses must be non-negative")
		return
	}

	if err := h.Repo.SaveRateTable(r.Context(), rt); err != nil {
		log.Printf("save rate table failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RateTableResponse{
		WeekdayRatePence:     req.WeekdayRatePence,
		SaturdayRatePence:    req.SaturdayRatePence,
		EarlyBonusPence:      req.EarlyBonusPence,
		AttendanceBonusPence: req.AttendanceBonusPence,
		UnloadingBonusPence:  req.UnloadingBonusPence,
	})
}
