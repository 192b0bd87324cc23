package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"payment-analyzer-service/internal/api/dto"
	"payment-analyzer-service/internal/ports"
	"payment-analyzer-service/internal/services"
)

type CalendarHandler struct {
	Rates ports.RateTableRepository
	Days  ports.ConsignmentRepository
}

// Month returns the evaluated summary for every day of the requested
// month, including the note lines the calendar tooltips render.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		writeError(w, r, http.StatusBadRequest, "year must be an integer between 2000 and 2100")
		return
	}

	month, err := strconv.Atoi(q.Get("month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, r, http.StatusBadRequest, "month must be an integer between 1 and 12")
		return
	}

	summary, err := services.SummarizeMonth(r.Context(), year, time.Month(month), h.Rates, h.Days)
	if err != nil {
		log.Printf("summarize month failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.CalendarResponse{
		Year:            summary.Year,
		Month:           int(summary.Month),
		MonthTotalPence: int64(summary.MonthTotal),
		MonthTotal:      summary.MonthTotal.GBP(),
		Days:            make([]dto.CalendarDayResponse, 0, len(summary.Days)),
	}

	for _, d := range summary.Days {
		res.Days = append(res.Days, dto.CalendarDayResponse{
			Date:               d.Date.Format("2006-01-02"),
			DayKind:            d.Kind.String(),
			Consignments:       d.Consignments,
			BasePayPence:       int64(d.Breakdown.BasePay),
			BonusTotalPence:    int64(d.Breakdown.BonusTotal),
			ExpectedTotalPence: int64(d.Breakdown.ExpectedTotal),
			Notes:              d.Notes,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
