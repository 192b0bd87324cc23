package api

import (
	"net/http"

	"payment-analyzer-service/internal/api/handlers"
	"payment-analyzer-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	rates ports.RateTableRepository,
	days ports.ConsignmentRepository,
	presence ports.PresenceStore,
) http.Handler {
	mux := http.NewServeMux()

	estimateHandler := &handlers.EstimateHandler{Rates: rates}
	calendarHandler := &handlers.CalendarHandler{Rates: rates, Days: days}
	rateHandler := &handlers.RateHandler{Repo: rates}
	dayHandler := &handlers.DayHandler{Repo: days}
	presenceHandler := &handlers.PresenceHandler{Store: presence}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/estimates", estimateHandler.Estimate)
	mux.HandleFunc("/calendar", calendarHandler.Month)
	mux.HandleFunc("/rates", rateHandler.Handle)
	mux.HandleFunc("/days", dayHandler.Upsert)
	mux.HandleFunc("/presence", presenceHandler.Handle)

	return loggingMiddleware(mux)
}
