package ports

import (
	"context"
	"payment-analyzer-service/internal/domain"
	"time"
)

// Port: a boundary for retrieving and recording per-day consignment counts.
type ConsignmentRepository interface {
	// Return all recorded days in [from, to], inclusive, ordered by date.
	ListDays(ctx context.Context, from, to time.Time) ([]domain.DayRecord, error)
	// Insert or replace the record for a single day.
	UpsertDay(ctx context.Context, rec domain.DayRecord) error
}
