package ports

import (
	"context"
	"payment-analyzer-service/internal/domain"
)

// Port: a boundary for loading and storing the payment rule table.
// Implementations fall back to domain.DefaultRateTable until the user
// overrides the settings.
type RateTableRepository interface {
	// Return the current rule table.
	GetRateTable(ctx context.Context) (domain.RateTable, error)
	// Replace the stored rule table.
	SaveRateTable(ctx context.Context, rt domain.RateTable) error
}
