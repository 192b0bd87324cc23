package services

import (
	"context"
	"fmt"

	"payment-analyzer-service/internal/ports"
)

// EnsureRateTable persists the current rule table through the repository.
// A fresh store reads back the defaults and writes them; an existing user
// override is re-saved unchanged. Idempotent, so both binaries run it on
// every start.
func EnsureRateTable(ctx context.Context, repo ports.RateTableRepository) error {
	rt, err := repo.GetRateTable(ctx)
	if err != nil {
		return fmt.Errorf("ensure rate table: %w", err)
	}

	if err := repo.SaveRateTable(ctx, rt); err != nil {
		return fmt.Errorf("ensure rate table: %w", err)
	}

	return nil
}
