package services

import (
	"errors"
	"fmt"
	"time"

	"payment-analyzer-service/internal/domain"
)

// ErrNegativeCount rejects negative consignment counts instead of clamping
// them: silent coercion could mask a unit-conversion bug upstream.
var ErrNegativeCount = errors.New("consignment count must be non-negative")

// EvaluatePayment computes the expected payment for a single day.
//
// The base rate depends on the day kind: Sunday rests (rate 0), Saturday
// uses the Saturday rate, every other day the weekday rate. Bonuses are
// flat, all-or-nothing per day and independent of the consignment count:
// early and attendance apply Monday through Friday, unloading applies on
// every working day except Monday. Sunday accrues nothing.
//
// The arithmetic result is returned even when count is zero on a working
// day; suppressing that figure is a display decision, not an engine one.
func EvaluatePayment(date time.Time, count int, rates domain.RateTable) (domain.Breakdown, error) {
	if count < 0 {
		return domain.Breakdown{}, fmt.Errorf("evaluate payment: %w (got %d)", ErrNegativeCount, count)
	}

	if err := rates.Validate(); err != nil {
		return domain.Breakdown{}, fmt.Errorf("evaluate payment: %w", err)
	}

	var rate, bonuses domain.Pence

	switch domain.ClassifyDay(date) {
	case domain.DayRest:
		// rest day: rate and bonuses stay zero
	case domain.DaySaturday:
		rate = rates.SaturdayRate
		bonuses = rates.UnloadingBonus
	case domain.DayMonday:
		rate = rates.WeekdayRate
		bonuses = rates.EarlyBonus + rates.AttendanceBonus
	case domain.DayWeekday:
		rate = rates.WeekdayRate
		bonuses = rates.EarlyBonus + rates.AttendanceBonus + rates.UnloadingBonus
	}

	base := rate.Times(count)

	return domain.Breakdown{
		BasePay:       base,
		BonusTotal:    bonuses,
		ExpectedTotal: base + bonuses,
	}, nil
}
