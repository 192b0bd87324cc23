package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRateTable marks tables rejected by Validate so callers can
// distinguish caller fault from storage failures.
var ErrInvalidRateTable = errors.New("invalid rate table")

// The numeric rule table behind payment evaluation: per-day-type rates
// and flat bonus amounts. Owned by the settings store and treated as
// read-only input; evaluation never mutates it.
type RateTable struct {
	WeekdayRate     Pence
	SaturdayRate    Pence
	EarlyBonus      Pence
	AttendanceBonus Pence
	UnloadingBonus  Pence
}

// DefaultRateTable is used until the user overrides the settings.
var DefaultRateTable = RateTable{
	WeekdayRate:     1050,
	SaturdayRate:    1200,
	EarlyBonus:      500,
	AttendanceBonus: 300,
	UnloadingBonus:  400,
}

// Validate rejects tables containing negative rates or bonuses.
func (rt RateTable) Validate() error {
	fields := []struct {
		name  string
		value Pence
	}{
		{"weekday_rate", rt.WeekdayRate},
		{"saturday_rate", rt.SaturdayRate},
		{"early_bonus", rt.EarlyBonus},
		{"attendance_bonus", rt.AttendanceBonus},
		{"unloading_bonus", rt.UnloadingBonus},
	}

	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative (got %d)", ErrInvalidRateTable, f.name, f.value)
		}
	}

	return nil
}
