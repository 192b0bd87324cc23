package domain

import (
	"errors"
	"testing"
)

func TestRateTableValidate(t *testing.T) {
	valid := RateTable{
		WeekdayRate:     1050,
		SaturdayRate:    1200,
		EarlyBonus:      500,
		AttendanceBonus: 300,
		UnloadingBonus:  400,
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (RateTable{}).Validate(); err != nil {
		t.Fatalf("zero table should be valid, got: %v", err)
	}

	tests := []struct {
		name  string
		table RateTable
	}{
		{"negative weekday rate", RateTable{WeekdayRate: -1}},
		{"negative saturday rate", RateTable{SaturdayRate: -1}},
		{"negative early bonus", RateTable{EarlyBonus: -1}},
		{"negative attendance bonus", RateTable{AttendanceBonus: -1}},
		{"negative unloading bonus", RateTable{UnloadingBonus: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalidRateTable) {
				t.Errorf("expected ErrInvalidRateTable, got: %v", err)
			}
		})
	}
}
