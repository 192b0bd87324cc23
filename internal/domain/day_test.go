package domain

import (
	"testing"
	"time"
)

func TestClassifyDay(t *testing.T) {
	// 2026-03-02 is a Monday.
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		weekday time.Weekday
		want    DayKind
	}{
		{"Sunday", time.Sunday, DayRest},
		{"Monday", time.Monday, DayMonday},
		{"Tuesday", time.Tuesday, DayWeekday},
		{"Wednesday", time.Wednesday, DayWeekday},
		{"Thursday", time.Thursday, DayWeekday},
		{"Friday", time.Friday, DayWeekday},
		{"Saturday", time.Saturday, DaySaturday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			daysToAdd := (int(tt.weekday) - int(monday.Weekday()) + 7) % 7
			date := monday.AddDate(0, 0, daysToAdd)

			if got := ClassifyDay(date); got != tt.want {
				t.Errorf("ClassifyDay(%v) = %v, want %v", tt.weekday, got, tt.want)
			}
		})
	}
}

func TestDayKindString(t *testing.T) {
	tests := []struct {
		kind DayKind
		want string
	}{
		{DayRest, "rest"},
		{DaySaturday, "saturday"},
		{DayMonday, "monday"},
		{DayWeekday, "weekday"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("DayKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
