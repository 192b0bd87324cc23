package domain

import "time"

// Classification of a calendar day for payment purposes.
// A DayKind is derived from day-of-week on every evaluation and is
// never stored.
type DayKind int

const (
	// Sunday: rest day, no work and no pay.
	DayRest DayKind = iota
	// Saturday: reduced-bonus day, Saturday rate, unloading bonus only.
	DaySaturday
	// Monday: weekday rate, exempt from the unloading bonus.
	DayMonday
	// Tuesday through Friday: weekday rate, all bonuses.
	DayWeekday
)

func (k DayKind) String() string {
	switch k {
	case DayRest:
		return "rest"
	case DaySaturday:
		return "saturday"
	case DayMonday:
		return "monday"
	default:
		return "weekday"
	}
}

// ClassifyDay maps a date's day-of-week to its DayKind.
// Total over all dates; only the weekday component of the date is read.
func ClassifyDay(date time.Time) DayKind {
	switch date.Weekday() {
	case time.Sunday:
		return DayRest
	case time.Saturday:
		return DaySaturday
	case time.Monday:
		return DayMonday
	default:
		return DayWeekday
	}
}
