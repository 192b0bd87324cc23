package services

import (
	"context"
	"fmt"
	"time"

	"payment-analyzer-service/internal/domain"
	"payment-analyzer-service/internal/ports"
)

// Per-day read model behind the calendar view: the evaluated breakdown
// plus the note lines a day tooltip renders.
type DaySummary struct {
	Date         time.Time
	Kind         domain.DayKind
	Consignments int
	Breakdown    domain.Breakdown
	Notes        []string
}

type MonthSummary struct {
	Year  int
	Month time.Month
	Days  []DaySummary
	// Sum of expected totals over days with recorded deliveries.
	MonthTotal domain.Pence
}

// SummarizeMonth evaluates every calendar day of the given month.
//
// Days without a stored record count as zero consignments. The breakdown
// on such days still carries the accrued bonuses (evaluation is count
// independent for bonuses), but the notes report "no deliveries" and the
// day is excluded from the month total: earnings are only surfaced for
// days the driver actually worked.
func SummarizeMonth(
	ctx context.Context,
	year int,
	month time.Month,
	rateRepo ports.RateTableRepository,
	dayRepo ports.ConsignmentRepository,
) (MonthSummary, error) {
	if month < time.January || month > time.December {
		return MonthSummary{}, fmt.Errorf("summarize month: month must be 1-12 (got %d)", month)
	}

	rates, err := rateRepo.GetRateTable(ctx)
	if err != nil {
		return MonthSummary{}, fmt.Errorf("summarize month: get rate table: %w", err)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	records, err := dayRepo.ListDays(ctx, first, last)
	if err != nil {
		return MonthSummary{}, fmt.Errorf("summarize month: list days: %w", err)
	}

	counts := make(map[string]int, len(records))
	for _, rec := range records {
		counts[rec.WorkDate.Format("2006-01-02")] = rec.Consignments
	}

	summary := MonthSummary{
		Year:  year,
		Month: month,
		Days:  make([]DaySummary, 0, last.Day()),
	}

	for d := 0; d < last.Day(); d++ {
		date := first.AddDate(0, 0, d)
		count := counts[date.Format("2006-01-02")]

		breakdown, err := EvaluatePayment(date, count, rates)
		if err != nil {
			return MonthSummary{}, fmt.Errorf("summarize month: day %s: %w", date.Format("2006-01-02"), err)
		}

		kind := domain.ClassifyDay(date)
		summary.Days = append(summary.Days, DaySummary{
			Date:         date,
			Kind:         kind,
			Consignments: count,
			Breakdown:    breakdown,
			Notes:        dayNotes(kind, count, rates, breakdown),
		})

		if kind != domain.DayRest && count > 0 {
			summary.MonthTotal += breakdown.ExpectedTotal
		}
	}

	return summary, nil
}

// dayNotes derives the tooltip lines for one day.
// The wording mirrors what the calendar UI shows; amounts are formatted
// here so the presentation layer never does currency arithmetic.
func dayNotes(kind domain.DayKind, count int, rates domain.RateTable, b domain.Breakdown) []string {
	if kind == domain.DayRest {
		return []string{"Rest day"}
	}

	if count == 0 {
		return []string{"No deliveries recorded"}
	}

	rate := rates.WeekdayRate
	if kind == domain.DaySaturday {
		rate = rates.SaturdayRate
	}

	notes := []string{
		fmt.Sprintf("%s per consignment", rate.GBP()),
		fmt.Sprintf("Base pay: %s", b.BasePay.GBP()),
		fmt.Sprintf("Bonuses: %s", b.BonusTotal.GBP()),
	}

	switch kind {
	case domain.DayMonday:
		notes = append(notes, "No unloading bonus on Mondays")
	case domain.DaySaturday:
		notes = append(notes, "Saturday: unloading bonus only")
	}

	notes = append(notes, fmt.Sprintf("Expected total: %s", b.ExpectedTotal.GBP()))
	return notes
}
