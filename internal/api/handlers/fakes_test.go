package handlers

import (
	"context"
	"time"

	"payment-analyzer-service/internal/domain"
)

var testRates = domain.RateTable{
	WeekdayRate:     1050,
	SaturdayRate:    1200,
	EarlyBonus:      500,
	AttendanceBonus: 300,
	UnloadingBonus:  400,
}

type fakeRateRepo struct {
	rates domain.RateTable
	err   error
}

func (f *fakeRateRepo) GetRateTable(ctx context.Context) (domain.RateTable, error) {
	return f.rates, f.err
}

func (f *fakeRateRepo) SaveRateTable(ctx context.Context, rt domain.RateTable) error {
	if f.err != nil {
		return f.err
	}
	f.rates = rt
	return nil
}

type fakeDayRepo struct {
	records []domain.DayRecord
	err     error
}

func (f *fakeDayRepo) ListDays(ctx context.Context, from, to time.Time) ([]domain.DayRecord, error) {
	if f.err != nil {
		return nil, f.err
	}

	out := make([]domain.DayRecord, 0, len(f.records))
	for _, rec := range f.records {
		if !rec.WorkDate.Before(from) && !rec.WorkDate.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeDayRepo) UpsertDay(ctx context.Context, rec domain.DayRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}
