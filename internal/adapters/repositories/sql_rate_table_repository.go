package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"payment-analyzer-service/internal/domain"
	"payment-analyzer-service/internal/platform/obs"
)

// SQLRateTableRepository is a Postgres-backed RateTableRepository.
type SQLRateTableRepository struct {
	DB *sql.DB
}

func NewSQLRateTableRepository(db *sql.DB) *SQLRateTableRepository {
	return &SQLRateTableRepository{DB: db}
}

// Return the stored rule table, or the defaults when none is stored.
func (s *SQLRateTableRepository) GetRateTable(ctx context.Context) (_ domain.RateTable, err error) {
	defer obs.Time(ctx, "rates.repo.Get")(&err)

	if s.DB == nil {
		return domain.RateTable{}, errors.New("rate table repository: db is nil")
	}

	q := `
	SELECT weekday_rate, saturday_rate, early_bonus, attendance_bonus, unloading_bonus
    FROM rate_tables
    WHERE id = 1;
	`

	var rt domain.RateTable
	err = s.DB.QueryRowContext(ctx, q).Scan(
		&rt.WeekdayRate,
		&rt.SaturdayRate,
		&rt.EarlyBonus,
		&rt.AttendanceBonus,
		&rt.UnloadingBonus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultRateTable, nil
	}
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("get rate table: query rate_tables table: %w", err)
	}

	return rt, nil
}

// Replace the stored rule table.
func (s *SQLRateTableRepository) SaveRateTable(ctx context.Context, rt domain.RateTable) (err error) {
	defer obs.Time(ctx, "rates.repo.Save")(&err)

	if s.DB == nil {
		return errors.New("rate table repository: db is nil")
	}

	if err := rt.Validate(); err != nil {
		return fmt.Errorf("save rate table: %w", err)
	}

	q := `
	INSERT INTO rate_tables (id, weekday_rate, saturday_rate, early_bonus, attendance_bonus, unloading_bonus)
    VALUES (1, $1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE
	SET weekday_rate = EXCLUDED.weekday_rate,
		saturday_rate = EXCLUDED.saturday_rate,
		early_bonus = EXCLUDED.early_bonus,
		attendance_bonus = EXCLUDED.attendance_bonus,
		unloading_bonus = EXCLUDED.unloading_bonus;
	`
	if _, err := s.DB.ExecContext(ctx, q, rt.WeekdayRate, rt.SaturdayRate, rt.EarlyBonus, rt.AttendanceBonus, rt.UnloadingBonus); err != nil {
		return fmt.Errorf("save rate table: upsert rate_tables table: %w", err)
	}

	return nil
}
