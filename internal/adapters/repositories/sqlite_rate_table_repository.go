package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"payment-analyzer-service/internal/domain"
)

// SQLite-backed implementation of the RateTableRepository port.
// The rule table is a single row; the defaults apply until the user
// saves an override.
type SqliteRateTableRepository struct{ DB *sql.DB }

func NewSqliteRateTableRepository(db *sql.DB) *SqliteRateTableRepository {
	return &SqliteRateTableRepository{DB: db}
}

// Return the stored rule table, or the defaults when none is stored.
func (s *SqliteRateTableRepository) GetRateTable(ctx context.Context) (domain.RateTable, error) {
	if s.DB == nil {
		return domain.RateTable{}, errors.New("sqlite rate table repository: DB is nil")
	}

	query := `
	SELECT
		weekday_rate,
		saturday_rate,
		early_bonus,
		attendance_bonus,
		unloading_bonus
	FROM rate_tables
	WHERE id = 1;
	`

	var rt domain.RateTable
	err := s.DB.QueryRowContext(ctx, query).Scan(
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
		return domain.RateTable{}, fmt.Errorf("get rate table: query rate_tables: %w", err)
	}

	return rt, nil
}

// Replace the stored rule table.
func (s *SqliteRateTableRepository) SaveRateTable(ctx context.Context, rt domain.RateTable) error {
	if s.DB == nil {
		return errors.New("sqlite rate table repository: DB is nil")
	}

	if err := rt.Validate(); err != nil {
		return fmt.Errorf("save rate table: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO rate_tables (
		id,
		weekday_rate,
		saturday_rate,
		early_bonus,
		attendance_bonus,
		unloading_bonus
	)
	VALUES (1, ?, ?, ?, ?, ?);
	`
	if _, err := s.DB.ExecContext(ctx, query, rt.WeekdayRate, rt.SaturdayRate, rt.EarlyBonus, rt.AttendanceBonus, rt.UnloadingBonus); err != nil {
		return fmt.Errorf("save rate table: upsert rate_tables: %w", err)
	}

	return nil
}
