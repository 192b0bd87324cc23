package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"payment-analyzer-service/internal/domain"
	"payment-analyzer-service/internal/platform/obs"
)

// SQLConsignmentRepository is a Postgres-backed ConsignmentRepository.
type SQLConsignmentRepository struct {
	DB *sql.DB
}

func NewSQLConsignmentRepository(db *sql.DB) *SQLConsignmentRepository {
	return &SQLConsignmentRepository{DB: db}
}

// Return all recorded days in [from, to], inclusive.
func (s *SQLConsignmentRepository) ListDays(ctx context.Context, from, to time.Time) (_ []domain.DayRecord, err error) {
	defer obs.Time(ctx, "days.repo.List")(&err)

	if s.DB == nil {
		return nil, errors.New("consignment repository: db is nil")
	}

	q := `
	SELECT work_date, consignments
    FROM consignment_days
    WHERE work_date >= $1
        AND work_date <= $2
	ORDER BY work_date;
	`

	rows, err := s.DB.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, fmt.Errorf("list days: query consignment_days table: %w", err)
	}
	defer rows.Close()

	records := make([]domain.DayRecord, 0, 31)
	for rows.Next() {
		var workDate time.Time
		var count int
		if err := rows.Scan(&workDate, &count); err != nil {
			return nil, fmt.Errorf("list days: scan rows: %w", err)
		}
		records = append(records, domain.DayRecord{WorkDate: workDate.UTC(), Consignments: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list days: row iteration: %w", err)
	}

	return records, nil
}

// Insert or replace the record for a single day.
func (s *SQLConsignmentRepository) UpsertDay(ctx context.Context, rec domain.DayRecord) (err error) {
	defer obs.Time(ctx, "days.repo.Upsert")(&err)

	if s.DB == nil {
		return errors.New("consignment repository: db is nil")
	}

	if rec.WorkDate.IsZero() {
		return errors.New("upsert day: work date must be set")
	}

	if rec.Consignments < 0 {
		return fmt.Errorf("upsert day: consignments must be non-negative (got %d)", rec.Consignments)
	}

	q := `
	INSERT INTO consignment_days (work_date, consignments)
    VALUES ($1, $2)
	ON CONFLICT (work_date) DO UPDATE
	SET consignments = EXCLUDED.consignments;
	`
	if _, err := s.DB.ExecContext(ctx, q, rec.WorkDate, rec.Consignments); err != nil {
		return fmt.Errorf("upsert day: date=%s: %w", rec.WorkDate.Format("2006-01-02"), err)
	}

	return nil
}
