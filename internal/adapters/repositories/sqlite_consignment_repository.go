package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"payment-analyzer-service/internal/domain"
)

// SQLite-backed implementation of the ConsignmentRepository port.
// Dates are stored as ISO-8601 day strings so range scans stay lexical.
type SqliteConsignmentRepository struct{ DB *sql.DB }

func NewSqliteConsignmentRepository(db *sql.DB) *SqliteConsignmentRepository {
	return &SqliteConsignmentRepository{DB: db}
}

// Return all recorded days in [from, to], inclusive.
func (s *SqliteConsignmentRepository) ListDays(ctx context.Context, from, to time.Time) ([]domain.DayRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite consignment repository: DB is nil")
	}

	query := `
	SELECT
		work_date,
		consignments
	FROM consignment_days
	WHERE work_date >= ? AND work_date <= ?
	ORDER BY work_date;
	`
	rows, err := s.DB.QueryContext(ctx, query, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list days: query consignment_days: %w", err)
	}
	defer rows.Close()

	records := make([]domain.DayRecord, 0, 31)
	for rows.Next() {
		var dateStr string
		var count int
		if err := rows.Scan(&dateStr, &count); err != nil {
			return nil, fmt.Errorf("list days: scan row: %w", err)
		}

		workDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("list days: stored date %q: %w", dateStr, err)
		}
		records = append(records, domain.DayRecord{WorkDate: workDate, Consignments: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list days: row iteration: %w", err)
	}

	return records, nil
}

// Insert or replace the record for a single day.
func (s *SqliteConsignmentRepository) UpsertDay(ctx context.Context, rec domain.DayRecord) error {
	if s.DB == nil {
		return errors.New("sqlite consignment repository: DB is nil")
	}

	if rec.WorkDate.IsZero() {
		return errors.New("upsert day: work date must be set")
	}

	if rec.Consignments < 0 {
		return fmt.Errorf("upsert day: consignments must be non-negative (got %d)", rec.Consignments)
	}

	query := `
	INSERT INTO consignment_days (work_date, consignments)
	VALUES (?, ?)
	ON CONFLICT (work_date) DO UPDATE
	SET consignments = excluded.consignments;
	`
	if _, err := s.DB.ExecContext(ctx, query, rec.WorkDate.Format("2006-01-02"), rec.Consignments); err != nil {
		return fmt.Errorf("upsert day: date=%s: %w", rec.WorkDate.Format("2006-01-02"), err)
	}

	return nil
}
