package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init postgres schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRateTablesQuery := `
	CREATE TABLE IF NOT EXISTS rate_tables (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		weekday_rate BIGINT NOT NULL,
		saturday_rate BIGINT NOT NULL,
		early_bonus BIGINT NOT NULL,
		attendance_bonus BIGINT NOT NULL,
		unloading_bonus BIGINT NOT NULL
	);
	`

	createConsignmentDaysQuery := `
	CREATE TABLE IF NOT EXISTS consignment_days (
		work_date DATE PRIMARY KEY,
		consignments INTEGER NOT NULL
	);
	`

	statements := []string{
		createRateTablesQuery,
		createConsignmentDaysQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init postgres schema: commit tx: %w", err)
	}

	return nil
}
