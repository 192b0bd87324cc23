package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"payment-analyzer-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRateTablesQuery := `
	CREATE TABLE IF NOT EXISTS rate_tables (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		weekday_rate INTEGER NOT NULL,
		saturday_rate INTEGER NOT NULL,
		early_bonus INTEGER NOT NULL,
		attendance_bonus INTEGER NOT NULL,
		unloading_bonus INTEGER NOT NULL
	);
	`

	createConsignmentDaysQuery := `
	CREATE TABLE IF NOT EXISTS consignment_days (
		work_date TEXT PRIMARY KEY,
		consignments INTEGER NOT NULL
	);
	`

	statements := []string{
		createRateTablesQuery,
		createConsignmentDaysQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type DaySeed struct {
	Date         string `json:"date"`
	Consignments int    `json:"consignments"`
}

// Populate the database with consignment day records from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed days: read %q: %w", jsonPath, err)
	}

	var data []DaySeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed days: parse json: %w", err)
	}

	rows := make([]domain.DayRecord, 0, len(data))
	for i, item := range data {
		dateStr := strings.TrimSpace(item.Date)
		workDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("seed days: invalid date at index %d: %q", i+1, item.Date)
		}

		if item.Consignments < 0 {
			return fmt.Errorf("seed days: negative consignments at index %d: %d", i+1, item.Consignments)
		}
		rows = append(rows, domain.DayRecord{WorkDate: workDate, Consignments: item.Consignments})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed days: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO consignment_days (
		work_date,
		consignments
	)
	VALUES (?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed days: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range rows {
		if _, err := stmt.Exec(rec.WorkDate.Format("2006-01-02"), rec.Consignments); err != nil {
			return fmt.Errorf("seed days: insert date=%s: %w", rec.WorkDate.Format("2006-01-02"), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed days: commit tx: %w", err)
	}

	return nil
}
