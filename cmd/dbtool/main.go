package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"payment-analyzer-service/internal/adapters/repositories"
	"payment-analyzer-service/internal/config"
	"payment-analyzer-service/internal/domain"
	"payment-analyzer-service/internal/platform/db"
	"payment-analyzer-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/days.json")
	if err := initAndSeed(pg, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(pg *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(pg); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	rateRepo := repositories.NewSQLRateTableRepository(pg)
	if err := services.EnsureRateTable(context.Background(), rateRepo); err != nil {
		return fmt.Errorf("default rates failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := seedDays(pg, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}

func seedDays(pg *sql.DB, seedPath string) error {
	bytes, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("seed days: read %q: %w", seedPath, err)
	}

	var data []repositories.DaySeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed days: parse json: %w", err)
	}

	repo := repositories.NewSQLConsignmentRepository(pg)
	ctx := context.Background()

	for i, item := range data {
		workDate, err := time.Parse("2006-01-02", strings.TrimSpace(item.Date))
		if err != nil {
			return fmt.Errorf("seed days: invalid date at index %d: %q", i+1, item.Date)
		}

		rec := domain.DayRecord{WorkDate: workDate, Consignments: item.Consignments}
		if err := repo.UpsertDay(ctx, rec); err != nil {
			return fmt.Errorf("seed days: %w", err)
		}
	}

	return nil
}
