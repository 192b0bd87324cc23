package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payment-analyzer-service/internal/adapters/presence"
	"payment-analyzer-service/internal/adapters/repositories"
	"payment-analyzer-service/internal/api"
	"payment-analyzer-service/internal/config"
	"payment-analyzer-service/internal/ports"
	"payment-analyzer-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/days.json")
	port := config.Get("PORT", "8080")
	redisAddr := os.Getenv("REDIS_ADDR")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and demo data on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	rateRepo := repositories.NewSqliteRateTableRepository(db)
	dayRepo := repositories.NewSqliteConsignmentRepository(db)

	if err := services.EnsureRateTable(context.Background(), rateRepo); err != nil {
		log.Fatal(err)
	}

	// The presence flag is shared across sessions via Redis when
	// configured; a single-process deployment falls back to memory.
	var presenceStore ports.PresenceStore
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		presenceStore = presence.NewRedisPresenceStore(client)
		log.Printf("Presence store backed by redis addr=%s", redisAddr)
	} else {
		presenceStore = presence.NewMemoryPresenceStore()
		log.Println("Presence store in memory (REDIS_ADDR not set)")
	}

	// Log presence changes so operators can follow the shared flag.
	updates, stopUpdates, err := presenceStore.Subscribe(context.Background())
	if err != nil {
		log.Fatalf("subscribe to presence updates: %v", err)
	}
	defer func() { _ = stopUpdates() }()
	go func() {
		for online := range updates {
			log.Printf("Presence changed online=%t", online)
		}
	}()

	router := api.NewRouter(rateRepo, dayRepo, presenceStore)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatalf("server error: %v", err)
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); errors.Is(err, os.ErrNotExist) {
		log.Printf("Seed file %q not found, skipping", seedPath)
		return nil
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
