package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/api"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/repository"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/worker"
)

func connectDB() (*sqlx.DB, error) {
	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	return sqlx.Connect("pgx", dbURL)
}

func main() {
	godotenv.Load(".env.dev")
	api.SetupGlobalHandler("schedule-notifier")

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		log.Fatal("NATS_URL environment variable is not set")
	}

	db, err := connectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewPostgresUserRepository(db)

	if err := worker.Start(natsURL, userRepo); err != nil {
		log.Fatalf("Failed to start worker: %v", err)
	}

	log.Println("Notifier started, waiting for schedule changes...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down notifier...")
}
