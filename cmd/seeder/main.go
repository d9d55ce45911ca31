package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"stockpulse/db"
	"stockpulse/internal/config"
	"stockpulse/internal/repository"
	"stockpulse/internal/seed"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	err = db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err = db.EnsureSchema(ctx, db.DB)
	if err != nil {
		log.Fatalf("error creating schema: %v", err)
	}

	repo := repository.NewStockRepository(db.DB)

	entries := seed.Generate(time.Now(), cfg.SeedDays, cfg.SeedValue)

	inserted, err := repo.SaveEntries(ctx, entries)
	if err != nil {
		log.Fatalf("error saving entries: %v", err)
	}

	total, err := repo.CountEntries(ctx)
	if err != nil {
		log.Fatalf("error counting entries: %v", err)
	}

	slog.Info("seed complete",
		"generated", len(entries),
		"inserted", inserted,
		"skipped", int64(len(entries))-inserted,
		"total", total,
	)
}
