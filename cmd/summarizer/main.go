package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"stockpulse/db"
	"stockpulse/internal/config"
	"stockpulse/internal/model"
	"stockpulse/internal/repository"
	"stockpulse/internal/service"
	"stockpulse/pkg/llm"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	today := model.FormatDate(time.Now())
	start := flag.String("start", model.FormatDate(time.Now().AddDate(0, 0, -30)), "first day of the range (YYYY-MM-DD)")
	end := flag.String("end", today, "last day of the range (YYYY-MM-DD)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	err = db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	generator, err := llm.NewGenerator(cfg.LLM)
	if err != nil {
		log.Fatalf("error creating llm client: %v", err)
	}

	summarizer := service.NewSummarizer(repository.NewStockRepository(db.DB), generator, service.Options{
		Offline: cfg.LLM.Offline(),
		Timeout: cfg.LLM.Timeout,
	})

	res := summarizer.Summarize(context.Background(), *start, *end)

	slog.Info("summary finished", "status", res.Status, "start", *start, "end", *end)
	fmt.Println(res.Text)

	if res.Status == model.StatusError {
		db.Close()
		os.Exit(1)
	}
}
