package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"stockpulse/db"
	"stockpulse/internal/config"
	"stockpulse/internal/handler"
	"stockpulse/internal/repository"
	"stockpulse/internal/service"
	"stockpulse/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = db.EnsureSchema(ctx, db.DB)
	cancel()
	if err != nil {
		log.Fatalf("error creating schema: %v", err)
	}

	var cache service.Cache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.ConnectRedis(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			slog.Warn("redis unavailable, summary cache disabled", "error", err)
		} else {
			defer db.CloseRedis()
			cache = db.NewRedisCache(db.Redis, cfg.SummaryCacheTTL)
		}
	}

	generator, err := llm.NewGenerator(cfg.LLM)
	if err != nil {
		log.Fatalf("error creating llm client: %v", err)
	}
	if cfg.LLM.Offline() {
		slog.Warn("no llm api key configured, using local fallback summaries", "provider", cfg.LLM.Provider)
	}

	stockRepo := repository.NewStockRepository(db.DB)
	stockHandler := handler.NewStockHandler(stockRepo)

	summarizer := service.NewSummarizer(stockRepo, generator, service.Options{
		Offline: cfg.LLM.Offline(),
		Timeout: cfg.LLM.Timeout,
		Cache:   cache,
	})
	summaryHandler := handler.NewSummaryHandler(summarizer)

	limiter := handler.NewRateLimiter(cfg.SummarizeRatePerMinute, cfg.SummarizeBurst)
	defer limiter.Stop()

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	allowedOrigins := []string{"http://localhost:5173"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Request-ID"},
	}))

	api := r.Group("/api/v1")
	api.GET("/stocks", stockHandler.GetStocks)
	api.GET("/kpis", stockHandler.GetKpis)
	api.POST("/summarize", limiter.Middleware(), summaryHandler.Summarize)

	r.GET("/health", stockHandler.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
