// Package config reads the process configuration from the environment once
// at startup. Callers load .env with godotenv before calling Load.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"stockpulse/pkg/llm"
)

type Config struct {
	DatabaseURL string
	RedisURL    string
	Port        string
	FrontendURL string

	LLM             llm.Config
	SummaryCacheTTL time.Duration

	SummarizeRatePerMinute int
	SummarizeBurst         int

	SeedDays  int
	SeedValue int64
}

func Load() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		Port:        getenv("PORT", "8081"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}

	provider := strings.ToLower(getenv("LLM_PROVIDER", llm.ProviderGemini))
	cfg.LLM = llm.Config{Provider: provider}

	switch provider {
	case llm.ProviderGemini:
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		cfg.LLM.Model = getenv("GEMINI_MODEL", "gemini-1.5-flash")
		cfg.LLM.BaseURL = os.Getenv("GEMINI_BASE_URL")
	case llm.ProviderOpenAI:
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		cfg.LLM.Model = os.Getenv("OPENAI_MODEL")
		cfg.LLM.BaseURL = os.Getenv("OPENAI_BASE_URL")
	case llm.ProviderAnthropic:
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		cfg.LLM.Model = os.Getenv("ANTHROPIC_MODEL")
		cfg.LLM.BaseURL = os.Getenv("ANTHROPIC_BASE_URL")
	default:
		return Config{}, fmt.Errorf("LLM_PROVIDER: unknown provider %q", provider)
	}

	var err error
	if cfg.LLM.Timeout, err = getDuration("LLM_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SummaryCacheTTL, err = getDuration("SUMMARY_CACHE_TTL", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.SummarizeRatePerMinute, err = getInt("SUMMARIZE_RATE_PER_MINUTE", 10); err != nil {
		return Config{}, err
	}
	if cfg.SummarizeBurst, err = getInt("SUMMARIZE_BURST", 3); err != nil {
		return Config{}, err
	}
	if cfg.SeedDays, err = getInt("SEED_DAYS", 90); err != nil {
		return Config{}, err
	}

	seed, err := getInt("SEED_VALUE", 42)
	if err != nil {
		return Config{}, err
	}
	cfg.SeedValue = int64(seed)

	return cfg, nil
}

func getenv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}

func getInt(key string, defaultValue int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must not be negative", key)
	}
	return n, nil
}
