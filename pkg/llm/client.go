package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// NoSummaryText is returned when the provider answered without a candidate.
const NoSummaryText = "No summary returned."

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
	Model() string
}

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// Offline reports whether no credential is configured for the provider.
func (c Config) Offline() bool {
	return strings.TrimSpace(c.APIKey) == ""
}

// TransportError is a failed exchange with a provider: a non-2xx status,
// an unreachable endpoint or an unreadable body.
type TransportError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s HTTP %d -> %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewGenerator(cfg Config) (Generator, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderGemini:
		return NewGeminiClient(cfg), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	case ProviderAnthropic:
		return NewAnthropicClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}

// cleanNarrative trims whitespace and a surrounding code fence some models
// add despite being told not to.
func cleanNarrative(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") && strings.HasSuffix(content, "```") && len(content) >= 6 {
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimPrefix(content, "```markdown")
		content = strings.TrimPrefix(content, "```")
	}
	return strings.TrimSpace(content)
}
