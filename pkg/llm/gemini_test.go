package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGeminiClient(Config{
		Provider: ProviderGemini,
		APIKey:   "test-key",
		BaseURL:  srv.URL,
	})
}

func TestGeminiGenerate(t *testing.T) {
	var gotPath, gotKey, gotPrompt string

	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var req geminiRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": "**Headline**\n• Apples up"}},
				}},
			},
		})
	})

	text, err := client.Generate(context.Background(), "the prompt")

	assert.Equal(t, nil, err)
	assert.Equal(t, "**Headline**\n• Apples up", text)
	assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "the prompt", gotPrompt)
}

func TestGeminiGenerate_NoCandidates(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	})

	text, err := client.Generate(context.Background(), "p")

	assert.Equal(t, nil, err)
	assert.Equal(t, NoSummaryText, text)
}

func TestGeminiGenerate_HTTPError(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	})

	_, err := client.Generate(context.Background(), "p")

	var te *TransportError
	assert.Equal(t, true, errors.As(err, &te))
	assert.Equal(t, http.StatusTooManyRequests, te.StatusCode)
	assert.Equal(t, `gemini HTTP 429 -> {"error":{"message":"quota exceeded"}}`, err.Error())
}

func TestGeminiGenerate_MalformedBody(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [`))
	})

	_, err := client.Generate(context.Background(), "p")

	var te *TransportError
	assert.Equal(t, true, errors.As(err, &te))
	assert.Equal(t, 0, te.StatusCode)
}

func TestGeminiGenerate_ContextDeadline(t *testing.T) {
	client := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, "p")

	assert.Equal(t, true, errors.Is(err, context.DeadlineExceeded))
}

func TestGeminiGenerate_ConfigTimeoutWithoutDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	client := NewGeminiClient(Config{APIKey: "k", BaseURL: srv.URL, Timeout: 20 * time.Millisecond})

	_, err := client.Generate(context.Background(), "p")

	var te *TransportError
	assert.Equal(t, true, errors.As(err, &te))
	assert.Equal(t, true, errors.Is(err, context.DeadlineExceeded))
}

func TestGeminiGenerate_CallerDeadlineWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"late but fine"}]}}]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewGeminiClient(Config{APIKey: "k", BaseURL: srv.URL, Timeout: 20 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	text, err := client.Generate(ctx, "p")

	assert.Equal(t, nil, err)
	assert.Equal(t, "late but fine", text)
}
