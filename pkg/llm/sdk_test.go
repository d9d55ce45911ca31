package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newSDKServer(t *testing.T, status int, body string, calls *int32) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL + "/"
}

func TestOpenAIGenerate(t *testing.T) {
	var calls int32
	url := newSDKServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-4o-mini",
		"choices": [{
			"index": 0,
			"finish_reason": "stop",
			"message": {"role": "assistant", "content": "**Headline**\n• Oranges steady"}
		}]
	}`, &calls)

	client := NewOpenAIClient(Config{APIKey: "k", BaseURL: url})
	text, err := client.Generate(context.Background(), "p")

	assert.Equal(t, nil, err)
	assert.Equal(t, "**Headline**\n• Oranges steady", text)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestOpenAIGenerate_ServerErrorNotRetried(t *testing.T) {
	var calls int32
	url := newSDKServer(t, http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`, &calls)

	client := NewOpenAIClient(Config{APIKey: "k", BaseURL: url})
	_, err := client.Generate(context.Background(), "p")

	var te *TransportError
	assert.Equal(t, true, errors.As(err, &te))
	assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
	assert.Equal(t, ProviderOpenAI, te.Provider)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAnthropicGenerate(t *testing.T) {
	var calls int32
	url := newSDKServer(t, http.StatusOK, `{
		"id": "msg_1",
		"type": "message",
		"role": "assistant",
		"model": "claude-haiku-4-5",
		"content": [{"type": "text", "text": "**Headline**\n• Bananas dipped"}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 10, "output_tokens": 5}
	}`, &calls)

	client := NewAnthropicClient(Config{APIKey: "k", BaseURL: url})
	text, err := client.Generate(context.Background(), "p")

	assert.Equal(t, nil, err)
	assert.Equal(t, "**Headline**\n• Bananas dipped", text)
}

func TestAnthropicGenerate_EmptyContent(t *testing.T) {
	var calls int32
	url := newSDKServer(t, http.StatusOK, `{
		"id": "msg_2",
		"type": "message",
		"role": "assistant",
		"model": "claude-haiku-4-5",
		"content": [],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 10, "output_tokens": 0}
	}`, &calls)

	client := NewAnthropicClient(Config{APIKey: "k", BaseURL: url})
	text, err := client.Generate(context.Background(), "p")

	assert.Equal(t, nil, err)
	assert.Equal(t, NoSummaryText, text)
}

func TestAnthropicGenerate_Overloaded(t *testing.T) {
	var calls int32
	url := newSDKServer(t, 529, `{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`, &calls)

	client := NewAnthropicClient(Config{APIKey: "k", BaseURL: url})
	_, err := client.Generate(context.Background(), "p")

	var te *TransportError
	assert.Equal(t, true, errors.As(err, &te))
	assert.Equal(t, 529, te.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
