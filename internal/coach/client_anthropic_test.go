package coach

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func anthropicReply(text string) anthropicResponse {
	return anthropicResponse{
		ID:         "msg_test",
		Type:       "message",
		Role:       "assistant",
		Content:    []anthropicContentBlock{{Type: "text", Text: text}},
		StopReason: "end_turn",
	}
}

func TestAnthropicClientSendsMessagesRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/messages", r.URL.Path)
		require.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		require.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req anthropicRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "you are a coach", req.System)
		require.Len(t, req.Messages, 1)
		require.Equal(t, "user", req.Messages[0].Role)

		require.NoError(t, json.NewEncoder(w).Encode(anthropicReply("{\"plan\": true}")))
	}))
	defer server.Close()

	client := NewAnthropicClientWithConfig(ClientConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})

	got, err := client.CompleteWithSystem(context.Background(), "you are a coach", "make a plan")
	require.NoError(t, err)
	require.Equal(t, `{"plan": true}`, got)
}

func TestAnthropicClientRetriesRateLimits(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(anthropicReply("ok")))
	}))
	defer server.Close()

	client := NewAnthropicClientWithConfig(ClientConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Timeout: 10 * time.Second,
	})

	got, err := client.Complete(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "ok", got)
	require.Equal(t, int32(2), calls.Load())
}

func TestAnthropicClientFailsFastOnBadRequest(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewAnthropicClientWithConfig(ClientConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL,
	})

	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load())
}

func TestAnthropicClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	client := NewAnthropicClient("")
	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
}

func TestAnthropicConfigDefaultsApply(t *testing.T) {
	t.Parallel()

	client := NewAnthropicClientWithConfig(ClientConfig{APIKey: "sk-test"})
	require.Equal(t, DefaultAnthropicConfig("sk-test").Model, client.Model())
}
