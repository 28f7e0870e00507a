package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGroq(t *testing.T, apiKey string, handler http.HandlerFunc) *GroqAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewGroqAdapter(srv.Client(), GroqConfig{APIKey: apiKey, BaseURL: srv.URL + "/"})
}

func TestGroqComplete(t *testing.T) {
	var got groqRequest
	var auth, path string
	g := newTestGroq(t, "secret", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  ti:electron AND abs:learning \n"}},{"message":{"content":"ignored"}}]}`))
	})

	out, err := g.Complete(context.Background(), CompletionRequest{
		SystemInstruction: "rewrite",
		UserContent:       "electron learning",
		Temperature:       0.2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "/chat/completions", path)
	assert.Equal(t, "llama3-8b-8192", got.Model)
	assert.InDelta(t, 0.2, got.Temperature, 1e-9)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, groqMessage{Role: "system", Content: "rewrite"}, got.Messages[0])
	assert.Equal(t, groqMessage{Role: "user", Content: "electron learning"}, got.Messages[1])

	assert.Equal(t, "ti:electron AND abs:learning", out.Text)
	assert.Equal(t, "groq", out.Provider)
	assert.Equal(t, "llama3-8b-8192", out.Model)
}

func TestGroqCompleteWithoutKey(t *testing.T) {
	calls := 0
	g := newTestGroq(t, "", func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	assert.False(t, g.IsAvailable())
	_, err := g.Complete(context.Background(), CompletionRequest{UserContent: "x", Temperature: 0.5})
	assert.ErrorIs(t, err, models.ErrProviderUnavailable)
	assert.Zero(t, calls)
}

func TestGroqCompleteRejectsInvalidRequest(t *testing.T) {
	g := NewGroqAdapter(nil, GroqConfig{APIKey: "k"})

	_, err := g.Complete(context.Background(), CompletionRequest{UserContent: "  "})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = g.Complete(context.Background(), CompletionRequest{UserContent: "x", Temperature: 1.5})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestGroqCompleteErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"slow down"}}`, models.ErrProviderQuotaExceeded},
		{"quota in body", http.StatusBadRequest, `{"error":{"code":"insufficient_quota"}}`, models.ErrProviderQuotaExceeded},
		{"context too long", http.StatusBadRequest, `{"error":{"code":"context_length_exceeded"}}`, models.ErrInvalidArgument},
		{"payload too large", http.StatusRequestEntityTooLarge, `too large`, models.ErrInvalidArgument},
		{"server error", http.StatusBadGateway, `upstream`, models.ErrProviderUnavailable},
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"invalid key"}}`, models.ErrProviderUnavailable},
		{"empty choices", http.StatusOK, `{"choices":[]}`, models.ErrProviderUnavailable},
		{"bad json", http.StatusOK, `not json`, models.ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGroq(t, "k", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := g.Complete(context.Background(), CompletionRequest{UserContent: "x", Temperature: 0.7})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGroqCompleteTimeout(t *testing.T) {
	release := make(chan struct{})
	g := newTestGroq(t, "k", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := g.Complete(ctx, CompletionRequest{UserContent: "x", Temperature: 0.7})
	assert.ErrorIs(t, err, models.ErrTimeout)
}
