package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  srv.Client(),
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	require.NoError(t, err)

	return NewGeminiAdapter(client, GeminiConfig{ChatModel: "gemini-test"})
}

func TestGeminiComplete(t *testing.T) {
	var path string
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"  Future work: scale up.\n"}]}}]}`))
	})

	out, err := g.Complete(context.Background(), CompletionRequest{
		SystemInstruction: "analyze",
		UserContent:       "paper text",
		Temperature:       0.7,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(path, "/models/gemini-test:generateContent"), path)
	assert.Equal(t, "Future work: scale up.", out.Text)
	assert.Equal(t, "gemini", out.Provider)
	assert.Equal(t, "gemini-test", out.Model)
}

func TestGeminiCompleteEmptyText(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"   "}]}}]}`))
	})

	out, err := g.Complete(context.Background(), CompletionRequest{UserContent: "x", Temperature: 0.2})
	require.NoError(t, err)
	assert.Empty(t, out.Text)
	assert.Equal(t, "gemini", out.Provider)
}

func TestGeminiCompleteQuotaExceeded(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exhausted","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := g.Complete(context.Background(), CompletionRequest{UserContent: "x", Temperature: 0.7})
	assert.ErrorIs(t, err, models.ErrProviderQuotaExceeded)
}

func TestGeminiCompleteWithoutClient(t *testing.T) {
	g := NewGeminiAdapter(nil, GeminiConfig{})

	assert.False(t, g.IsAvailable())
	assert.Equal(t, "gemini-2.0-flash", g.Model())

	_, err := g.Complete(context.Background(), CompletionRequest{UserContent: "x", Temperature: 0.7})
	assert.ErrorIs(t, err, models.ErrProviderUnavailable)
}

func TestClassifyGeminiAPIError(t *testing.T) {
	tests := []struct {
		name    string
		apiErr  genai.APIError
		wantErr error
	}{
		{"429", genai.APIError{Code: 429}, models.ErrProviderQuotaExceeded},
		{"resource exhausted", genai.APIError{Code: 400, Status: "RESOURCE_EXHAUSTED"}, models.ErrProviderQuotaExceeded},
		{"too large", genai.APIError{Code: 413}, models.ErrInvalidArgument},
		{"internal", genai.APIError{Code: 500, Status: "INTERNAL"}, models.ErrProviderUnavailable},
		{"forbidden", genai.APIError{Code: 403, Status: "PERMISSION_DENIED"}, models.ErrProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyGeminiAPIError(tt.apiErr), tt.wantErr)
		})
	}
}
