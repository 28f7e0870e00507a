package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name      string
	available bool
}

func (s stubProvider) Name() string      { return s.name }
func (s stubProvider) IsAvailable() bool { return s.available }

func TestLiveness(t *testing.T) {
	r := gin.New()
	r.GET("/liveness", NewHealthHandler(nil, nil).Liveness)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/liveness", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alive", resp.Status)
	assert.NotZero(t, resp.Timestamp)
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name       string
		search     Provider
		completion Provider
		wantStatus int
		wantState  string
		wantChecks map[string]string
	}{
		{
			name:       "all configured",
			search:     stubProvider{"arxiv", true},
			completion: stubProvider{"groq", true},
			wantStatus: http.StatusOK,
			wantState:  "ready",
			wantChecks: map[string]string{"search:arxiv": "ok", "llm:groq": "ok"},
		},
		{
			name:       "llm key missing",
			search:     stubProvider{"arxiv", true},
			completion: stubProvider{"gemini", false},
			wantStatus: http.StatusOK,
			wantState:  "degraded",
			wantChecks: map[string]string{"search:arxiv": "ok", "llm:gemini": "not_configured"},
		},
		{
			name:       "no search provider",
			search:     nil,
			completion: stubProvider{"groq", true},
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "not_ready",
			wantChecks: map[string]string{"search": "not_configured", "llm:groq": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/readiness", NewHealthHandler(tt.search, tt.completion).Readiness)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readiness", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantState, resp.Status)
			assert.Equal(t, tt.wantChecks, resp.Checks)
		})
	}
}
