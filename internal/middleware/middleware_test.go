package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(logger *zap.Logger, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestTracing(), AccessLog(logger))
	r.GET("/test", handler)
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	var seen string
	r := newTestEngine(zap.NewNop(), func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	header := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, header)
	assert.Equal(t, header, seen)
	_, err := uuid.Parse(header)
	assert.NoError(t, err)
}

func TestRequestIDPropagated(t *testing.T) {
	r := newTestEngine(zap.NewNop(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestIDRejectsOversizedHeader(t *testing.T) {
	r := newTestEngine(zap.NewNop(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLength+1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestAccessLogLevels(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		errorCode string
		wantLevel zapcore.Level
	}{
		{"ok", http.StatusOK, "", zapcore.InfoLevel},
		{"bad request", http.StatusBadRequest, "invalid_argument", zapcore.WarnLevel},
		{"bad gateway", http.StatusBadGateway, "provider_unavailable", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			r := newTestEngine(zap.New(core), func(c *gin.Context) {
				if tt.errorCode != "" {
					SetErrorCode(c, tt.errorCode)
				}
				c.Status(tt.status)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			entries := logs.All()
			require.Len(t, entries, 1)
			entry := entries[0]
			assert.Equal(t, tt.wantLevel, entry.Level)

			fields := entry.ContextMap()
			assert.Equal(t, "/test", fields["path"])
			assert.EqualValues(t, tt.status, fields["status"])
			assert.Equal(t, w.Header().Get(RequestIDHeader), fields["request_id"])
			if tt.errorCode != "" {
				assert.Equal(t, tt.errorCode, fields["error_code"])
			} else {
				assert.NotContains(t, fields, "error_code")
			}
		})
	}
}
