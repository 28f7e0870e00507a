package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Provider is the part of a search or completion client the probes look at
type Provider interface {
	Name() string
	IsAvailable() bool
}

// HealthHandler serves the liveness and readiness probes
type HealthHandler struct {
	search     Provider
	completion Provider
}

// NewHealthHandler creates the probe handler. Either provider may be nil.
func NewHealthHandler(search, completion Provider) *HealthHandler {
	return &HealthHandler{
		search:     search,
		completion: completion,
	}
}

// HealthResponse is the body of both probes
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Confirms the process is serving requests, without checking providers
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Reports whether the providers are configured. A missing search provider
// @Description is fatal (503); a missing LLM key only degrades the service, since web
// @Description search still works with verbatim queries.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	response := HealthResponse{
		Status:    "ready",
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if h.search != nil && h.search.IsAvailable() {
		response.Checks["search:"+h.search.Name()] = "ok"
	} else {
		response.Checks["search"] = "not_configured"
		response.Status = "not_ready"
		response.Error = "search provider not available"
	}

	if h.completion != nil && h.completion.IsAvailable() {
		response.Checks["llm:"+h.completion.Name()] = "ok"
	} else {
		name := "llm"
		if h.completion != nil {
			name += ":" + h.completion.Name()
		}
		response.Checks[name] = "not_configured"
		if response.Status == "ready" {
			response.Status = "degraded"
		}
	}

	statusCode := http.StatusOK
	if response.Status == "not_ready" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}
