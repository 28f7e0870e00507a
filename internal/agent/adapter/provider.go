package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SearchProvider returns papers for a query, in the provider's relevance order
type SearchProvider interface {
	Name() string
	IsAvailable() bool
	Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error)
}

// CompletionProvider returns the first completion choice for a prompt
type CompletionProvider interface {
	Name() string
	Model() string
	IsAvailable() bool
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

// CompletionRequest is a single system + user exchange
type CompletionRequest struct {
	SystemInstruction string
	UserContent       string
	Temperature       float64
}

// Validate checks the request before any outbound call
func (r CompletionRequest) Validate() error {
	if strings.TrimSpace(r.UserContent) == "" {
		return fmt.Errorf("%w: completion content is empty", models.ErrInvalidArgument)
	}
	if r.Temperature < 0 || r.Temperature > 1 {
		return fmt.Errorf("%w: temperature %.2f outside [0,1]", models.ErrInvalidArgument, r.Temperature)
	}
	return nil
}

// Completion is the trimmed text of the first choice
type Completion struct {
	Text     string
	Provider string
	Model    string
}

// maxResponseBytes caps how much of a provider response body is read
const maxResponseBytes = 8 << 20

// classifyTransportError maps a failed round trip to Timeout or ProviderUnavailable
func classifyTransportError(ctx context.Context, provider string, err error) error {
	if isTimeout(ctx, err) {
		return fmt.Errorf("%w: %s call abandoned: %v", models.ErrTimeout, provider, err)
	}
	return fmt.Errorf("%w: %s request failed: %v", models.ErrProviderUnavailable, provider, err)
}

func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// classifyCompletionStatus maps a non-2xx completion response to the error taxonomy
func classifyCompletionStatus(provider string, status int, body []byte) error {
	detail := strings.TrimSpace(string(body))
	lower := strings.ToLower(detail)
	switch {
	case status == http.StatusTooManyRequests,
		strings.Contains(lower, "insufficient_quota"),
		strings.Contains(lower, "rate_limit"),
		strings.Contains(lower, "rate limit"):
		return fmt.Errorf("%w: %s returned HTTP %d: %s", models.ErrProviderQuotaExceeded, provider, status, detail)
	case status == http.StatusRequestEntityTooLarge,
		strings.Contains(lower, "context_length_exceeded"):
		return fmt.Errorf("%w: prompt exceeds the %s context window: %s", models.ErrInvalidArgument, provider, detail)
	}
	return fmt.Errorf("%w: %s returned HTTP %d: %s", models.ErrProviderUnavailable, provider, status, detail)
}

// failSpan records err on the span and passes it through
func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, models.ErrorCode(err))
	return err
}
