package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrInvalidQuery          = errors.New("search provider rejected the query")
	ErrProviderUnavailable   = errors.New("provider unavailable")
	ErrProviderQuotaExceeded = errors.New("provider quota exceeded")
	ErrNormalizationFailed   = errors.New("query normalization failed")
	ErrNotImplemented        = errors.New("mode not implemented")
	ErrTimeout               = errors.New("request timed out")
)

// Validation failures; all of them match ErrInvalidArgument.
var (
	ErrPromptRequired       = fmt.Errorf("%w: prompt is required", ErrInvalidArgument)
	ErrPromptTooLong        = fmt.Errorf("%w: prompt exceeds the maximum length", ErrInvalidArgument)
	ErrMaxResultsOutOfRange = fmt.Errorf("%w: max_results must be between %d and %d", ErrInvalidArgument, MinMaxResults, MaxMaxResults)
	ErrUnknownMode          = fmt.Errorf("%w: unknown mode", ErrInvalidArgument)
)

// ErrorCode maps an error to the machine-readable code sent to clients
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidQuery):
		return "invalid_query"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, ErrNotImplemented):
		return "not_implemented"
	case errors.Is(err, ErrProviderQuotaExceeded):
		return "provider_quota_exceeded"
	case errors.Is(err, ErrNormalizationFailed):
		return "normalization_failed"
	case errors.Is(err, ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	}
	return "internal_error"
}
