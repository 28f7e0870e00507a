package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	middlewares "github.com/prefeitura-rio/app-research-agent/internal/middleware"
	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"go.uber.org/zap"
)

// StatusForError maps the error taxonomy to HTTP statuses
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidQuery), errors.Is(err, models.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotImplemented):
		return http.StatusNotImplemented
	case errors.Is(err, models.ErrProviderQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, models.ErrProviderUnavailable), errors.Is(err, models.ErrNormalizationFailed):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrTimeout):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// validationErrors carry messages written by this service, safe to show to callers
var validationErrors = []error{
	models.ErrPromptRequired,
	models.ErrPromptTooLong,
	models.ErrMaxResultsOutOfRange,
	models.ErrUnknownMode,
	errUploadTooLarge,
	errUnreadablePDF,
	errMissingFile,
}

var summaries = map[string]string{
	"invalid_argument":        "the request is invalid",
	"invalid_query":           "the search provider rejected the query",
	"not_implemented":         "this mode is not implemented yet",
	"provider_quota_exceeded": "the provider rate limit was reached, try again later",
	"normalization_failed":    "the query could not be normalized",
	"provider_unavailable":    "an upstream provider is unavailable",
	"timeout":                 "the request took too long to complete",
	"internal_error":          "internal server error",
}

// errorMessage returns a short summary that never includes provider response text
func errorMessage(err error) string {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return v.Error()
		}
	}
	return summaries[models.ErrorCode(err)]
}

// respondError logs the full error and writes the {error, message} body
func respondError(c *gin.Context, logger *zap.Logger, mode models.Mode, err error) {
	code := models.ErrorCode(err)
	status := StatusForError(err)

	middlewares.SetErrorCode(c, code)
	_ = c.Error(err)

	fields := []zap.Field{
		zap.Error(err),
		zap.String("error_code", code),
		zap.Int("status", status),
		zap.String("request_id", middlewares.GetRequestID(c)),
	}
	if mode != "" {
		fields = append(fields, zap.String("mode", string(mode)))
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
	} else {
		logger.Warn("request rejected", fields...)
	}

	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error:   code,
		Message: errorMessage(err),
	})
}
