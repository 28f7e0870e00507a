package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
	ErrorCodeKey    = "error_code"

	maxRequestIDLength = 128
)

// RequestID propagates the caller's X-Request-ID or generates one, stores it in
// the gin context and echoes it on the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" outside it
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if requestIDStr, ok := requestID.(string); ok {
			return requestIDStr
		}
	}
	return ""
}

// SetErrorCode records the machine-readable error code of a failed request
func SetErrorCode(c *gin.Context, code string) {
	c.Set(ErrorCodeKey, code)
}

// GetErrorCode returns the code stored by SetErrorCode
func GetErrorCode(c *gin.Context) string {
	if code, exists := c.Get(ErrorCodeKey); exists {
		if codeStr, ok := code.(string); ok {
			return codeStr
		}
	}
	return ""
}
