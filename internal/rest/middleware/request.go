package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sppg-platform/billing/internal/types"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware attaches a unique id to every request for log
// correlation
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = types.GenerateUUIDWithPrefix("req")
	}

	c.Set("request_id", requestID)
	c.Writer.Header().Set(RequestIDHeader, requestID)
	c.Next()
}
