package middleware

import (
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

// ContextRequestID is the gin context key holding the request id
const ContextRequestID = "request_id"

// RequestID reuses the caller's X-Request-ID or generates one, echoes it on the
// response and attaches it to the request context so database logs can carry it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Header(HeaderRequestID, requestID)
		c.Set(ContextRequestID, requestID)
		c.Request = c.Request.WithContext(coreport.WithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}
