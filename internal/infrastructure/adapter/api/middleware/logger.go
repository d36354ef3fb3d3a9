package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger writes one access log line per request once the handler chain has finished.
// 5xx answers are logged as errors, 4xx as warnings.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		status := c.Writer.Status()
		entry := accessEntry(c, status, time.Since(began))

		switch statusClass(status) {
		case "5xx":
			logger.Error("HTTP request", entry)
		case "4xx":
			logger.Warn("HTTP request", entry)
		default:
			logger.Info("HTTP request", entry)
		}
	}
}

func accessEntry(c *gin.Context, status int, took time.Duration) map[string]any {
	entry := map[string]any{
		"request_id":   c.GetString(ContextRequestID),
		"method":       c.Request.Method,
		"path":         c.Request.URL.Path,
		"status":       status,
		"status_class": statusClass(status),
		"duration_ms":  took.Milliseconds(),
		"bytes":        c.Writer.Size(),
		"client_ip":    c.ClientIP(),
	}
	if route := c.FullPath(); route != "" {
		entry["route"] = route
	}
	if query := c.Request.URL.RawQuery; query != "" {
		entry["query"] = query
	}
	if userID, ok := UserID(c); ok {
		entry["user_id"] = userID
	}
	if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
		entry["errors"] = errs.Errors()
	}
	return entry
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
