package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	domainerr "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler turns a panic anywhere below it into the standard 500 envelope
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			logger.Error("Recovered from panic", map[string]any{
				"request_id": c.GetString(ContextRequestID),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"panic":      fmt.Sprint(recovered),
				"stack":      string(debug.Stack()),
			})

			if c.Writer.Written() {
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Response{
				Success: false,
				Message: domainerr.ClientMessage(domainerr.ErrInternalServer),
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			})
		}()

		c.Next()
	}
}
