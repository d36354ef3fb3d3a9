package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// logFielder is implemented by the domain's typed errors
type logFielder interface {
	LogFields() map[string]any
}

// respondError writes the error envelope. 5xx causes are logged here; the client only sees "Server error".
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status, resp := dto.NewErrorResponse(err)

	if status >= http.StatusInternalServerError {
		fields := map[string]any{
			"operation":  operation,
			"request_id": c.GetString(middleware.ContextRequestID),
			"error":      err.Error(),
			"error_code": domainerr.ErrorCode(err),
		}
		var lf logFielder
		if errors.As(err, &lf) {
			for k, v := range lf.LogFields() {
				fields[k] = v
			}
		}
		if userID, ok := middleware.UserID(c); ok {
			fields["user_id"] = userID
		}
		logger.Error("Request failed", fields)
		_ = c.Error(err)
	}

	c.JSON(status, resp)
}

// currentUser returns the authenticated user or answers 401
func currentUser(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(dto.NewErrorResponse(domainerr.ErrUnauthorized))
		return 0, false
	}
	return userID, true
}
