package middleware

import (
	"strings"

	domainerr "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/amirhossein-jamali/bitport/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bitport/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key holding the authenticated user id
const ContextUserID = "user_id"

const bearerPrefix = "Bearer "

// Auth rejects requests without a valid bearer token and records the caller's id
func Auth(auth usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		principal, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !domainerr.IsAuthError(err) {
				logger.Error("Token verification failed", map[string]any{
					"request_id": c.GetString(ContextRequestID),
					"error":      err.Error(),
				})
			}
			c.AbortWithStatusJSON(dto.NewErrorResponse(err))
			return
		}

		c.Set(ContextUserID, principal.UserID)
		c.Next()
	}
}

// UserID returns the id Auth stored for the request
func UserID(c *gin.Context) (uint64, bool) {
	value, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := value.(uint64)
	return id, ok && id != 0
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
