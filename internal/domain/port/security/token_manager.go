package security

import (
	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
)

// TokenManager issues and verifies bearer tokens
type TokenManager interface {
	// Issue signs a token for the user
	Issue(user *entity.User) (string, error)
	// Verify returns the principal of a valid token or an error wrapping ErrInvalidToken
	Verify(token string) (*entity.Principal, error)
}
