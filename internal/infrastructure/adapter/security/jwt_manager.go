package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload: the standard claims plus the user identity
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64 `json:"userId"`
	Email  string `json:"email"`
}

// JWTManager issues and verifies HS256 tokens
type JWTManager struct {
	secret       []byte
	issuer       string
	ttl          time.Duration
	timeProvider coreport.TimeProvider
}

// NewJWTManager creates a token manager. The secret must not be empty.
func NewJWTManager(secret, issuer string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid token ttl: %s", ttl)
	}
	return &JWTManager{
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		timeProvider: timeProvider,
	}, nil
}

// Issue signs a token for the user that expires after the configured TTL
func (m *JWTManager) Issue(user *entity.User) (string, error) {
	now := m.timeProvider.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: user.ID,
		Email:  user.Email,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, issuer and expiry and returns the token's principal
func (m *JWTManager) Verify(tokenString string) (*entity.Principal, error) {
	claims := &Claims{}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.timeProvider.Now),
	}
	if m.issuer != "" {
		options = append(options, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidToken, err.Error())
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, errs.ErrInvalidToken
	}

	return &entity.Principal{UserID: claims.UserID, Email: claims.Email}, nil
}
