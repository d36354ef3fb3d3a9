package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/bitport/internal/domain/error"
	coreport "github.com/amirhossein-jamali/bitport/internal/domain/port/core"
)

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

// NormalizeEmail trims and lowercases an email so lookups and uniqueness ignore case
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword rejects passwords the hasher cannot take in full
func ValidatePassword(password string) error {
	if len(password) > MaxPasswordBytes {
		return errs.NewValidationError("password", "Password must be at most 72 bytes")
	}
	return nil
}

// User represents a registered account
type User struct {
	ID           uint64    // Unique identifier for the user
	Name         string    // Display name
	Email        string    // Login identifier, unique across users
	PasswordHash string    // bcrypt hash, never the plaintext
	CreatedAt    time.Time // When the user registered
}

// UserProfile is the public view of a user
type UserProfile struct {
	ID        uint64
	Name      string
	Email     string
	CreatedAt time.Time
}

// NewUser creates a user from already validated credentials
func NewUser(name, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || passwordHash == "" {
		return nil, errs.NewValidationError("", "All fields are required")
	}

	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// Profile strips the credential material from the user
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// Principal identifies the user behind an authenticated request
type Principal struct {
	UserID uint64
	Email  string
}
