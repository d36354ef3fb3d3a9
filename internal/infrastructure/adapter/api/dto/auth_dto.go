package dto

import (
	"time"

	"github.com/amirhossein-jamali/bitport/internal/domain/entity"
)

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// NewUserResponse builds the login view, which omits the registration time
func NewUserResponse(profile entity.UserProfile) *UserResponse {
	return &UserResponse{
		ID:    profile.ID,
		Name:  profile.Name,
		Email: profile.Email,
	}
}

// NewProfileResponse builds the profile view
func NewProfileResponse(profile entity.UserProfile) *UserResponse {
	resp := NewUserResponse(profile)
	createdAt := profile.CreatedAt.UTC()
	resp.CreatedAt = &createdAt
	return resp
}
