package dto

import (
	domainerr "github.com/amirhossein-jamali/bitport/internal/domain/error"
)

// Response is the envelope every API answer is wrapped in
type Response struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message,omitempty"`
	Code       int           `json:"code,omitempty"`
	Data       any           `json:"data,omitempty"`
	User       *UserResponse `json:"user,omitempty"`
	Token      string        `json:"token,omitempty"`
	Pagination *Pagination   `json:"pagination,omitempty"`
}

// Pagination describes the window returned by history and search
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewErrorResponse maps a domain error to its status code and envelope
func NewErrorResponse(err error) (int, Response) {
	return domainerr.HTTPStatus(err), Response{
		Success: false,
		Message: domainerr.ClientMessage(err),
		Code:    domainerr.ErrorCode(err),
	}
}

// NewMessageResponse is a successful answer carrying only a message
func NewMessageResponse(message string) Response {
	return Response{Success: true, Message: message}
}
