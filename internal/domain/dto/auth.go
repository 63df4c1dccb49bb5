package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a warehouse user
// @Example {"email": "dock.lead@velofab.example", "password": "secret-pass"}
type LoginRequest struct {
	// Email is the user's email address.
	Email string `json:"email" binding:"required,email" example:"dock.lead@velofab.example"`
	// Password is the user's password.
	Password string `json:"password" binding:"required,min=6" example:"secret-pass"`
} // @name LoginRequest

// RegisterRequest represents the JSON request body for the register endpoint.
//
// @Description Request to register a new warehouse user
// @Example {"email": "dock.lead@velofab.example", "username": "dock-lead", "password": "secret-pass", "name": "M. van Dijk"}
type RegisterRequest struct {
	// Email is the user's email address.
	Email string `json:"email" binding:"required,email" example:"dock.lead@velofab.example"`
	// Username is the user's unique username.
	Username string `json:"username" binding:"required,min=3,max=30" example:"dock-lead"`
	// Password is the user's password (minimum 6 characters).
	Password string `json:"password" binding:"required,min=6" example:"secret-pass"`
	// Name is the user's full name (optional).
	Name string `json:"name,omitempty" example:"M. van Dijk"`
} // @name RegisterRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with JWT tokens
type LoginResponse struct {
	// Token is the JWT access token.
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// RefreshToken is the JWT refresh token.
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// User contains the authenticated user information.
	User UserResponse `json:"user"`
} // @name LoginResponse

// TokenPair holds the access and refresh tokens issued together.
// Lives here rather than in the service package to avoid an import cycle
// with the handlers.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// Claims carries the JWT payload for authenticated requests. The role is
// included so override writes can check for admin without a database read.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
	Role   string             `json:"role"`
}

// UserResponse represents user information in API responses.
type UserResponse struct {
	// Email is the user's email address.
	Email string `json:"email" example:"dock.lead@velofab.example"`
	// Name is the user's full name.
	Name string `json:"name,omitempty" example:"M. van Dijk"`
	// Role is the user's role (operator or admin).
	Role string `json:"role,omitempty" example:"operator"`
} // @name UserResponse

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < minPasswordLen {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

const minPasswordLen = 6

// Validate performs custom validation on the register request.
func (r *RegisterRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	switch n := len(r.Username); {
	case n == 0:
		return &ValidationError{Field: "username", Message: "username is required"}
	case n < 3:
		return &ValidationError{Field: "username", Message: "username must be at least 3 characters"}
	case n > 30:
		return &ValidationError{Field: "username", Message: "username must be at most 30 characters"}
	}
	if len(r.Password) < minPasswordLen {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}
