package auth

import (
	"context"

	"codeberg.org/codesage/server/codesage/users"
)

// the account operations the handlers need; satisfied by
// *users.Repository
type UserStore interface {
	Create(ctx context.Context, email, name, passwordHash string) (*users.User, error)
	FindByEmail(ctx context.Context, email string) (*users.User, error)
	FindByID(ctx context.Context, userID string) (*users.User, error)
	UpdateProfile(ctx context.Context, userID, name string) (*users.User, error)
}

// contains credentials for creating an account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// contains credentials for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// contains data for updating the current user's profile
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// carries a fresh token and the account it belongs to
type TokenResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}
