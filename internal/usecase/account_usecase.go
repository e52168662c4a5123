// Package usecase defines the application-layer interfaces and their
// input/output DTOs.
package usecase

import (
	"context"
)

// RegisterInput is the payload for a registration request.
type RegisterInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginInput is the payload for a login request.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput is the flat success body the desktop shell consumes after
// registration or login. The password hash is never part of it.
type AuthOutput struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	UserEmail    string `json:"user_email"`
	UserUsername string `json:"user_username"`
}

// AccountUsecase covers registration and credential authentication. Token
// issuance happens here, after the store succeeds; the store itself never
// issues tokens.
type AccountUsecase interface {
	// Register creates a new account and issues a session token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a session token. Unknown email
	// and wrong password are one client-visible outcome.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
