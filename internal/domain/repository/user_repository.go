// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/PradyunT/kaizen-task/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. Emails are expected lowercase; a
	// uniqueness violation on email surfaces as a duplicate-identity error.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a single user by their lowercase email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
