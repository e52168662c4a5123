package service

import (
	"context"
	"time"
)

// AuthEventType discriminates the auth events the service emits.
type AuthEventType string

const (
	AuthEventRegistered AuthEventType = "registered"
	AuthEventLoggedIn   AuthEventType = "logged_in"
)

// AuthEvent is emitted after a successful registration or login. The desktop
// shell consumes these to update its own session view; there is no shared
// mutable state across the service/shell boundary.
type AuthEvent struct {
	Type  AuthEventType `json:"type"`
	Email string        `json:"email"`
	At    time.Time     `json:"at"`
}

// AuthEventPublisher defines the interface for emitting auth events.
type AuthEventPublisher interface {
	// Publish emits an event. It must never block the auth path.
	Publish(ctx context.Context, event AuthEvent)

	// Events returns the stream consumed by the shell bridge.
	Events() <-chan AuthEvent

	// Close releases the underlying channel.
	Close() error
}
