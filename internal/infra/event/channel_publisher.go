// Package event implements the in-process auth event bridge between the
// service and the desktop shell. Events flow one way over a channel; the
// shell keeps its own view of the session and nothing is shared mutably
// across the boundary.
package event

import (
	"context"
	"log/slog"
	"sync"

	"github.com/PradyunT/kaizen-task/internal/domain/service"
)

// Buffer for a single slow consumer. Publishing never blocks the auth path;
// overflow drops the event and warns.
const defaultBufferSize = 16

// channelPublisher implements service.AuthEventPublisher on a buffered channel.
type channelPublisher struct {
	events    chan service.AuthEvent
	logger    *slog.Logger
	closeOnce sync.Once
}

// NewChannelPublisher is the constructor for channelPublisher.
func NewChannelPublisher(logger *slog.Logger) service.AuthEventPublisher {
	return &channelPublisher{
		events: make(chan service.AuthEvent, defaultBufferSize),
		logger: logger,
	}
}

// Publish emits an event without blocking. A full buffer means the shell
// stopped draining; the event is dropped rather than stalling a login.
func (p *channelPublisher) Publish(ctx context.Context, event service.AuthEvent) {
	select {
	case p.events <- event:
	default:
		p.logger.WarnContext(ctx, "auth event dropped, consumer not draining",
			slog.String("type", string(event.Type)),
			slog.String("email", event.Email),
		)
	}
}

// Events returns the stream consumed by the shell bridge.
func (p *channelPublisher) Events() <-chan service.AuthEvent {
	return p.events
}

// Close closes the event channel. Safe to call more than once.
func (p *channelPublisher) Close() error {
	p.closeOnce.Do(func() {
		close(p.events)
	})

	return nil
}
