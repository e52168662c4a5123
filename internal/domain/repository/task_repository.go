package repository

import (
	"context"
	"errors"

	"github.com/PradyunT/kaizen-task/internal/domain/entity"
)

// ErrTaskNotFound is a domain-specific error returned when a task is not found.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines the standard operations for task persistence.
// Ownership checks happen in the application layer; the repository only
// scopes list queries by owner.
type TaskRepository interface {
	// Create persists a new task and fills in the store-assigned id.
	Create(ctx context.Context, task *entity.Task) error

	// ListByOwner returns all tasks for an owner, ordered by id.
	ListByOwner(ctx context.Context, ownerEmail string) ([]*entity.Task, error)

	// FindByID retrieves a single task by its id.
	FindByID(ctx context.Context, id int64) (*entity.Task, error)

	// Delete removes a task by id.
	Delete(ctx context.Context, id int64) error

	// UpdateChecked sets the checked flag of a task.
	UpdateChecked(ctx context.Context, id int64, checked bool) error
}
