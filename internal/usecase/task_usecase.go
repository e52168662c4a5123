package usecase

import (
	"context"

	"github.com/PradyunT/kaizen-task/internal/domain/entity"
)

// CreateTaskInput is the payload for task creation. UserEmail must match the
// authenticated identity; tasks are never created under someone else's name.
type CreateTaskInput struct {
	UserEmail   string  `json:"user_email" validate:"required,email"`
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	Date        *string `json:"date,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
}

// TaskUsecase covers ownership-scoped task operations. Every call takes the
// authenticated identity; a task is never visible to or mutable by a
// different identity.
type TaskUsecase interface {
	// Create inserts a new unchecked task for the authenticated owner.
	Create(ctx context.Context, authEmail string, input *CreateTaskInput) (*entity.Task, error)

	// List returns the authenticated owner's tasks.
	List(ctx context.Context, authEmail string) ([]*entity.Task, error)

	// Delete removes a task after verifying the caller owns it.
	Delete(ctx context.Context, taskID int64, authEmail string) error

	// ToggleChecked flips the checked flag after verifying ownership.
	ToggleChecked(ctx context.Context, taskID int64, authEmail string) (*entity.Task, error)
}
