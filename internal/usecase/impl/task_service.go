package impl

import (
	"context"
	"log/slog"

	"github.com/PradyunT/kaizen-task/internal/domain/entity"
	domainerrors "github.com/PradyunT/kaizen-task/internal/domain/errors"
	"github.com/PradyunT/kaizen-task/internal/domain/repository"
	"github.com/PradyunT/kaizen-task/internal/usecase"

	"github.com/pkg/errors"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	taskRepo repository.TaskRepository
	logger   *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(taskRepo repository.TaskRepository, logger *slog.Logger) usecase.TaskUsecase {
	return &taskService{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// Create inserts a new unchecked task for the authenticated owner. The
// payload's owner email must match the authenticated identity.
func (srv *taskService) Create(ctx context.Context, authEmail string, input *usecase.CreateTaskInput) (*entity.Task, error) {
	owner := normalizeEmail(input.UserEmail)
	if owner != normalizeEmail(authEmail) {
		srv.logger.Warn("Task creation rejected: owner mismatch",
			"authEmail", authEmail, "payloadEmail", input.UserEmail)

		return nil, domainerrors.ErrTaskOwnershipViolation.WrapMessage("task creation rejected")
	}

	task := &entity.Task{
		OwnerEmail:  owner,
		Title:       input.Title,
		Description: input.Description,
		Checked:     false,
		Date:        input.Date,
		Duration:    input.Duration,
		Priority:    input.Priority,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.logger.Error("Failed to create task", "owner", owner, "error", err.Error())

		return nil, errors.WithStack(err)
	}

	srv.logger.Debug("Task created", "owner", owner, "taskID", task.ID)

	return task, nil
}

// List returns the authenticated owner's tasks.
func (srv *taskService) List(ctx context.Context, authEmail string) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.ListByOwner(ctx, normalizeEmail(authEmail))
	if err != nil {
		srv.logger.Error("Failed to list tasks", "owner", authEmail, "error", err.Error())

		return nil, errors.WithStack(err)
	}

	return tasks, nil
}

// Delete removes a task after verifying the caller owns it. Deletion by id
// alone, without the ownership check, would let any authenticated identity
// remove anyone's task.
func (srv *taskService) Delete(ctx context.Context, taskID int64, authEmail string) error {
	if _, err := srv.loadOwned(ctx, taskID, authEmail); err != nil {
		return err
	}

	if err := srv.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return domainerrors.ErrTaskNotFound.WrapMessage("task already removed")
		}
		srv.logger.Error("Failed to delete task", "taskID", taskID, "error", err.Error())

		return errors.WithStack(err)
	}

	srv.logger.Debug("Task deleted", "taskID", taskID, "owner", authEmail)

	return nil
}

// ToggleChecked flips the checked flag after verifying ownership.
func (srv *taskService) ToggleChecked(ctx context.Context, taskID int64, authEmail string) (*entity.Task, error) {
	task, err := srv.loadOwned(ctx, taskID, authEmail)
	if err != nil {
		return nil, err
	}

	task.Checked = !task.Checked
	if err := srv.taskRepo.UpdateChecked(ctx, taskID, task.Checked); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task already removed")
		}
		srv.logger.Error("Failed to toggle task", "taskID", taskID, "error", err.Error())

		return nil, errors.WithStack(err)
	}

	return task, nil
}

// loadOwned fetches a task and enforces the ownership invariant: a missing
// id is NotFound, an id owned by a different identity is an ownership
// violation.
func (srv *taskService) loadOwned(ctx context.Context, taskID int64, authEmail string) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, domainerrors.ErrTaskNotFound.WrapMessage("task lookup failed")
		}
		srv.logger.Error("Failed to load task", "taskID", taskID, "error", err.Error())

		return nil, errors.WithStack(err)
	}

	if task.OwnerEmail != normalizeEmail(authEmail) {
		srv.logger.Warn("Task access rejected: owner mismatch",
			"taskID", taskID, "authEmail", authEmail)

		return nil, domainerrors.ErrTaskOwnershipViolation.WrapMessage("task access rejected")
	}

	return task, nil
}
