package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/PradyunT/kaizen-task/internal/delivery/http/middleware"
	"github.com/PradyunT/kaizen-task/internal/delivery/http/response"
	"github.com/PradyunT/kaizen-task/internal/domain/entity"
	"github.com/PradyunT/kaizen-task/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TaskHandler holds dependencies for task-related handlers. All routes here
// sit behind the auth middleware; the authenticated identity comes from the
// request context, never from the client payload alone.
type TaskHandler struct {
	uc     usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler, injected by Fx.
func NewTaskHandler(uc usecase.TaskUsecase, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the owner's tasks as a bare JSON array. The path email must
// match the authenticated identity; listing someone else's tasks by path
// manipulation is an ownership violation.
func (h *TaskHandler) List(c echo.Context) error {
	authEmail, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	pathEmail := strings.ToLower(c.Param("email"))
	if pathEmail != authEmail {
		return response.Forbidden(c, "TASK_OWNERSHIP_VIOLATION", "You do not have access to these tasks")
	}

	tasks, err := h.uc.List(c.Request().Context(), authEmail)
	if err != nil {
		return errors.WithStack(err)
	}
	if tasks == nil {
		tasks = []*entity.Task{}
	}

	return c.JSON(http.StatusOK, tasks)
}

// Create inserts a new task for the authenticated owner.
func (h *TaskHandler) Create(c echo.Context) error {
	authEmail, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	var input *usecase.CreateTaskInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid task input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	task, err := h.uc.Create(c.Request().Context(), authEmail, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "Task created successfully")
}

// Delete removes a task owned by the authenticated identity.
func (h *TaskHandler) Delete(c echo.Context) error {
	authEmail, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	taskID, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "task_id must be a number")
	}

	if err := h.uc.Delete(c.Request().Context(), taskID, authEmail); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Task deleted successfully")
}

// Toggle flips the checked flag of a task owned by the authenticated identity.
func (h *TaskHandler) Toggle(c echo.Context) error {
	authEmail, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated identity")
	}

	taskID, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "task_id must be a number")
	}

	task, err := h.uc.ToggleChecked(c.Request().Context(), taskID, authEmail)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, task, "Task updated successfully")
}
