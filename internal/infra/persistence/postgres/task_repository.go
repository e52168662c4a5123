package postgres

import (
	"context"

	"github.com/PradyunT/kaizen-task/internal/domain/entity"
	domainerrors "github.com/PradyunT/kaizen-task/internal/domain/errors"
	"github.com/PradyunT/kaizen-task/internal/domain/repository"
	"github.com/PradyunT/kaizen-task/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskRepository implements the domain.TaskRepository interface using GORM.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

// Create persists a new task and fills in the store-assigned id.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.ID = taskM.ID

	return nil
}

// ListByOwner returns all tasks for an owner. Ordered by id so the shell
// sees a stable insertion order.
func (repo *taskRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel
	err := repo.db.WithContext(ctx).
		Where("user_email = ?", ownerEmail).
		Order("task_id").
		Find(&taskModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// FindByID retrieves a single task by its id.
func (repo *taskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	var taskM model.TaskModel
	err := repo.db.WithContext(ctx).
		Where("task_id = ?", id).
		First(&taskM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// Delete removes a task by id.
func (repo *taskRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("task_id = ?", id).
		Delete(&model.TaskModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// UpdateChecked sets the checked flag of a task.
func (repo *taskRepository) UpdateChecked(ctx context.Context, id int64, checked bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("task_id = ?", id).
		Update("checked", checked)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		OwnerEmail:  data.OwnerEmail,
		Title:       data.Title,
		Description: data.Description,
		Checked:     data.Checked,
		Date:        data.Date,
		Duration:    data.Duration,
		Priority:    data.Priority,
	}
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		OwnerEmail:  data.OwnerEmail,
		Title:       data.Title,
		Description: data.Description,
		Checked:     data.Checked,
		Date:        data.Date,
		Duration:    data.Duration,
		Priority:    data.Priority,
	}
}
