package usecases

import (
	"context"
	"time"

	"sales-crm.backend/internal/domain/entities"
	"sales-crm.backend/internal/domain/repositories"
)

// TaskUsecase handles the task feed and task mutations
type TaskUsecase struct {
	taskRepo repositories.TaskRepository
}

// NewTaskUsecase creates a new task usecase
func NewTaskUsecase(taskRepo repositories.TaskRepository) *TaskUsecase {
	return &TaskUsecase{taskRepo: taskRepo}
}

// GetTodaysTasks returns the session user's tasks due today, ordered by the
// free-text time range then creation instant. The day window follows the
// host clock's timezone.
func (u *TaskUsecase) GetTodaysTasks(ctx context.Context, session entities.Session) ([]*entities.Task, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return u.taskRepo.ListDueBetween(ctx, session.UserID, start, end)
}

func (u *TaskUsecase) CreateTask(ctx context.Context, task *entities.Task) error {
	return u.taskRepo.Create(ctx, task)
}

func (u *TaskUsecase) GetTask(ctx context.Context, id uint) (*entities.Task, error) {
	return u.taskRepo.GetByID(ctx, id)
}

func (u *TaskUsecase) UpdateTask(ctx context.Context, task *entities.Task) error {
	return u.taskRepo.Update(ctx, task)
}

func (u *TaskUsecase) DeleteTask(ctx context.Context, id uint) error {
	return u.taskRepo.Delete(ctx, id)
}

// ToggleTaskCompletion flips the completed flag. A missing id raises
// NotFound, never a silent no-op.
func (u *TaskUsecase) ToggleTaskCompletion(ctx context.Context, id uint) error {
	return u.taskRepo.ToggleCompletion(ctx, id)
}

func (u *TaskUsecase) GetTasksForRelated(ctx context.Context, ref entities.RelatedRef) ([]*entities.Task, error) {
	return u.taskRepo.ListByRelated(ctx, ref)
}
