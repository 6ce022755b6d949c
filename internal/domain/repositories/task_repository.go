package repositories

import (
	"context"
	"time"

	"sales-crm.backend/internal/domain/entities"
)

type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id uint) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id uint) error

	// ListDueBetween returns a user's tasks with a due date inside the
	// window, ordered by the free-text time field then creation instant.
	ListDueBetween(ctx context.Context, userID uint, from, to time.Time) ([]*entities.Task, error)
	ListByRelated(ctx context.Context, ref entities.RelatedRef) ([]*entities.Task, error)

	// ToggleCompletion flips the completed flag and bumps updated_at.
	// Zero affected rows is a not-found error, never a silent no-op.
	ToggleCompletion(ctx context.Context, id uint) error
}
