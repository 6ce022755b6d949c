package repositories

import (
	"context"

	"sales-crm.backend/internal/domain/entities"
)

type ActivityRepository interface {
	// Create appends a log entry. Activities have no update or delete path.
	Create(ctx context.Context, activity *entities.Activity) error
	ListRecent(ctx context.Context, limit int) ([]*entities.Activity, error)
	ListByRelated(ctx context.Context, ref entities.RelatedRef) ([]*entities.Activity, error)
}
