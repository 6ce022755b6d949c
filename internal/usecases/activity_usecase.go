package usecases

import (
	"context"

	"sales-crm.backend/internal/domain/entities"
	"sales-crm.backend/internal/domain/repositories"
)

// ActivityUsecase handles the append-only interaction log
type ActivityUsecase struct {
	activityRepo repositories.ActivityRepository
}

// NewActivityUsecase creates a new activity usecase
func NewActivityUsecase(activityRepo repositories.ActivityRepository) *ActivityUsecase {
	return &ActivityUsecase{activityRepo: activityRepo}
}

// LogActivity appends an entry authored by the session user
func (u *ActivityUsecase) LogActivity(ctx context.Context, session entities.Session, activity *entities.Activity) error {
	activity.UserID = session.UserID
	return u.activityRepo.Create(ctx, activity)
}

// GetRecentActivities returns the newest entries, most recent first
func (u *ActivityUsecase) GetRecentActivities(ctx context.Context) ([]*entities.Activity, error) {
	return u.activityRepo.ListRecent(ctx, RecentActivitiesLimit)
}

func (u *ActivityUsecase) GetActivitiesForRelated(ctx context.Context, ref entities.RelatedRef) ([]*entities.Activity, error) {
	return u.activityRepo.ListByRelated(ctx, ref)
}
