package repositories

import (
	"context"
	"time"

	"sales-crm.backend/internal/domain/entities"
)

// DealListOptions narrows and orders a per-stage deal listing. A zero Limit
// means no limit.
type DealListOptions struct {
	OwnerID *uint
	SortBy  entities.DealSort
	Limit   int
}

type DealRepository interface {
	Create(ctx context.Context, deal *entities.Deal) error
	GetByID(ctx context.Context, id uint) (*entities.Deal, error)
	Update(ctx context.Context, deal *entities.Deal) error
	Delete(ctx context.Context, id uint) error

	// UpdateStage moves a deal and bumps updated_at unconditionally, even
	// when the target stage equals the current one. Zero affected rows is a
	// not-found error.
	UpdateStage(ctx context.Context, id, stageID uint) error

	// ListByStage returns the stage's deals with owners joined.
	ListByStage(ctx context.Context, stageID uint, opts DealListOptions) ([]*entities.Deal, error)

	// SumValueByStage totals every deal in the stage, regardless of any
	// listing filter applied elsewhere.
	SumValueByStage(ctx context.Context, stageID uint) (float64, error)

	SumValueUpdatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (float64, error)
	CountUpdatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (int64, error)
	CountCreatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (int64, error)
	CountByStages(ctx context.Context, stageIDs []uint) (int64, error)
}
