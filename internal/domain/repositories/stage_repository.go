package repositories

import (
	"context"

	"sales-crm.backend/internal/domain/entities"
)

type StageRepository interface {
	Create(ctx context.Context, stage *entities.PipelineStage) error
	GetByID(ctx context.Context, id uint) (*entities.PipelineStage, error)
	// List returns stages ordered by their pipeline position, ascending.
	List(ctx context.Context) ([]*entities.PipelineStage, error)
	// ListIDsByKind resolves terminal/open stages without positional assumptions.
	ListIDsByKind(ctx context.Context, kind entities.StageKind) ([]uint, error)
}
