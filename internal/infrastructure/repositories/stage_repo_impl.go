package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/infrastructure/models"
)

type StageRepository struct {
	db *gorm.DB
}

func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db}
}

func (r *StageRepository) Create(ctx context.Context, stage *entities.PipelineStage) error {
	m := &models.PipelineStage{
		Name:      stage.Name,
		SortOrder: stage.Order,
		Color:     stage.Color,
		Kind:      string(stage.Kind),
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	stage.ID = m.ID
	stage.CreatedAt = m.CreatedAt
	return nil
}

func (r *StageRepository) GetByID(ctx context.Context, id uint) (*entities.PipelineStage, error) {
	var m models.PipelineStage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *StageRepository) List(ctx context.Context) ([]*entities.PipelineStage, error) {
	var ms []models.PipelineStage
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.PipelineStage, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *StageRepository) ListIDsByKind(ctx context.Context, kind entities.StageKind) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.PipelineStage{}).
		Where("kind = ?", string(kind)).
		Order("sort_order ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *StageRepository) toEntity(m *models.PipelineStage) *entities.PipelineStage {
	return &entities.PipelineStage{
		ID:        m.ID,
		Name:      m.Name,
		Order:     m.SortOrder,
		Color:     m.Color,
		Kind:      entities.StageKind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}
