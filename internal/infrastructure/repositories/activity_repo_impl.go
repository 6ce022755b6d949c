package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"sales-crm.backend/internal/domain/entities"
	"sales-crm.backend/internal/infrastructure/models"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *entities.Activity) error {
	m := r.toModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	activity.ID = m.ID
	activity.CreatedAt = m.CreatedAt
	return nil
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Activity, error) {
	var ms []models.Activity
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Activity, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ActivityRepository) ListByRelated(ctx context.Context, ref entities.RelatedRef) ([]*entities.Activity, error) {
	var ms []models.Activity
	err := r.db.WithContext(ctx).
		Where("related_to_type = ? AND related_to_id = ?", string(ref.Kind), ref.ID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Activity, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ActivityRepository) toEntity(m *models.Activity) *entities.Activity {
	e := &entities.Activity{
		ID:          m.ID,
		Type:        entities.ActivityType(m.Type),
		Title:       m.Title,
		Description: null.StringFromPtr(m.Description),
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	}
	if m.RelatedToType != nil && m.RelatedToID != nil {
		e.RelatedTo = &entities.RelatedRef{
			Kind: entities.RelatedKind(*m.RelatedToType),
			ID:   *m.RelatedToID,
		}
	}
	if m.Metadata != "" {
		e.Metadata = null.JSONFrom([]byte(m.Metadata))
	}
	return e
}

func (r *ActivityRepository) toModel(e *entities.Activity) *models.Activity {
	m := &models.Activity{
		ID:          e.ID,
		Type:        string(e.Type),
		Title:       e.Title,
		Description: e.Description.Ptr(),
		UserID:      e.UserID,
		Metadata:    "{}",
		CreatedAt:   e.CreatedAt,
	}
	if e.RelatedTo != nil {
		kind := string(e.RelatedTo.Kind)
		m.RelatedToType = &kind
		m.RelatedToID = &e.RelatedTo.ID
	}
	if e.Metadata.Valid {
		m.Metadata = string(e.Metadata.JSON)
	}
	return m
}
