package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/domain/repositories"
	"sales-crm.backend/internal/infrastructure/models"
)

type DealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

func (r *DealRepository) Create(ctx context.Context, deal *entities.Deal) error {
	if deal.Probability == 0 {
		deal.Probability = entities.DefaultProbability
	}
	m := r.toModel(deal)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	deal.ID = m.ID
	deal.CreatedAt = m.CreatedAt
	deal.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *DealRepository) GetByID(ctx context.Context, id uint) (*entities.Deal, error) {
	var m models.Deal
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *DealRepository) Update(ctx context.Context, deal *entities.Deal) error {
	updates := map[string]interface{}{
		"name":                deal.Name,
		"description":         deal.Description.Ptr(),
		"value":               deal.Value,
		"stage_id":            deal.StageID,
		"contact_id":          deal.ContactID,
		"owner_id":            deal.OwnerID,
		"expected_close_date": deal.ExpectedCloseDate.Ptr(),
		"probability":         deal.Probability,
		"updated_at":          time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Where("id = ?", deal.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *DealRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Deal{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStage is an unconditional last-write-wins move. Same-stage moves are
// accepted and still bump updated_at; callers that want to skip them must do
// so before issuing the request.
func (r *DealRepository) UpdateStage(ctx context.Context, id, stageID uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stage_id":   stageID,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *DealRepository) ListByStage(ctx context.Context, stageID uint, opts repositories.DealListOptions) ([]*entities.Deal, error) {
	query := r.db.WithContext(ctx).Preload("Owner").Where("stage_id = ?", stageID)
	if opts.OwnerID != nil {
		query = query.Where("owner_id = ?", *opts.OwnerID)
	}

	switch opts.SortBy {
	case entities.DealSortValueDesc:
		query = query.Order("value DESC")
	case entities.DealSortValueAsc:
		query = query.Order("value ASC")
	case entities.DealSortNameAsc:
		query = query.Order("name ASC")
	default:
		// Ties on updated_at resolve in whatever order the database returns
		// them; there is no secondary key.
		query = query.Order("updated_at DESC")
	}

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var ms []models.Deal
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Deal, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *DealRepository) SumValueByStage(ctx context.Context, stageID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Where("stage_id = ?", stageID).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error
	return total, err
}

func (r *DealRepository) SumValueUpdatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (float64, error) {
	if len(stageIDs) == 0 {
		return 0, nil
	}
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Where("stage_id IN ? AND updated_at >= ? AND updated_at < ?", stageIDs, from, to).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error
	return total, err
}

func (r *DealRepository) CountUpdatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (int64, error) {
	if len(stageIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Where("stage_id IN ? AND updated_at >= ? AND updated_at < ?", stageIDs, from, to).
		Count(&count).Error
	return count, err
}

func (r *DealRepository) CountCreatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (int64, error) {
	if len(stageIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Where("stage_id IN ? AND created_at >= ? AND created_at < ?", stageIDs, from, to).
		Count(&count).Error
	return count, err
}

func (r *DealRepository) CountByStages(ctx context.Context, stageIDs []uint) (int64, error) {
	if len(stageIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Deal{}).
		Where("stage_id IN ?", stageIDs).
		Count(&count).Error
	return count, err
}

func (r *DealRepository) toEntity(m *models.Deal) *entities.Deal {
	e := &entities.Deal{
		ID:                m.ID,
		Name:              m.Name,
		Description:       null.StringFromPtr(m.Description),
		Value:             m.Value,
		StageID:           m.StageID,
		ContactID:         m.ContactID,
		OwnerID:           m.OwnerID,
		ExpectedCloseDate: null.TimeFromPtr(m.ExpectedCloseDate),
		Probability:       m.Probability,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.Owner.ID != 0 {
		e.Owner = &entities.User{
			ID:        m.Owner.ID,
			Username:  m.Owner.Username,
			Name:      m.Owner.Name,
			Email:     m.Owner.Email,
			AvatarURL: m.Owner.AvatarURL,
			CreatedAt: m.Owner.CreatedAt,
		}
	}
	return e
}

func (r *DealRepository) toModel(e *entities.Deal) *models.Deal {
	return &models.Deal{
		ID:                e.ID,
		Name:              e.Name,
		Description:       e.Description.Ptr(),
		Value:             e.Value,
		StageID:           e.StageID,
		ContactID:         e.ContactID,
		OwnerID:           e.OwnerID,
		ExpectedCloseDate: e.ExpectedCloseDate.Ptr(),
		Probability:       e.Probability,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
