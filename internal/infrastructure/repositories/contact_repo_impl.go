package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/infrastructure/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, contact *entities.Contact) error {
	if contact.Source == "" {
		contact.Source = entities.ContactSourceOther
	}
	if contact.Status == "" {
		contact.Status = entities.ContactStatusLead
	}
	m := r.toModel(contact)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	contact.ID = m.ID
	contact.CreatedAt = m.CreatedAt
	contact.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id uint) (*entities.Contact, error) {
	var m models.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ContactRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.Contact, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Contact{})
	if strings.TrimSpace(search) != "" {
		term := "%" + strings.TrimSpace(search) + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR company ILIKE ?", term, term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := query.Order("created_at DESC")
	if limit > 0 {
		listQuery = listQuery.Limit(limit).Offset(offset)
	}

	var ms []models.Contact
	if err := listQuery.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.Contact, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *ContactRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Contact, error) {
	var ms []models.Contact
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Contact, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ContactRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

func (r *ContactRepository) Update(ctx context.Context, contact *entities.Contact) error {
	updates := map[string]interface{}{
		"name":        contact.Name,
		"email":       contact.Email,
		"phone":       contact.Phone.Ptr(),
		"title":       contact.Title.Ptr(),
		"company":     contact.Company.Ptr(),
		"source":      contact.Source,
		"status":      string(contact.Status),
		"assigned_to": contact.AssignedTo.Ptr(),
		"updated_at":  time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Contact{}).
		Where("id = ?", contact.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes the contact row for good. Contacts are hard-deleted on
// explicit user action.
func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ContactRepository) toEntity(m *models.Contact) *entities.Contact {
	return &entities.Contact{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      null.StringFromPtr(m.Phone),
		Title:      null.StringFromPtr(m.Title),
		Company:    null.StringFromPtr(m.Company),
		Source:     m.Source,
		Status:     entities.ContactStatus(m.Status),
		AssignedTo: null.UintFromPtr(m.AssignedTo),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *ContactRepository) toModel(e *entities.Contact) *models.Contact {
	return &models.Contact{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone.Ptr(),
		Title:      e.Title.Ptr(),
		Company:    e.Company.Ptr(),
		Source:     e.Source,
		Status:     string(e.Status),
		AssignedTo: e.AssignedTo.Ptr(),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
