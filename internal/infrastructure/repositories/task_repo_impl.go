package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/infrastructure/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.Task) error {
	if task.Priority == "" {
		task.Priority = entities.TaskPriorityMedium
	}
	m := r.toModel(task)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	task.ID = m.ID
	task.CreatedAt = m.CreatedAt
	task.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint) (*entities.Task, error) {
	var m models.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TaskRepository) Update(ctx context.Context, task *entities.Task) error {
	var relType *string
	var relID *uint
	if task.RelatedTo != nil {
		kind := string(task.RelatedTo.Kind)
		relType = &kind
		relID = &task.RelatedTo.ID
	}

	updates := map[string]interface{}{
		"title":           task.Title,
		"description":     task.Description.Ptr(),
		"due_date":        task.DueDate.Ptr(),
		"time":            task.Time.Ptr(),
		"completed":       task.Completed,
		"priority":        string(task.Priority),
		"assigned_to":     task.AssignedTo,
		"related_to_type": relType,
		"related_to_id":   relID,
		"updated_at":      time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", task.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListDueBetween orders by the free-text time range, then creation instant.
// The time column sorts lexically, so "1:00 PM" sorts before "9:00 AM".
func (r *TaskRepository) ListDueBetween(ctx context.Context, userID uint, from, to time.Time) ([]*entities.Task, error) {
	var ms []models.Task
	err := r.db.WithContext(ctx).
		Where("assigned_to = ? AND due_date >= ? AND due_date <= ?", userID, from, to).
		Order("time ASC, created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Task, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TaskRepository) ListByRelated(ctx context.Context, ref entities.RelatedRef) ([]*entities.Task, error) {
	var ms []models.Task
	err := r.db.WithContext(ctx).
		Where("related_to_type = ? AND related_to_id = ?", string(ref.Kind), ref.ID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Task, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TaskRepository) ToggleCompletion(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"completed":  gorm.Expr("NOT completed"),
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

func (r *TaskRepository) toEntity(m *models.Task) *entities.Task {
	e := &entities.Task{
		ID:          m.ID,
		Title:       m.Title,
		Description: null.StringFromPtr(m.Description),
		DueDate:     null.TimeFromPtr(m.DueDate),
		Time:        null.StringFromPtr(m.Time),
		Completed:   m.Completed,
		Priority:    entities.TaskPriority(m.Priority),
		AssignedTo:  m.AssignedTo,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.RelatedToType != nil && m.RelatedToID != nil {
		e.RelatedTo = &entities.RelatedRef{
			Kind: entities.RelatedKind(*m.RelatedToType),
			ID:   *m.RelatedToID,
		}
	}
	return e
}

func (r *TaskRepository) toModel(e *entities.Task) *models.Task {
	m := &models.Task{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description.Ptr(),
		DueDate:     e.DueDate.Ptr(),
		Time:        e.Time.Ptr(),
		Completed:   e.Completed,
		Priority:    string(e.Priority),
		AssignedTo:  e.AssignedTo,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.RelatedTo != nil {
		kind := string(e.RelatedTo.Kind)
		m.RelatedToType = &kind
		m.RelatedToID = &e.RelatedTo.ID
	}
	return m
}
