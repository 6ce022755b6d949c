package repositories

import (
	"context"
	"time"

	"sales-crm.backend/internal/domain/entities"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *entities.Contact) error
	GetByID(ctx context.Context, id uint) (*entities.Contact, error)
	List(ctx context.Context, search string, limit, offset int) ([]*entities.Contact, int64, error)
	ListRecent(ctx context.Context, limit int) ([]*entities.Contact, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	Update(ctx context.Context, contact *entities.Contact) error
	Delete(ctx context.Context, id uint) error
}
