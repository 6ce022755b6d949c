package repositories

import (
	"context"

	"sales-crm.backend/internal/domain/entities"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uint) (*entities.Team, error)
	List(ctx context.Context) ([]*entities.Team, error)
	AddMember(ctx context.Context, membership *entities.TeamMembership) error
	ListByUser(ctx context.Context, userID uint) ([]*entities.Team, error)
}
