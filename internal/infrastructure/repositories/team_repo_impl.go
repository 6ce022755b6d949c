package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/infrastructure/models"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) error {
	m := &models.Team{
		Name:  team.Name,
		Color: team.Color,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	team.ID = m.ID
	team.CreatedAt = m.CreatedAt
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id uint) (*entities.Team, error) {
	var m models.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *TeamRepository) List(ctx context.Context) ([]*entities.Team, error) {
	var ms []models.Team
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TeamRepository) AddMember(ctx context.Context, membership *entities.TeamMembership) error {
	m := &models.UserTeam{
		UserID:  membership.UserID,
		TeamID:  membership.TeamID,
		IsAdmin: membership.IsAdmin,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *TeamRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Team, error) {
	var ms []models.Team
	err := r.db.WithContext(ctx).
		Joins("JOIN user_teams ON user_teams.team_id = teams.id").
		Where("user_teams.user_id = ?", userID).
		Order("teams.name ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entities.Team, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *TeamRepository) toEntity(m *models.Team) *entities.Team {
	return &entities.Team{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
	}
}
