package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/domain/repositories"
	"sales-crm.backend/internal/interfaces/http/middleware"
)

// withSession injects a resolved session the way SessionMiddleware would.
func withSession(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionKey, entities.Session{UserID: userID})
		c.Next()
	}
}

type userRepoStub struct {
	createFn        func(ctx context.Context, user *entities.User) error
	getByIDFn       func(ctx context.Context, id uint) (*entities.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*entities.User, error)
	listFn          func(ctx context.Context) ([]*entities.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) List(ctx context.Context) ([]*entities.User, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.User{}, nil
}

type teamRepoStub struct {
	createFn     func(ctx context.Context, team *entities.Team) error
	getByIDFn    func(ctx context.Context, id uint) (*entities.Team, error)
	listFn       func(ctx context.Context) ([]*entities.Team, error)
	addMemberFn  func(ctx context.Context, membership *entities.TeamMembership) error
	listByUserFn func(ctx context.Context, userID uint) ([]*entities.Team, error)
}

func (s *teamRepoStub) Create(ctx context.Context, team *entities.Team) error {
	if s.createFn != nil {
		return s.createFn(ctx, team)
	}
	return nil
}

func (s *teamRepoStub) GetByID(ctx context.Context, id uint) (*entities.Team, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *teamRepoStub) List(ctx context.Context) ([]*entities.Team, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.Team{}, nil
}

func (s *teamRepoStub) AddMember(ctx context.Context, membership *entities.TeamMembership) error {
	if s.addMemberFn != nil {
		return s.addMemberFn(ctx, membership)
	}
	return nil
}

func (s *teamRepoStub) ListByUser(ctx context.Context, userID uint) ([]*entities.Team, error) {
	if s.listByUserFn != nil {
		return s.listByUserFn(ctx, userID)
	}
	return []*entities.Team{}, nil
}

type stageRepoStub struct {
	createFn        func(ctx context.Context, stage *entities.PipelineStage) error
	getByIDFn       func(ctx context.Context, id uint) (*entities.PipelineStage, error)
	listFn          func(ctx context.Context) ([]*entities.PipelineStage, error)
	listIDsByKindFn func(ctx context.Context, kind entities.StageKind) ([]uint, error)
}

func (s *stageRepoStub) Create(ctx context.Context, stage *entities.PipelineStage) error {
	if s.createFn != nil {
		return s.createFn(ctx, stage)
	}
	return nil
}

func (s *stageRepoStub) GetByID(ctx context.Context, id uint) (*entities.PipelineStage, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *stageRepoStub) List(ctx context.Context) ([]*entities.PipelineStage, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []*entities.PipelineStage{}, nil
}

func (s *stageRepoStub) ListIDsByKind(ctx context.Context, kind entities.StageKind) ([]uint, error) {
	if s.listIDsByKindFn != nil {
		return s.listIDsByKindFn(ctx, kind)
	}
	return []uint{}, nil
}

type dealRepoStub struct {
	createFn      func(ctx context.Context, deal *entities.Deal) error
	getByIDFn     func(ctx context.Context, id uint) (*entities.Deal, error)
	updateFn      func(ctx context.Context, deal *entities.Deal) error
	deleteFn      func(ctx context.Context, id uint) error
	updateStageFn func(ctx context.Context, id, stageID uint) error
	listByStageFn func(ctx context.Context, stageID uint, opts repositories.DealListOptions) ([]*entities.Deal, error)
	sumByStageFn  func(ctx context.Context, stageID uint) (float64, error)
}

func (s *dealRepoStub) Create(ctx context.Context, deal *entities.Deal) error {
	if s.createFn != nil {
		return s.createFn(ctx, deal)
	}
	return nil
}

func (s *dealRepoStub) GetByID(ctx context.Context, id uint) (*entities.Deal, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *dealRepoStub) Update(ctx context.Context, deal *entities.Deal) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, deal)
	}
	return nil
}

func (s *dealRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *dealRepoStub) UpdateStage(ctx context.Context, id, stageID uint) error {
	if s.updateStageFn != nil {
		return s.updateStageFn(ctx, id, stageID)
	}
	return nil
}

func (s *dealRepoStub) ListByStage(ctx context.Context, stageID uint, opts repositories.DealListOptions) ([]*entities.Deal, error) {
	if s.listByStageFn != nil {
		return s.listByStageFn(ctx, stageID, opts)
	}
	return []*entities.Deal{}, nil
}

func (s *dealRepoStub) SumValueByStage(ctx context.Context, stageID uint) (float64, error) {
	if s.sumByStageFn != nil {
		return s.sumByStageFn(ctx, stageID)
	}
	return 0, nil
}

func (s *dealRepoStub) SumValueUpdatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (float64, error) {
	return 0, nil
}

func (s *dealRepoStub) CountUpdatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (int64, error) {
	return 0, nil
}

func (s *dealRepoStub) CountCreatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (int64, error) {
	return 0, nil
}

func (s *dealRepoStub) CountByStages(ctx context.Context, stageIDs []uint) (int64, error) {
	return 0, nil
}

type taskRepoStub struct {
	createFn        func(ctx context.Context, task *entities.Task) error
	getByIDFn       func(ctx context.Context, id uint) (*entities.Task, error)
	updateFn        func(ctx context.Context, task *entities.Task) error
	deleteFn        func(ctx context.Context, id uint) error
	listDueFn       func(ctx context.Context, userID uint, from, to time.Time) ([]*entities.Task, error)
	listByRelatedFn func(ctx context.Context, ref entities.RelatedRef) ([]*entities.Task, error)
	toggleFn        func(ctx context.Context, id uint) error
}

func (s *taskRepoStub) Create(ctx context.Context, task *entities.Task) error {
	if s.createFn != nil {
		return s.createFn(ctx, task)
	}
	return nil
}

func (s *taskRepoStub) GetByID(ctx context.Context, id uint) (*entities.Task, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *taskRepoStub) Update(ctx context.Context, task *entities.Task) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, task)
	}
	return nil
}

func (s *taskRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *taskRepoStub) ListDueBetween(ctx context.Context, userID uint, from, to time.Time) ([]*entities.Task, error) {
	if s.listDueFn != nil {
		return s.listDueFn(ctx, userID, from, to)
	}
	return []*entities.Task{}, nil
}

func (s *taskRepoStub) ListByRelated(ctx context.Context, ref entities.RelatedRef) ([]*entities.Task, error) {
	if s.listByRelatedFn != nil {
		return s.listByRelatedFn(ctx, ref)
	}
	return []*entities.Task{}, nil
}

func (s *taskRepoStub) ToggleCompletion(ctx context.Context, id uint) error {
	if s.toggleFn != nil {
		return s.toggleFn(ctx, id)
	}
	return nil
}

type contactRepoStub struct {
	createFn     func(ctx context.Context, contact *entities.Contact) error
	getByIDFn    func(ctx context.Context, id uint) (*entities.Contact, error)
	listFn       func(ctx context.Context, search string, limit, offset int) ([]*entities.Contact, int64, error)
	listRecentFn func(ctx context.Context, limit int) ([]*entities.Contact, error)
	updateFn     func(ctx context.Context, contact *entities.Contact) error
	deleteFn     func(ctx context.Context, id uint) error
}

func (s *contactRepoStub) Create(ctx context.Context, contact *entities.Contact) error {
	if s.createFn != nil {
		return s.createFn(ctx, contact)
	}
	return nil
}

func (s *contactRepoStub) GetByID(ctx context.Context, id uint) (*entities.Contact, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *contactRepoStub) List(ctx context.Context, search string, limit, offset int) ([]*entities.Contact, int64, error) {
	if s.listFn != nil {
		return s.listFn(ctx, search, limit, offset)
	}
	return []*entities.Contact{}, 0, nil
}

func (s *contactRepoStub) ListRecent(ctx context.Context, limit int) ([]*entities.Contact, error) {
	if s.listRecentFn != nil {
		return s.listRecentFn(ctx, limit)
	}
	return []*entities.Contact{}, nil
}

func (s *contactRepoStub) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}

func (s *contactRepoStub) Update(ctx context.Context, contact *entities.Contact) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, contact)
	}
	return nil
}

func (s *contactRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type activityRepoStub struct {
	createFn        func(ctx context.Context, activity *entities.Activity) error
	listRecentFn    func(ctx context.Context, limit int) ([]*entities.Activity, error)
	listByRelatedFn func(ctx context.Context, ref entities.RelatedRef) ([]*entities.Activity, error)
}

func (s *activityRepoStub) Create(ctx context.Context, activity *entities.Activity) error {
	if s.createFn != nil {
		return s.createFn(ctx, activity)
	}
	return nil
}

func (s *activityRepoStub) ListRecent(ctx context.Context, limit int) ([]*entities.Activity, error) {
	if s.listRecentFn != nil {
		return s.listRecentFn(ctx, limit)
	}
	return []*entities.Activity{}, nil
}

func (s *activityRepoStub) ListByRelated(ctx context.Context, ref entities.RelatedRef) ([]*entities.Activity, error) {
	if s.listByRelatedFn != nil {
		return s.listByRelatedFn(ctx, ref)
	}
	return []*entities.Activity{}, nil
}
