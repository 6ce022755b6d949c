package usecases_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"sales-crm.backend/internal/domain/entities"
	"sales-crm.backend/internal/domain/repositories"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *entities.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) GetByID(ctx context.Context, id uint) (*entities.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Contact), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.Contact, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Contact), args.Get(1).(int64), args.Error(2)
}

func (m *MockContactRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Contact, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Contact), args.Error(1)
}

func (m *MockContactRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *entities.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock StageRepository
type MockStageRepository struct {
	mock.Mock
}

func (m *MockStageRepository) Create(ctx context.Context, stage *entities.PipelineStage) error {
	args := m.Called(ctx, stage)
	return args.Error(0)
}

func (m *MockStageRepository) GetByID(ctx context.Context, id uint) (*entities.PipelineStage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PipelineStage), args.Error(1)
}

func (m *MockStageRepository) List(ctx context.Context) ([]*entities.PipelineStage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PipelineStage), args.Error(1)
}

func (m *MockStageRepository) ListIDsByKind(ctx context.Context, kind entities.StageKind) ([]uint, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// Mock DealRepository
type MockDealRepository struct {
	mock.Mock
}

func (m *MockDealRepository) Create(ctx context.Context, deal *entities.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

func (m *MockDealRepository) GetByID(ctx context.Context, id uint) (*entities.Deal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Deal), args.Error(1)
}

func (m *MockDealRepository) Update(ctx context.Context, deal *entities.Deal) error {
	args := m.Called(ctx, deal)
	return args.Error(0)
}

func (m *MockDealRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDealRepository) UpdateStage(ctx context.Context, id, stageID uint) error {
	args := m.Called(ctx, id, stageID)
	return args.Error(0)
}

func (m *MockDealRepository) ListByStage(ctx context.Context, stageID uint, opts repositories.DealListOptions) ([]*entities.Deal, error) {
	args := m.Called(ctx, stageID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Deal), args.Error(1)
}

func (m *MockDealRepository) SumValueByStage(ctx context.Context, stageID uint) (float64, error) {
	args := m.Called(ctx, stageID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockDealRepository) SumValueUpdatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (float64, error) {
	args := m.Called(ctx, stageIDs, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockDealRepository) CountUpdatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (int64, error) {
	args := m.Called(ctx, stageIDs, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealRepository) CountCreatedBetween(ctx context.Context, stageIDs []uint, from, to time.Time) (int64, error) {
	args := m.Called(ctx, stageIDs, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealRepository) CountByStages(ctx context.Context, stageIDs []uint) (int64, error) {
	args := m.Called(ctx, stageIDs)
	return args.Get(0).(int64), args.Error(1)
}

// Mock TaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entities.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uint) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *entities.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) ListDueBetween(ctx context.Context, userID uint, from, to time.Time) ([]*entities.Task, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByRelated(ctx context.Context, ref entities.RelatedRef) ([]*entities.Task, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Task), args.Error(1)
}

func (m *MockTaskRepository) ToggleCompletion(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *entities.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) ListRecent(ctx context.Context, limit int) ([]*entities.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListByRelated(ctx context.Context, ref entities.RelatedRef) ([]*entities.Activity, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Activity), args.Error(1)
}
