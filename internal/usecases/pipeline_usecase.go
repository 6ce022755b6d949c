package usecases

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"sales-crm.backend/internal/domain/entities"
	"sales-crm.backend/internal/domain/repositories"
	"sales-crm.backend/pkg/cache"
	"sales-crm.backend/pkg/logger"
)

// PipelineUsecase shapes stage/deal data for the dashboard-overview and
// full-pipeline views, and applies stage transitions.
type PipelineUsecase struct {
	stageRepo    repositories.StageRepository
	dealRepo     repositories.DealRepository
	activityRepo repositories.ActivityRepository
	viewCache    *cache.Cache
}

// NewPipelineUsecase creates a new pipeline usecase. viewCache may be nil to
// disable caching.
func NewPipelineUsecase(
	stageRepo repositories.StageRepository,
	dealRepo repositories.DealRepository,
	activityRepo repositories.ActivityRepository,
	viewCache *cache.Cache,
) *PipelineUsecase {
	return &PipelineUsecase{
		stageRepo:    stageRepo,
		dealRepo:     dealRepo,
		activityRepo: activityRepo,
		viewCache:    viewCache,
	}
}

// GetPipelineOverview returns every stage with its 5 most-recently-updated
// deals. The stage total comes from a separate aggregate over ALL deals in
// the stage, not just the ones returned.
func (u *PipelineUsecase) GetPipelineOverview(ctx context.Context) ([]entities.StageColumn, error) {
	var cached []entities.StageColumn
	if u.viewCache != nil {
		if hit, err := u.viewCache.GetJSON(ctx, CacheKeyPipelineOverview, &cached); err == nil && hit {
			return cached, nil
		}
	}

	stages, err := u.stageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	columns := make([]entities.StageColumn, 0, len(stages))
	for _, stage := range stages {
		deals, err := u.dealRepo.ListByStage(ctx, stage.ID, repositories.DealListOptions{
			SortBy: entities.DealSortUpdatedDesc,
			Limit:  OverviewDealLimit,
		})
		if err != nil {
			return nil, err
		}

		total, err := u.dealRepo.SumValueByStage(ctx, stage.ID)
		if err != nil {
			return nil, err
		}

		columns = append(columns, entities.StageColumn{
			ID:         stage.ID,
			Name:       stage.Name,
			Color:      stage.Color,
			Order:      stage.Order,
			TotalValue: total,
			Deals:      toDealSummaries(deals),
		})
	}

	if u.viewCache != nil {
		if err := u.viewCache.SetJSON(ctx, CacheKeyPipelineOverview, columns); err != nil {
			logger.Warn(ctx, "failed to cache pipeline overview", zap.Error(err))
		}
	}
	return columns, nil
}

// GetPipeline returns every stage with ALL its deals, optionally filtered to
// one owner. Stage totals are summed over the fetched (already filtered)
// deal set, so a filtered pipeline and the unfiltered overview will report
// different totals for the same stage.
func (u *PipelineUsecase) GetPipeline(ctx context.Context, filterUserID *uint, sortBy entities.DealSort) ([]entities.StageColumn, error) {
	stages, err := u.stageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	columns := make([]entities.StageColumn, 0, len(stages))
	for _, stage := range stages {
		deals, err := u.dealRepo.ListByStage(ctx, stage.ID, repositories.DealListOptions{
			OwnerID: filterUserID,
			SortBy:  sortBy,
		})
		if err != nil {
			return nil, err
		}

		var total float64
		for _, deal := range deals {
			total += deal.Value
		}

		columns = append(columns, entities.StageColumn{
			ID:         stage.ID,
			Name:       stage.Name,
			Color:      stage.Color,
			Order:      stage.Order,
			TotalValue: total,
			Deals:      toDealSummaries(deals),
		})
	}

	return columns, nil
}

// MoveDealStage reassigns a deal to a stage. The update is last-write-wins
// with no concurrency token; a same-stage move is accepted and still bumps
// updatedAt. Zero affected rows surfaces as NotFound.
func (u *PipelineUsecase) MoveDealStage(ctx context.Context, session entities.Session, dealID, newStageID uint) (*entities.Deal, error) {
	stage, err := u.stageRepo.GetByID(ctx, newStageID)
	if err != nil {
		return nil, err
	}

	if err := u.dealRepo.UpdateStage(ctx, dealID, newStageID); err != nil {
		return nil, err
	}

	deal, err := u.dealRepo.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}

	// The activity append and cache invalidation are fire-and-forget: the
	// stage move has already committed and is not rolled back if they fail.
	activity := &entities.Activity{
		Type:        entities.ActivityTypeUpdate,
		Title:       "Deal moved to " + stage.Name,
		Description: null.StringFrom(deal.Name),
		UserID:      session.UserID,
		RelatedTo:   &entities.RelatedRef{Kind: entities.RelatedKindDeal, ID: deal.ID},
	}
	if err := u.activityRepo.Create(ctx, activity); err != nil {
		logger.Warn(ctx, "failed to log stage move activity",
			zap.Uint("deal_id", dealID), zap.Error(err))
	}

	invalidateDashboard(ctx, u.viewCache)

	return deal, nil
}

func toDealSummaries(deals []*entities.Deal) []entities.DealSummary {
	summaries := make([]entities.DealSummary, 0, len(deals))
	for _, deal := range deals {
		summary := entities.DealSummary{
			ID:          deal.ID,
			Name:        deal.Name,
			Value:       deal.Value,
			Description: deal.Description.String,
			UpdatedAt:   deal.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if deal.Owner != nil {
			summary.Owner = entities.DealOwner{
				ID:        deal.Owner.ID,
				Name:      deal.Owner.Name,
				AvatarURL: deal.Owner.AvatarURL,
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// invalidateDashboard drops the cached aggregate views after a mutation so
// the next read recomputes them (invalidate-then-refetch, no patching).
func invalidateDashboard(ctx context.Context, viewCache *cache.Cache) {
	if viewCache == nil {
		return
	}
	if err := viewCache.Invalidate(ctx, CacheKeyDashboardMetrics, CacheKeyPipelineOverview); err != nil {
		logger.Warn(ctx, "failed to invalidate dashboard cache", zap.Error(err))
	}
}
