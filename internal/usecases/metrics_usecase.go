package usecases

import (
	"context"
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"
	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/domain/repositories"
	"sales-crm.backend/pkg/cache"
	"sales-crm.backend/pkg/logger"
)

// MetricsUsecase computes the dashboard KPI cards and the sales-performance
// series. All reads are non-atomic: each figure comes from its own query, so
// a snapshot can interleave with concurrent writes.
type MetricsUsecase struct {
	stageRepo   repositories.StageRepository
	dealRepo    repositories.DealRepository
	contactRepo repositories.ContactRepository
	viewCache   *cache.Cache
}

// NewMetricsUsecase creates a new metrics usecase. viewCache may be nil to
// disable caching.
func NewMetricsUsecase(
	stageRepo repositories.StageRepository,
	dealRepo repositories.DealRepository,
	contactRepo repositories.ContactRepository,
	viewCache *cache.Cache,
) *MetricsUsecase {
	return &MetricsUsecase{
		stageRepo:   stageRepo,
		dealRepo:    dealRepo,
		contactRepo: contactRepo,
		viewCache:   viewCache,
	}
}

// GetDashboardMetrics returns the KPI card values with month-over-month
// changes. Database errors propagate to the caller unmodified.
func (u *MetricsUsecase) GetDashboardMetrics(ctx context.Context) (*entities.DashboardMetrics, error) {
	var cached entities.DashboardMetrics
	if u.viewCache != nil {
		if hit, err := u.viewCache.GetJSON(ctx, CacheKeyDashboardMetrics, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	wonIDs, err := u.stageRepo.ListIDsByKind(ctx, entities.StageKindWon)
	if err != nil {
		return nil, err
	}
	lostIDs, err := u.stageRepo.ListIDsByKind(ctx, entities.StageKindLost)
	if err != nil {
		return nil, err
	}
	openIDs, err := u.stageRepo.ListIDsByKind(ctx, entities.StageKindOpen)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	currStart, nextStart := monthWindow(now)
	prevStart := currStart.AddDate(0, -1, 0)

	currRevenue, err := u.dealRepo.SumValueUpdatedBetween(ctx, wonIDs, currStart, nextStart)
	if err != nil {
		return nil, err
	}
	prevRevenue, err := u.dealRepo.SumValueUpdatedBetween(ctx, wonIDs, prevStart, currStart)
	if err != nil {
		return nil, err
	}

	activeDeals, err := u.dealRepo.CountByStages(ctx, openIDs)
	if err != nil {
		return nil, err
	}
	currActive, err := u.dealRepo.CountCreatedBetween(ctx, openIDs, currStart, nextStart)
	if err != nil {
		return nil, err
	}
	prevActive, err := u.dealRepo.CountCreatedBetween(ctx, openIDs, prevStart, currStart)
	if err != nil {
		return nil, err
	}

	currRate, err := u.conversionRate(ctx, wonIDs, lostIDs, currStart, nextStart)
	if err != nil {
		return nil, err
	}
	prevRate, err := u.conversionRate(ctx, wonIDs, lostIDs, prevStart, currStart)
	if err != nil {
		return nil, err
	}

	currContacts, err := u.contactRepo.CountCreatedBetween(ctx, currStart, nextStart)
	if err != nil {
		return nil, err
	}
	prevContacts, err := u.contactRepo.CountCreatedBetween(ctx, prevStart, currStart)
	if err != nil {
		return nil, err
	}

	metrics := &entities.DashboardMetrics{
		TotalRevenue:         currRevenue,
		TotalRevenueChange:   percentChange(currRevenue, prevRevenue),
		ActiveDeals:          activeDeals,
		ActiveDealsChange:    percentChange(float64(currActive), float64(prevActive)),
		ConversionRate:       currRate,
		ConversionRateChange: percentChange(currRate, prevRate),
		NewContacts:          currContacts,
		NewContactsChange:    percentChange(float64(currContacts), float64(prevContacts)),
	}

	if u.viewCache != nil {
		if err := u.viewCache.SetJSON(ctx, CacheKeyDashboardMetrics, metrics); err != nil {
			logger.Warn(ctx, "failed to cache dashboard metrics", zap.Error(err))
		}
	}
	return metrics, nil
}

// GetSalesPerformance returns the time-bucketed Closed-Won value series.
// Each bucket is summed by its own query; there is no incremental
// computation.
func (u *MetricsUsecase) GetSalesPerformance(ctx context.Context, period entities.PerformancePeriod) ([]entities.PerformancePoint, error) {
	wonIDs, err := u.stageRepo.ListIDsByKind(ctx, entities.StageKindWon)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	currStart, _ := monthWindow(now)

	var points []entities.PerformancePoint
	switch period {
	case entities.PeriodMonthly:
		// Last 8 calendar months, oldest first.
		for i := 7; i >= 0; i-- {
			start := currStart.AddDate(0, -i, 0)
			end := start.AddDate(0, 1, 0)
			value, err := u.dealRepo.SumValueUpdatedBetween(ctx, wonIDs, start, end)
			if err != nil {
				return nil, err
			}
			points = append(points, entities.PerformancePoint{
				Label: start.Format("Jan"),
				Value: value,
			})
		}
	case entities.PeriodQuarterly:
		// Four 3-month spans ending with the current month. Labels are
		// positional (Q1 = oldest), not calendar quarters.
		for i := 0; i < 4; i++ {
			start := currStart.AddDate(0, -2-3*(3-i), 0)
			end := start.AddDate(0, 3, 0)
			value, err := u.dealRepo.SumValueUpdatedBetween(ctx, wonIDs, start, end)
			if err != nil {
				return nil, err
			}
			points = append(points, entities.PerformancePoint{
				Label: "Q" + strconv.Itoa(i+1),
				Value: value,
			})
		}
	case entities.PeriodYearly:
		// Last 5 calendar years, oldest first.
		for i := 4; i >= 0; i-- {
			year := now.Year() - i
			start := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
			end := start.AddDate(1, 0, 0)
			value, err := u.dealRepo.SumValueUpdatedBetween(ctx, wonIDs, start, end)
			if err != nil {
				return nil, err
			}
			points = append(points, entities.PerformancePoint{
				Label: strconv.Itoa(year),
				Value: value,
			})
		}
	default:
		return nil, domainerrors.ErrUnknownPeriod
	}

	return points, nil
}

func (u *MetricsUsecase) conversionRate(ctx context.Context, wonIDs, lostIDs []uint, from, to time.Time) (float64, error) {
	wonCount, err := u.dealRepo.CountUpdatedBetween(ctx, wonIDs, from, to)
	if err != nil {
		return 0, err
	}
	lostCount, err := u.dealRepo.CountUpdatedBetween(ctx, lostIDs, from, to)
	if err != nil {
		return 0, err
	}
	closed := wonCount + lostCount
	if closed == 0 {
		return 0, nil
	}
	return float64(wonCount) / float64(closed) * 100, nil
}

// percentChange is the canonical month-over-month formula shared by every
// KPI: a zero previous value always yields 0, never an infinite or undefined
// change. Rounded to one decimal place.
func percentChange(curr, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return math.Round((curr-prev)/prev*100*10) / 10
}

// monthWindow returns [start of t's calendar month, start of the next month)
// in t's location. Month boundaries follow the host clock's timezone.
func monthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
