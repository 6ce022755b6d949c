package usecases

import (
	"context"

	"sales-crm.backend/internal/domain/entities"
	"sales-crm.backend/internal/domain/repositories"
	"sales-crm.backend/pkg/cache"
)

// DealUsecase handles deal CRUD. Every mutation invalidates the cached
// dashboard views so dependent aggregates recompute on the next read.
type DealUsecase struct {
	dealRepo  repositories.DealRepository
	viewCache *cache.Cache
}

// NewDealUsecase creates a new deal usecase
func NewDealUsecase(dealRepo repositories.DealRepository, viewCache *cache.Cache) *DealUsecase {
	return &DealUsecase{dealRepo: dealRepo, viewCache: viewCache}
}

// CreateDeal persists a new deal. Input is assumed validated by the caller;
// value ranges are not re-checked here.
func (u *DealUsecase) CreateDeal(ctx context.Context, deal *entities.Deal) error {
	if err := u.dealRepo.Create(ctx, deal); err != nil {
		return err
	}
	invalidateDashboard(ctx, u.viewCache)
	return nil
}

// GetDeal returns a deal with its owner joined
func (u *DealUsecase) GetDeal(ctx context.Context, id uint) (*entities.Deal, error) {
	return u.dealRepo.GetByID(ctx, id)
}

// UpdateDeal applies a manual edit. Probability is independent, manually set
// state; nothing recalculates it from the stage.
func (u *DealUsecase) UpdateDeal(ctx context.Context, deal *entities.Deal) error {
	if err := u.dealRepo.Update(ctx, deal); err != nil {
		return err
	}
	invalidateDashboard(ctx, u.viewCache)
	return nil
}

// DeleteDeal removes a deal for good
func (u *DealUsecase) DeleteDeal(ctx context.Context, id uint) error {
	if err := u.dealRepo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateDashboard(ctx, u.viewCache)
	return nil
}
