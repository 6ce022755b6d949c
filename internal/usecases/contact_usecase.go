package usecases

import (
	"context"

	"sales-crm.backend/internal/domain/entities"
	"sales-crm.backend/internal/domain/repositories"
	"sales-crm.backend/pkg/cache"
	"sales-crm.backend/pkg/utils"
)

// ContactUsecase handles contact CRUD and the recent-contacts feed
type ContactUsecase struct {
	contactRepo repositories.ContactRepository
	viewCache   *cache.Cache
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(contactRepo repositories.ContactRepository, viewCache *cache.Cache) *ContactUsecase {
	return &ContactUsecase{contactRepo: contactRepo, viewCache: viewCache}
}

func (u *ContactUsecase) CreateContact(ctx context.Context, contact *entities.Contact) error {
	if err := u.contactRepo.Create(ctx, contact); err != nil {
		return err
	}
	invalidateDashboard(ctx, u.viewCache)
	return nil
}

func (u *ContactUsecase) GetContact(ctx context.Context, id uint) (*entities.Contact, error) {
	return u.contactRepo.GetByID(ctx, id)
}

func (u *ContactUsecase) ListContacts(ctx context.Context, search string, page, limit int) ([]*entities.Contact, int64, error) {
	params := utils.GetPaginationParams(page, limit)
	return u.contactRepo.List(ctx, search, params.Limit, params.CalculateOffset())
}

func (u *ContactUsecase) GetRecentContacts(ctx context.Context) ([]*entities.Contact, error) {
	return u.contactRepo.ListRecent(ctx, RecentContactsLimit)
}

// UpdateContact raises NotFound when the target is missing; there is no
// sentinel-return variant.
func (u *ContactUsecase) UpdateContact(ctx context.Context, contact *entities.Contact) error {
	if err := u.contactRepo.Update(ctx, contact); err != nil {
		return err
	}
	invalidateDashboard(ctx, u.viewCache)
	return nil
}

// DeleteContact hard-deletes the contact and raises NotFound when it is
// already gone.
func (u *ContactUsecase) DeleteContact(ctx context.Context, id uint) error {
	if err := u.contactRepo.Delete(ctx, id); err != nil {
		return err
	}
	invalidateDashboard(ctx, u.viewCache)
	return nil
}
