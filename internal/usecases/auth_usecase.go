package usecases

import (
	"context"

	"sales-crm.backend/internal/domain/entities"
	domainerrors "sales-crm.backend/internal/domain/errors"
	"sales-crm.backend/internal/domain/repositories"
	"sales-crm.backend/pkg/crypto"
	"sales-crm.backend/pkg/jwt"
)

// AuthUsecase issues and resolves single-tenant session tokens
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and returns a session token
func (u *AuthUsecase) Login(ctx context.Context, username, password string) (*entities.LoginResponse, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(password, user.Password) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &entities.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// GetMe returns the session user's profile
func (u *AuthUsecase) GetMe(ctx context.Context, session entities.Session) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, session.UserID)
}
