package auth

import (
	"context"
	"errors"

	"github.com/care-for-plants/backend/internal/application/adapter"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenUseCase rotates a refresh token into a new session.
type RefreshTokenUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute spends the refresh token and issues a fresh pair. The old token
// is unusable afterwards even if issuing fails.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*Session, error) {
	owner, err := uc.tokenService.ConsumeRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, owner)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUnauthenticated,
		)
	}
	if err != nil {
		return nil, err
	}

	return openSession(ctx, uc.tokenService, user)
}
