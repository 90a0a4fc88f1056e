package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// GetCurrentUserInput represents the input for resolving the authenticated user.
type GetCurrentUserInput struct {
	UserID uuid.UUID
}

// GetCurrentUserOutput represents the authenticated user.
type GetCurrentUserOutput struct {
	User *entity.User
}

// GetCurrentUserUseCase loads the user behind an access token.
type GetCurrentUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetCurrentUserUseCase creates a new GetCurrentUserUseCase instance.
func NewGetCurrentUserUseCase(userRepo adapter.UserRepository) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{userRepo: userRepo}
}

// Execute returns the user. A token for a user that no longer exists is
// treated as unauthenticated.
func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, input GetCurrentUserInput) (*GetCurrentUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUnauthenticated,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &GetCurrentUserOutput{User: user}, nil
}
