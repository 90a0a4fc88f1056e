package auth

import (
	"context"
	"errors"

	"github.com/care-for-plants/backend/internal/application/adapter"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserUseCase signs in with email and password.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute opens a session. Unknown emails and wrong passwords fail the same
// way so the response does not reveal which accounts exist.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*Session, error) {
	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, invalid
	}
	if err != nil {
		return nil, err
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalid
	}

	return openSession(ctx, uc.tokenService, user)
}
