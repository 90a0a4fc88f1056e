package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

const maxNameLength = 100

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterUserUseCase creates an account and signs it in.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute validates the input, stores the user and opens a session.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	if name == "" || len([]rune(name)) > maxNameLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			fmt.Sprintf("name must be 1 to %d characters", maxNameLength),
			domainerror.ErrMissingFields,
		)
	}
	if !isValidEmail(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeWeakPassword, err.Error(), err)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(email, name, passwordHash)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeEmailExists,
				"email already exists",
				err,
			)
		}
		return nil, err
	}

	return openSession(ctx, uc.tokenService, user)
}

// isValidEmail accepts a bare address with a dotted domain, rejecting
// display-name forms like "Ana <ana@example.com>".
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndexByte(email, '@')
	return strings.Contains(email[at+1:], ".")
}
