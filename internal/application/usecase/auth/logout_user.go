package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/care-for-plants/backend/internal/application/adapter"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserUseCase ends every session of the user holding the refresh token.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute revokes the sessions. An unrecognisable token leaves nothing to
// revoke and still counts as logged out.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	err := uc.tokenService.RevokeSessions(ctx, input.RefreshToken)
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		slog.DebugContext(ctx, "logout with unusable refresh token", "code", authErr.Code)
		return nil
	}
	return err
}
