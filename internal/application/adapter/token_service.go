package adapter

import (
	"context"

	"github.com/google/uuid"
)

// UserResolver maps the bearer credential of a request onto the owning
// user. Unknown, malformed or expired credentials fail with a
// domainerror.AuthError wrapping domainerror.ErrUnauthenticated.
type UserResolver interface {
	ResolveUser(ctx context.Context, credential string) (uuid.UUID, error)
}

// TokenPair is the access and refresh token handed out on sign-in.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and revokes session tokens.
type TokenService interface {
	UserResolver

	// IssueTokens starts a new session for the user.
	IssueTokens(ctx context.Context, userID uuid.UUID) (*TokenPair, error)

	// ConsumeRefreshToken spends a refresh token and returns its owner. A
	// token can be consumed once.
	ConsumeRefreshToken(ctx context.Context, refreshToken string) (uuid.UUID, error)

	// RevokeSessions ends every session of the refresh token's owner.
	RevokeSessions(ctx context.Context, refreshToken string) error
}
