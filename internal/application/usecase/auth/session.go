// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/entity"
)

// Session is what a signed-in user receives: a token pair and the account.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

func openSession(ctx context.Context, tokens adapter.TokenService, user *entity.User) (*Session, error) {
	pair, err := tokens.IssueTokens(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}
	return &Session{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}
