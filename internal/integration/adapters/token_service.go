// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/adapter"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/integration/persistence"
)

type tokenKind string

const (
	kindAccess  tokenKind = "access"
	kindRefresh tokenKind = "refresh"

	tokenIssuer = "care-for-plants"
)

// sessionClaims identifies the owner through the registered subject claim.
type sessionClaims struct {
	Kind tokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService signs HS256 JWTs. Access tokens are stateless; refresh tokens
// are also recorded so they can be spent once and revoked.
type TokenService struct {
	secret          []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
	refreshTokens   persistence.TokenRepository
}

var _ adapter.TokenService = (*TokenService)(nil)

// NewTokenService creates a new token service instance.
func NewTokenService(
	secret string,
	accessDuration, refreshDuration time.Duration,
	refreshTokens persistence.TokenRepository,
) *TokenService {
	return &TokenService{
		secret:          []byte(secret),
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
		refreshTokens:   refreshTokens,
	}
}

// ResolveUser returns the owner of a valid access token.
func (s *TokenService) ResolveUser(_ context.Context, credential string) (uuid.UUID, error) {
	return s.ownerOf(credential, kindAccess)
}

// IssueTokens signs a new access/refresh pair and records the refresh token.
func (s *TokenService) IssueTokens(ctx context.Context, userID uuid.UUID) (*adapter.TokenPair, error) {
	now := time.Now().UTC()

	accessToken, err := s.sign(userID, kindAccess, now, s.accessDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.sign(userID, kindRefresh, now, s.refreshDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.refreshTokens.Save(ctx, refreshToken, userID, now.Add(s.refreshDuration)); err != nil {
		return nil, err
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ConsumeRefreshToken checks the signature first and then spends the stored
// token, so a forged token never reaches the database.
func (s *TokenService) ConsumeRefreshToken(ctx context.Context, refreshToken string) (uuid.UUID, error) {
	signedOwner, err := s.ownerOf(refreshToken, kindRefresh)
	if err != nil {
		return uuid.Nil, err
	}

	owner, err := s.refreshTokens.Consume(ctx, refreshToken)
	if errors.Is(err, domainerror.ErrInvalidToken) {
		return uuid.Nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"refresh token has been revoked",
			domainerror.ErrUnauthenticated,
		)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to consume refresh token: %w", err)
	}
	if owner != signedOwner {
		return uuid.Nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid refresh token",
			domainerror.ErrUnauthenticated,
		)
	}
	return owner, nil
}

// RevokeSessions revokes every refresh token of the token's owner. A spent
// refresh token still identifies its owner here.
func (s *TokenService) RevokeSessions(ctx context.Context, refreshToken string) error {
	owner, err := s.ownerOf(refreshToken, kindRefresh)
	if err != nil {
		return err
	}
	return s.refreshTokens.RevokeAllForUser(ctx, owner)
}

func (s *TokenService) sign(userID uuid.UUID, kind tokenKind, now time.Time, ttl time.Duration) (string, error) {
	claims := sessionClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ownerOf verifies a token of the given kind and returns its subject.
func (s *TokenService) ownerOf(token string, kind tokenKind) (uuid.UUID, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return uuid.Nil, domainerror.NewAuthError(
			domainerror.ErrCodeExpiredToken,
			"token has expired",
			domainerror.ErrUnauthenticated,
		)
	}
	if err != nil || claims.Kind != kind {
		return uuid.Nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired token",
			domainerror.ErrUnauthenticated,
		)
	}

	owner, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token subject",
			domainerror.ErrUnauthenticated,
		)
	}
	return owner, nil
}
