package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/integration/persistence/model"
)

// TokenRepository stores refresh tokens by digest so a leaked table does not
// leak usable tokens.
type TokenRepository interface {
	// Save records a freshly issued refresh token.
	Save(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error

	// Consume marks a live token as used and returns its owner. Unknown,
	// expired or already consumed tokens yield domainerror.ErrInvalidToken.
	Consume(ctx context.Context, token string) (uuid.UUID, error)

	// RevokeAllForUser invalidates every refresh token of the user.
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new token repository instance.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (r *tokenRepository) Save(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	row := &model.RefreshTokenModel{
		ID:        uuid.New(),
		TokenHash: digest(token),
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

func (r *tokenRepository) Consume(ctx context.Context, token string) (uuid.UUID, error) {
	var owner uuid.UUID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row model.RefreshTokenModel
		err := tx.Where("token_hash = ? AND invalidated = ? AND expires_at > ?", digest(token), false, time.Now().UTC()).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerror.ErrInvalidToken
		}
		if err != nil {
			return err
		}

		// the invalidated guard makes a concurrent second consume lose
		result := tx.Model(&model.RefreshTokenModel{}).
			Where("id = ? AND invalidated = ?", row.ID, false).
			Update("invalidated", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrInvalidToken
		}
		owner = row.UserID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return owner, nil
}

func (r *tokenRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND invalidated = ?", userID, false).
		Update("invalidated", true).Error
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}
