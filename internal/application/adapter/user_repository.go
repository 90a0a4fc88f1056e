// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/domain/entity"
)

// UserRepository persists accounts. Emails are stored lowercased and are
// unique; Create reports a taken email as domainerror.ErrEmailAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// FindByID and FindByEmail return domainerror.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
