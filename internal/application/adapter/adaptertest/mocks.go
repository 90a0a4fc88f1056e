// Package adaptertest provides test doubles for the application adapters.
package adaptertest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/care-for-plants/backend/internal/application/adapter"
	"github.com/care-for-plants/backend/internal/domain/valueobject"
)

// MockPlantCatalog is a testify mock of adapter.PlantCatalog.
type MockPlantCatalog struct {
	mock.Mock
}

// Search implements adapter.PlantCatalog.
func (m *MockPlantCatalog) Search(ctx context.Context, query string) ([]adapter.SpeciesSummary, error) {
	args := m.Called(ctx, query)
	results, _ := args.Get(0).([]adapter.SpeciesSummary)
	return results, args.Error(1)
}

// Lookup implements adapter.PlantCatalog.
func (m *MockPlantCatalog) Lookup(ctx context.Context, externalID int64) (*valueobject.SpeciesAttributes, error) {
	args := m.Called(ctx, externalID)
	attrs, _ := args.Get(0).(*valueobject.SpeciesAttributes)
	return attrs, args.Error(1)
}

// MockPasswordService is a testify mock of adapter.PasswordService.
type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) VerifyPassword(hashedPassword, password string) error {
	return m.Called(hashedPassword, password).Error(0)
}

func (m *MockPasswordService) ValidatePasswordStrength(password string) error {
	return m.Called(password).Error(0)
}

// MockTokenService is a testify mock of adapter.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) ResolveUser(ctx context.Context, credential string) (uuid.UUID, error) {
	args := m.Called(ctx, credential)
	owner, _ := args.Get(0).(uuid.UUID)
	return owner, args.Error(1)
}

func (m *MockTokenService) IssueTokens(ctx context.Context, userID uuid.UUID) (*adapter.TokenPair, error) {
	args := m.Called(ctx, userID)
	pair, _ := args.Get(0).(*adapter.TokenPair)
	return pair, args.Error(1)
}

func (m *MockTokenService) ConsumeRefreshToken(ctx context.Context, refreshToken string) (uuid.UUID, error) {
	args := m.Called(ctx, refreshToken)
	owner, _ := args.Get(0).(uuid.UUID)
	return owner, args.Error(1)
}

func (m *MockTokenService) RevokeSessions(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

// Now implements adapter.Clock.
func (c FixedClock) Now() time.Time {
	return c.At
}
