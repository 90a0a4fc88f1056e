package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes and newer versions reject it.
	maxPasswordBytes = 72
)

// PasswordService hashes passwords with bcrypt at a configurable cost.
type PasswordService struct {
	cost int
}

// NewPasswordService returns a service hashing at cost. Costs outside
// bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost}
}

// HashPassword returns the bcrypt hash of password.
func (s *PasswordService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports domainerror.ErrInvalidCredentials on mismatch.
func (s *PasswordService) VerifyPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return domainerror.ErrInvalidCredentials
	}
	return nil
}

// ValidatePasswordStrength enforces the length bounds bcrypt can honour.
func (s *PasswordService) ValidatePasswordStrength(password string) error {
	switch {
	case len([]rune(password)) < minPasswordLength:
		return fmt.Errorf("%w: use at least %d characters", domainerror.ErrWeakPassword, minPasswordLength)
	case len(password) > maxPasswordBytes:
		return fmt.Errorf("%w: use at most %d bytes", domainerror.ErrWeakPassword, maxPasswordBytes)
	}
	return nil
}
