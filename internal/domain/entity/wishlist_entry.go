package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntry is a species a user wants but does not own yet.
type WishlistEntry struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	ExternalID    int64
	CareProfileID uuid.UUID
	AddedDate     time.Time
	CreatedAt     time.Time
}

// NewWishlistEntry creates a wishlist entry added on the given day.
func NewWishlistEntry(ownerID uuid.UUID, externalID int64, careProfileID uuid.UUID, added time.Time) *WishlistEntry {
	return &WishlistEntry{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		ExternalID:    externalID,
		CareProfileID: careProfileID,
		AddedDate:     TruncateToDate(added),
		CreatedAt:     time.Now().UTC(),
	}
}
