package dto

import (
	"github.com/care-for-plants/backend/internal/application/usecase/wishlist"
	"github.com/care-for-plants/backend/internal/domain/entity"
)

// AddToWishlistRequest represents the request body for adding a species to the wishlist.
type AddToWishlistRequest struct {
	ExternalID int64 `json:"external_id" binding:"required,gt=0"`
}

// WishlistEntryResponse represents a wishlist entry in API responses.
// SuitableLocations is only filled by the list view.
type WishlistEntryResponse struct {
	ID                string               `json:"id"`
	ExternalID        int64                `json:"external_id"`
	AddedDate         string               `json:"added_date"`
	CareProfile       *CareProfileResponse `json:"care_profile"`
	SuitableLocations []string             `json:"suitable_locations"`
}

// WishlistResponse represents the response for listing the wishlist.
type WishlistResponse struct {
	Items []WishlistEntryResponse `json:"items"`
}

// ToWishlistEntryResponse converts a wishlist entry and its profile to a DTO.
func ToWishlistEntryResponse(e *entity.WishlistEntry, profile *entity.CareProfile) WishlistEntryResponse {
	return WishlistEntryResponse{
		ID:          e.ID.String(),
		ExternalID:  e.ExternalID,
		AddedDate:   formatDate(e.AddedDate),
		CareProfile: ToCareProfileResponse(profile),
	}
}

// ToWishlistResponse converts wishlist items to a WishlistResponse DTO.
func ToWishlistResponse(items []wishlist.WishlistItem) WishlistResponse {
	out := make([]WishlistEntryResponse, len(items))
	for i, item := range items {
		out[i] = ToWishlistEntryResponse(item.Entry, item.Profile)
		out[i].SuitableLocations = item.SuitableLocations
		if out[i].SuitableLocations == nil {
			out[i].SuitableLocations = []string{}
		}
	}
	return WishlistResponse{Items: out}
}
