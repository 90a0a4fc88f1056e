// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/care-for-plants/backend/internal/application/usecase/wishlist"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/dto"
)

// WishlistController handles wishlist endpoints.
type WishlistController struct {
	addUseCase    *wishlist.AddToWishlistUseCase
	listUseCase   *wishlist.ListWishlistUseCase
	removeUseCase *wishlist.RemoveFromWishlistUseCase
}

// NewWishlistController creates a new wishlist controller instance.
func NewWishlistController(
	addUseCase *wishlist.AddToWishlistUseCase,
	listUseCase *wishlist.ListWishlistUseCase,
	removeUseCase *wishlist.RemoveFromWishlistUseCase,
) *WishlistController {
	return &WishlistController{
		addUseCase:    addUseCase,
		listUseCase:   listUseCase,
		removeUseCase: removeUseCase,
	}
}

// Add handles POST /wishlist requests.
func (c *WishlistController) Add(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.AddToWishlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), wishlist.AddToWishlistInput{
		UserID:     userID,
		ExternalID: req.ExternalID,
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToWishlistEntryResponse(output.Entry, output.Profile))
}

// List handles GET /wishlist requests.
func (c *WishlistController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), wishlist.ListWishlistInput{UserID: userID})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWishlistResponse(output.Items))
}

// Remove handles DELETE /wishlist/:id requests.
func (c *WishlistController) Remove(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := pathID(ctx, "id", "wishlist entry")
	if !ok {
		return
	}

	if err := c.removeUseCase.Execute(ctx.Request.Context(), wishlist.RemoveFromWishlistInput{
		UserID:  userID,
		EntryID: entryID,
	}); err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
