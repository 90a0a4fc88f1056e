// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/usecase/careprofile"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/dto"
)

// CareProfileController handles manual care profile edits.
type CareProfileController struct {
	updateUseCase *careprofile.UpdateCareProfileUseCase
}

// NewCareProfileController creates a new care profile controller instance.
func NewCareProfileController(updateUseCase *careprofile.UpdateCareProfileUseCase) *CareProfileController {
	return &CareProfileController{updateUseCase: updateUseCase}
}

// UpdateForPlant handles PUT /plants/:id/care-profile requests.
func (c *CareProfileController) UpdateForPlant(ctx *gin.Context) {
	c.update(ctx, "plant", func(input *careprofile.UpdateCareProfileInput, id uuid.UUID) {
		input.PlantID = &id
	})
}

// UpdateForWishlistEntry handles PUT /wishlist/:id/care-profile requests.
func (c *CareProfileController) UpdateForWishlistEntry(ctx *gin.Context) {
	c.update(ctx, "wishlist entry", func(input *careprofile.UpdateCareProfileInput, id uuid.UUID) {
		input.WishlistEntryID = &id
	})
}

func (c *CareProfileController) update(ctx *gin.Context, label string, target func(*careprofile.UpdateCareProfileInput, uuid.UUID)) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id", label)
	if !ok {
		return
	}

	var req dto.UpdateCareProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	input := careprofile.UpdateCareProfileInput{
		UserID:                userID,
		WaterIntervalDays:     req.WaterIntervalDays,
		FertilizeIntervalDays: req.FertilizeIntervalDays,
		RepotIntervalDays:     req.RepotIntervalDays,
		PruneIntervalDays:     req.PruneIntervalDays,
		PropagateIntervalDays: req.PropagateIntervalDays,
		SunlightRequirement:   req.SunlightRequirement,
		HumidityRequirement:   req.HumidityRequirement,
		TemperatureMin:        req.TemperatureMin,
		TemperatureMax:        req.TemperatureMax,
		MaxHeightCM:           req.MaxHeightCM,
		SoilType:              req.SoilType,
		IsToxic:               req.IsToxic,
	}
	target(&input, id)

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCareProfileResponse(output.Profile))
}
