// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/care-for-plants/backend/internal/application/usecase/location"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/dto"
)

// LocationController handles location endpoints.
type LocationController struct {
	createUseCase *location.CreateLocationUseCase
	listUseCase   *location.ListLocationsUseCase
	getUseCase    *location.GetLocationUseCase
	updateUseCase *location.UpdateLocationUseCase
	deleteUseCase *location.DeleteLocationUseCase
}

// NewLocationController creates a new location controller instance.
func NewLocationController(
	createUseCase *location.CreateLocationUseCase,
	listUseCase *location.ListLocationsUseCase,
	getUseCase *location.GetLocationUseCase,
	updateUseCase *location.UpdateLocationUseCase,
	deleteUseCase *location.DeleteLocationUseCase,
) *LocationController {
	return &LocationController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /locations requests.
func (c *LocationController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), location.CreateLocationInput{
		UserID:      userID,
		Name:        req.Name,
		Environment: req.Environment(),
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToLocationResponse(output.Location))
}

// List handles GET /locations requests.
func (c *LocationController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), location.ListLocationsInput{UserID: userID})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLocationListResponse(output.Locations))
}

// Get handles GET /locations/:id requests.
func (c *LocationController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	locationID, ok := pathID(ctx, "id", "location")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), location.GetLocationInput{
		UserID:     userID,
		LocationID: locationID,
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLocationDetailResponse(output))
}

// Update handles PATCH /locations/:id requests.
func (c *LocationController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	locationID, ok := pathID(ctx, "id", "location")
	if !ok {
		return
	}

	var req dto.UpdateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), location.UpdateLocationInput{
		UserID:      userID,
		LocationID:  locationID,
		Name:        req.Name,
		Environment: req.Environment(),
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLocationResponse(output.Location))
}

// Delete handles DELETE /locations/:id requests.
func (c *LocationController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	locationID, ok := pathID(ctx, "id", "location")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), location.DeleteLocationInput{
		UserID:     userID,
		LocationID: locationID,
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
