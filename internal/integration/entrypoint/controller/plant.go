// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/care-for-plants/backend/internal/application/usecase/plant"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/dto"
)

// PlantController handles tracked plant and dashboard endpoints.
type PlantController struct {
	addUseCase             *plant.AddPlantUseCase
	listUseCase            *plant.ListPlantsUseCase
	deleteUseCase          *plant.DeletePlantUseCase
	markCareDoneUseCase    *plant.MarkCareDoneUseCase
	simulateDaysUseCase    *plant.SimulateDaysUseCase
	relocateUseCase        *plant.RelocatePlantUseCase
	recommendationsUseCase *plant.RecommendLocationsUseCase
	dashboardUseCase       *plant.GetDashboardUseCase
}

// NewPlantController creates a new plant controller instance.
func NewPlantController(
	addUseCase *plant.AddPlantUseCase,
	listUseCase *plant.ListPlantsUseCase,
	deleteUseCase *plant.DeletePlantUseCase,
	markCareDoneUseCase *plant.MarkCareDoneUseCase,
	simulateDaysUseCase *plant.SimulateDaysUseCase,
	relocateUseCase *plant.RelocatePlantUseCase,
	recommendationsUseCase *plant.RecommendLocationsUseCase,
	dashboardUseCase *plant.GetDashboardUseCase,
) *PlantController {
	return &PlantController{
		addUseCase:             addUseCase,
		listUseCase:            listUseCase,
		deleteUseCase:          deleteUseCase,
		markCareDoneUseCase:    markCareDoneUseCase,
		simulateDaysUseCase:    simulateDaysUseCase,
		relocateUseCase:        relocateUseCase,
		recommendationsUseCase: recommendationsUseCase,
		dashboardUseCase:       dashboardUseCase,
	}
}

// Add handles POST /plants requests.
func (c *PlantController) Add(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.AddPlantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	input := plant.AddPlantInput{
		UserID:     userID,
		ExternalID: req.ExternalID,
		LocationID: locationID,
		Nickname:   req.Nickname,
	}
	if req.DateAcquired != nil {
		acquired, err := dto.ParseDate(*req.DateAcquired)
		if err != nil {
			badRequest(ctx, err)
			return
		}
		input.DateAcquired = &acquired
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPlantViewResponse(output.PlantView))
}

// List handles GET /plants requests.
func (c *PlantController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), plant.ListPlantsInput{UserID: userID})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlantListResponse(output.Plants))
}

// Delete handles DELETE /plants/:id requests.
func (c *PlantController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	plantID, ok := pathID(ctx, "id", "plant")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), plant.DeletePlantInput{
		UserID:  userID,
		PlantID: plantID,
	}); err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkCareDone handles POST /plants/:id/care/:action requests.
func (c *PlantController) MarkCareDone(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	plantID, ok := pathID(ctx, "id", "plant")
	if !ok {
		return
	}

	output, err := c.markCareDoneUseCase.Execute(ctx.Request.Context(), plant.MarkCareDoneInput{
		UserID:  userID,
		PlantID: plantID,
		Action:  ctx.Param("action"),
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlantViewResponse(output.PlantView))
}

// SimulateDays handles POST /plants/:id/simulate/:days requests.
func (c *PlantController) SimulateDays(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	plantID, ok := pathID(ctx, "id", "plant")
	if !ok {
		return
	}

	days, err := strconv.Atoi(ctx.Param("days"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid number of days",
			Code:  string(domainerror.ErrCodeInvalidSimulationDays),
		})
		return
	}

	output, err := c.simulateDaysUseCase.Execute(ctx.Request.Context(), plant.SimulateDaysInput{
		UserID:  userID,
		PlantID: plantID,
		Days:    days,
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlantViewResponse(output.PlantView))
}

// Relocate handles PUT /plants/:id/location requests.
func (c *PlantController) Relocate(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	plantID, ok := pathID(ctx, "id", "plant")
	if !ok {
		return
	}

	var req dto.RelocatePlantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.relocateUseCase.Execute(ctx.Request.Context(), plant.RelocatePlantInput{
		UserID:     userID,
		PlantID:    plantID,
		LocationID: locationID,
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRelocatePlantResponse(output))
}

// RecommendedLocations handles GET /plants/:id/recommended-locations requests.
func (c *PlantController) RecommendedLocations(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	plantID, ok := pathID(ctx, "id", "plant")
	if !ok {
		return
	}

	output, err := c.recommendationsUseCase.Execute(ctx.Request.Context(), plant.RecommendLocationsInput{
		UserID:  userID,
		PlantID: plantID,
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecommendationsResponse(output))
}

// Dashboard handles GET /dashboard/tasks requests.
func (c *PlantController) Dashboard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), plant.GetDashboardInput{UserID: userID})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output.Tasks))
}
