// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/care-for-plants/backend/internal/application/usecase/careprofile"
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/dto"
)

// SpeciesController handles plant catalog endpoints.
type SpeciesController struct {
	searchUseCase  *careprofile.SearchSpeciesUseCase
	previewUseCase *careprofile.PreviewSpeciesUseCase
}

// NewSpeciesController creates a new species controller instance.
func NewSpeciesController(
	searchUseCase *careprofile.SearchSpeciesUseCase,
	previewUseCase *careprofile.PreviewSpeciesUseCase,
) *SpeciesController {
	return &SpeciesController{
		searchUseCase:  searchUseCase,
		previewUseCase: previewUseCase,
	}
}

// Search handles GET /species/search requests.
func (c *SpeciesController) Search(ctx *gin.Context) {
	output, err := c.searchUseCase.Execute(ctx.Request.Context(), careprofile.SearchSpeciesInput{
		Query: ctx.Query("q"),
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpeciesSearchResponse(output.Results))
}

// Preview handles GET /species/:external_id requests.
func (c *SpeciesController) Preview(ctx *gin.Context) {
	externalID, err := strconv.ParseInt(ctx.Param("external_id"), 10, 64)
	if err != nil || externalID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid species ID format",
			Code:  string(domainerror.ErrCodeMissingPlantFields),
		})
		return
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), careprofile.PreviewSpeciesInput{
		ExternalID: externalID,
	})
	if err != nil {
		handlePlantError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SpeciesPreviewResponse{
		Found:   output.Found,
		Stored:  output.Stored,
		Profile: dto.ToCareProfileResponse(output.Profile),
	})
}
