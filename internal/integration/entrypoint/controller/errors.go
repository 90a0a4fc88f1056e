// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/care-for-plants/backend/internal/domain/error"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/dto"
	"github.com/care-for-plants/backend/internal/integration/entrypoint/middleware"
)

// handlePlantError handles plant domain errors and returns appropriate HTTP responses.
func handlePlantError(ctx *gin.Context, err error) {
	var plantErr *domainerror.PlantError
	if errors.As(err, &plantErr) {
		statusCode := getStatusCodeForPlantError(plantErr.Code)
		if statusCode >= http.StatusInternalServerError {
			slog.Error("request failed", "path", ctx.FullPath(), "code", plantErr.Code, "error", err)
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: plantErr.Message,
			Code:  string(plantErr.Code),
		})
		return
	}

	slog.Error("request failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPlantError maps plant error codes to HTTP status codes.
func getStatusCodeForPlantError(code domainerror.PlantErrorCode) int {
	switch code {
	case domainerror.ErrCodeCareProfileNotFound,
		domainerror.ErrCodeSpeciesNotFound,
		domainerror.ErrCodeLocationNotFound,
		domainerror.ErrCodePlantNotFound,
		domainerror.ErrCodeWishlistEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeLookupFailure:
		return http.StatusBadGateway
	case domainerror.ErrCodeInvalidCareProfile,
		domainerror.ErrCodeInvalidLocation,
		domainerror.ErrCodeInvalidCareAction,
		domainerror.ErrCodeInvalidSimulationDays,
		domainerror.ErrCodeMissingPlantFields,
		domainerror.ErrCodeInvalidPlant:
		return http.StatusBadRequest
	case domainerror.ErrCodeAlreadyOnWishlist,
		domainerror.ErrCodeLocationNotEmpty:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// currentUserID returns the authenticated user's ID, writing a 401 response
// when there is none.
func currentUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

// pathID parses a UUID path parameter, writing a 400 response when it is malformed.
func pathID(ctx *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
			Code:  string(domainerror.ErrCodeMissingPlantFields),
		})
		return uuid.Nil, false
	}
	return id, true
}

// badRequest writes a 400 response for a body that failed to bind.
func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  string(domainerror.ErrCodeMissingPlantFields),
	})
}
