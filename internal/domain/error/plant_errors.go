package error

import (
	"errors"
	"fmt"
)

// Plant care domain errors.
var (
	// ErrCareProfileNotFound is returned when no care profile exists for an ID.
	ErrCareProfileNotFound = errors.New("care profile not found")

	// ErrCareProfileExists is returned when a profile for the external ID was stored concurrently.
	ErrCareProfileExists = errors.New("care profile already exists for external id")

	// ErrSpeciesNotFound is returned when the plant catalog has no species for an external ID.
	ErrSpeciesNotFound = errors.New("species not found")

	// ErrLookupFailure is returned when the plant catalog is unreachable or answers with malformed data.
	ErrLookupFailure = errors.New("plant catalog lookup failed")

	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")

	// ErrPlantNotFound is returned when a tracked plant is not found.
	ErrPlantNotFound = errors.New("plant not found")

	// ErrWishlistEntryNotFound is returned when a wishlist entry is not found.
	ErrWishlistEntryNotFound = errors.New("wishlist entry not found")

	// ErrOwnershipViolation is returned when an entity exists but belongs to another user.
	ErrOwnershipViolation = errors.New("entity belongs to another user")

	// ErrAlreadyOnWishlist is returned when the species is already on the user's wishlist.
	ErrAlreadyOnWishlist = errors.New("species already on wishlist")

	// ErrLocationNotEmpty is returned when deleting a location that still holds plants.
	ErrLocationNotEmpty = errors.New("location still holds plants")

	// ErrInvalidCareProfile is returned when a manual care profile edit is out of range.
	ErrInvalidCareProfile = errors.New("invalid care profile values")

	// ErrInvalidLocation is returned when location values are out of range.
	ErrInvalidLocation = errors.New("invalid location values")

	// ErrInvalidCareAction is returned for an unknown care action name.
	ErrInvalidCareAction = errors.New("invalid care action")

	// ErrInvalidSimulationDays is returned when a simulation shift is out of range.
	ErrInvalidSimulationDays = errors.New("invalid number of simulation days")

	// ErrInvalidPlant is returned when tracked plant values are out of range.
	ErrInvalidPlant = errors.New("invalid plant values")
)

// PlantErrorCode defines error codes for plant care errors.
// Format: PLT-XXYYYY where XX is category and YYYY is specific error.
type PlantErrorCode string

const (
	// Not found errors (01XXXX)
	ErrCodeCareProfileNotFound   PlantErrorCode = "PLT-010001"
	ErrCodeSpeciesNotFound       PlantErrorCode = "PLT-010002"
	ErrCodeLocationNotFound      PlantErrorCode = "PLT-010003"
	ErrCodePlantNotFound         PlantErrorCode = "PLT-010004"
	ErrCodeWishlistEntryNotFound PlantErrorCode = "PLT-010005"

	// Catalog errors (02XXXX)
	ErrCodeLookupFailure PlantErrorCode = "PLT-020001"

	// Validation errors (03XXXX)
	ErrCodeInvalidCareProfile    PlantErrorCode = "PLT-030001"
	ErrCodeInvalidLocation       PlantErrorCode = "PLT-030002"
	ErrCodeInvalidCareAction     PlantErrorCode = "PLT-030003"
	ErrCodeInvalidSimulationDays PlantErrorCode = "PLT-030004"
	ErrCodeMissingPlantFields    PlantErrorCode = "PLT-030005"
	ErrCodeInvalidPlant          PlantErrorCode = "PLT-030006"

	// Conflict errors (04XXXX)
	ErrCodeAlreadyOnWishlist PlantErrorCode = "PLT-040001"
	ErrCodeLocationNotEmpty  PlantErrorCode = "PLT-040002"
)

// PlantError represents a plant care error with code and message.
type PlantError struct {
	Code    PlantErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlantError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlantError) Unwrap() error {
	return e.Err
}

// NewPlantError creates a new PlantError with the given code and message.
func NewPlantError(code PlantErrorCode, message string, err error) *PlantError {
	return &PlantError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsMissing reports whether err means the entity guarded by sentinel is not
// available to the caller. Entities owned by another user count as missing.
func IsMissing(err, sentinel error) bool {
	return errors.Is(err, sentinel) || errors.Is(err, ErrOwnershipViolation)
}

// NotFoundError maps a repository error for the entity guarded by sentinel
// onto a coded PlantError. Other errors are wrapped with the operation name.
func NotFoundError(err, sentinel error, code PlantErrorCode, operation string) error {
	if IsMissing(err, sentinel) {
		return NewPlantError(code, sentinel.Error(), sentinel)
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// CatalogError maps a plant catalog failure onto a coded PlantError.
func CatalogError(err error) error {
	if errors.Is(err, ErrSpeciesNotFound) {
		return NewPlantError(ErrCodeSpeciesNotFound, "species not found", ErrSpeciesNotFound)
	}
	if !errors.Is(err, ErrLookupFailure) {
		err = fmt.Errorf("%w: %w", ErrLookupFailure, err)
	}
	return NewPlantError(ErrCodeLookupFailure, "plant catalog lookup failed", err)
}
