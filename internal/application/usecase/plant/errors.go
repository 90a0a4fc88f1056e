// Package plant contains tracked plant use cases: adding, care tracking,
// relocation and the care dashboard.
package plant

import (
	domainerror "github.com/care-for-plants/backend/internal/domain/error"
)

func plantNotFound(err error) error {
	return domainerror.NotFoundError(err, domainerror.ErrPlantNotFound,
		domainerror.ErrCodePlantNotFound, "find plant")
}

func locationNotFound(err error) error {
	return domainerror.NotFoundError(err, domainerror.ErrLocationNotFound,
		domainerror.ErrCodeLocationNotFound, "find location")
}

func profileNotFound(err error) error {
	return domainerror.NotFoundError(err, domainerror.ErrCareProfileNotFound,
		domainerror.ErrCodeCareProfileNotFound, "find care profile")
}
