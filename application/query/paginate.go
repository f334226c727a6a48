package query

import (
	pkgerrors "medialib-backend/pkg/errors"

	"medialib-backend/domain/assets"
)

// Paginate slices a filtered-and-sorted asset list. Negative offset or limit
// is a caller error and is rejected instead of silently clamped; only the
// upper bound is clamped to the list length.
func Paginate(list []*assets.Asset, offset, limit int) ([]*assets.Asset, error) {
	if offset < 0 {
		return nil, pkgerrors.NewValidationError("offset must not be negative")
	}
	if limit < 0 {
		return nil, pkgerrors.NewValidationError("limit must not be negative")
	}

	if offset >= len(list) {
		return []*assets.Asset{}, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}
