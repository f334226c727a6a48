package assets

import (
	pkgerrors "medialib-backend/pkg/errors"
)

// Identity is the composite key of an asset. Asset ids are only unique within
// their source, so both parts are required for a lookup.
type Identity struct {
	assetID       string
	assetSourceID string
}

// NewIdentity creates a validated asset identity
func NewIdentity(assetID, assetSourceID string) (Identity, error) {
	if assetID == "" {
		return Identity{}, pkgerrors.NewValidationError("assetId cannot be empty")
	}
	if assetSourceID == "" {
		return Identity{}, pkgerrors.NewValidationError("assetSourceId cannot be empty")
	}
	return Identity{assetID: assetID, assetSourceID: assetSourceID}, nil
}

// AssetID returns the source-local asset id
func (i Identity) AssetID() string {
	return i.assetID
}

// AssetSourceID returns the id of the source the asset belongs to
func (i Identity) AssetSourceID() string {
	return i.assetSourceID
}

// Equals compares both parts of the identity
func (i Identity) Equals(other Identity) bool {
	return i.assetID == other.assetID && i.assetSourceID == other.assetSourceID
}

// String renders the identity for logging and map keys
func (i Identity) String() string {
	return i.assetSourceID + "/" + i.assetID
}
