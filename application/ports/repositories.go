package ports

import (
	"context"

	"medialib-backend/domain/assets"
)

// AssetRepository defines the persistence interface for assets.
// This is a port in hexagonal architecture - the application layer doesn't
// know whether it talks to an in-memory store or a real persistence layer.
// Lookups are total and never fail; only commits can return an error.
type AssetRepository interface {
	// FindAsset retrieves an asset by its composite identity, nil if absent
	FindAsset(identity assets.Identity) *assets.Asset

	// FindAssetByContentHash retrieves an asset by the sha1 of its file
	// content, nil if absent. Used for duplicate detection on upload.
	FindAssetByContentHash(hash string) *assets.Asset

	// Assets returns a snapshot of all assets in insertion order
	Assets() []*assets.Asset

	// AddAsset persists a new asset
	AddAsset(ctx context.Context, asset *assets.Asset) error

	// SaveAsset commits a mutated asset, replacing the stored version
	SaveAsset(ctx context.Context, asset *assets.Asset) error

	// RemoveAsset deletes an asset. Returns false if it was absent.
	RemoveAsset(ctx context.Context, identity assets.Identity) (bool, error)
}

// TagRepository defines the persistence interface for tags
type TagRepository interface {
	// Tags returns a snapshot of all tags in insertion order
	Tags() []*assets.Tag

	// FindTag retrieves a tag by id, nil if absent
	FindTag(id string) *assets.Tag

	// FindTagByLabel retrieves a tag by its label, nil if absent
	FindTagByLabel(label string) *assets.Tag

	// AddTag persists a new tag
	AddTag(ctx context.Context, tag *assets.Tag) error

	// RemoveTag deletes a tag. Returns false if it was absent.
	RemoveTag(ctx context.Context, id string) (bool, error)
}

// CollectionRepository defines the persistence interface for asset collections
type CollectionRepository interface {
	// Collections returns a snapshot of all collections in insertion order
	Collections() []*assets.Collection

	// FindCollection retrieves a collection by id, nil if absent
	FindCollection(id string) *assets.Collection

	// AddCollection persists a new collection
	AddCollection(ctx context.Context, collection *assets.Collection) error

	// SaveCollection commits a mutated collection
	SaveCollection(ctx context.Context, collection *assets.Collection) error

	// RemoveCollection deletes a collection. Returns false if it was absent.
	RemoveCollection(ctx context.Context, id string) (bool, error)

	// CollectionAssetCount returns the number of assets in a collection
	CollectionAssetCount(id string) int
}

// SourceRepository lists the asset sources known to the system
type SourceRepository interface {
	// Sources returns all configured asset sources
	Sources() []assets.Source

	// FindSource retrieves a source by id, nil if absent
	FindSource(id string) *assets.Source
}

// UsageLookup resolves asset usages. Usage tracking lives outside this core;
// the lookup is the only window into it.
type UsageLookup interface {
	// UsageDetails returns the usages of an asset grouped by reporting service
	UsageDetails(assetID string) []assets.UsageDetailsGroup

	// IsInUse reports whether the asset has at least one recorded usage
	IsInUse(assetID string) bool
}

// MediaTypeMapper classifies uploaded file content. It returns the detected
// media type and the asset kind it maps to from the closed variant set.
type MediaTypeMapper interface {
	Map(filename string, content []byte) (mediaType string, kind assets.Kind)
}

// StoreResetter restores the store to its fixture state. It is wired into the
// dev harness only and must never be reachable from production handlers.
type StoreResetter interface {
	Reset(ctx context.Context) error
}
