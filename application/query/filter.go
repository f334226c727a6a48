// Package query holds the pure filter/sort/pagination functions the resolver
// layer composes over the asset store's snapshots.
package query

import (
	"strings"

	"medialib-backend/domain/assets"
)

// MediaTypeAll disables media type filtering when passed as Criteria.MediaType
const MediaTypeAll = "all"

// Criteria bundles the five independent asset filter dimensions. Empty fields
// are pass-through; the populated ones are ANDed.
type Criteria struct {
	AssetSourceID     string
	TagID             string
	AssetCollectionID string
	MediaType         string
	SearchTerm        string
}

// Filter returns the assets matching all populated criteria, preserving the
// input (store insertion) order. The input slice is never modified.
func Filter(list []*assets.Asset, c Criteria) []*assets.Asset {
	searchTerm := strings.ToLower(c.SearchTerm)

	out := []*assets.Asset{}
	for _, asset := range list {
		if c.AssetSourceID != "" && asset.Identity().AssetSourceID() != c.AssetSourceID {
			continue
		}
		if c.TagID != "" && !asset.HasTag(c.TagID) {
			continue
		}
		if c.AssetCollectionID != "" && !asset.InCollection(c.AssetCollectionID) {
			continue
		}
		if searchTerm != "" && !strings.Contains(strings.ToLower(asset.Label()), searchTerm) {
			continue
		}
		if !matchesMediaType(asset.MediaType(), c.MediaType) {
			continue
		}
		out = append(out, asset)
	}
	return out
}

// matchesMediaType implements the substring media type match: "image" matches
// "image/png" so the UI can filter by type family. "all" and "" pass.
func matchesMediaType(assetMediaType, wanted string) bool {
	if wanted == "" || wanted == MediaTypeAll {
		return true
	}
	return strings.Contains(assetMediaType, wanted)
}
