// Package memory provides the fixture-backed in-memory implementation of the
// persistence ports. The asset set is bounded and confined to one process, so
// a single RWMutex per store is enough: mutations serialize, reads work on
// snapshot copies.
package memory

import (
	"context"
	"sync"

	"medialib-backend/domain/assets"
)

// Store holds assets, tags, collections and sources in insertion order
type Store struct {
	mu          sync.RWMutex
	assets      []*assets.Asset
	tags        []*assets.Tag
	collections []*assets.Collection
	sources     []assets.Source
	usages      map[string][]assets.UsageDetailsGroup
}

// NewStore creates a store seeded from the given fixtures
func NewStore(fixtures *Fixtures) *Store {
	s := &Store{}
	s.load(fixtures)
	return s
}

// load replaces all store content. Callers must hold no lock.
func (s *Store) load(fixtures *Fixtures) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = fixtures.buildAssets()
	s.tags = fixtures.buildTags()
	s.collections = fixtures.buildCollections()
	s.sources = fixtures.buildSources()
	s.usages = fixtures.buildUsages()
}

// Reset restores the store to the given fixture state
func (s *Store) Reset(fixtures *Fixtures) {
	s.load(fixtures)
}

// FindAsset returns the asset with the given identity, nil if either part of
// the identity differs.
func (s *Store) FindAsset(identity assets.Identity) *assets.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, asset := range s.assets {
		if asset.Identity().Equals(identity) {
			return asset
		}
	}
	return nil
}

// FindAssetByContentHash returns the asset whose file content hash matches,
// nil if absent.
func (s *Store) FindAssetByContentHash(hash string) *assets.Asset {
	if hash == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, asset := range s.assets {
		if asset.ContentHash() == hash {
			return asset
		}
	}
	return nil
}

// Assets returns a snapshot of all assets in insertion order
func (s *Store) Assets() []*assets.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*assets.Asset, len(s.assets))
	copy(out, s.assets)
	return out
}

// AddAsset appends a new asset
func (s *Store) AddAsset(_ context.Context, asset *assets.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = append(s.assets, asset)
	return nil
}

// SaveAsset replaces the stored asset with the same identity, or appends if
// it is new. The slot keeps its position so insertion order survives updates.
func (s *Store) SaveAsset(_ context.Context, asset *assets.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.assets {
		if existing.Identity().Equals(asset.Identity()) {
			s.assets[i] = asset
			return nil
		}
	}
	s.assets = append(s.assets, asset)
	return nil
}

// RemoveAsset deletes an asset. Returns false if it was absent.
func (s *Store) RemoveAsset(_ context.Context, identity assets.Identity) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, asset := range s.assets {
		if asset.Identity().Equals(identity) {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Tags returns a snapshot of all tags in insertion order
func (s *Store) Tags() []*assets.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*assets.Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// FindTag returns the tag with the given id, nil if absent
func (s *Store) FindTag(id string) *assets.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tag := range s.tags {
		if tag.ID() == id {
			return tag
		}
	}
	return nil
}

// FindTagByLabel returns the tag with the given label, nil if absent
func (s *Store) FindTagByLabel(label string) *assets.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tag := range s.tags {
		if tag.Label() == label {
			return tag
		}
	}
	return nil
}

// AddTag appends a new tag
func (s *Store) AddTag(_ context.Context, tag *assets.Tag) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tags = append(s.tags, tag)
	return nil
}

// RemoveTag deletes a tag. Returns false if it was absent.
func (s *Store) RemoveTag(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, tag := range s.tags {
		if tag.ID() == id {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Collections returns a snapshot of all collections in insertion order
func (s *Store) Collections() []*assets.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*assets.Collection, len(s.collections))
	copy(out, s.collections)
	return out
}

// FindCollection returns the collection with the given id, nil if absent
func (s *Store) FindCollection(id string) *assets.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, collection := range s.collections {
		if collection.ID() == id {
			return collection
		}
	}
	return nil
}

// AddCollection appends a new collection
func (s *Store) AddCollection(_ context.Context, collection *assets.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections = append(s.collections, collection)
	return nil
}

// SaveCollection replaces the stored collection with the same id, or appends
// if it is new.
func (s *Store) SaveCollection(_ context.Context, collection *assets.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.collections {
		if existing.ID() == collection.ID() {
			s.collections[i] = collection
			return nil
		}
	}
	s.collections = append(s.collections, collection)
	return nil
}

// RemoveCollection deletes a collection. Returns false if it was absent.
func (s *Store) RemoveCollection(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, collection := range s.collections {
		if collection.ID() == id {
			s.collections = append(s.collections[:i], s.collections[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// CollectionAssetCount returns the number of assets in a collection
func (s *Store) CollectionAssetCount(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, asset := range s.assets {
		if asset.InCollection(id) {
			count++
		}
	}
	return count
}

// Sources returns all configured asset sources
func (s *Store) Sources() []assets.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]assets.Source, len(s.sources))
	copy(out, s.sources)
	return out
}

// FindSource returns the source with the given id, nil if absent
func (s *Store) FindSource(id string) *assets.Source {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.sources {
		if s.sources[i].ID == id {
			src := s.sources[i]
			return &src
		}
	}
	return nil
}

// UsageDetails returns the recorded usages of an asset grouped by service
func (s *Store) UsageDetails(assetID string) []assets.UsageDetailsGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := s.usages[assetID]
	out := make([]assets.UsageDetailsGroup, len(groups))
	copy(out, groups)
	return out
}

// IsInUse reports whether the asset has at least one recorded usage
func (s *Store) IsInUse(assetID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, group := range s.usages[assetID] {
		if len(group.Usages) > 0 {
			return true
		}
	}
	return false
}
