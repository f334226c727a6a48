package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"medialib-backend/application/ports"
	"medialib-backend/domain/assets"
	"medialib-backend/domain/changes"
	pkgerrors "medialib-backend/pkg/errors"
)

// UpdateCollectionParams carries the optional fields of a collection update
type UpdateCollectionParams struct {
	Title  *string
	TagIDs *[]string
}

// CollectionService implements the collection operations. Deleting a
// collection cascades: memberships are removed from all assets and child
// collections are re-parented to the deleted collection's parent, so no
// dangling references survive.
type CollectionService struct {
	collectionRepo ports.CollectionRepository
	tagRepo        ports.TagRepository
	assetRepo      ports.AssetRepository
	changeLog      *changes.Log
	logger         *zap.Logger
	now            func() time.Time
}

// NewCollectionService creates a collection service
func NewCollectionService(
	collectionRepo ports.CollectionRepository,
	tagRepo ports.TagRepository,
	assetRepo ports.AssetRepository,
	changeLog *changes.Log,
	logger *zap.Logger,
) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		tagRepo:        tagRepo,
		assetRepo:      assetRepo,
		changeLog:      changeLog,
		logger:         logger,
		now:            time.Now,
	}
}

// WithClock overrides the service's time source. Test helper.
func (s *CollectionService) WithClock(now func() time.Time) *CollectionService {
	s.now = now
	return s
}

// Get returns the collection with the given id, nil if absent
func (s *CollectionService) Get(id string) *assets.Collection {
	return s.collectionRepo.FindCollection(id)
}

// List returns all collections in insertion order
func (s *CollectionService) List() []*assets.Collection {
	return s.collectionRepo.Collections()
}

// AssetCount returns the number of assets in a collection
func (s *CollectionService) AssetCount(id string) int {
	return s.collectionRepo.CollectionAssetCount(id)
}

// Create adds a new collection. A parent id that resolves to nothing yields a
// root-level collection rather than an error.
func (s *CollectionService) Create(ctx context.Context, title string, parentID *string) (*assets.Collection, error) {
	parent := ""
	if parentID != nil {
		if existing := s.collectionRepo.FindCollection(*parentID); existing != nil {
			parent = existing.ID()
		}
	}

	collection, err := assets.NewCollection(title, parent)
	if err != nil {
		return nil, err
	}

	if err := s.collectionRepo.AddCollection(ctx, collection); err != nil {
		return nil, pkgerrors.NewPersistenceError("failed to create asset collection", codeAssetAddFailed, err)
	}
	return collection, nil
}

// Update applies a partial update to a collection. Returns false without
// error when the collection does not exist. A tagIds argument replaces the
// collection's tag set, keeping only ids of existing tags.
func (s *CollectionService) Update(ctx context.Context, id string, params UpdateCollectionParams) (bool, error) {
	collection := s.collectionRepo.FindCollection(id)
	if collection == nil {
		return false, nil
	}

	working := assets.ReconstructCollection(collection.ID(), collection.Title(), collection.ParentID(), collection.TagIDs())
	if params.Title != nil {
		if err := working.Rename(*params.Title); err != nil {
			return false, err
		}
	}
	if params.TagIDs != nil {
		known := []string{}
		for _, tagID := range *params.TagIDs {
			if s.tagRepo.FindTag(tagID) != nil {
				known = append(known, tagID)
			}
		}
		working.SetTags(known)
	}

	if err := s.collectionRepo.SaveCollection(ctx, working); err != nil {
		return false, pkgerrors.NewPersistenceError("failed to update asset collection", codeAssetUpdateFailed, err)
	}
	return true, nil
}

// SetParent re-parents a collection. A parent chain that would make the
// collection its own ancestor is rejected.
func (s *CollectionService) SetParent(ctx context.Context, id, parentID string) (bool, error) {
	collection := s.collectionRepo.FindCollection(id)
	if collection == nil {
		return false, nil
	}
	if parentID != "" && s.collectionRepo.FindCollection(parentID) == nil {
		return false, nil
	}

	parentOf := func(cid string) (string, bool) {
		c := s.collectionRepo.FindCollection(cid)
		if c == nil {
			return "", false
		}
		return c.ParentID(), true
	}
	if assets.WouldCreateCycle(id, parentID, parentOf) {
		return false, pkgerrors.NewValidationError("collection cannot become its own ancestor")
	}

	working := assets.ReconstructCollection(collection.ID(), collection.Title(), collection.ParentID(), collection.TagIDs())
	working.SetParent(parentID)

	if err := s.collectionRepo.SaveCollection(ctx, working); err != nil {
		return false, pkgerrors.NewPersistenceError("failed to update asset collection", codeAssetUpdateFailed, err)
	}
	return true, nil
}

// Delete removes a collection. Returns false when it does not exist. Assets
// referencing the collection lose the membership (an ASSET_UPDATED change is
// recorded for each), and child collections move up to the deleted
// collection's parent.
func (s *CollectionService) Delete(ctx context.Context, id string) (bool, error) {
	collection := s.collectionRepo.FindCollection(id)
	if collection == nil {
		return false, nil
	}

	removed, err := s.collectionRepo.RemoveCollection(ctx, id)
	if err != nil {
		return false, pkgerrors.NewPersistenceError("failed to delete asset collection", codeAssetDeleteFailed, err)
	}
	if !removed {
		return false, nil
	}

	now := s.now()
	for _, asset := range s.assetRepo.Assets() {
		if !asset.InCollection(id) {
			continue
		}
		working := asset.Clone()
		working.RemoveCollection(id, now)
		if err := s.assetRepo.SaveAsset(ctx, working); err != nil {
			s.logger.Error("failed to detach asset from deleted collection",
				zap.String("collectionID", id),
				zap.String("assetID", asset.Identity().AssetID()),
				zap.Error(err),
			)
			continue
		}
		s.changeLog.Record(changes.Record{
			AssetID:      asset.Identity().AssetID(),
			Type:         changes.TypeAssetUpdated,
			LastModified: now,
		})
	}

	for _, child := range s.collectionRepo.Collections() {
		if child.ParentID() != id {
			continue
		}
		working := assets.ReconstructCollection(child.ID(), child.Title(), collection.ParentID(), child.TagIDs())
		if err := s.collectionRepo.SaveCollection(ctx, working); err != nil {
			s.logger.Error("failed to re-parent child collection",
				zap.String("collectionID", child.ID()),
				zap.Error(err),
			)
		}
	}

	return true, nil
}
