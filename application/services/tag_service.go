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

// TagService implements the tag operations. Deleting a tag cascades through
// asset tag sets and collection tag sets so no dangling references survive.
type TagService struct {
	tagRepo        ports.TagRepository
	assetRepo      ports.AssetRepository
	collectionRepo ports.CollectionRepository
	changeLog      *changes.Log
	logger         *zap.Logger
	now            func() time.Time
}

// NewTagService creates a tag service
func NewTagService(
	tagRepo ports.TagRepository,
	assetRepo ports.AssetRepository,
	collectionRepo ports.CollectionRepository,
	changeLog *changes.Log,
	logger *zap.Logger,
) *TagService {
	return &TagService{
		tagRepo:        tagRepo,
		assetRepo:      assetRepo,
		collectionRepo: collectionRepo,
		changeLog:      changeLog,
		logger:         logger,
		now:            time.Now,
	}
}

// WithClock overrides the service's time source. Test helper.
func (s *TagService) WithClock(now func() time.Time) *TagService {
	s.now = now
	return s
}

// Get returns the tag with the given id, nil if absent
func (s *TagService) Get(id string) *assets.Tag {
	return s.tagRepo.FindTag(id)
}

// List returns all tags in insertion order
func (s *TagService) List() []*assets.Tag {
	return s.tagRepo.Tags()
}

// Create adds a new tag. A duplicate label is not an error: the existing tag
// is returned with created=false so the caller can distinguish the outcomes.
func (s *TagService) Create(ctx context.Context, label string) (*assets.Tag, bool, error) {
	if existing := s.tagRepo.FindTagByLabel(label); existing != nil {
		return existing, false, nil
	}

	tag, err := assets.NewTag(label)
	if err != nil {
		return nil, false, err
	}

	if err := s.tagRepo.AddTag(ctx, tag); err != nil {
		return nil, false, pkgerrors.NewPersistenceError("failed to create tag", codeAssetAddFailed, err)
	}
	return tag, true, nil
}

// Delete removes a tag. Returns false when it does not exist. The tag id is
// removed from every asset tag set (recording an ASSET_UPDATED change per
// affected asset) and from every collection tag set.
func (s *TagService) Delete(ctx context.Context, id string) (bool, error) {
	tag := s.tagRepo.FindTag(id)
	if tag == nil {
		return false, nil
	}

	removed, err := s.tagRepo.RemoveTag(ctx, id)
	if err != nil {
		return false, pkgerrors.NewPersistenceError("failed to delete tag", codeAssetDeleteFailed, err)
	}
	if !removed {
		return false, nil
	}

	now := s.now()
	for _, asset := range s.assetRepo.Assets() {
		if !asset.HasTag(id) {
			continue
		}
		working := asset.Clone()
		working.RemoveTag(id, now)
		if err := s.assetRepo.SaveAsset(ctx, working); err != nil {
			s.logger.Error("failed to detach deleted tag from asset",
				zap.String("tagID", id),
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

	for _, collection := range s.collectionRepo.Collections() {
		working := assets.ReconstructCollection(collection.ID(), collection.Title(), collection.ParentID(), collection.TagIDs())
		if !working.RemoveTag(id) {
			continue
		}
		if err := s.collectionRepo.SaveCollection(ctx, working); err != nil {
			s.logger.Error("failed to detach deleted tag from collection",
				zap.String("tagID", id),
				zap.String("collectionID", collection.ID()),
				zap.Error(err),
			)
		}
	}

	return true, nil
}
