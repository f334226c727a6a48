package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"medialib-backend/application/ports"
	"medialib-backend/application/query"
	"medialib-backend/domain/assets"
	"medialib-backend/domain/changes"
	pkgerrors "medialib-backend/pkg/errors"
)

// UpdateAssetParams carries the optional fields of an asset update. A nil
// field leaves the stored value untouched; this is a partial update, not a
// replace.
type UpdateAssetParams struct {
	Label           *string
	Caption         *string
	CopyrightNotice *string
}

// AssetService implements the asset read and mutation operations. Every
// mutation follows the same three phases: resolve the target by identity
// (absent target is a null/false result, not an error), apply the changes to
// a working copy, then commit and append a change record. A failed commit
// leaves the store and the change log untouched.
type AssetService struct {
	assetRepo      ports.AssetRepository
	tagRepo        ports.TagRepository
	collectionRepo ports.CollectionRepository
	usage          ports.UsageLookup
	changeLog      *changes.Log
	sorter         *query.Sorter
	logger         *zap.Logger
	now            func() time.Time
}

// NewAssetService creates an asset service
func NewAssetService(
	assetRepo ports.AssetRepository,
	tagRepo ports.TagRepository,
	collectionRepo ports.CollectionRepository,
	usage ports.UsageLookup,
	changeLog *changes.Log,
	sorter *query.Sorter,
	logger *zap.Logger,
) *AssetService {
	return &AssetService{
		assetRepo:      assetRepo,
		tagRepo:        tagRepo,
		collectionRepo: collectionRepo,
		usage:          usage,
		changeLog:      changeLog,
		sorter:         sorter,
		logger:         logger,
		now:            time.Now,
	}
}

// WithClock overrides the service's time source. Test helper.
func (s *AssetService) WithClock(now func() time.Time) *AssetService {
	s.now = now
	return s
}

// Get returns the asset with the given identity, nil if absent
func (s *AssetService) Get(identity assets.Identity) *assets.Asset {
	return s.assetRepo.FindAsset(identity)
}

// List returns one page of the filtered-and-sorted asset list
func (s *AssetService) List(
	criteria query.Criteria,
	sortBy query.SortBy,
	direction query.Direction,
	offset, limit int,
) ([]*assets.Asset, error) {
	filtered := query.Filter(s.assetRepo.Assets(), criteria)
	sorted := s.sorter.Sort(filtered, sortBy, direction)
	return query.Paginate(sorted, offset, limit)
}

// Count returns the number of assets matching the criteria
func (s *AssetService) Count(criteria query.Criteria) int {
	return len(query.Filter(s.assetRepo.Assets(), criteria))
}

// Unused returns one page of the assets without any recorded usage
func (s *AssetService) Unused(offset, limit int) ([]*assets.Asset, error) {
	return query.Paginate(s.unused(), offset, limit)
}

// UnusedCount returns the number of assets without any recorded usage
func (s *AssetService) UnusedCount() int {
	return len(s.unused())
}

func (s *AssetService) unused() []*assets.Asset {
	out := []*assets.Asset{}
	for _, asset := range s.assetRepo.Assets() {
		if !s.usage.IsInUse(asset.Identity().AssetID()) {
			out = append(out, asset)
		}
	}
	return out
}

// IsInUse reports whether the asset has at least one recorded usage
func (s *AssetService) IsInUse(assetID string) bool {
	return s.usage.IsInUse(assetID)
}

// UsageDetails returns the asset's usages grouped by reporting service
func (s *AssetService) UsageDetails(assetID string) []assets.UsageDetailsGroup {
	return s.usage.UsageDetails(assetID)
}

// Changed returns the change records newer than the cursor plus the global
// watermark. A nil cursor returns the full history.
func (s *AssetService) Changed(since *time.Time) changes.Feed {
	return s.changeLog.Since(since)
}

// Update applies a partial update to an asset. Returns nil without error when
// the asset does not exist.
func (s *AssetService) Update(ctx context.Context, identity assets.Identity, params UpdateAssetParams) (*assets.Asset, error) {
	asset := s.assetRepo.FindAsset(identity)
	if asset == nil {
		return nil, nil
	}

	now := s.now()
	working := asset.Clone()
	if err := working.UpdateFields(params.Label, params.Caption, params.CopyrightNotice, now); err != nil {
		return nil, err
	}

	if err := s.assetRepo.SaveAsset(ctx, working); err != nil {
		return nil, pkgerrors.NewPersistenceError("failed to update asset", codeAssetUpdateFailed, err)
	}

	s.recordChange(identity, changes.TypeAssetUpdated, now)
	return working, nil
}

// Tag adds the tag with the given label to an asset. A missing asset is a
// null result; a missing tag is an error - the client referenced something
// that does not exist.
func (s *AssetService) Tag(ctx context.Context, identity assets.Identity, tagLabel string) (*assets.Asset, error) {
	asset := s.assetRepo.FindAsset(identity)
	if asset == nil {
		return nil, nil
	}

	tag := s.tagRepo.FindTagByLabel(tagLabel)
	if tag == nil {
		return nil, pkgerrors.NewInvalidReferenceError("cannot tag asset with tag that does not exist", codeUnknownTagOnTag)
	}

	now := s.now()
	working := asset.Clone()
	working.AddTag(tag.ID(), now)

	if err := s.assetRepo.SaveAsset(ctx, working); err != nil {
		return nil, pkgerrors.NewPersistenceError("failed to update asset", codeTagAddFailed, err)
	}

	s.recordChange(identity, changes.TypeAssetUpdated, now)
	return working, nil
}

// Untag removes the tag with the given label from an asset
func (s *AssetService) Untag(ctx context.Context, identity assets.Identity, tagLabel string) (*assets.Asset, error) {
	asset := s.assetRepo.FindAsset(identity)
	if asset == nil {
		return nil, nil
	}

	tag := s.tagRepo.FindTagByLabel(tagLabel)
	if tag == nil {
		return nil, pkgerrors.NewInvalidReferenceError("cannot untag asset from tag that does not exist", codeUnknownTagOnUntag)
	}

	now := s.now()
	working := asset.Clone()
	working.RemoveTag(tag.ID(), now)

	if err := s.assetRepo.SaveAsset(ctx, working); err != nil {
		return nil, pkgerrors.NewPersistenceError("failed to update asset", codeTagRemoveFailed, err)
	}

	s.recordChange(identity, changes.TypeAssetUpdated, now)
	return working, nil
}

// SetTags replaces an asset's tag set. Unknown tag ids are dropped so the
// stored set only ever references existing tags.
func (s *AssetService) SetTags(ctx context.Context, identity assets.Identity, tagIDs []string) (*assets.Asset, error) {
	asset := s.assetRepo.FindAsset(identity)
	if asset == nil {
		return nil, nil
	}

	known := []string{}
	for _, id := range tagIDs {
		if s.tagRepo.FindTag(id) != nil {
			known = append(known, id)
		}
	}

	now := s.now()
	working := asset.Clone()
	working.SetTags(known, now)

	if err := s.assetRepo.SaveAsset(ctx, working); err != nil {
		return nil, pkgerrors.NewPersistenceError("failed to update asset", codeAssetUpdateFailed, err)
	}

	s.recordChange(identity, changes.TypeAssetUpdated, now)
	return working, nil
}

// SetCollections replaces an asset's collection memberships. Unknown
// collection ids are dropped.
func (s *AssetService) SetCollections(ctx context.Context, identity assets.Identity, collectionIDs []string) (*assets.Asset, error) {
	asset := s.assetRepo.FindAsset(identity)
	if asset == nil {
		return nil, nil
	}

	known := []string{}
	for _, id := range collectionIDs {
		if s.collectionRepo.FindCollection(id) != nil {
			known = append(known, id)
		}
	}

	now := s.now()
	working := asset.Clone()
	working.SetCollections(known, now)

	if err := s.assetRepo.SaveAsset(ctx, working); err != nil {
		return nil, pkgerrors.NewPersistenceError("failed to update asset", codeAssetUpdateFailed, err)
	}

	s.recordChange(identity, changes.TypeAssetUpdated, now)
	return working, nil
}

// Delete removes an asset. An asset with recorded usages is not deleted; the
// operation reports false instead of raising an error. Exactly one
// ASSET_REMOVED record is appended on success.
func (s *AssetService) Delete(ctx context.Context, identity assets.Identity) (bool, error) {
	asset := s.assetRepo.FindAsset(identity)
	if asset == nil {
		return false, nil
	}

	if s.usage.IsInUse(identity.AssetID()) {
		s.logger.Info("refusing to delete asset in use",
			zap.String("assetID", identity.AssetID()),
			zap.String("assetSourceID", identity.AssetSourceID()),
		)
		return false, nil
	}

	removed, err := s.assetRepo.RemoveAsset(ctx, identity)
	if err != nil {
		return false, pkgerrors.NewPersistenceError("failed to delete asset", codeAssetDeleteFailed, err)
	}
	if !removed {
		return false, nil
	}

	s.recordChange(identity, changes.TypeAssetRemoved, s.now())
	return true, nil
}

func (s *AssetService) recordChange(identity assets.Identity, changeType changes.Type, ts time.Time) {
	s.changeLog.Record(changes.Record{
		AssetID:      identity.AssetID(),
		Type:         changeType,
		LastModified: ts,
	})
}
