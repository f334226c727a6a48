package graphql

import (
	"time"

	gographql "github.com/graph-gophers/graphql-go"

	"medialib-backend/domain/assets"
	"medialib-backend/domain/changes"
	"medialib-backend/infrastructure/config"
)

// AssetResolver resolves the fields of an Asset
type AssetResolver struct {
	asset *assets.Asset
	root  *Resolver
}

func (r *AssetResolver) ID() gographql.ID {
	return gographql.ID(r.asset.Identity().AssetID())
}

func (r *AssetResolver) AssetSource() *AssetSourceResolver {
	sourceID := r.asset.Identity().AssetSourceID()
	if source := r.root.sourceRepo.FindSource(sourceID); source != nil {
		return &AssetSourceResolver{source: *source}
	}
	// Source missing from configuration; the identity still names it
	return &AssetSourceResolver{source: assets.Source{ID: sourceID, Label: sourceID}}
}

func (r *AssetResolver) Kind() string {
	return string(r.asset.Kind())
}

func (r *AssetResolver) Label() string {
	return r.asset.Label()
}

func (r *AssetResolver) Caption() string {
	return r.asset.Caption()
}

func (r *AssetResolver) CopyrightNotice() string {
	return r.asset.CopyrightNotice()
}

func (r *AssetResolver) MediaType() string {
	return r.asset.MediaType()
}

func (r *AssetResolver) Filename() string {
	return r.asset.Filename()
}

func (r *AssetResolver) ThumbnailUrl() string {
	return r.asset.ThumbnailURL()
}

func (r *AssetResolver) LastModified() gographql.Time {
	return gographql.Time{Time: r.asset.LastModified()}
}

// Tags resolves the asset's tag references. Ids without a backing tag are
// skipped; deletion cascades make that transient at worst.
func (r *AssetResolver) Tags() []*TagResolver {
	out := []*TagResolver{}
	for _, tagID := range r.asset.TagIDs() {
		if tag := r.root.tagSvc.Get(tagID); tag != nil {
			out = append(out, &TagResolver{tag: tag})
		}
	}
	return out
}

func (r *AssetResolver) Collections() []*AssetCollectionResolver {
	out := []*AssetCollectionResolver{}
	for _, collectionID := range r.asset.CollectionIDs() {
		if collection := r.root.collectionSvc.Get(collectionID); collection != nil {
			out = append(out, r.root.newCollectionResolver(collection))
		}
	}
	return out
}

func (r *AssetResolver) IsInUse() bool {
	return r.root.assetSvc.IsInUse(r.asset.Identity().AssetID())
}

// AssetSourceResolver resolves the fields of an AssetSource
type AssetSourceResolver struct {
	source assets.Source
}

func (r *AssetSourceResolver) ID() gographql.ID {
	return gographql.ID(r.source.ID)
}

func (r *AssetSourceResolver) Label() string {
	return r.source.Label
}

func (r *AssetSourceResolver) Description() string {
	return r.source.Description
}

func (r *AssetSourceResolver) IconUri() string {
	return r.source.IconURI
}

func (r *AssetSourceResolver) ReadOnly() bool {
	return r.source.ReadOnly
}

func (r *AssetSourceResolver) SupportsTagging() bool {
	return r.source.SupportsTagging
}

func (r *AssetSourceResolver) SupportsCollections() bool {
	return r.source.SupportsCollections
}

// TagResolver resolves the fields of a Tag
type TagResolver struct {
	tag *assets.Tag
}

func (r *TagResolver) ID() gographql.ID {
	return gographql.ID(r.tag.ID())
}

func (r *TagResolver) Label() string {
	return r.tag.Label()
}

// AssetCollectionResolver resolves the fields of an AssetCollection
type AssetCollectionResolver struct {
	collection *assets.Collection
	root       *Resolver
}

func (r *AssetCollectionResolver) ID() gographql.ID {
	return gographql.ID(r.collection.ID())
}

func (r *AssetCollectionResolver) Title() string {
	return r.collection.Title()
}

func (r *AssetCollectionResolver) Parent() *AssetCollectionResolver {
	parentID := r.collection.ParentID()
	if parentID == "" {
		return nil
	}
	parent := r.root.collectionSvc.Get(parentID)
	if parent == nil {
		return nil
	}
	return r.root.newCollectionResolver(parent)
}

func (r *AssetCollectionResolver) Tags() []*TagResolver {
	out := []*TagResolver{}
	for _, tagID := range r.collection.TagIDs() {
		if tag := r.root.tagSvc.Get(tagID); tag != nil {
			out = append(out, &TagResolver{tag: tag})
		}
	}
	return out
}

func (r *AssetCollectionResolver) AssetCount() int32 {
	return int32(r.root.collectionSvc.AssetCount(r.collection.ID()))
}

// ChangedAssetsResolver resolves a change feed
type ChangedAssetsResolver struct {
	feed changes.Feed
}

func (r *ChangedAssetsResolver) LastModified() *gographql.Time {
	if r.feed.LastModified == nil {
		return nil
	}
	return &gographql.Time{Time: *r.feed.LastModified}
}

func (r *ChangedAssetsResolver) Changes() []*AssetChangeResolver {
	out := make([]*AssetChangeResolver, 0, len(r.feed.Changes))
	for _, rec := range r.feed.Changes {
		out = append(out, &AssetChangeResolver{record: rec})
	}
	return out
}

// AssetChangeResolver resolves a single change record
type AssetChangeResolver struct {
	record changes.Record
}

func (r *AssetChangeResolver) AssetID() gographql.ID {
	return gographql.ID(r.record.AssetID)
}

func (r *AssetChangeResolver) Type() string {
	return string(r.record.Type)
}

func (r *AssetChangeResolver) LastModified() gographql.Time {
	return gographql.Time{Time: r.record.LastModified}
}

// UsageDetailsGroupResolver resolves one service's usage report
type UsageDetailsGroupResolver struct {
	group assets.UsageDetailsGroup
}

func (r *UsageDetailsGroupResolver) ServiceID() gographql.ID {
	return gographql.ID(r.group.ServiceID)
}

func (r *UsageDetailsGroupResolver) Label() string {
	return r.group.Label
}

func (r *UsageDetailsGroupResolver) Usages() []*UsageResolver {
	out := make([]*UsageResolver, 0, len(r.group.Usages))
	for _, usage := range r.group.Usages {
		out = append(out, &UsageResolver{usage: usage})
	}
	return out
}

// UsageResolver resolves a single usage entry
type UsageResolver struct {
	usage assets.Usage
}

func (r *UsageResolver) Label() string {
	return r.usage.Label
}

func (r *UsageResolver) Url() string {
	return r.usage.URL
}

// AssetVariantResolver resolves an asset variant
type AssetVariantResolver struct {
	id    string
	label string
}

func (r *AssetVariantResolver) ID() gographql.ID {
	return gographql.ID(r.id)
}

func (r *AssetVariantResolver) Label() string {
	return r.label
}

// UploadResultResolver resolves the outcome of an upload mutation
type UploadResultResolver struct {
	success bool
	result  string
}

func (r *UploadResultResolver) Success() bool {
	return r.success
}

func (r *UploadResultResolver) Result() string {
	return r.result
}

// ConfigResolver resolves client-facing configuration
type ConfigResolver struct {
	cfg *config.Config
	now func() time.Time
}

func (r *ConfigResolver) UploadMaxFileSize() int32 {
	return int32(r.cfg.UploadMaxFileSize)
}

func (r *ConfigResolver) UploadMaxFileUploadLimit() int32 {
	return int32(r.cfg.UploadMaxFileUploadLimit)
}

func (r *ConfigResolver) CurrentServerTime() gographql.Time {
	return gographql.Time{Time: r.now()}
}
