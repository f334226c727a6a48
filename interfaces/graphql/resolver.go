// Package graphql exposes the asset query and mutation surface. Resolvers
// only parse and validate arguments; all semantics live in the application
// services.
package graphql

import (
	"time"

	gographql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"medialib-backend/application/ports"
	"medialib-backend/application/query"
	"medialib-backend/application/services"
	"medialib-backend/domain/assets"
	"medialib-backend/infrastructure/config"
	pkgerrors "medialib-backend/pkg/errors"
	"medialib-backend/pkg/utils"
)

// Stable code for operations the schema declares but the server does not
// support. Clients must treat these as terminal, not transient.
const codeNotImplemented = 1594199031

// Resolver is the root GraphQL resolver
type Resolver struct {
	assetSvc      *services.AssetService
	tagSvc        *services.TagService
	collectionSvc *services.CollectionService
	sourceRepo    ports.SourceRepository
	cfg           *config.Config
	logger        *zap.Logger
	now           func() time.Time
}

// NewResolver creates the root resolver
func NewResolver(
	assetSvc *services.AssetService,
	tagSvc *services.TagService,
	collectionSvc *services.CollectionService,
	sourceRepo ports.SourceRepository,
	cfg *config.Config,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		assetSvc:      assetSvc,
		tagSvc:        tagSvc,
		collectionSvc: collectionSvc,
		sourceRepo:    sourceRepo,
		cfg:           cfg,
		logger:        logger,
		now:           time.Now,
	}
}

// NewSchema parses the schema against the root resolver
func NewSchema(resolver *Resolver) (*gographql.Schema, error) {
	return gographql.ParseSchema(SchemaString, resolver)
}

// identityFromArgs builds a validated asset identity from raw id arguments
func identityFromArgs(id, assetSourceID gographql.ID) (assets.Identity, error) {
	return assets.NewIdentity(string(id), string(assetSourceID))
}

func notImplemented(operation string) error {
	return pkgerrors.NewNotImplementedError(operation, codeNotImplemented)
}

// AssetArgs identifies one asset
type AssetArgs struct {
	ID            gographql.ID
	AssetSourceID gographql.ID
}

// Asset resolves a single asset by composite identity
func (r *Resolver) Asset(args AssetArgs) (*AssetResolver, error) {
	identity, err := identityFromArgs(args.ID, args.AssetSourceID)
	if err != nil {
		return nil, err
	}
	asset := r.assetSvc.Get(identity)
	if asset == nil {
		return nil, nil
	}
	return r.newAssetResolver(asset), nil
}

// AssetsArgs carries the filter, sort and pagination arguments of the assets
// query. Defaults are filled in from the schema; the struct is validated
// before any of it reaches the query engine.
type AssetsArgs struct {
	AssetSourceID     gographql.ID
	TagID             *gographql.ID
	AssetCollectionID *gographql.ID
	MediaType         string
	SearchTerm        string
	Limit             int32  `validate:"gte=0"`
	Offset            int32  `validate:"gte=0"`
	SortBy            string `validate:"oneof=name lastModified"`
	SortDirection     string `validate:"oneof=ASC DESC"`
}

func (a AssetsArgs) criteria() query.Criteria {
	c := query.Criteria{
		AssetSourceID: string(a.AssetSourceID),
		MediaType:     a.MediaType,
		SearchTerm:    a.SearchTerm,
	}
	if a.TagID != nil {
		c.TagID = string(*a.TagID)
	}
	if a.AssetCollectionID != nil {
		c.AssetCollectionID = string(*a.AssetCollectionID)
	}
	return c
}

// Assets resolves one page of the filtered-and-sorted asset list
func (r *Resolver) Assets(args AssetsArgs) ([]*AssetResolver, error) {
	if err := utils.ValidateStruct(args); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	list, err := r.assetSvc.List(
		args.criteria(),
		query.SortBy(args.SortBy),
		query.Direction(args.SortDirection),
		int(args.Offset),
		int(args.Limit),
	)
	if err != nil {
		return nil, err
	}
	return r.newAssetResolvers(list), nil
}

// AssetCountArgs carries the filter arguments of the assetCount query
type AssetCountArgs struct {
	AssetSourceID     gographql.ID
	TagID             *gographql.ID
	AssetCollectionID *gographql.ID
	MediaType         string
	SearchTerm        string
}

// AssetCount resolves the number of assets matching the filter
func (r *Resolver) AssetCount(args AssetCountArgs) int32 {
	c := query.Criteria{
		AssetSourceID: string(args.AssetSourceID),
		MediaType:     args.MediaType,
		SearchTerm:    args.SearchTerm,
	}
	if args.TagID != nil {
		c.TagID = string(*args.TagID)
	}
	if args.AssetCollectionID != nil {
		c.AssetCollectionID = string(*args.AssetCollectionID)
	}
	return int32(r.assetSvc.Count(c))
}

// PageArgs carries plain pagination arguments
type PageArgs struct {
	Limit  int32 `validate:"gte=0"`
	Offset int32 `validate:"gte=0"`
}

// UnusedAssets resolves one page of the assets without recorded usages
func (r *Resolver) UnusedAssets(args PageArgs) ([]*AssetResolver, error) {
	if err := utils.ValidateStruct(args); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}
	list, err := r.assetSvc.Unused(int(args.Offset), int(args.Limit))
	if err != nil {
		return nil, err
	}
	return r.newAssetResolvers(list), nil
}

// UnusedAssetCount resolves the number of assets without recorded usages
func (r *Resolver) UnusedAssetCount() int32 {
	return int32(r.assetSvc.UnusedCount())
}

// ChangedAssets resolves the change records newer than the cursor plus the
// global watermark
func (r *Resolver) ChangedAssets(args struct{ Since *gographql.Time }) *ChangedAssetsResolver {
	var since *time.Time
	if args.Since != nil {
		since = &args.Since.Time
	}
	feed := r.assetSvc.Changed(since)
	return &ChangedAssetsResolver{feed: feed}
}

// SimilarAssets is declared for client compatibility only
func (r *Resolver) SimilarAssets(args AssetArgs) ([]*AssetResolver, error) {
	return nil, notImplemented("similarAssets")
}

// AssetUsageDetails resolves an asset's usages grouped by reporting service
func (r *Resolver) AssetUsageDetails(args struct{ ID gographql.ID }) []*UsageDetailsGroupResolver {
	groups := r.assetSvc.UsageDetails(string(args.ID))
	out := make([]*UsageDetailsGroupResolver, 0, len(groups))
	for _, group := range groups {
		out = append(out, &UsageDetailsGroupResolver{group: group})
	}
	return out
}

// AssetUsageCount is declared for client compatibility only
func (r *Resolver) AssetUsageCount(args AssetArgs) (int32, error) {
	return 0, notImplemented("assetUsageCount")
}

// AssetVariants resolves an asset's variants; variants are not modeled yet,
// so the list is always empty.
func (r *Resolver) AssetVariants(args struct{ ID gographql.ID }) []*AssetVariantResolver {
	return []*AssetVariantResolver{}
}

// AssetSources resolves all configured asset sources
func (r *Resolver) AssetSources() []*AssetSourceResolver {
	sources := r.sourceRepo.Sources()
	out := make([]*AssetSourceResolver, 0, len(sources))
	for _, source := range sources {
		out = append(out, &AssetSourceResolver{source: source})
	}
	return out
}

// AssetCollections resolves all collections
func (r *Resolver) AssetCollections() []*AssetCollectionResolver {
	collections := r.collectionSvc.List()
	out := make([]*AssetCollectionResolver, 0, len(collections))
	for _, collection := range collections {
		out = append(out, r.newCollectionResolver(collection))
	}
	return out
}

// AssetCollection resolves a single collection by id
func (r *Resolver) AssetCollection(args struct{ ID gographql.ID }) *AssetCollectionResolver {
	collection := r.collectionSvc.Get(string(args.ID))
	if collection == nil {
		return nil
	}
	return r.newCollectionResolver(collection)
}

// Tags resolves all tags
func (r *Resolver) Tags() []*TagResolver {
	tags := r.tagSvc.List()
	out := make([]*TagResolver, 0, len(tags))
	for _, tag := range tags {
		out = append(out, &TagResolver{tag: tag})
	}
	return out
}

// Tag resolves a single tag by id
func (r *Resolver) Tag(args struct{ ID gographql.ID }) *TagResolver {
	tag := r.tagSvc.Get(string(args.ID))
	if tag == nil {
		return nil
	}
	return &TagResolver{tag: tag}
}

// Config resolves client-facing configuration
func (r *Resolver) Config() *ConfigResolver {
	return &ConfigResolver{cfg: r.cfg, now: r.now}
}

func (r *Resolver) newAssetResolver(asset *assets.Asset) *AssetResolver {
	return &AssetResolver{asset: asset, root: r}
}

func (r *Resolver) newAssetResolvers(list []*assets.Asset) []*AssetResolver {
	out := make([]*AssetResolver, 0, len(list))
	for _, asset := range list {
		out = append(out, r.newAssetResolver(asset))
	}
	return out
}

func (r *Resolver) newCollectionResolver(collection *assets.Collection) *AssetCollectionResolver {
	return &AssetCollectionResolver{collection: collection, root: r}
}
