package graphql

import (
	"context"

	gographql "github.com/graph-gophers/graphql-go"

	"medialib-backend/application/services"
	pkgerrors "medialib-backend/pkg/errors"
	"medialib-backend/pkg/utils"
)

// UpdateAssetArgs carries the optional field updates of updateAsset. Absent
// arguments leave the stored fields untouched.
type UpdateAssetArgs struct {
	ID              gographql.ID
	AssetSourceID   gographql.ID
	Label           *string `validate:"omitempty,min=1"`
	Caption         *string
	CopyrightNotice *string
}

// UpdateAsset applies a partial update to an asset. Resolves to null when the
// asset does not exist.
func (r *Resolver) UpdateAsset(ctx context.Context, args UpdateAssetArgs) (*AssetResolver, error) {
	if err := utils.ValidateStruct(args); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}
	identity, err := identityFromArgs(args.ID, args.AssetSourceID)
	if err != nil {
		return nil, err
	}

	asset, err := r.assetSvc.Update(ctx, identity, services.UpdateAssetParams{
		Label:           args.Label,
		Caption:         args.Caption,
		CopyrightNotice: args.CopyrightNotice,
	})
	if err != nil || asset == nil {
		return nil, err
	}
	return r.newAssetResolver(asset), nil
}

// TagAssetArgs names an asset and a tag label
type TagAssetArgs struct {
	ID            gographql.ID
	AssetSourceID gographql.ID
	Tag           string `validate:"required"`
}

// TagAsset adds a tag to an asset. A missing asset resolves to null; a
// missing tag is an error.
func (r *Resolver) TagAsset(ctx context.Context, args TagAssetArgs) (*AssetResolver, error) {
	if err := utils.ValidateStruct(args); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}
	identity, err := identityFromArgs(args.ID, args.AssetSourceID)
	if err != nil {
		return nil, err
	}

	asset, err := r.assetSvc.Tag(ctx, identity, args.Tag)
	if err != nil || asset == nil {
		return nil, err
	}
	return r.newAssetResolver(asset), nil
}

// UntagAsset removes a tag from an asset
func (r *Resolver) UntagAsset(ctx context.Context, args TagAssetArgs) (*AssetResolver, error) {
	if err := utils.ValidateStruct(args); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}
	identity, err := identityFromArgs(args.ID, args.AssetSourceID)
	if err != nil {
		return nil, err
	}

	asset, err := r.assetSvc.Untag(ctx, identity, args.Tag)
	if err != nil || asset == nil {
		return nil, err
	}
	return r.newAssetResolver(asset), nil
}

// SetAssetTagsArgs names an asset and its new tag set
type SetAssetTagsArgs struct {
	ID            gographql.ID
	AssetSourceID gographql.ID
	TagIDs        []gographql.ID
}

// SetAssetTags replaces an asset's tag set
func (r *Resolver) SetAssetTags(ctx context.Context, args SetAssetTagsArgs) (*AssetResolver, error) {
	identity, err := identityFromArgs(args.ID, args.AssetSourceID)
	if err != nil {
		return nil, err
	}

	asset, err := r.assetSvc.SetTags(ctx, identity, idStrings(args.TagIDs))
	if err != nil || asset == nil {
		return nil, err
	}
	return r.newAssetResolver(asset), nil
}

// SetAssetCollectionsArgs names an asset and its new collection memberships
type SetAssetCollectionsArgs struct {
	ID                 gographql.ID
	AssetSourceID      gographql.ID
	AssetCollectionIDs []gographql.ID
}

// SetAssetCollections replaces an asset's collection memberships
func (r *Resolver) SetAssetCollections(ctx context.Context, args SetAssetCollectionsArgs) (*AssetResolver, error) {
	identity, err := identityFromArgs(args.ID, args.AssetSourceID)
	if err != nil {
		return nil, err
	}

	asset, err := r.assetSvc.SetCollections(ctx, identity, idStrings(args.AssetCollectionIDs))
	if err != nil || asset == nil {
		return nil, err
	}
	return r.newAssetResolver(asset), nil
}

// DeleteAsset removes an asset. Resolves to false when the asset is absent
// or still in use.
func (r *Resolver) DeleteAsset(ctx context.Context, args AssetArgs) (bool, error) {
	identity, err := identityFromArgs(args.ID, args.AssetSourceID)
	if err != nil {
		return false, err
	}
	return r.assetSvc.Delete(ctx, identity)
}

// CreateAssetCollectionArgs carries the arguments of createAssetCollection
type CreateAssetCollectionArgs struct {
	Title  string `validate:"required,min=1"`
	Parent *gographql.ID
}

// CreateAssetCollection adds a new collection
func (r *Resolver) CreateAssetCollection(ctx context.Context, args CreateAssetCollectionArgs) (*AssetCollectionResolver, error) {
	if err := utils.ValidateStruct(args); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	var parentID *string
	if args.Parent != nil {
		p := string(*args.Parent)
		parentID = &p
	}

	collection, err := r.collectionSvc.Create(ctx, args.Title, parentID)
	if err != nil {
		return nil, err
	}
	return r.newCollectionResolver(collection), nil
}

// UpdateAssetCollectionArgs carries the optional field updates of
// updateAssetCollection
type UpdateAssetCollectionArgs struct {
	ID     gographql.ID
	Title  *string `validate:"omitempty,min=1"`
	TagIDs *[]gographql.ID
}

// UpdateAssetCollection applies a partial update to a collection
func (r *Resolver) UpdateAssetCollection(ctx context.Context, args UpdateAssetCollectionArgs) (bool, error) {
	if err := utils.ValidateStruct(args); err != nil {
		return false, pkgerrors.NewValidationError(err.Error())
	}

	params := services.UpdateCollectionParams{Title: args.Title}
	if args.TagIDs != nil {
		ids := idStrings(*args.TagIDs)
		params.TagIDs = &ids
	}
	return r.collectionSvc.Update(ctx, string(args.ID), params)
}

// DeleteAssetCollection removes a collection and detaches it everywhere
func (r *Resolver) DeleteAssetCollection(ctx context.Context, args struct{ ID gographql.ID }) (bool, error) {
	return r.collectionSvc.Delete(ctx, string(args.ID))
}

// SetAssetCollectionParentArgs names a collection and its new parent
type SetAssetCollectionParentArgs struct {
	ID     gographql.ID
	Parent gographql.ID
}

// SetAssetCollectionParent re-parents a collection
func (r *Resolver) SetAssetCollectionParent(ctx context.Context, args SetAssetCollectionParentArgs) (bool, error) {
	return r.collectionSvc.SetParent(ctx, string(args.ID), string(args.Parent))
}

// CreateTag adds a new tag. A duplicate label resolves to null so the client
// can tell the outcomes apart without an error path.
func (r *Resolver) CreateTag(ctx context.Context, args struct{ Tag string }) (*TagResolver, error) {
	tag, created, err := r.tagSvc.Create(ctx, args.Tag)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, nil
	}
	return &TagResolver{tag: tag}, nil
}

// UpdateTagArgs names a tag and its new label
type UpdateTagArgs struct {
	ID    gographql.ID
	Label string
}

// UpdateTag is declared for client compatibility only
func (r *Resolver) UpdateTag(ctx context.Context, args UpdateTagArgs) (*TagResolver, error) {
	return nil, notImplemented("updateTag")
}

// DeleteTag removes a tag and detaches it from assets and collections
func (r *Resolver) DeleteTag(ctx context.Context, args struct{ ID gographql.ID }) (bool, error) {
	return r.tagSvc.Delete(ctx, string(args.ID))
}

// FileMutationArgs names an asset and a filename
type FileMutationArgs struct {
	ID            gographql.ID
	AssetSourceID gographql.ID
	Filename      string
}

// ReplaceAsset is declared for client compatibility only
func (r *Resolver) ReplaceAsset(ctx context.Context, args FileMutationArgs) (*AssetResolver, error) {
	return nil, notImplemented("replaceAsset")
}

// EditAsset is declared for client compatibility only
func (r *Resolver) EditAsset(ctx context.Context, args FileMutationArgs) (*AssetResolver, error) {
	return nil, notImplemented("editAsset")
}

// ImportAsset is declared for client compatibility only
func (r *Resolver) ImportAsset(ctx context.Context, args AssetArgs) (*AssetResolver, error) {
	return nil, notImplemented("importAsset")
}

// UploadFile is declared for client compatibility; uploads go through the
// dedicated HTTP upload endpoint instead.
func (r *Resolver) UploadFile(ctx context.Context, args struct{ Filename string }) (*UploadResultResolver, error) {
	return nil, notImplemented("uploadFile")
}

// UploadFiles is declared for client compatibility; uploads go through the
// dedicated HTTP upload endpoint instead.
func (r *Resolver) UploadFiles(ctx context.Context, args struct{ Filenames []string }) ([]*UploadResultResolver, error) {
	return nil, notImplemented("uploadFiles")
}

func idStrings(ids []gographql.ID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}
