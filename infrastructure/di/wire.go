//go:build wireinject
// +build wireinject

package di

import (
	gographql "github.com/graph-gophers/graphql-go"
	"github.com/google/wire"
	"go.uber.org/zap"

	"medialib-backend/application/ports"
	"medialib-backend/application/services"
	"medialib-backend/domain/changes"
	"medialib-backend/infrastructure/config"
	"medialib-backend/infrastructure/persistence/memory"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *zap.Logger
	Store         *memory.Store
	ChangeLog     *changes.Log
	Resetter      ports.StoreResetter
	AssetService  *services.AssetService
	UploadService *services.UploadService
	Schema        *gographql.Schema
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideFixtures,
	ProvideStore,
	ProvideChangeLog,
	ProvideSorter,
	ProvideAssetRepository,
	ProvideTagRepository,
	ProvideCollectionRepository,
	ProvideSourceRepository,
	ProvideUsageLookup,
	ProvideMediaTypeMapper,
	ProvideStoreResetter,
	ProvideAssetService,
	ProvideTagService,
	ProvideCollectionService,
	ProvideUploadService,
	ProvideResolver,
	ProvideSchema,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
