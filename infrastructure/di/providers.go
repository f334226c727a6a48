package di

import (
	"fmt"

	gographql "github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"medialib-backend/application/ports"
	"medialib-backend/application/query"
	"medialib-backend/application/services"
	"medialib-backend/domain/changes"
	"medialib-backend/infrastructure/config"
	"medialib-backend/infrastructure/media"
	"medialib-backend/infrastructure/persistence/memory"
	"medialib-backend/interfaces/graphql"
)

// ProvideLogger creates a new logger instance at the configured level
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ProvideFixtures loads the seed data, from file when configured and from
// the built-in defaults otherwise
func ProvideFixtures(cfg *config.Config) (*memory.Fixtures, error) {
	return memory.LoadFixtures(cfg.FixturePath)
}

// ProvideStore creates the in-memory store seeded with fixtures
func ProvideStore(fixtures *memory.Fixtures) *memory.Store {
	return memory.NewStore(fixtures)
}

// ProvideChangeLog creates the change log
func ProvideChangeLog() *changes.Log {
	return changes.NewLog()
}

// ProvideSorter builds the locale-aware sorter. Unparseable locales fall
// back to English rather than failing startup.
func ProvideSorter(cfg *config.Config, logger *zap.Logger) *query.Sorter {
	tag, err := language.Parse(cfg.CollationLocale)
	if err != nil {
		logger.Warn("invalid collation locale, falling back to English",
			zap.String("locale", cfg.CollationLocale),
			zap.Error(err),
		)
		tag = language.English
	}
	return query.NewSorter(tag)
}

// ProvideAssetRepository exposes the store as an asset repository
func ProvideAssetRepository(store *memory.Store) ports.AssetRepository {
	return store
}

// ProvideTagRepository exposes the store as a tag repository
func ProvideTagRepository(store *memory.Store) ports.TagRepository {
	return store
}

// ProvideCollectionRepository exposes the store as a collection repository
func ProvideCollectionRepository(store *memory.Store) ports.CollectionRepository {
	return store
}

// ProvideSourceRepository exposes the store as a source repository
func ProvideSourceRepository(store *memory.Store) ports.SourceRepository {
	return store
}

// ProvideUsageLookup exposes the store as a usage lookup
func ProvideUsageLookup(store *memory.Store) ports.UsageLookup {
	return store
}

// ProvideMediaTypeMapper creates the content-sniffing media type mapper
func ProvideMediaTypeMapper() ports.MediaTypeMapper {
	return media.NewTypeDetector()
}

// ProvideStoreResetter creates the fixture-backed store resetter
func ProvideStoreResetter(
	cfg *config.Config,
	store *memory.Store,
	changeLog *changes.Log,
	logger *zap.Logger,
) ports.StoreResetter {
	return memory.NewFixtureResetter(cfg.FixturePath, store, changeLog, logger)
}

// ProvideAssetService creates the asset application service
func ProvideAssetService(
	assetRepo ports.AssetRepository,
	tagRepo ports.TagRepository,
	collectionRepo ports.CollectionRepository,
	usage ports.UsageLookup,
	changeLog *changes.Log,
	sorter *query.Sorter,
	logger *zap.Logger,
) *services.AssetService {
	return services.NewAssetService(assetRepo, tagRepo, collectionRepo, usage, changeLog, sorter, logger)
}

// ProvideTagService creates the tag application service
func ProvideTagService(
	tagRepo ports.TagRepository,
	assetRepo ports.AssetRepository,
	collectionRepo ports.CollectionRepository,
	changeLog *changes.Log,
	logger *zap.Logger,
) *services.TagService {
	return services.NewTagService(tagRepo, assetRepo, collectionRepo, changeLog, logger)
}

// ProvideCollectionService creates the collection application service
func ProvideCollectionService(
	collectionRepo ports.CollectionRepository,
	tagRepo ports.TagRepository,
	assetRepo ports.AssetRepository,
	changeLog *changes.Log,
	logger *zap.Logger,
) *services.CollectionService {
	return services.NewCollectionService(collectionRepo, tagRepo, assetRepo, changeLog, logger)
}

// ProvideUploadService creates the upload application service
func ProvideUploadService(
	assetRepo ports.AssetRepository,
	mapper ports.MediaTypeMapper,
	changeLog *changes.Log,
	logger *zap.Logger,
) *services.UploadService {
	return services.NewUploadService(assetRepo, mapper, changeLog, logger)
}

// ProvideResolver creates the GraphQL root resolver
func ProvideResolver(
	assetSvc *services.AssetService,
	tagSvc *services.TagService,
	collectionSvc *services.CollectionService,
	sourceRepo ports.SourceRepository,
	cfg *config.Config,
	logger *zap.Logger,
) *graphql.Resolver {
	return graphql.NewResolver(assetSvc, tagSvc, collectionSvc, sourceRepo, cfg, logger)
}

// ProvideSchema parses the schema against the resolver
func ProvideSchema(resolver *graphql.Resolver) (*gographql.Schema, error) {
	return graphql.NewSchema(resolver)
}
