package services

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medialib-backend/application/ports"
	"medialib-backend/domain/assets"
	"medialib-backend/domain/changes"
	pkgerrors "medialib-backend/pkg/errors"
)

// Upload result values. The UI branches on these; a duplicate upload is a
// distinguishing result, not an error.
const (
	UploadResultAdded  = "ADDED"
	UploadResultExists = "EXISTS"
	UploadResultError  = "ERROR"
)

// UploadResult reports the outcome of a single file upload
type UploadResult struct {
	Success bool
	Result  string
	Asset   *assets.Asset
}

// UploadService stores uploaded files as new assets in the local source.
// Duplicates are detected by content hash. A rejected commit surfaces as an
// explicit error; it is never silently dropped.
type UploadService struct {
	assetRepo ports.AssetRepository
	mapper    ports.MediaTypeMapper
	changeLog *changes.Log
	logger    *zap.Logger
	now       func() time.Time
}

// NewUploadService creates an upload service
func NewUploadService(
	assetRepo ports.AssetRepository,
	mapper ports.MediaTypeMapper,
	changeLog *changes.Log,
	logger *zap.Logger,
) *UploadService {
	return &UploadService{
		assetRepo: assetRepo,
		mapper:    mapper,
		changeLog: changeLog,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the service's time source. Test helper.
func (s *UploadService) WithClock(now func() time.Time) *UploadService {
	s.now = now
	return s
}

// Upload stores a file as a new asset. An upload whose content hash matches
// an existing asset reports EXISTS without touching the store.
func (s *UploadService) Upload(ctx context.Context, filename string, content []byte) (UploadResult, error) {
	if filename == "" {
		return UploadResult{Result: UploadResultError}, pkgerrors.NewValidationError("filename cannot be empty")
	}
	if len(content) == 0 {
		return UploadResult{Result: UploadResultError}, pkgerrors.NewValidationError("file content cannot be empty")
	}

	sum := sha1.Sum(content)
	hash := hex.EncodeToString(sum[:])

	if existing := s.assetRepo.FindAssetByContentHash(hash); existing != nil {
		return UploadResult{Success: false, Result: UploadResultExists, Asset: existing}, nil
	}

	mediaType, kind := s.mapper.Map(filename, content)
	identity, err := assets.NewIdentity(uuid.New().String(), assets.DefaultSourceID)
	if err != nil {
		return UploadResult{Result: UploadResultError}, err
	}

	now := s.now()
	asset := assets.ReconstructAsset(
		identity,
		labelFromFilename(filename), "", "",
		mediaType, filename, "", hash,
		now,
		nil, nil,
	)

	if err := s.assetRepo.AddAsset(ctx, asset); err != nil {
		return UploadResult{Result: UploadResultError},
			pkgerrors.NewPersistenceError("failed to store uploaded asset", codeAssetAddFailed, err)
	}

	s.logger.Info("asset uploaded",
		zap.String("assetID", identity.AssetID()),
		zap.String("mediaType", mediaType),
		zap.String("kind", string(kind)),
	)
	s.changeLog.Record(changes.Record{
		AssetID:      identity.AssetID(),
		Type:         changes.TypeAssetCreated,
		LastModified: now,
	})

	return UploadResult{Success: true, Result: UploadResultAdded, Asset: asset}, nil
}

// labelFromFilename strips the extension so "cat.png" becomes "cat"
func labelFromFilename(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		return filename[:idx]
	}
	return filename
}
