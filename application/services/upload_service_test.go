package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"medialib-backend/domain/assets"
	"medialib-backend/domain/changes"
	"medialib-backend/infrastructure/media"
	"medialib-backend/infrastructure/persistence/memory"
)

// minimal valid PNG header, enough for content sniffing
var pngContent = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func newUploadEnv(t *testing.T) (*UploadService, *memory.Store, *changes.Log) {
	t.Helper()

	store := memory.NewStore(memory.DefaultFixtures())
	changeLog := changes.NewLog()
	svc := NewUploadService(store, media.NewTypeDetector(), changeLog, zap.NewNop()).
		WithClock(func() time.Time { return testClock })
	return svc, store, changeLog
}

func TestUploadServiceUpload(t *testing.T) {
	t.Run("new file is added", func(t *testing.T) {
		svc, store, changeLog := newUploadEnv(t)

		result, err := svc.Upload(context.Background(), "shot.png", pngContent)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, UploadResultAdded, result.Result)
		require.NotNil(t, result.Asset)

		assert.Equal(t, "shot", result.Asset.Label())
		assert.Equal(t, "image/png", result.Asset.MediaType())
		assert.Equal(t, assets.KindImage, result.Asset.Kind())
		assert.Equal(t, assets.DefaultSourceID, result.Asset.Identity().AssetSourceID())
		assert.NotEmpty(t, result.Asset.ContentHash())

		assert.NotNil(t, store.FindAsset(result.Asset.Identity()))

		feed := changeLog.Since(nil)
		require.Len(t, feed.Changes, 1)
		assert.Equal(t, changes.TypeAssetCreated, feed.Changes[0].Type)
	})

	t.Run("same content reports EXISTS without a new asset", func(t *testing.T) {
		svc, store, changeLog := newUploadEnv(t)

		first, err := svc.Upload(context.Background(), "shot.png", pngContent)
		require.NoError(t, err)
		countAfterFirst := len(store.Assets())

		second, err := svc.Upload(context.Background(), "renamed.png", pngContent)
		require.NoError(t, err)
		assert.False(t, second.Success)
		assert.Equal(t, UploadResultExists, second.Result)
		require.NotNil(t, second.Asset)
		assert.True(t, second.Asset.Identity().Equals(first.Asset.Identity()))

		assert.Equal(t, countAfterFirst, len(store.Assets()))
		assert.Equal(t, 1, changeLog.Len())
	})

	t.Run("empty filename is rejected", func(t *testing.T) {
		svc, _, _ := newUploadEnv(t)

		result, err := svc.Upload(context.Background(), "", pngContent)
		require.Error(t, err)
		assert.Equal(t, UploadResultError, result.Result)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		svc, _, _ := newUploadEnv(t)

		result, err := svc.Upload(context.Background(), "shot.png", nil)
		require.Error(t, err)
		assert.Equal(t, UploadResultError, result.Result)
	})
}

func TestLabelFromFilename(t *testing.T) {
	assert.Equal(t, "cat", labelFromFilename("cat.png"))
	assert.Equal(t, "archive.tar", labelFromFilename("archive.tar.gz"))
	assert.Equal(t, "noext", labelFromFilename("noext"))
	assert.Equal(t, ".hidden", labelFromFilename(".hidden"))
}
