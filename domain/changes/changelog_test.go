package changes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWatermark(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("empty log has no watermark", func(t *testing.T) {
		log := NewLog()
		feed := log.Since(nil)
		assert.Nil(t, feed.LastModified)
		assert.Empty(t, feed.Changes)
	})

	t.Run("watermark tracks the maximum, not the latest append", func(t *testing.T) {
		log := NewLog()
		log.Record(Record{AssetID: "a", Type: TypeAssetUpdated, LastModified: base.Add(2 * time.Hour)})
		log.Record(Record{AssetID: "b", Type: TypeAssetUpdated, LastModified: base.Add(time.Hour)})

		feed := log.Since(nil)
		require.NotNil(t, feed.LastModified)
		assert.Equal(t, base.Add(2*time.Hour), *feed.LastModified)
	})
}

func TestLogSince(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	log := NewLog()
	log.Record(Record{AssetID: "a", Type: TypeAssetCreated, LastModified: base})
	log.Record(Record{AssetID: "b", Type: TypeAssetUpdated, LastModified: base.Add(time.Hour)})
	log.Record(Record{AssetID: "c", Type: TypeAssetRemoved, LastModified: base.Add(2 * time.Hour)})

	t.Run("nil cursor returns full history", func(t *testing.T) {
		feed := log.Since(nil)
		assert.Len(t, feed.Changes, 3)
	})

	t.Run("cursor filters strictly newer records", func(t *testing.T) {
		cursor := base.Add(time.Hour)
		feed := log.Since(&cursor)

		require.Len(t, feed.Changes, 1)
		assert.Equal(t, "c", feed.Changes[0].AssetID)
	})

	t.Run("empty window still carries the global watermark", func(t *testing.T) {
		cursor := base.Add(3 * time.Hour)
		feed := log.Since(&cursor)

		assert.Empty(t, feed.Changes)
		require.NotNil(t, feed.LastModified)
		assert.Equal(t, base.Add(2*time.Hour), *feed.LastModified)
	})

	t.Run("filtered window is a subset of the full history", func(t *testing.T) {
		cursor := base
		feed := log.Since(&cursor)
		full := log.Since(nil)

		for _, rec := range feed.Changes {
			assert.Contains(t, full.Changes, rec)
		}
	})
}

func TestLogReset(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	log := NewLog()
	log.Record(Record{AssetID: "a", Type: TypeAssetCreated, LastModified: base})
	require.Equal(t, 1, log.Len())

	log.Reset()

	assert.Equal(t, 0, log.Len())
	feed := log.Since(nil)
	assert.Nil(t, feed.LastModified)
	assert.Empty(t, feed.Changes)
}
