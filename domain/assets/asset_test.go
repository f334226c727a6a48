package assets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity(t *testing.T, id string) Identity {
	t.Helper()
	identity, err := NewIdentity(id, DefaultSourceID)
	require.NoError(t, err)
	return identity
}

func strPtr(s string) *string {
	return &s
}

func TestNewIdentity(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		identity, err := NewIdentity("asset-1", "neos")
		require.NoError(t, err)
		assert.Equal(t, "asset-1", identity.AssetID())
		assert.Equal(t, "neos", identity.AssetSourceID())
	})

	t.Run("empty asset id", func(t *testing.T) {
		_, err := NewIdentity("", "neos")
		assert.Error(t, err)
	})

	t.Run("empty source id", func(t *testing.T) {
		_, err := NewIdentity("asset-1", "")
		assert.Error(t, err)
	})

	t.Run("equality requires both parts", func(t *testing.T) {
		a, _ := NewIdentity("asset-1", "neos")
		b, _ := NewIdentity("asset-1", "other")
		c, _ := NewIdentity("asset-1", "neos")
		assert.False(t, a.Equals(b))
		assert.True(t, a.Equals(c))
	})
}

func TestKindForMediaType(t *testing.T) {
	assert.Equal(t, KindImage, KindForMediaType("image/png"))
	assert.Equal(t, KindVideo, KindForMediaType("video/mp4"))
	assert.Equal(t, KindAudio, KindForMediaType("audio/mpeg"))
	assert.Equal(t, KindDocument, KindForMediaType("application/pdf"))
	assert.Equal(t, KindDocument, KindForMediaType("text/plain"))
	// "image" alone is not an image type
	assert.Equal(t, KindDocument, KindForMediaType("image"))
}

func TestAssetUpdateFields(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	later := base.Add(time.Hour)

	newAsset := func(t *testing.T) *Asset {
		asset, err := NewAsset(testIdentity(t, "asset-1"), "Cat", "image/png", "cat.png", base)
		require.NoError(t, err)
		return asset
	}

	t.Run("nil fields leave values untouched", func(t *testing.T) {
		asset := newAsset(t)
		require.NoError(t, asset.UpdateFields(strPtr("Kitten"), nil, nil, later))

		assert.Equal(t, "Kitten", asset.Label())
		assert.Equal(t, "", asset.Caption())
		assert.Equal(t, "", asset.CopyrightNotice())
		assert.Equal(t, later, asset.LastModified())
	})

	t.Run("all nil is a no-op without timestamp bump", func(t *testing.T) {
		asset := newAsset(t)
		require.NoError(t, asset.UpdateFields(nil, nil, nil, later))
		assert.Equal(t, base, asset.LastModified())
	})

	t.Run("empty caption is a valid value", func(t *testing.T) {
		asset := newAsset(t)
		require.NoError(t, asset.UpdateFields(nil, strPtr("A cat"), nil, later))
		require.NoError(t, asset.UpdateFields(nil, strPtr(""), nil, later))
		assert.Equal(t, "", asset.Caption())
	})

	t.Run("empty label is rejected", func(t *testing.T) {
		asset := newAsset(t)
		err := asset.UpdateFields(strPtr(""), nil, nil, later)
		assert.Error(t, err)
		assert.Equal(t, "Cat", asset.Label())
	})
}

func TestAssetTags(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	later := base.Add(time.Hour)

	asset, err := NewAsset(testIdentity(t, "asset-1"), "Cat", "image/png", "cat.png", base)
	require.NoError(t, err)

	t.Run("add is idempotent", func(t *testing.T) {
		asset.AddTag("tag-a", later)
		asset.AddTag("tag-a", later.Add(time.Hour))
		assert.Equal(t, []string{"tag-a"}, asset.TagIDs())
		assert.Equal(t, later, asset.LastModified())
	})

	t.Run("remove reports absence", func(t *testing.T) {
		assert.True(t, asset.RemoveTag("tag-a", later))
		assert.False(t, asset.RemoveTag("tag-a", later))
		assert.Empty(t, asset.TagIDs())
	})
}

func TestAssetClone(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	asset, err := NewAsset(testIdentity(t, "asset-1"), "Cat", "image/png", "cat.png", base)
	require.NoError(t, err)
	asset.AddTag("tag-a", base)

	clone := asset.Clone()
	clone.AddTag("tag-b", base.Add(time.Hour))
	require.NoError(t, clone.UpdateFields(strPtr("Changed"), nil, nil, base.Add(time.Hour)))

	assert.Equal(t, "Cat", asset.Label())
	assert.Equal(t, []string{"tag-a"}, asset.TagIDs())
	assert.Equal(t, []string{"tag-a", "tag-b"}, clone.TagIDs())
}

func TestWouldCreateCycle(t *testing.T) {
	// a <- b <- c
	parents := map[string]string{"a": "", "b": "a", "c": "b"}
	parentOf := func(id string) (string, bool) {
		p, ok := parents[id]
		return p, ok
	}

	t.Run("self parent", func(t *testing.T) {
		assert.True(t, WouldCreateCycle("a", "a", parentOf))
	})

	t.Run("descendant as parent", func(t *testing.T) {
		assert.True(t, WouldCreateCycle("a", "c", parentOf))
	})

	t.Run("moving down a sibling branch is fine", func(t *testing.T) {
		assert.False(t, WouldCreateCycle("c", "a", parentOf))
	})

	t.Run("root parent", func(t *testing.T) {
		assert.False(t, WouldCreateCycle("c", "", parentOf))
	})

	t.Run("unknown parent chain terminates", func(t *testing.T) {
		assert.False(t, WouldCreateCycle("a", "missing", parentOf))
	})

	t.Run("pre-existing parent cycle terminates", func(t *testing.T) {
		// x <-> y, already cyclic before the move
		cyclic := map[string]string{"x": "y", "y": "x"}
		cyclicParentOf := func(id string) (string, bool) {
			p, ok := cyclic[id]
			return p, ok
		}
		assert.True(t, WouldCreateCycle("other", "x", cyclicParentOf))
	})
}
