package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medialib-backend/domain/changes"
)

func TestTagServiceCreate(t *testing.T) {
	t.Run("new label creates a tag", func(t *testing.T) {
		env := newTestEnv(t)

		tag, created, err := env.tags.Create(context.Background(), "architecture")
		require.NoError(t, err)
		assert.True(t, created)
		require.NotNil(t, tag)
		assert.Equal(t, "architecture", tag.Label())
		assert.NotNil(t, env.tags.Get(tag.ID()))
	})

	t.Run("duplicate label returns the existing tag", func(t *testing.T) {
		env := newTestEnv(t)

		tag, created, err := env.tags.Create(context.Background(), "animals")
		require.NoError(t, err)
		assert.False(t, created)
		require.NotNil(t, tag)
		assert.Equal(t, "tag-animals", tag.ID())
		assert.Len(t, env.tags.List(), 2)
	})

	t.Run("empty label is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		_, _, err := env.tags.Create(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestTagServiceDelete(t *testing.T) {
	t.Run("cascades through asset tag sets", func(t *testing.T) {
		env := newTestEnv(t)

		deleted, err := env.tags.Delete(context.Background(), "tag-animals")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Nil(t, env.tags.Get("tag-animals"))

		// cat and dog both carried the tag
		assert.Empty(t, env.assets.Get(identity(t, "asset-cat")).TagIDs())
		assert.Empty(t, env.assets.Get(identity(t, "asset-dog")).TagIDs())
		// forest carried a different tag and is untouched
		assert.Equal(t, []string{"tag-nature"}, env.assets.Get(identity(t, "asset-forest")).TagIDs())

		feed := env.changeLog.Since(nil)
		require.Len(t, feed.Changes, 2)
		for _, rec := range feed.Changes {
			assert.Equal(t, changes.TypeAssetUpdated, rec.Type)
		}
	})

	t.Run("absent tag reports false", func(t *testing.T) {
		env := newTestEnv(t)

		deleted, err := env.tags.Delete(context.Background(), "ghost")
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Equal(t, 0, env.changeLog.Len())
	})
}
