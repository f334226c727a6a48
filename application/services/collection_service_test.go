package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "medialib-backend/pkg/errors"
)

func TestCollectionServiceCreate(t *testing.T) {
	t.Run("with existing parent", func(t *testing.T) {
		env := newTestEnv(t)

		created, err := env.colls.Create(context.Background(), "Wildlife", strPtr("collection-photos"))
		require.NoError(t, err)
		assert.Equal(t, "collection-photos", created.ParentID())
	})

	t.Run("unknown parent yields a root collection", func(t *testing.T) {
		env := newTestEnv(t)

		created, err := env.colls.Create(context.Background(), "Wildlife", strPtr("ghost"))
		require.NoError(t, err)
		assert.Equal(t, "", created.ParentID())
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.colls.Create(context.Background(), "", nil)
		assert.Error(t, err)
	})
}

func TestCollectionServiceUpdate(t *testing.T) {
	t.Run("partial title update", func(t *testing.T) {
		env := newTestEnv(t)

		ok, err := env.colls.Update(context.Background(), "collection-pets", UpdateCollectionParams{
			Title: strPtr("House Pets"),
		})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "House Pets", env.colls.Get("collection-pets").Title())
	})

	t.Run("tag set replacement keeps only known tags", func(t *testing.T) {
		env := newTestEnv(t)

		tagIDs := []string{"tag-nature", "ghost"}
		ok, err := env.colls.Update(context.Background(), "collection-photos", UpdateCollectionParams{
			TagIDs: &tagIDs,
		})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"tag-nature"}, env.colls.Get("collection-photos").TagIDs())
	})

	t.Run("absent collection reports false", func(t *testing.T) {
		env := newTestEnv(t)

		ok, err := env.colls.Update(context.Background(), "ghost", UpdateCollectionParams{
			Title: strPtr("Anything"),
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCollectionServiceSetParent(t *testing.T) {
	t.Run("re-parents", func(t *testing.T) {
		env := newTestEnv(t)

		created, err := env.colls.Create(context.Background(), "Wildlife", nil)
		require.NoError(t, err)

		ok, err := env.colls.SetParent(context.Background(), created.ID(), "collection-photos")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "collection-photos", env.colls.Get(created.ID()).ParentID())
	})

	t.Run("cycle is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		// pets is a child of photos; making photos a child of pets closes
		// the loop
		ok, err := env.colls.SetParent(context.Background(), "collection-photos", "collection-pets")
		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, pkgerrors.IsValidation(err))
		assert.Equal(t, "", env.colls.Get("collection-photos").ParentID())
	})

	t.Run("self parent is rejected", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.colls.SetParent(context.Background(), "collection-photos", "collection-photos")
		assert.Error(t, err)
	})

	t.Run("unknown parent reports false without error", func(t *testing.T) {
		env := newTestEnv(t)

		ok, err := env.colls.SetParent(context.Background(), "collection-pets", "ghost")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCollectionServiceDelete(t *testing.T) {
	t.Run("cascades memberships and re-parents children", func(t *testing.T) {
		env := newTestEnv(t)

		// photos is the parent of pets; cat and dog are in pets
		deleted, err := env.colls.Delete(context.Background(), "collection-pets")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Nil(t, env.colls.Get("collection-pets"))

		assert.Empty(t, env.assets.Get(identity(t, "asset-cat")).CollectionIDs())
		assert.Empty(t, env.assets.Get(identity(t, "asset-dog")).CollectionIDs())
		assert.Equal(t, 2, env.changeLog.Len())
	})

	t.Run("children move up to the deleted node's parent", func(t *testing.T) {
		env := newTestEnv(t)

		child, err := env.colls.Create(context.Background(), "Kittens", strPtr("collection-pets"))
		require.NoError(t, err)

		deleted, err := env.colls.Delete(context.Background(), "collection-pets")
		require.NoError(t, err)
		assert.True(t, deleted)

		assert.Equal(t, "collection-photos", env.colls.Get(child.ID()).ParentID())
	})

	t.Run("absent collection reports false", func(t *testing.T) {
		env := newTestEnv(t)

		deleted, err := env.colls.Delete(context.Background(), "ghost")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
