package graphql

import (
	"context"
	"encoding/json"
	"testing"

	gographql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"medialib-backend/application/query"
	"medialib-backend/application/services"
	"medialib-backend/domain/changes"
	"medialib-backend/infrastructure/config"
	"medialib-backend/infrastructure/persistence/memory"
)

func newTestSchema(t *testing.T) *gographql.Schema {
	t.Helper()

	store := memory.NewStore(memory.DefaultFixtures())
	changeLog := changes.NewLog()
	logger := zap.NewNop()
	sorter := query.NewSorter(language.English)
	cfg := &config.Config{
		UploadMaxFileSize:        1024 * 1024,
		UploadMaxFileUploadLimit: 2,
	}

	assetSvc := services.NewAssetService(store, store, store, store, changeLog, sorter, logger)
	tagSvc := services.NewTagService(store, store, store, changeLog, logger)
	collectionSvc := services.NewCollectionService(store, store, store, changeLog, logger)

	schema, err := NewSchema(NewResolver(assetSvc, tagSvc, collectionSvc, store, cfg, logger))
	require.NoError(t, err)
	return schema
}

func exec(t *testing.T, schema *gographql.Schema, queryStr string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()

	resp := schema.Exec(context.Background(), queryStr, "", vars)
	require.Empty(t, resp.Errors, "unexpected resolver errors: %v", resp.Errors)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	return data
}

func TestSchemaParses(t *testing.T) {
	newTestSchema(t)
}

func TestQueryAssets(t *testing.T) {
	schema := newTestSchema(t)

	t.Run("defaults sort by lastModified descending", func(t *testing.T) {
		data := exec(t, schema, `{ assets { label } }`, nil)

		list := data["assets"].([]interface{})
		require.Len(t, list, 3)
		assert.Equal(t, "Forest", list[0].(map[string]interface{})["label"])
		assert.Equal(t, "Dog", list[1].(map[string]interface{})["label"])
		assert.Equal(t, "Cat", list[2].(map[string]interface{})["label"])
	})

	t.Run("image filter with name sort", func(t *testing.T) {
		data := exec(t, schema, `{
			assets(mediaType: "image", sortBy: name, sortDirection: ASC) { label kind }
		}`, nil)

		list := data["assets"].([]interface{})
		require.Len(t, list, 2)
		assert.Equal(t, "Cat", list[0].(map[string]interface{})["label"])
		assert.Equal(t, "image", list[0].(map[string]interface{})["kind"])
		assert.Equal(t, "Dog", list[1].(map[string]interface{})["label"])
	})

	t.Run("count", func(t *testing.T) {
		data := exec(t, schema, `{ assetCount(mediaType: "image") }`, nil)
		assert.Equal(t, float64(2), data["assetCount"])
	})
}

func TestQueryAsset(t *testing.T) {
	schema := newTestSchema(t)

	t.Run("found", func(t *testing.T) {
		data := exec(t, schema, `{
			asset(id: "asset-cat") {
				label
				isInUse
				assetSource { id }
				tags { label }
				collections { title }
			}
		}`, nil)

		asset := data["asset"].(map[string]interface{})
		assert.Equal(t, "Cat", asset["label"])
		assert.Equal(t, true, asset["isInUse"])
		assert.Equal(t, "neos", asset["assetSource"].(map[string]interface{})["id"])

		tags := asset["tags"].([]interface{})
		require.Len(t, tags, 1)
		assert.Equal(t, "animals", tags[0].(map[string]interface{})["label"])

		colls := asset["collections"].([]interface{})
		require.Len(t, colls, 1)
		assert.Equal(t, "Pets", colls[0].(map[string]interface{})["title"])
	})

	t.Run("absent resolves to null", func(t *testing.T) {
		data := exec(t, schema, `{ asset(id: "nope") { label } }`, nil)
		assert.Nil(t, data["asset"])
	})
}

func TestQueryCollectionsAndTags(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, `{
		assetCollections { title parent { title } assetCount }
		tags { label }
		unusedAssetCount
	}`, nil)

	colls := data["assetCollections"].([]interface{})
	require.Len(t, colls, 2)
	pets := colls[1].(map[string]interface{})
	assert.Equal(t, "Pets", pets["title"])
	assert.Equal(t, "Photos", pets["parent"].(map[string]interface{})["title"])
	assert.Equal(t, float64(2), pets["assetCount"])

	assert.Len(t, data["tags"].([]interface{}), 2)
	assert.Equal(t, float64(2), data["unusedAssetCount"])
}

func TestQueryChangedAssets(t *testing.T) {
	schema := newTestSchema(t)

	t.Run("empty log", func(t *testing.T) {
		data := exec(t, schema, `{ changedAssets { lastModified changes { assetId } } }`, nil)
		feed := data["changedAssets"].(map[string]interface{})
		assert.Nil(t, feed["lastModified"])
		assert.Empty(t, feed["changes"])
	})

	t.Run("after a mutation", func(t *testing.T) {
		exec(t, schema, `mutation { updateAsset(id: "asset-cat", label: "Kitten") { label } }`, nil)

		data := exec(t, schema, `{ changedAssets { lastModified changes { assetId type } } }`, nil)
		feed := data["changedAssets"].(map[string]interface{})
		assert.NotNil(t, feed["lastModified"])

		recs := feed["changes"].([]interface{})
		require.Len(t, recs, 1)
		assert.Equal(t, "asset-cat", recs[0].(map[string]interface{})["assetId"])
		assert.Equal(t, "ASSET_UPDATED", recs[0].(map[string]interface{})["type"])
	})
}

func TestMutations(t *testing.T) {
	t.Run("updateAsset on absent asset resolves to null", func(t *testing.T) {
		schema := newTestSchema(t)
		data := exec(t, schema, `mutation { updateAsset(id: "nope", label: "X") { label } }`, nil)
		assert.Nil(t, data["updateAsset"])
	})

	t.Run("tagAsset with unknown tag surfaces the stable code", func(t *testing.T) {
		schema := newTestSchema(t)
		resp := schema.Exec(context.Background(),
			`mutation { tagAsset(id: "asset-cat", tag: "ghost") { label } }`, "", nil)

		require.Len(t, resp.Errors, 1)
		require.NotNil(t, resp.Errors[0].Extensions)
		assert.Equal(t, "INVALID_REFERENCE", resp.Errors[0].Extensions["type"])
		assert.Equal(t, 1591561845, resp.Errors[0].Extensions["code"])
	})

	t.Run("deleteAsset refuses assets in use", func(t *testing.T) {
		schema := newTestSchema(t)
		data := exec(t, schema, `mutation { deleteAsset(id: "asset-cat") }`, nil)
		assert.Equal(t, false, data["deleteAsset"])

		data = exec(t, schema, `mutation { deleteAsset(id: "asset-dog") }`, nil)
		assert.Equal(t, true, data["deleteAsset"])
	})

	t.Run("createTag duplicate resolves to null", func(t *testing.T) {
		schema := newTestSchema(t)
		data := exec(t, schema, `mutation { createTag(tag: "animals") { id } }`, nil)
		assert.Nil(t, data["createTag"])

		data = exec(t, schema, `mutation { createTag(tag: "fresh") { label } }`, nil)
		require.NotNil(t, data["createTag"])
		assert.Equal(t, "fresh", data["createTag"].(map[string]interface{})["label"])
	})

	t.Run("setAssetCollectionParent rejects cycles", func(t *testing.T) {
		schema := newTestSchema(t)
		resp := schema.Exec(context.Background(),
			`mutation { setAssetCollectionParent(id: "collection-photos", parent: "collection-pets") }`, "", nil)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "VALIDATION", resp.Errors[0].Extensions["type"])
	})

	t.Run("unimplemented operations report NOT_IMPLEMENTED", func(t *testing.T) {
		schema := newTestSchema(t)
		resp := schema.Exec(context.Background(),
			`mutation { uploadFile(filename: "x.png") { success result } }`, "", nil)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "NOT_IMPLEMENTED", resp.Errors[0].Extensions["type"])
		assert.Equal(t, 1594199031, resp.Errors[0].Extensions["code"])
	})
}

func TestQueryConfig(t *testing.T) {
	schema := newTestSchema(t)

	data := exec(t, schema, `{ config { uploadMaxFileSize uploadMaxFileUploadLimit currentServerTime } }`, nil)
	cfg := data["config"].(map[string]interface{})
	assert.Equal(t, float64(1024*1024), cfg["uploadMaxFileSize"])
	assert.Equal(t, float64(2), cfg["uploadMaxFileUploadLimit"])
	assert.NotEmpty(t, cfg["currentServerTime"])
}
