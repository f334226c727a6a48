package memory

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"medialib-backend/domain/assets"
)

// Fixtures is the YAML shape of the store's seed data
type Fixtures struct {
	Sources     []sourceFixture     `yaml:"sources"`
	Tags        []tagFixture        `yaml:"tags"`
	Collections []collectionFixture `yaml:"collections"`
	Assets      []assetFixture      `yaml:"assets"`
	Usages      []usageFixture      `yaml:"usages"`
}

type sourceFixture struct {
	ID                  string `yaml:"id"`
	Label               string `yaml:"label"`
	Description         string `yaml:"description"`
	IconURI             string `yaml:"iconUri"`
	ReadOnly            bool   `yaml:"readOnly"`
	SupportsTagging     bool   `yaml:"supportsTagging"`
	SupportsCollections bool   `yaml:"supportsCollections"`
}

type tagFixture struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type collectionFixture struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	Parent string   `yaml:"parent"`
	Tags   []string `yaml:"tags"`
}

type assetFixture struct {
	ID              string    `yaml:"id"`
	AssetSourceID   string    `yaml:"assetSourceId"`
	Label           string    `yaml:"label"`
	Caption         string    `yaml:"caption"`
	CopyrightNotice string    `yaml:"copyrightNotice"`
	MediaType       string    `yaml:"mediaType"`
	Filename        string    `yaml:"filename"`
	ThumbnailURL    string    `yaml:"thumbnailUrl"`
	ContentHash     string    `yaml:"contentHash"`
	LastModified    time.Time `yaml:"lastModified"`
	Tags            []string  `yaml:"tags"`
	Collections     []string  `yaml:"collections"`
}

type usageFixture struct {
	AssetID   string `yaml:"assetId"`
	ServiceID string `yaml:"serviceId"`
	Label     string `yaml:"label"`
	Usages    []struct {
		Label    string            `yaml:"label"`
		URL      string            `yaml:"url"`
		Metadata map[string]string `yaml:"metadata"`
	} `yaml:"usages"`
}

// LoadFixtures reads a fixture file. An empty path yields the built-in
// default fixture set.
func LoadFixtures(path string) (*Fixtures, error) {
	if path == "" {
		return DefaultFixtures(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file %s: %w", path, err)
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parsing fixture file %s: %w", path, err)
	}

	for i, asset := range fixtures.Assets {
		if asset.ID == "" || asset.Label == "" || asset.MediaType == "" {
			return nil, fmt.Errorf("fixture asset %d is missing id, label or mediaType", i)
		}
	}
	return &fixtures, nil
}

// DefaultFixtures returns a small seed set so the server is usable without a
// fixture file.
func DefaultFixtures() *Fixtures {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &Fixtures{
		Sources: []sourceFixture{
			{ID: assets.DefaultSourceID, Label: "Local", SupportsTagging: true, SupportsCollections: true},
			{ID: "example-dam", Label: "Example DAM", ReadOnly: true},
		},
		Tags: []tagFixture{
			{ID: "tag-animals", Label: "animals"},
			{ID: "tag-nature", Label: "nature"},
		},
		Collections: []collectionFixture{
			{ID: "collection-photos", Title: "Photos"},
			{ID: "collection-pets", Title: "Pets", Parent: "collection-photos"},
		},
		Assets: []assetFixture{
			{
				ID: "asset-cat", AssetSourceID: assets.DefaultSourceID,
				Label: "Cat", MediaType: "image/png", Filename: "cat.png",
				LastModified: base,
				Tags:         []string{"tag-animals"},
				Collections:  []string{"collection-pets"},
			},
			{
				ID: "asset-dog", AssetSourceID: assets.DefaultSourceID,
				Label: "Dog", MediaType: "image/jpeg", Filename: "dog.jpg",
				LastModified: base.Add(time.Hour),
				Tags:         []string{"tag-animals"},
				Collections:  []string{"collection-pets"},
			},
			{
				ID: "asset-forest", AssetSourceID: assets.DefaultSourceID,
				Label: "Forest", MediaType: "video/mp4", Filename: "forest.mp4",
				LastModified: base.Add(2 * time.Hour),
				Tags:         []string{"tag-nature"},
				Collections:  []string{"collection-photos"},
			},
		},
		Usages: []usageFixture{
			{
				AssetID: "asset-cat", ServiceID: "site", Label: "Site usages",
				Usages: []struct {
					Label    string            `yaml:"label"`
					URL      string            `yaml:"url"`
					Metadata map[string]string `yaml:"metadata"`
				}{
					{Label: "Homepage", URL: "/home"},
				},
			},
		},
	}
}

func (f *Fixtures) buildAssets() []*assets.Asset {
	out := make([]*assets.Asset, 0, len(f.Assets))
	for _, fix := range f.Assets {
		sourceID := fix.AssetSourceID
		if sourceID == "" {
			sourceID = assets.DefaultSourceID
		}
		identity, err := assets.NewIdentity(fix.ID, sourceID)
		if err != nil {
			continue
		}
		out = append(out, assets.ReconstructAsset(
			identity,
			fix.Label, fix.Caption, fix.CopyrightNotice,
			fix.MediaType, fix.Filename, fix.ThumbnailURL, fix.ContentHash,
			fix.LastModified,
			fix.Tags, fix.Collections,
		))
	}
	return out
}

func (f *Fixtures) buildTags() []*assets.Tag {
	out := make([]*assets.Tag, 0, len(f.Tags))
	for _, fix := range f.Tags {
		out = append(out, assets.ReconstructTag(fix.ID, fix.Label))
	}
	return out
}

func (f *Fixtures) buildCollections() []*assets.Collection {
	out := make([]*assets.Collection, 0, len(f.Collections))
	for _, fix := range f.Collections {
		out = append(out, assets.ReconstructCollection(fix.ID, fix.Title, fix.Parent, fix.Tags))
	}
	return out
}

func (f *Fixtures) buildSources() []assets.Source {
	out := make([]assets.Source, 0, len(f.Sources))
	for _, fix := range f.Sources {
		out = append(out, assets.Source{
			ID:                  fix.ID,
			Label:               fix.Label,
			Description:         fix.Description,
			IconURI:             fix.IconURI,
			ReadOnly:            fix.ReadOnly,
			SupportsTagging:     fix.SupportsTagging,
			SupportsCollections: fix.SupportsCollections,
		})
	}
	return out
}

func (f *Fixtures) buildUsages() map[string][]assets.UsageDetailsGroup {
	out := map[string][]assets.UsageDetailsGroup{}
	for _, fix := range f.Usages {
		usages := make([]assets.Usage, 0, len(fix.Usages))
		for _, u := range fix.Usages {
			usages = append(usages, assets.Usage{Label: u.Label, URL: u.URL, Metadata: u.Metadata})
		}
		out[fix.AssetID] = append(out[fix.AssetID], assets.UsageDetailsGroup{
			ServiceID: fix.ServiceID,
			Label:     fix.Label,
			Usages:    usages,
		})
	}
	return out
}
