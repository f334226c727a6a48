package assets

import (
	"time"

	pkgerrors "medialib-backend/pkg/errors"
)

// Kind is the closed set of asset variants the system knows how to handle.
// New media types map onto one of these; there is no open-ended subtype
// registry.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindDocument Kind = "document"
)

// KindForMediaType maps a media type onto an asset kind. Anything that is not
// an image, video or audio type is treated as a document.
func KindForMediaType(mediaType string) Kind {
	switch {
	case hasTypeFamily(mediaType, "image"):
		return KindImage
	case hasTypeFamily(mediaType, "video"):
		return KindVideo
	case hasTypeFamily(mediaType, "audio"):
		return KindAudio
	default:
		return KindDocument
	}
}

func hasTypeFamily(mediaType, family string) bool {
	return len(mediaType) > len(family) && mediaType[:len(family)+1] == family+"/"
}

// Asset is the central entity of the media library. It is mutated only through
// its methods so that lastModified stays in sync with every change.
type Asset struct {
	identity        Identity
	kind            Kind
	label           string
	caption         string
	copyrightNotice string
	mediaType       string
	filename        string
	thumbnailURL    string
	contentHash     string
	lastModified    time.Time
	tagIDs          []string
	collectionIDs   []string
}

// NewAsset creates a new asset with validation. The kind is derived from the
// media type via the closed variant mapping.
func NewAsset(identity Identity, label, mediaType, filename string, now time.Time) (*Asset, error) {
	if label == "" {
		return nil, pkgerrors.NewValidationError("label cannot be empty")
	}
	if mediaType == "" {
		return nil, pkgerrors.NewValidationError("mediaType cannot be empty")
	}

	return &Asset{
		identity:      identity,
		kind:          KindForMediaType(mediaType),
		label:         label,
		mediaType:     mediaType,
		filename:      filename,
		lastModified:  now,
		tagIDs:        []string{},
		collectionIDs: []string{},
	}, nil
}

// ReconstructAsset rebuilds an asset from stored data with preserved timestamps
func ReconstructAsset(
	identity Identity,
	label, caption, copyrightNotice, mediaType, filename, thumbnailURL, contentHash string,
	lastModified time.Time,
	tagIDs, collectionIDs []string,
) *Asset {
	if tagIDs == nil {
		tagIDs = []string{}
	}
	if collectionIDs == nil {
		collectionIDs = []string{}
	}
	return &Asset{
		identity:        identity,
		kind:            KindForMediaType(mediaType),
		label:           label,
		caption:         caption,
		copyrightNotice: copyrightNotice,
		mediaType:       mediaType,
		filename:        filename,
		thumbnailURL:    thumbnailURL,
		contentHash:     contentHash,
		lastModified:    lastModified,
		tagIDs:          tagIDs,
		collectionIDs:   collectionIDs,
	}
}

// Identity returns the asset's composite identity
func (a *Asset) Identity() Identity {
	return a.identity
}

// Kind returns the asset's variant
func (a *Asset) Kind() Kind {
	return a.kind
}

// Label returns the asset's display label
func (a *Asset) Label() string {
	return a.label
}

// Caption returns the asset's caption
func (a *Asset) Caption() string {
	return a.caption
}

// CopyrightNotice returns the asset's copyright notice
func (a *Asset) CopyrightNotice() string {
	return a.copyrightNotice
}

// MediaType returns the asset's media type, e.g. "image/png"
func (a *Asset) MediaType() string {
	return a.mediaType
}

// Filename returns the asset's filename
func (a *Asset) Filename() string {
	return a.filename
}

// ThumbnailURL returns the asset's thumbnail URL
func (a *Asset) ThumbnailURL() string {
	return a.thumbnailURL
}

// ContentHash returns the sha1 of the asset's file content, used for
// duplicate detection on upload. Empty for assets without a local file.
func (a *Asset) ContentHash() string {
	return a.contentHash
}

// LastModified returns the time of the last successful mutation
func (a *Asset) LastModified() time.Time {
	return a.lastModified
}

// TagIDs returns the ids of the asset's tags in insertion order
func (a *Asset) TagIDs() []string {
	ids := make([]string, len(a.tagIDs))
	copy(ids, a.tagIDs)
	return ids
}

// CollectionIDs returns the ids of the collections the asset belongs to
func (a *Asset) CollectionIDs() []string {
	ids := make([]string, len(a.collectionIDs))
	copy(ids, a.collectionIDs)
	return ids
}

// HasTag reports whether the asset carries the given tag
func (a *Asset) HasTag(tagID string) bool {
	for _, id := range a.tagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// InCollection reports whether the asset belongs to the given collection
func (a *Asset) InCollection(collectionID string) bool {
	for _, id := range a.collectionIDs {
		if id == collectionID {
			return true
		}
	}
	return false
}

// UpdateFields is the partial-update entry point: nil arguments leave the
// corresponding field untouched. lastModified is set to the operation
// timestamp whenever at least one field is provided.
func (a *Asset) UpdateFields(label, caption, copyrightNotice *string, now time.Time) error {
	if label == nil && caption == nil && copyrightNotice == nil {
		return nil
	}
	if label != nil {
		if *label == "" {
			return pkgerrors.NewValidationError("label cannot be empty")
		}
		a.label = *label
	}
	if caption != nil {
		a.caption = *caption
	}
	if copyrightNotice != nil {
		a.copyrightNotice = *copyrightNotice
	}
	a.lastModified = now
	return nil
}

// AddTag adds a tag reference; adding an already present tag is a no-op
func (a *Asset) AddTag(tagID string, now time.Time) {
	if a.HasTag(tagID) {
		return
	}
	a.tagIDs = append(a.tagIDs, tagID)
	a.lastModified = now
}

// RemoveTag removes a tag reference. Returns false if the tag was not set.
func (a *Asset) RemoveTag(tagID string, now time.Time) bool {
	for i, id := range a.tagIDs {
		if id == tagID {
			a.tagIDs = append(a.tagIDs[:i], a.tagIDs[i+1:]...)
			a.lastModified = now
			return true
		}
	}
	return false
}

// SetTags replaces the asset's tag set
func (a *Asset) SetTags(tagIDs []string, now time.Time) {
	a.tagIDs = append([]string{}, tagIDs...)
	a.lastModified = now
}

// SetCollections replaces the asset's collection memberships
func (a *Asset) SetCollections(collectionIDs []string, now time.Time) {
	a.collectionIDs = append([]string{}, collectionIDs...)
	a.lastModified = now
}

// RemoveCollection removes a collection membership. Returns false if the
// asset was not in the collection.
func (a *Asset) RemoveCollection(collectionID string, now time.Time) bool {
	for i, id := range a.collectionIDs {
		if id == collectionID {
			a.collectionIDs = append(a.collectionIDs[:i], a.collectionIDs[i+1:]...)
			a.lastModified = now
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Mutations operate on a clone and commit it back
// so a failed mutation never leaves partial field changes behind.
func (a *Asset) Clone() *Asset {
	clone := *a
	clone.tagIDs = append([]string{}, a.tagIDs...)
	clone.collectionIDs = append([]string{}, a.collectionIDs...)
	return &clone
}
