package assets

import (
	"github.com/google/uuid"

	pkgerrors "medialib-backend/pkg/errors"
)

// Tag labels assets across sources and collections
type Tag struct {
	id    string
	label string
}

// NewTag creates a tag with a generated id
func NewTag(label string) (*Tag, error) {
	if label == "" {
		return nil, pkgerrors.NewValidationError("tag label cannot be empty")
	}
	return &Tag{
		id:    uuid.New().String(),
		label: label,
	}, nil
}

// ReconstructTag rebuilds a tag from stored data
func ReconstructTag(id, label string) *Tag {
	return &Tag{id: id, label: label}
}

// ID returns the tag's id
func (t *Tag) ID() string {
	return t.id
}

// Label returns the tag's label
func (t *Tag) Label() string {
	return t.label
}
