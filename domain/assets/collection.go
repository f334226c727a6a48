package assets

import (
	"github.com/google/uuid"

	pkgerrors "medialib-backend/pkg/errors"
)

// Collection groups assets into a forest of named sets. A collection's tags
// act as an implicit filter when browsing it.
type Collection struct {
	id       string
	title    string
	parentID string // empty for root-level collections
	tagIDs   []string
}

// NewCollection creates a collection with a generated id
func NewCollection(title, parentID string) (*Collection, error) {
	if title == "" {
		return nil, pkgerrors.NewValidationError("title cannot be empty")
	}
	return &Collection{
		id:       uuid.New().String(),
		title:    title,
		parentID: parentID,
		tagIDs:   []string{},
	}, nil
}

// ReconstructCollection rebuilds a collection from stored data
func ReconstructCollection(id, title, parentID string, tagIDs []string) *Collection {
	if tagIDs == nil {
		tagIDs = []string{}
	}
	return &Collection{id: id, title: title, parentID: parentID, tagIDs: tagIDs}
}

// ID returns the collection's id
func (c *Collection) ID() string {
	return c.id
}

// Title returns the collection's title
func (c *Collection) Title() string {
	return c.title
}

// ParentID returns the parent collection's id, or "" for root collections
func (c *Collection) ParentID() string {
	return c.parentID
}

// TagIDs returns the ids of the collection's tags
func (c *Collection) TagIDs() []string {
	ids := make([]string, len(c.tagIDs))
	copy(ids, c.tagIDs)
	return ids
}

// Rename updates the collection's title
func (c *Collection) Rename(title string) error {
	if title == "" {
		return pkgerrors.NewValidationError("title cannot be empty")
	}
	c.title = title
	return nil
}

// SetTags replaces the collection's tag set
func (c *Collection) SetTags(tagIDs []string) {
	c.tagIDs = append([]string{}, tagIDs...)
}

// RemoveTag removes a tag from the collection's tag set
func (c *Collection) RemoveTag(tagID string) bool {
	for i, id := range c.tagIDs {
		if id == tagID {
			c.tagIDs = append(c.tagIDs[:i], c.tagIDs[i+1:]...)
			return true
		}
	}
	return false
}

// SetParent re-parents the collection. Cycle checking happens at the service
// level, where the full collection set is available.
func (c *Collection) SetParent(parentID string) {
	c.parentID = parentID
}

// WouldCreateCycle reports whether making candidateParentID the parent of
// collectionID would make the collection its own ancestor. parentOf resolves
// a collection id to its current parent id ("" for roots, ok=false for
// unknown ids). The walk tracks visited ids so a parent chain that is
// already cyclic (possible with hand-edited fixture data) terminates and is
// reported as a cycle.
func WouldCreateCycle(collectionID, candidateParentID string, parentOf func(string) (string, bool)) bool {
	visited := map[string]bool{}
	for current := candidateParentID; current != ""; {
		if current == collectionID || visited[current] {
			return true
		}
		visited[current] = true
		parent, ok := parentOf(current)
		if !ok {
			return false
		}
		current = parent
	}
	return false
}
