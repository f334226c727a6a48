package query

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"medialib-backend/domain/assets"
)

// SortBy selects the sort key
type SortBy string

const (
	SortByName         SortBy = "name"
	SortByLastModified SortBy = "lastModified"
)

// Direction selects the sort direction
type Direction string

const (
	DirectionAsc  Direction = "ASC"
	DirectionDesc Direction = "DESC"
)

// Sorter orders asset lists. The collator is kept around because building one
// per request is expensive; it keeps mutable iteration state between calls to
// CompareString, so name sorts are serialized through the mutex.
type Sorter struct {
	mu       sync.Mutex
	collator *collate.Collator
}

// NewSorter creates a sorter whose "name" key uses locale-aware ordering for
// the given language.
func NewSorter(lang language.Tag) *Sorter {
	return &Sorter{collator: collate.New(lang)}
}

// Sort returns a new slice ordered by the given key and direction. The sort
// is stable: ties keep their prior relative order in both directions, so
// descending is the exact reverse of ascending whenever keys are unique. The
// input slice is never modified.
func (s *Sorter) Sort(list []*assets.Asset, sortBy SortBy, direction Direction) []*assets.Asset {
	out := make([]*assets.Asset, len(list))
	copy(out, list)

	if sortBy == SortByName {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	less := s.lessFunc(sortBy)
	if direction == DirectionDesc {
		asc := less
		less = func(a, b *assets.Asset) bool { return asc(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// lessFunc returns the ascending comparator for a sort key. Unknown keys fall
// back to lastModified, matching the query default.
func (s *Sorter) lessFunc(sortBy SortBy) func(a, b *assets.Asset) bool {
	if sortBy == SortByName {
		return func(a, b *assets.Asset) bool {
			return s.collator.CompareString(a.Label(), b.Label()) < 0
		}
	}
	return func(a, b *assets.Asset) bool {
		return a.LastModified().Before(b.LastModified())
	}
}
