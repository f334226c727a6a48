// Package changes tracks asset mutations so clients can poll for incremental
// updates instead of refetching the full asset list.
package changes

import (
	"sync"
	"time"
)

// Type classifies a change record
type Type string

const (
	TypeAssetCreated Type = "ASSET_CREATED"
	TypeAssetUpdated Type = "ASSET_UPDATED"
	TypeAssetRemoved Type = "ASSET_REMOVED"
)

// Record is one entry in the change log. Records are appended, never mutated
// or removed.
type Record struct {
	AssetID      string
	Type         Type
	LastModified time.Time
}

// Feed is the result of a Since query: the records newer than the cursor plus
// the global watermark clients use to form their next cursor.
type Feed struct {
	LastModified *time.Time
	Changes      []Record
}

// Log is an append-only record of asset mutations. It keeps a watermark of
// the most recent change so pollers never miss an update even when their
// filtered window is empty.
type Log struct {
	mu        sync.RWMutex
	records   []Record
	watermark *time.Time
}

// NewLog creates an empty change log
func NewLog() *Log {
	return &Log{records: []Record{}}
}

// Record appends a change and advances the watermark to
// max(watermark, rec.LastModified).
func (l *Log) Record(rec Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, rec)
	if l.watermark == nil || rec.LastModified.After(*l.watermark) {
		ts := rec.LastModified
		l.watermark = &ts
	}
}

// Since returns the changes strictly newer than the cursor, together with the
// current global watermark. A nil cursor returns all changes. The watermark
// is always the global one, not the newest timestamp of the filtered subset.
func (l *Log) Since(cursor *time.Time) Feed {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var watermark *time.Time
	if l.watermark != nil {
		ts := *l.watermark
		watermark = &ts
	}

	if cursor == nil {
		out := make([]Record, len(l.records))
		copy(out, l.records)
		return Feed{LastModified: watermark, Changes: out}
	}

	out := []Record{}
	for _, rec := range l.records {
		if rec.LastModified.After(*cursor) {
			out = append(out, rec)
		}
	}
	return Feed{LastModified: watermark, Changes: out}
}

// Len returns the number of recorded changes
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Reset drops all records and clears the watermark. Only reachable from the
// dev/test reset path, never from production request handling.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = []Record{}
	l.watermark = nil
}
