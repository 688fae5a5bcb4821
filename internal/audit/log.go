// Package audit records user decision actions and renders them as
// persistent markers connected by a dashed decision path.
package audit

import (
	"context"
	"fmt"
	"sync"

	"specto/pkg/domain"
	"specto/pkg/platform/sentinel"
)

// Log is the session's append-only record log. Records are never removed
// for the lifetime of the session. Reads copy out, so callers can hold
// results across later appends, and the read side is safe to use from
// other goroutines (ops handlers) while the scene loop appends.
type Log struct {
	mu      sync.RWMutex
	nextID  domain.RecordID
	records []domain.AuditRecord
}

func NewLog() *Log {
	return &Log{nextID: 1}
}

// Append assigns the next monotonic ID, stores a deep copy of the record,
// and returns the stored value.
func (l *Log) Append(_ context.Context, rec domain.AuditRecord) domain.AuditRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec.ID = l.nextID
	l.nextID++
	l.records = append(l.records, rec.Clone())
	return rec.Clone()
}

// All returns every record in append order as deep copies.
func (l *Log) All(_ context.Context) []domain.AuditRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.AuditRecord, 0, len(l.records))
	for _, rec := range l.records {
		out = append(out, rec.Clone())
	}
	return out
}

// Get returns a deep copy of the record with the given ID.
func (l *Log) Get(_ context.Context, id domain.RecordID) (domain.AuditRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, rec := range l.records {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return domain.AuditRecord{}, fmt.Errorf("audit record %d: %w", id, sentinel.ErrNotFound)
}

// Len reports how many records have been appended.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
