package domain

import (
	"maps"
	"time"

	"specto/pkg/geom"
)

// RecordID identifies an audit record. IDs are assigned by the recorder,
// start at 1, and grow strictly monotonically within a session.
type RecordID uint64

// AuditRecord is one immutable entry of the session's audit trail.
//
// Position is a value copy taken at creation time and Metadata is cloned on
// every hand-out, so callers can neither mutate a stored record after the
// fact nor observe later mutations through a returned one.
type AuditRecord struct {
	ID        RecordID
	Type      InteractionType
	Position  geom.Vec3
	Metadata  map[string]any
	Timestamp time.Time
}

// Clone returns a copy of the record with its own metadata map. The clone is
// shallow below the top level; metadata values are treated as opaque.
func (r AuditRecord) Clone() AuditRecord {
	r.Metadata = maps.Clone(r.Metadata)
	return r
}
