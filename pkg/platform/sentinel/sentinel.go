package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and scene-facing layers
// return these (optionally wrapped) so callers can branch with errors.Is.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist (record, layer)
// - ErrClosed: overlay or session already shut down
// - ErrUnavailable: host port not wired
var (
	ErrNotFound    = errors.New("not found")
	ErrClosed      = errors.New("closed")
	ErrUnavailable = errors.New("unavailable")
)
