package scene

// FrameLoop is the host's per-frame scheduling hook. The overlay registers a
// single callback to advance cosmetic animations; the host invokes it once
// per rendered frame on its render goroutine.
type FrameLoop interface {
	// OnFrame registers fn and returns a cancel function that stops further
	// invocations. Cancel is idempotent.
	OnFrame(fn func()) (cancel func())
}
