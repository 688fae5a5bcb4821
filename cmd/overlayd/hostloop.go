package main

import (
	"context"
	"log/slog"
	"time"

	"specto/pkg/domain"
	"specto/pkg/overlay"
	"specto/pkg/scenetest"
)

// hostLoop is the daemon's stand-in for a renderer's main loop: it drives
// frames on a ticker and is the only goroutine that touches the overlay,
// executing commands the HTTP surface and the findings watcher enqueue.
// Only the audit-log read path (Records) bypasses the loop; it is safe for
// concurrent reads by construction.
type hostLoop struct {
	world    *scenetest.World
	overlay  *overlay.Overlay
	interval time.Duration
	logger   *slog.Logger
	cmds     chan func()
}

func newHostLoop(world *scenetest.World, ov *overlay.Overlay, interval time.Duration, logger *slog.Logger) *hostLoop {
	return &hostLoop{
		world:    world,
		overlay:  ov,
		interval: interval,
		logger:   logger,
		cmds:     make(chan func()),
	}
}

// Run advances frames and executes enqueued commands until ctx is
// canceled.
func (l *hostLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.InfoContext(ctx, "host loop running", "frame_interval", l.interval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.world.Frames.Step(1)
		case cmd := <-l.cmds:
			cmd()
		}
	}
}

// do runs fn on the loop goroutine and waits for it to finish.
func (l *hostLoop) do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	select {
	case l.cmds <- func() { fn(); close(done) }:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Records implements ops.Controller straight off the audit log.
func (l *hostLoop) Records(ctx context.Context) []domain.AuditRecord {
	return l.overlay.Records(ctx)
}

// Layers implements ops.Controller via a loop round trip.
func (l *hostLoop) Layers(ctx context.Context) []overlay.LayerState {
	var states []overlay.LayerState
	if err := l.do(ctx, func() { states = l.overlay.LayerStates() }); err != nil {
		return nil
	}
	return states
}

// ToggleLayer implements ops.Controller via a loop round trip.
func (l *hostLoop) ToggleLayer(ctx context.Context, name domain.LayerName, visible bool) error {
	var toggleErr error
	if err := l.do(ctx, func() { toggleErr = l.overlay.ToggleLayer(ctx, name, visible) }); err != nil {
		return err
	}
	return toggleErr
}
