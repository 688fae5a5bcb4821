package findings

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of write events an atomic file rewrite
// produces into a single reload.
const debounceDelay = 250 * time.Millisecond

// Watcher re-runs a callback whenever the findings file is rewritten, so
// the overlay follows the analysis pipeline without a restart. The
// callback runs on the watcher goroutine; callers hand overlay mutations
// off to the host loop themselves.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	onChange func()
	done     chan struct{}
}

// Watch starts watching the directory containing path. Watching the
// directory rather than the file survives editors and pipelines that
// replace the file instead of writing in place.
func Watch(path string, logger *slog.Logger, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create findings watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		watcher:  fw,
		logger:   logger,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	return w, nil
}

// Run processes events until ctx is canceled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.done)

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				fire = debounce.C
			} else {
				debounce.Reset(debounceDelay)
			}

		case <-fire:
			debounce, fire = nil, nil
			w.logger.InfoContext(ctx, "findings file changed, reloading", "path", w.path)
			w.onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "findings watcher error", "error", err)
		}
	}
}

// Close stops the watcher and waits for Run to return. Only call Close
// after Run has been started.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
