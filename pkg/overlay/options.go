package overlay

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"specto/internal/platform/metrics"
)

// Option configures an Overlay at construction time.
type Option func(o *Overlay)

// WithLogger enables structured logging. Without it the overlay is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Overlay) {
		o.logger = logger
	}
}

// WithMetrics wires Prometheus metrics. Construct metrics.New once per
// process and share it; without this option no metrics are recorded.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Overlay) {
		o.metrics = m
	}
}

// WithClock overrides the audit timestamp source, mainly for tests and
// deterministic replays.
func WithClock(clock func() time.Time) Option {
	return func(o *Overlay) {
		o.clock = clock
	}
}

// WithLocale sets the locale used when formatting label numbers.
// The default is English.
func WithLocale(locale language.Tag) Option {
	return func(o *Overlay) {
		o.locale = locale
	}
}
