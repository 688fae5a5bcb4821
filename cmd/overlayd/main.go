// Command overlayd runs the governance overlay against an in-memory scene
// host: it replays causal findings onto the overlay, drives the frame loop
// on a ticker, and exposes the ops HTTP surface. It exists to exercise and
// demo the overlay without a real renderer; embedding hosts use
// pkg/overlay directly.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"specto/internal/findings"
	"specto/internal/ops"
	"specto/internal/platform/config"
	"specto/internal/platform/httpserver"
	"specto/internal/platform/logger"
	"specto/internal/platform/metrics"
	"specto/internal/platform/otelsetup"
	"specto/pkg/overlay"
	"specto/pkg/scenetest"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "overlayd:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	shutdownTracing, err := otelsetup.Setup(ctx, "specto-overlayd", cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		log.Warn("unparseable locale, using English", "locale", cfg.Locale, "error", err)
		locale = language.English
	}

	world := scenetest.NewWorld()
	ov, err := overlay.New(world.Host(),
		overlay.WithLogger(log),
		overlay.WithMetrics(metrics.New()),
		overlay.WithLocale(locale),
	)
	if err != nil {
		return fmt.Errorf("assemble overlay: %w", err)
	}
	defer ov.Close()

	// Everything below the scene root is driven from this loop.
	loop := newHostLoop(world, ov, cfg.FrameInterval, log)

	if err := seedConfidence(ctx, ov); err != nil {
		return fmt.Errorf("seed confidence layer: %w", err)
	}

	replayer := findings.NewReplayer(ov, log)
	if cfg.FindingsPath != "" {
		if _, err := replayer.ReplayFile(ctx, cfg.FindingsPath); err != nil {
			return fmt.Errorf("initial findings replay: %w", err)
		}
	}

	srv := httpserver.New(cfg.Addr, ops.NewRouter(ops.New(loop, log)))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return loop.Run(ctx) })

	if cfg.FindingsWatch && cfg.FindingsPath != "" {
		watcher, err := findings.Watch(cfg.FindingsPath, log, func() {
			err := loop.do(ctx, func() {
				if _, err := replayer.ReplayFile(ctx, cfg.FindingsPath); err != nil {
					log.ErrorContext(ctx, "findings replay failed", "error", err)
				}
			})
			if err != nil {
				log.WarnContext(ctx, "findings replay not scheduled", "error", err)
			}
		})
		if err != nil {
			return err
		}
		g.Go(func() error {
			defer watcher.Close()
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("findings watcher: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		log.Info("ops server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ops server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("overlayd stopped")
	return nil
}
