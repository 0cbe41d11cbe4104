package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/termfolio/termfolio/internal/config"
	"github.com/termfolio/termfolio/internal/contact"
	"github.com/termfolio/termfolio/internal/database"
	"github.com/termfolio/termfolio/internal/handler/health"
	"github.com/termfolio/termfolio/internal/migrations"
	"github.com/termfolio/termfolio/internal/server"
	"github.com/termfolio/termfolio/internal/spotify"
	"github.com/termfolio/termfolio/internal/store"
	"github.com/termfolio/termfolio/internal/terminal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	applied, err := migrations.Run(ctx, db)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath, "migrations_applied", len(applied))

	// --- Terminal sessions ---
	st := store.New(db)
	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}

	var sink terminal.ContactSink = contact.NewArchiving(st, forwarder(cfg, httpClient), logger)
	var tracks terminal.TrackFetcher
	if cfg.SpotifyEndpoint != "" {
		tracks = spotify.NewClient(cfg.SpotifyEndpoint, httpClient)
	} else {
		logger.Info("spotify endpoint not configured")
	}

	broker := server.NewBroker()
	sessions := server.NewSessions(func(ctx context.Context, clientID string) (*terminal.Interpreter, error) {
		return terminal.New(ctx, terminal.Options{
			Settings: st.For(clientID),
			Contact:  sink,
			Tracks:   tracks,
			Logger:   logger.With("client", clientID),
		})
	}, broker, logger)
	defer sessions.Close()

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, sessions, broker, map[string]health.Checker{
		"sqlite":   database.Checker{DB: db},
		"sessions": sessions,
	}, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		return sessions.RunSweeper(gctx, cfg.SessionIdleTTL)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

// forwarder returns nil when no contact endpoint is configured, which leaves
// messages in the local archive only.
func forwarder(cfg *config.Config, hc *http.Client) contact.Sender {
	if cfg.ContactEndpoint == "" {
		return nil
	}
	return contact.NewClient(cfg.ContactEndpoint, hc)
}
