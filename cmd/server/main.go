package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/livinggrainco/site/internal/config"
	"github.com/livinggrainco/site/internal/database"
	"github.com/livinggrainco/site/internal/handler/health"
	"github.com/livinggrainco/site/internal/migrations"
	"github.com/livinggrainco/site/internal/server"
	"github.com/livinggrainco/site/internal/session"
	"github.com/livinggrainco/site/internal/site"
	"github.com/livinggrainco/site/internal/wizard"
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

	// --- Sessions ---
	store, closeStore, err := openSessions(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Sessions: store,
		Wizard:   wizard.Options{Stale: cfg.StaleFields},
		Site: site.New(site.Settings{
			Email:      cfg.ContactEmail,
			Phone:      cfg.ContactPhone,
			BookingURL: cfg.BookingURL,
		}),
		SessionTTL:   cfg.SessionTTL,
		CookieSecure: cfg.CookieSecure,
		AssetsDir:    cfg.AssetsDir,
		CORSOrigins:  cfg.CORSOrigins,
		Checks:       map[string]health.Checker{"sessions": store},
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr, "sessions", cfg.SessionBackend)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	if sw, ok := store.(session.Sweeper); ok {
		g.Go(func() error {
			sweep(gctx, logger, sw, sweepInterval(cfg.SessionTTL))
			return nil
		})
	}

	return g.Wait()
}

// openSessions connects the configured session backend. The returned func
// releases it.
func openSessions(ctx context.Context, logger *slog.Logger, cfg *config.Config) (session.Store, func(), error) {
	switch cfg.SessionBackend {
	case config.BackendSQLite:
		db, err := database.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to sqlite: %w", err)
		}
		applied, err := migrations.Run(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("running migrations: %w", err)
		}
		logger.Info("connected to sqlite", "path", cfg.DBPath, "migrations_applied", applied)
		return session.NewSQLiteStore(db, cfg.SessionTTL), func() { db.Close() }, nil

	case config.BackendRedis:
		rdb, err := openRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		logger.Info("connected to redis")
		return session.NewRedisStore(rdb, cfg.SessionTTL), func() { rdb.Close() }, nil
	}

	logger.Info("keeping sessions in memory")
	return session.NewMemoryStore(cfg.SessionTTL), func() {}, nil
}

func openRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}

func sweepInterval(ttl time.Duration) time.Duration {
	return min(max(ttl/4, time.Minute), 15*time.Minute)
}

// sweep evicts expired sessions until ctx is done.
func sweep(ctx context.Context, logger *slog.Logger, sw session.Sweeper, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sw.Sweep(ctx)
			if err != nil {
				logger.Error("sweeping sessions", "error", err)
				continue
			}
			if n > 0 {
				logger.Debug("swept expired sessions", "count", n)
			}
		}
	}
}
