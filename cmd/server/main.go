package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/asredigitalgroup-rgb/disti-board/internal/config"
	"github.com/asredigitalgroup-rgb/disti-board/internal/core"
	"github.com/asredigitalgroup-rgb/disti-board/internal/logging"
	"github.com/asredigitalgroup-rgb/disti-board/internal/store"
	"github.com/asredigitalgroup-rgb/disti-board/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"store_backend", cfg.Store.Backend,
		"fallback_tabs", len(cfg.Inventory.FallbackTabs),
	)

	ctx := context.Background()

	products, board, cleanup, err := openStores(ctx, cfg)
	if err != nil {
		slog.Error("failed to open stores", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	service := core.NewService(products, board, cfg)
	server := web.NewServer(service, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}

// openStores wires the products and board stores for the configured
// backend. The returned cleanup releases any underlying pool.
func openStores(ctx context.Context, cfg *config.Config) (products, board store.Store, cleanup func(), err error) {
	cleanup = func() {}

	switch strings.ToLower(cfg.Store.Backend) {
	case "postgres":
		poolConfig, err := pgxpool.ParseConfig(cfg.Store.DatabaseURL)
		if err != nil {
			return nil, nil, cleanup, err
		}
		poolConfig.MaxConns = int32(cfg.Store.MaxConns)
		poolConfig.MinConns = int32(cfg.Store.MinConns)

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, nil, cleanup, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, cleanup, err
		}

		pg := store.NewPGStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, cleanup, err
		}

		slog.Info("connected to postgres store")
		return pg, pg, pool.Close, nil

	default: // csv, enforced by config validation
		products, err := store.NewCSVStore(cfg.Store.ProductsDir)
		if err != nil {
			return nil, nil, cleanup, err
		}
		board, err := store.NewCSVStore(cfg.Store.BoardDir)
		if err != nil {
			return nil, nil, cleanup, err
		}

		slog.Info("opened csv stores",
			"products_dir", cfg.Store.ProductsDir,
			"board_dir", cfg.Store.BoardDir,
		)
		return products, board, cleanup, nil
	}
}
