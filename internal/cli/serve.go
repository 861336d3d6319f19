package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowdeck/flowdeck/pkg/cache"
	"github.com/flowdeck/flowdeck/pkg/pipeline"
	"github.com/flowdeck/flowdeck/pkg/server"
	"github.com/flowdeck/flowdeck/pkg/store"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	cfg := c.Config.Server
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

Exposes layout and render endpoints plus project CRUD. By default layouts
are cached on disk and projects are stored as JSON files; pass --redis
and --mongo to use shared backends instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), cfg, noCache)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	cmd.Flags().StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "redis URL for the layout cache (default: file cache)")
	cmd.Flags().StringVar(&cfg.MongoURL, "mongo", cfg.MongoURL, "mongodb URI for the project store (default: file store)")
	cmd.Flags().StringVar(&cfg.MongoDB, "mongo-db", cfg.MongoDB, "mongodb database name")
	cmd.Flags().StringVar(&cfg.StoreDir, "store-dir", cfg.StoreDir, "directory for the file project store")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout caching")

	return cmd
}

// runServe builds the cache, store, and runner from flags and serves until
// the context is cancelled.
func (c *CLI) runServe(ctx context.Context, cfg ServerConfig, noCache bool) error {
	ch, err := c.serveCache(ctx, cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	st, err := c.serveStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() {
		if cerr := st.Close(context.Background()); cerr != nil {
			c.Logger.Warn("close store", "err", cerr)
		}
	}()

	runner := pipeline.NewRunner(ch, nil, c.Logger)
	defer runner.Close()

	srv := server.New(runner, st, c.Logger)
	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving", "addr", cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// serveCache selects the cache backend: redis when configured, otherwise
// the local file cache.
func (c *CLI) serveCache(ctx context.Context, cfg ServerConfig, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.RedisURL != "" {
		c.Logger.Debug("using redis cache", "url", cfg.RedisURL)
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	}
	return newCache(false)
}

// serveStore selects the project store backend: mongodb when configured,
// otherwise JSON files on disk.
func (c *CLI) serveStore(ctx context.Context, cfg ServerConfig) (store.Store, error) {
	if cfg.MongoURL != "" {
		c.Logger.Debug("using mongodb store", "db", cfg.MongoDB)
		return store.NewMongoStore(ctx, cfg.MongoURL, cfg.MongoDB)
	}
	return store.NewFileStore(cfg.StoreDir)
}
