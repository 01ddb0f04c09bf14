// @title       Pet Shop API
// @version     1.0
// @description Users and the pets they own.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	pg "pet-shop-api/internal/adapters/storage/postgres"
	"pet-shop-api/internal/config"
	"pet-shop-api/internal/platform/logger"
	"pet-shop-api/internal/router"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	configPath string
	addr       string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:          "api",
		Short:        "Serve the pet shop HTTP API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, f)
		},
	}
	cmd.PersistentFlags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&f.addr, "addr", "", "listen address, overrides config (e.g. :8080)")

	cmd.AddCommand(newInitDBCmd(f))
	return cmd
}

func newInitDBCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Create the users and pets tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load(f)
			if err != nil {
				return err
			}
			if cfg.Database.DSN == "" {
				return errors.New("initdb: DB_DSN is not set")
			}

			pool, err := pg.Open(cmd.Context(), cfg.Database.DSN, pg.PoolConfig{MaxConns: cfg.Database.MaxConns})
			if err != nil {
				return fmt.Errorf("initdb: open database: %w", err)
			}
			defer pool.Close()

			if err := pg.EnsureSchema(cmd.Context(), pool); err != nil {
				return err
			}
			log.Info("schema ready", nil)
			return nil
		},
	}
}

func load(f *flags) (config.Config, logger.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if f.addr != "" {
		cfg.HTTP.Addr = f.addr
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	return cfg, log, nil
}

func serve(ctx context.Context, f *flags) error {
	cfg, log, err := load(f)
	if err != nil {
		return err
	}

	opts := router.Options{Config: cfg, Logger: log}

	// Postgres solo si hay DSN; si no, in-memory
	if dsn := strings.TrimSpace(cfg.Database.DSN); dsn != "" {
		pool, err := openPool(ctx, cfg)
		if err != nil {
			log.Error("database unavailable", map[string]any{"error": err.Error()})
			return err
		}
		defer pool.Close()
		opts.Pool = pool
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.HTTP.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", map[string]any{"error": err.Error()})
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func openPool(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := pg.Open(ctx, cfg.Database.DSN, pg.PoolConfig{MaxConns: cfg.Database.MaxConns})
	if err != nil {
		return nil, err
	}
	if cfg.Database.EnsureSchema {
		if err := pg.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}
