package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/leoxiewl/want-to-be/internal/config"
	"github.com/leoxiewl/want-to-be/internal/engine"
	"github.com/leoxiewl/want-to-be/internal/logging"
	"github.com/leoxiewl/want-to-be/internal/metrics"
	"github.com/leoxiewl/want-to-be/internal/models"
	"github.com/leoxiewl/want-to-be/internal/server"
	"github.com/leoxiewl/want-to-be/internal/storage"
)

func main() {
	transport := flag.String("transport", "", "Transport mode: stdio or http (overrides config)")
	port := flag.String("port", "", "HTTP port, only used with --transport http (overrides config)")
	data := flag.String("data", "", "Content source: .yaml/.yml document or .db/.sqlite catalog (overrides config)")
	export := flag.String("export", "", "Write the loaded dataset to a .yaml/.yml document or a new .db/.sqlite catalog, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *transport, *port, *data)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *export != "" {
		if err := exportDataset(cfg, logger, *export); err != nil {
			logger.Error("export failed", zap.Error(err))
			_ = logger.Sync()
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// applyFlags lets non-empty command-line flags win over loaded settings.
func applyFlags(cfg *config.Config, transport, port, data string) {
	if transport != "" {
		cfg.Server.Transport = transport
	}
	if port != "" {
		cfg.Server.Addr = ":" + port
	}
	if data != "" {
		cfg.Data.Source = data
	}
}

// loadDataset reads and validates the configured content source.
func loadDataset(cfg *config.Config, logger *zap.Logger, year engine.YearSource) ([]models.Person, error) {
	people, err := storage.Load(cfg.Data.Source, year())
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("dataset loaded",
		zap.String("source", cfg.Data.Source),
		zap.Int("people", len(people)),
	)
	return people, nil
}

// exportDataset writes the configured content source to path, choosing the
// format from the file extension.
func exportDataset(cfg *config.Config, logger *zap.Logger, path string) error {
	people, err := loadDataset(cfg, logger, engine.NewYearSource(cfg.Engine.ReferenceYear))
	if err != nil {
		return err
	}
	if err := storage.Export(path, people); err != nil {
		return fmt.Errorf("export dataset: %w", err)
	}
	logger.Info("dataset exported", zap.String("path", path), zap.Int("people", len(people)))
	return nil
}

func run(cfg *config.Config, logger *zap.Logger) error {
	year := engine.NewYearSource(cfg.Engine.ReferenceYear)
	people, err := loadDataset(cfg, logger, year)
	if err != nil {
		return err
	}
	metrics.DatasetPeople.Set(float64(len(people)))

	opts := server.Options{
		Year:           year,
		RecommendLimit: cfg.Engine.RecommendLimit,
		Logger:         logger,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	switch cfg.Server.Transport {
	case "stdio":
		logger.Info("want-to-be MCP server starting (stdio)")
		if err := server.New(people, opts).Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio server: %w", err)
		}
		return nil
	case "http":
		return serveHTTP(ctx, cfg, logger, server.NewRouter(people, opts))
	default:
		return fmt.Errorf("unknown transport: %s (use stdio or http)", cfg.Server.Transport)
	}
}

func serveHTTP(ctx context.Context, cfg *config.Config, logger *zap.Logger, handler http.Handler) error {
	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("want-to-be MCP server listening", zap.String("addr", cfg.Server.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
