package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/config"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/messaging"
	"github.com/finara-labs/finara-backend/internal/providers/jetstream"
	"github.com/finara-labs/finara-backend/internal/store"
	"github.com/finara-labs/finara-backend/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run a single reconciliation cycle and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:       cfg.Debug,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.Environment,
		Service:     "sweeper",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize event publisher
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), adapter.NewJSON(), adapter.NewJCS())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create event publisher", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "NATS not configured, events will not be published")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	// Initialize reconciliation sweeper
	reconciliationSweeper, err := sweeper.NewReconciliationSweeper(&sweeper.ReconciliationSweeperConfig{
		Schedule:       cfg.Reconciliation.Schedule,
		StaleAge:       cfg.Reconciliation.StaleAge,
		BatchSize:      cfg.Reconciliation.BatchSize,
		WorkerPoolSize: cfg.Reconciliation.Worker.WorkerPoolSize,
		QueueSize:      cfg.Reconciliation.Worker.WorkerQueueSize,
	}, dataStore, publisher, adapter.NewClock())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create reconciliation sweeper", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Initialized reconciliation sweeper",
		zap.String("schedule", cfg.Reconciliation.Schedule),
		zap.Duration("stale_age", cfg.Reconciliation.StaleAge),
		zap.Int("batch_size", cfg.Reconciliation.BatchSize),
	)

	if *once {
		resolved, err := reconciliationSweeper.RunOnce(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Reconciliation failed", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Reconciliation completed", zap.Int("resolved", resolved))
		return
	}

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := reconciliationSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := reconciliationSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
