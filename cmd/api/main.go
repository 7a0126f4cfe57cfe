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
	"github.com/finara-labs/finara-backend/internal/api/middleware"
	"github.com/finara-labs/finara-backend/internal/api/server"
	"github.com/finara-labs/finara-backend/internal/config"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/messaging"
	"github.com/finara-labs/finara-backend/internal/providers/jetstream"
	"github.com/finara-labs/finara-backend/internal/ratelimit"
	"github.com/finara-labs/finara-backend/internal/relayer"
	"github.com/finara-labs/finara-backend/internal/store"
	"github.com/finara-labs/finara-backend/internal/store/migrations"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:       cfg.Debug,
		SentryDSN:   cfg.SentryDSN,
		Environment: cfg.Environment,
		Service:     "api-server",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Finara API")

	clock := adapter.NewClock()

	// Without a database host the API keeps records in memory only
	var dataStore store.Store
	if cfg.Database.Enabled() {
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
		}

		if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
			logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
		}

		if cfg.Database.ReadHost != "" {
			if err := store.ConfigureReadReplica(db, cfg.Database.ReadDSN()); err != nil {
				logger.FatalCtx(ctx, "Failed to configure read replica", zap.Error(err))
			}
			logger.InfoCtx(ctx, "Read queries routed to replica", zap.String("read_host", cfg.Database.ReadHost))
		}

		if cfg.Database.AutoMigrate {
			sqlDB, err := db.DB()
			if err != nil {
				logger.FatalCtx(ctx, "Failed to get database handle", zap.Error(err))
			}
			if err := migrations.Apply(ctx, sqlDB); err != nil {
				logger.FatalCtx(ctx, "Failed to apply migrations", zap.Error(err))
			}
		}

		logger.InfoCtx(ctx, "Connected to database",
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
			zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		)
		dataStore = store.NewPGStore(db)
	} else {
		logger.WarnCtx(ctx, "Database not configured, records will not be persisted")
		dataStore = store.NewNoopStore()
	}

	// Initialize relayer; it falls back to demo mode when the chain is not reachable
	chainRelayer, err := relayer.New(ctx, relayer.Config{
		RPCURL:              cfg.Ethereum.RPCURL,
		ChainID:             cfg.Ethereum.ChainID,
		PrivateKey:          cfg.Ethereum.RelayerPrivateKey,
		FactoryAddress:      cfg.Ethereum.FactoryAddress,
		ConfirmationTimeout: cfg.Ethereum.ConfirmationTimeout,
		SubmitTimeout:       cfg.Ethereum.SubmitTimeout,
		QueueSize:           cfg.Ethereum.QueueSize,
		DialTimeout:         cfg.Ethereum.DialTimeout,
	}, adapter.NewEthClientDialer(), clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize relayer", zap.Error(err))
	}
	defer chainRelayer.Close()

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
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, events will not be published")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	// Initialize rate limiter
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		var redisClient adapter.RedisClient
		if cfg.RateLimit.RedisAddr != "" {
			redisClient = adapter.NewRedisClient(cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPassword, cfg.RateLimit.RedisDB)
		}

		limiter, err = ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			KeyPrefix:         cfg.RateLimit.RedisKeyPrefix,
		}, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
		defer func() {
			_ = limiter.Close()
		}()
	}

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, server.Deps{
		Store:     dataStore,
		Relayer:   chainRelayer,
		Publisher: publisher,
		Limiter:   limiter,
		Clock:     clock,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
