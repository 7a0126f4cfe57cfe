package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/messaging"
	"github.com/finara-labs/finara-backend/internal/metrics"
	"github.com/finara-labs/finara-backend/internal/store"
	"github.com/finara-labs/finara-backend/internal/store/schema"
)

// ReconciliationError is written to the metadata of assets the sweeper resolves
const ReconciliationError = "reconciliation: mint outcome unknown"

var errAssetGone = errors.New("asset no longer exists")

// ReconciliationSweeperConfig holds configuration for the stale asset reconciler
type ReconciliationSweeperConfig struct {
	Schedule       string        // cron expression or descriptor, e.g. "@every 5m"
	StaleAge       time.Duration // assets checkpointed longer ago than this are resolved
	BatchSize      int           // assets resolved per cycle
	WorkerPoolSize int           // concurrent workers
	QueueSize      int
}

// reconciliationSweeper resolves assets left in verified by a tokenization whose process
// died between the checkpoint and recording the mint outcome
type reconciliationSweeper struct {
	config    *ReconciliationSweeperConfig
	schedule  cron.Schedule
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	running   atomic.Bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewReconciliationSweeper creates a reconciliation sweeper. The schedule uses standard cron syntax.
func NewReconciliationSweeper(
	config *ReconciliationSweeperConfig,
	st store.Store,
	publisher messaging.Publisher,
	clock adapter.Clock,
) (Sweeper, error) {
	schedule, err := cron.ParseStandard(config.Schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid reconciliation schedule %q: %w", config.Schedule, err)
	}
	if config.StaleAge <= 0 {
		return nil, errors.New("reconciliation stale age must be positive")
	}
	if config.BatchSize <= 0 {
		return nil, errors.New("reconciliation batch size must be positive")
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.QueueSize < config.BatchSize {
		config.QueueSize = config.BatchSize
	}

	return &reconciliationSweeper{
		config:    config,
		schedule:  schedule,
		store:     st,
		publisher: publisher,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}, nil
}

func (s *reconciliationSweeper) Name() string {
	return "reconciliation-sweeper"
}

// Start runs a sweep cycle at every scheduled time until the context is canceled or Stop is called
func (s *reconciliationSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting reconciliation sweeper",
		zap.String("schedule", s.config.Schedule),
		zap.Duration("stale_age", s.config.StaleAge),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		now := s.clock.Now()
		if !s.sleep(ctx, s.schedule.Next(now).Sub(now)) {
			logger.InfoCtx(ctx, "Reconciliation sweeper stopping")
			return nil
		}

		if _, err := s.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}
	}
}

// Stop signals the main loop and waits for the running cycle to finish.
// A stopped sweeper does not start again.
func (s *reconciliationSweeper) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping reconciliation sweeper")

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Reconciliation sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Reconciliation sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// RunOnce resolves one batch of stale assets and returns how many were marked failed
func (s *reconciliationSweeper) RunOnce(ctx context.Context) (int, error) {
	startTime := s.clock.Now()
	cutoff := startTime.Add(-s.config.StaleAge).UTC()

	assets, err := s.store.GetStaleAssets(ctx, domain.AssetStatusVerified, cutoff, s.config.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to get stale assets: %w", err)
	}
	if len(assets) == 0 {
		logger.DebugCtx(ctx, "No stale assets to reconcile")
		return 0, nil
	}

	logger.InfoCtx(ctx, "Found stale assets", zap.Int("count", len(assets)), zap.Time("cutoff", cutoff))

	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.QueueSize),
		pond.WithContext(ctx),
	)

	var resolved atomic.Int32
	for _, asset := range assets {
		pool.Submit(func() {
			if s.resolve(ctx, asset) {
				resolved.Add(1)
			}
		})
	}
	pool.StopAndWait()

	logger.InfoCtx(ctx, "Reconciliation cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("stale", len(assets)),
		zap.Int32("resolved", resolved.Load()),
	)

	return int(resolved.Load()), nil
}

// resolve marks one asset failed and announces it
func (s *reconciliationSweeper) resolve(ctx context.Context, asset schema.Asset) bool {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 10 * time.Second

	operation := func() error {
		updated, err := s.store.UpdateAsset(ctx, asset.AssetID, store.UpdateAssetInput{
			Status: domain.AssetStatusFailed,
			Metadata: map[string]any{
				domain.MetadataKeyError:    ReconciliationError,
				domain.MetadataKeyFailedAt: s.clock.Now().UTC().Format(time.RFC3339Nano),
			},
			ExpectedStatus: domain.AssetStatusVerified,
		})
		if errors.Is(err, domain.ErrAssetStatusConflict) {
			return backoff.Permanent(err)
		}
		if err == nil && updated == nil {
			return backoff.Permanent(errAssetGone)
		}
		return err
	}

	if err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.WithContext(b, ctx), 3)); err != nil {
		if errors.Is(err, domain.ErrAssetStatusConflict) || errors.Is(err, errAssetGone) {
			// the tokenization recorded its outcome after the asset was listed
			logger.InfoCtx(ctx, "Stale asset already resolved, skipping",
				zap.String("assetID", asset.AssetID),
				zap.Error(err))
			return false
		}
		logger.ErrorCtx(ctx, fmt.Errorf("failed to reconcile asset: %w", err),
			zap.String("assetID", asset.AssetID))
		return false
	}

	metrics.RecordReconciledAsset()
	logger.WarnCtx(ctx, "Stale asset marked failed",
		zap.String("assetID", asset.AssetID),
		zap.String("bank", asset.BankAddress),
		zap.String("wallet", asset.CustomerWallet),
		zap.Time("createdAt", asset.CreatedAt),
	)

	event := messaging.NewEvent(domain.EventTypeAssetFailed, asset.BankAddress, s.clock.Now())
	event.Wallet = asset.CustomerWallet
	event.Data = map[string]any{
		"assetId": asset.AssetID,
		"error":   ReconciliationError,
	}
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event",
			zap.String("type", string(event.Type)),
			zap.String("assetID", asset.AssetID),
			zap.Error(err))
	}

	return true
}

// sleep waits for duration. It returns false when interrupted by the context or Stop.
func (s *reconciliationSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
