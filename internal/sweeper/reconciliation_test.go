package sweeper_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/mocks"
	"github.com/finara-labs/finara-backend/internal/store"
	"github.com/finara-labs/finara-backend/internal/store/schema"
	"github.com/finara-labs/finara-backend/internal/sweeper"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	sweeper   sweeper.Sweeper
}

// setupTestSweeper creates all the mocks and sweeper for testing
func setupTestSweeper(t *testing.T) *testSweeperMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	config := &sweeper.ReconciliationSweeperConfig{
		Schedule:       "@every 5m",
		StaleAge:       15 * time.Minute,
		BatchSize:      10,
		WorkerPoolSize: 2,
	}

	tm.sweeper, err = sweeper.NewReconciliationSweeper(config, tm.store, tm.publisher, tm.clock)
	require.NoError(t, err)

	return tm
}

func staleAsset(id string) schema.Asset {
	return schema.Asset{
		AssetID:        id,
		BankAddress:    "0x1111111111111111111111111111111111111111",
		CustomerWallet: "0x2222222222222222222222222222222222222222",
		AssetType:      domain.AssetTypeGold,
		Status:         domain.AssetStatusVerified,
		CreatedAt:      fixedNow.Add(-time.Hour),
	}
}

func TestNewReconciliationSweeper_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config sweeper.ReconciliationSweeperConfig
	}{
		{name: "bad schedule", config: sweeper.ReconciliationSweeperConfig{Schedule: "every five minutes", StaleAge: time.Minute, BatchSize: 1}},
		{name: "zero stale age", config: sweeper.ReconciliationSweeperConfig{Schedule: "@every 5m", BatchSize: 1}},
		{name: "zero batch", config: sweeper.ReconciliationSweeperConfig{Schedule: "*/5 * * * *", StaleAge: time.Minute}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sweeper.NewReconciliationSweeper(&tt.config, nil, nil, nil)
			assert.Error(t, err)
		})
	}
}

func TestRunOnce_MarksStaleAssetsFailed(t *testing.T) {
	tm := setupTestSweeper(t)
	ctx := context.Background()

	tm.clock.EXPECT().Now().Return(fixedNow).AnyTimes()
	tm.clock.EXPECT().Since(fixedNow).Return(time.Second)

	tm.store.EXPECT().
		GetStaleAssets(ctx, domain.AssetStatusVerified, fixedNow.Add(-15*time.Minute), 10).
		Return([]schema.Asset{staleAsset("ASSET-1"), staleAsset("ASSET-2")}, nil)

	var mu sync.Mutex
	updated := map[string]bool{}
	tm.store.EXPECT().
		UpdateAsset(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, input store.UpdateAssetInput) (*schema.Asset, error) {
			assert.Equal(t, domain.AssetStatusFailed, input.Status)
			assert.Equal(t, domain.AssetStatusVerified, input.ExpectedStatus)
			assert.Equal(t, sweeper.ReconciliationError, input.Metadata[domain.MetadataKeyError])
			mu.Lock()
			updated[id] = true
			mu.Unlock()
			return &schema.Asset{AssetID: id, Status: input.Status}, nil
		}).
		Times(2)
	tm.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.Event) error {
			assert.Equal(t, domain.EventTypeAssetFailed, event.Type)
			assert.Equal(t, sweeper.ReconciliationError, event.Data["error"])
			return nil
		}).
		Times(2)

	resolved, err := tm.sweeper.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, resolved)
	assert.Equal(t, map[string]bool{"ASSET-1": true, "ASSET-2": true}, updated)
}

func TestRunOnce_NothingStale(t *testing.T) {
	tm := setupTestSweeper(t)
	ctx := context.Background()

	tm.clock.EXPECT().Now().Return(fixedNow)
	tm.store.EXPECT().GetStaleAssets(ctx, domain.AssetStatusVerified, gomock.Any(), 10).Return(nil, nil)

	resolved, err := tm.sweeper.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, resolved)
}

func TestRunOnce_StoreFailure(t *testing.T) {
	tm := setupTestSweeper(t)
	ctx := context.Background()

	tm.clock.EXPECT().Now().Return(fixedNow)
	tm.store.EXPECT().GetStaleAssets(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := tm.sweeper.RunOnce(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get stale assets")
}

func TestRunOnce_PublishFailureStillCounts(t *testing.T) {
	tm := setupTestSweeper(t)
	ctx := context.Background()

	tm.clock.EXPECT().Now().Return(fixedNow).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second)
	tm.store.EXPECT().GetStaleAssets(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return([]schema.Asset{staleAsset("ASSET-1")}, nil)
	tm.store.EXPECT().UpdateAsset(gomock.Any(), "ASSET-1", gomock.Any()).Return(&schema.Asset{AssetID: "ASSET-1"}, nil)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(errors.New("nats: timeout"))

	resolved, err := tm.sweeper.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, resolved)
}

func TestRunOnce_SkipsAssetResolvedConcurrently(t *testing.T) {
	tm := setupTestSweeper(t)
	ctx := context.Background()

	tm.clock.EXPECT().Now().Return(fixedNow).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second)
	tm.store.EXPECT().GetStaleAssets(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return([]schema.Asset{staleAsset("ASSET-1")}, nil)
	// the mint was recorded between listing and updating; no retry, no event
	tm.store.EXPECT().
		UpdateAsset(gomock.Any(), "ASSET-1", gomock.Any()).
		Return(nil, domain.NewStorageError("failed to update asset",
			fmt.Errorf("%w: asset ASSET-1 is tokenized, expected verified", domain.ErrAssetStatusConflict))).
		Times(1)
	tm.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Times(0)

	resolved, err := tm.sweeper.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, resolved)
}

func TestStartStop(t *testing.T) {
	tm := setupTestSweeper(t)
	ctx := context.Background()

	// the scheduled time never arrives, so Start blocks until Stop
	tm.clock.EXPECT().Now().Return(fixedNow).AnyTimes()
	tm.clock.EXPECT().After(5 * time.Minute).Return(make(chan time.Time))

	done := make(chan error, 1)
	go func() {
		done <- tm.sweeper.Start(ctx)
	}()

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, tm.sweeper.Stop(stopCtx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestStart_RunsCycleWhenScheduleFires(t *testing.T) {
	tm := setupTestSweeper(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan time.Time, 1)
	fired <- fixedNow
	tm.clock.EXPECT().Now().Return(fixedNow).AnyTimes()
	gomock.InOrder(
		tm.clock.EXPECT().After(5*time.Minute).Return(fired),
		tm.clock.EXPECT().After(5*time.Minute).Return(make(chan time.Time)),
	)
	tm.store.EXPECT().
		GetStaleAssets(gomock.Any(), domain.AssetStatusVerified, gomock.Any(), 10).
		DoAndReturn(func(context.Context, domain.AssetStatus, time.Time, int) ([]schema.Asset, error) {
			cancel()
			return nil, nil
		})

	err := tm.sweeper.Start(ctx)

	assert.NoError(t, err)
}
