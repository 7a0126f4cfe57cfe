package analytics_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finara-labs/finara-backend/internal/analytics"
	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/mocks"
	"github.com/finara-labs/finara-backend/internal/relayer"
	"github.com/finara-labs/finara-backend/internal/store"
	"github.com/finara-labs/finara-backend/internal/store/schema"
)

const (
	bankAddr  = "0x1111111111111111111111111111111111111111"
	tokenAddr = "0x3333333333333333333333333333333333333333"
	alice     = "0x000000000000000000000000000000000000a11c"
	bob       = "0x0000000000000000000000000000000000000b0b"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testAggregatorMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	relayer    *mocks.MockRelayer
	aggregator analytics.Aggregator
}

func setupTestAggregator(t *testing.T) *testAggregatorMocks {
	ctrl := gomock.NewController(t)

	tm := &testAggregatorMocks{
		ctrl:    ctrl,
		store:   mocks.NewMockStore(ctrl),
		relayer: mocks.NewMockRelayer(ctrl),
	}
	tm.aggregator = analytics.NewAggregator(tm.store, tm.relayer)

	return tm
}

func at(minutes int) time.Time {
	return baseTime.Add(time.Duration(minutes) * time.Minute)
}

func TestClampActivityLimit(t *testing.T) {
	assert.Equal(t, domain.DEFAULT_ACTIVITY_LIMIT, analytics.ClampActivityLimit(0))
	assert.Equal(t, domain.DEFAULT_ACTIVITY_LIMIT, analytics.ClampActivityLimit(-3))
	assert.Equal(t, 1, analytics.ClampActivityLimit(1))
	assert.Equal(t, domain.MAX_ACTIVITY_LIMIT, analytics.ClampActivityLimit(1000))
}

func TestActivity_MergesNewestFirst(t *testing.T) {
	tm := setupTestAggregator(t)
	ctx := context.Background()

	tm.store.EXPECT().GetTokenMintsByBank(ctx, bankAddr, 10).Return([]schema.TokenMint{
		{TransactionHash: "0xmint2", WalletAddress: alice, Amount: decimal.NewFromInt(200), MintedAt: at(30)},
		{TransactionHash: "0xmint1", WalletAddress: bob, Amount: decimal.NewFromInt(100), MintedAt: at(10)},
	}, nil)
	tm.store.EXPECT().GetLoansByBank(ctx, bankAddr, 10).Return([]schema.Loan{
		{TransactionHash: "0xloan", BorrowerAddress: alice, LoanAmount: decimal.NewFromInt(1000), CollateralAmount: decimal.NewFromInt(1500), CreatedAt: at(20)},
	}, nil)
	aliceVerified := at(5)
	tm.store.EXPECT().GetRecentVerifiedCustomers(ctx, bankAddr, 10).Return([]schema.Customer{
		{WalletAddress: alice, Name: "Alice", KYCVerified: true, VerifiedAt: &aliceVerified},
	}, nil)
	tm.store.EXPECT().ListCustomers(ctx, bankAddr).Return([]schema.Customer{
		{WalletAddress: alice, Name: "Alice"},
	}, nil)

	items, err := tm.aggregator.Activity(ctx, "0x1111111111111111111111111111111111111111", 10)

	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, "0xmint2", items[0].TxHash)
	assert.Equal(t, analytics.EventTokenMinted, items[0].Event)
	assert.Equal(t, "Alice", items[0].Customer)

	assert.Equal(t, domain.ActivityTypeLoan, items[1].Type)
	assert.Equal(t, analytics.EventLoanCreated, items[1].Event)
	require.NotNil(t, items[1].Collateral)
	assert.Equal(t, "1500", items[1].Collateral.String())

	assert.Equal(t, "0xmint1", items[2].TxHash)
	assert.Equal(t, "Unknown", items[2].Customer)

	assert.Equal(t, domain.ActivityTypeKYC, items[3].Type)
	assert.Equal(t, analytics.EventKYCApproved, items[3].Event)
	assert.Nil(t, items[3].Amount)
	assert.Empty(t, items[3].TxHash)
}

func TestActivity_TiesKeepStreamOrderAndLimit(t *testing.T) {
	tm := setupTestAggregator(t)
	ctx := context.Background()
	same := at(0)

	tm.store.EXPECT().GetTokenMintsByBank(ctx, bankAddr, 2).Return([]schema.TokenMint{
		{TransactionHash: "0xmint", WalletAddress: alice, Amount: decimal.NewFromInt(1), MintedAt: same},
	}, nil)
	tm.store.EXPECT().GetLoansByBank(ctx, bankAddr, 2).Return([]schema.Loan{
		{TransactionHash: "0xloan", BorrowerAddress: alice, LoanAmount: decimal.NewFromInt(1), CreatedAt: same},
	}, nil)
	tm.store.EXPECT().GetRecentVerifiedCustomers(ctx, bankAddr, 2).Return([]schema.Customer{
		{WalletAddress: alice, Name: "Alice", VerifiedAt: &same},
	}, nil)
	tm.store.EXPECT().ListCustomers(ctx, bankAddr).Return(nil, nil)

	items, err := tm.aggregator.Activity(ctx, bankAddr, 2)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.ActivityTypeMint, items[0].Type)
	assert.Equal(t, domain.ActivityTypeLoan, items[1].Type)
}

func TestActivity_OnlyKYCSkipsNameLookup(t *testing.T) {
	tm := setupTestAggregator(t)
	ctx := context.Background()
	verifiedAt := at(1)

	tm.store.EXPECT().GetTokenMintsByBank(ctx, bankAddr, domain.DEFAULT_ACTIVITY_LIMIT).Return(nil, nil)
	tm.store.EXPECT().GetLoansByBank(ctx, bankAddr, domain.DEFAULT_ACTIVITY_LIMIT).Return(nil, nil)
	tm.store.EXPECT().GetRecentVerifiedCustomers(ctx, bankAddr, domain.DEFAULT_ACTIVITY_LIMIT).Return([]schema.Customer{
		{WalletAddress: bob, Name: "Bob", VerifiedAt: &verifiedAt},
		{WalletAddress: alice, Name: "Alice"},
	}, nil)

	items, err := tm.aggregator.Activity(ctx, bankAddr, 0)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bob", items[0].Customer)
}

func TestActivity_StoreFailure(t *testing.T) {
	tm := setupTestAggregator(t)
	ctx := context.Background()
	storeErr := domain.NewStorageError("Failed to fetch mints", errors.New("connection refused"))

	tm.store.EXPECT().GetTokenMintsByBank(ctx, bankAddr, 5).Return(nil, storeErr)

	_, err := tm.aggregator.Activity(ctx, bankAddr, 5)

	assert.ErrorIs(t, err, storeErr)
}

func TestBankAnalytics(t *testing.T) {
	t.Run("totals and ratio", func(t *testing.T) {
		tm := setupTestAggregator(t)
		ctx := context.Background()

		tm.store.EXPECT().GetBank(ctx, bankAddr).Return(&schema.Bank{
			BankAddress:  bankAddr,
			BankName:     "Test Bank",
			TokenAddress: tokenAddr,
			TokenSymbol:  "TBT",
			DeployedAt:   baseTime,
		}, nil)
		tm.store.EXPECT().GetBankTotals(ctx, bankAddr).Return(&store.BankTotals{
			CustomersCount:    3,
			TotalLoans:        2,
			TotalLoanAmount:   decimal.NewFromInt(3000),
			TotalCollateral:   decimal.NewFromInt(4000),
			TotalTokensMinted: decimal.NewFromInt(500),
		}, nil)
		tm.store.EXPECT().GetTokenMintsByBank(ctx, bankAddr, domain.RECENT_ACTIVITY_LIMIT).Return(nil, nil)
		tm.store.EXPECT().GetLoansByBank(ctx, bankAddr, domain.RECENT_ACTIVITY_LIMIT).Return(nil, nil)
		tm.store.EXPECT().GetRecentVerifiedCustomers(ctx, bankAddr, domain.RECENT_ACTIVITY_LIMIT).Return(nil, nil)

		result, err := tm.aggregator.BankAnalytics(ctx, bankAddr)

		require.NoError(t, err)
		assert.Equal(t, "Test Bank", result.Bank.Name)
		assert.Equal(t, int64(3), result.Stats.CustomersCount)
		assert.Equal(t, "133.33", result.Stats.AvgCollateralizationRatio)
	})

	t.Run("no loans", func(t *testing.T) {
		tm := setupTestAggregator(t)
		ctx := context.Background()

		tm.store.EXPECT().GetBank(ctx, bankAddr).Return(&schema.Bank{BankAddress: bankAddr}, nil)
		tm.store.EXPECT().GetBankTotals(ctx, bankAddr).Return(&store.BankTotals{
			TotalLoanAmount:   decimal.Zero,
			TotalCollateral:   decimal.Zero,
			TotalTokensMinted: decimal.Zero,
		}, nil)
		tm.store.EXPECT().GetTokenMintsByBank(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		tm.store.EXPECT().GetLoansByBank(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		tm.store.EXPECT().GetRecentVerifiedCustomers(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		result, err := tm.aggregator.BankAnalytics(ctx, bankAddr)

		require.NoError(t, err)
		assert.Equal(t, "0", result.Stats.AvgCollateralizationRatio)
	})

	t.Run("unknown bank", func(t *testing.T) {
		tm := setupTestAggregator(t)
		ctx := context.Background()

		tm.store.EXPECT().GetBank(ctx, bankAddr).Return(nil, nil)

		_, err := tm.aggregator.BankAnalytics(ctx, bankAddr)

		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Bank not found", err.Error())
	})
}

func TestCustomerAssets_Summary(t *testing.T) {
	tm := setupTestAggregator(t)
	ctx := context.Background()

	tm.store.EXPECT().GetAssetsByWallet(ctx, alice).Return([]schema.Asset{
		{AssetID: "ASSET-2", AssetType: domain.AssetTypeGold, AssetValue: decimal.NewFromInt(5000), TokenAmount: decimal.NewFromInt(5000)},
		{AssetID: "ASSET-1", AssetType: domain.AssetTypeRealEstate, AssetValue: decimal.NewFromInt(150000), TokenAmount: decimal.NewFromInt(75000)},
		{AssetID: "ASSET-0", AssetType: domain.AssetTypeGold, AssetValue: decimal.NewFromInt(100), TokenAmount: decimal.Zero},
	}, nil)

	result, err := tm.aggregator.CustomerAssets(ctx, alice)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Summary.TotalAssets)
	assert.Equal(t, "155100", result.Summary.TotalValue.String())
	assert.Equal(t, "80000", result.Summary.TotalTokensIssued.String())
	assert.Equal(t, []domain.AssetType{domain.AssetTypeGold, domain.AssetTypeRealEstate}, result.Summary.AssetTypes)
}

func TestCustomerAssets_Empty(t *testing.T) {
	tm := setupTestAggregator(t)
	ctx := context.Background()

	tm.store.EXPECT().GetAssetsByWallet(ctx, alice).Return(nil, nil)

	result, err := tm.aggregator.CustomerAssets(ctx, alice)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Summary.TotalAssets)
	assert.True(t, result.Summary.TotalValue.IsZero())
	assert.NotNil(t, result.Summary.AssetTypes)
}

func TestCustomerProfile(t *testing.T) {
	t.Run("with balance", func(t *testing.T) {
		tm := setupTestAggregator(t)
		ctx := context.Background()

		tm.store.EXPECT().GetCustomerByWallet(ctx, alice).Return(&schema.Customer{BankAddress: bankAddr, WalletAddress: alice, Name: "Alice"}, nil)
		tm.store.EXPECT().GetBank(ctx, bankAddr).Return(&schema.Bank{BankAddress: bankAddr, TokenAddress: tokenAddr, TokenSymbol: "TBT"}, nil)
		tm.relayer.EXPECT().TokenBalance(ctx, tokenAddr, alice).Return(&relayer.TokenBalance{Balance: decimal.RequireFromString("42.5"), Decimals: 18, Symbol: "TBT"}, nil)
		tm.store.EXPECT().GetLoansByWallet(ctx, alice).Return([]schema.Loan{
			{LoanAmount: decimal.NewFromInt(1000)},
			{LoanAmount: decimal.NewFromInt(250)},
		}, nil)
		tm.store.EXPECT().GetTokenMintsByWallet(ctx, alice).Return([]schema.TokenMint{
			{Amount: decimal.NewFromInt(40)},
		}, nil)

		profile, err := tm.aggregator.CustomerProfile(ctx, alice)

		require.NoError(t, err)
		assert.Equal(t, "42.5", profile.TokenBalance)
		require.NotNil(t, profile.Bank)
		assert.Equal(t, "TBT", profile.Bank.TokenSymbol)
		assert.Equal(t, 2, profile.Stats.TotalLoans)
		assert.Equal(t, "1250", profile.Stats.TotalBorrowed.String())
		assert.Equal(t, "40", profile.Stats.TotalMinted.String())
	})

	t.Run("balance failure falls back to zero", func(t *testing.T) {
		tm := setupTestAggregator(t)
		ctx := context.Background()

		tm.store.EXPECT().GetCustomerByWallet(ctx, alice).Return(&schema.Customer{BankAddress: bankAddr, WalletAddress: alice}, nil)
		tm.store.EXPECT().GetBank(ctx, bankAddr).Return(&schema.Bank{BankAddress: bankAddr, TokenAddress: tokenAddr}, nil)
		tm.relayer.EXPECT().TokenBalance(ctx, tokenAddr, alice).Return(nil, errors.New("rpc unavailable"))
		tm.store.EXPECT().GetLoansByWallet(ctx, alice).Return(nil, nil)
		tm.store.EXPECT().GetTokenMintsByWallet(ctx, alice).Return(nil, nil)

		profile, err := tm.aggregator.CustomerProfile(ctx, alice)

		require.NoError(t, err)
		assert.Equal(t, "0", profile.TokenBalance)
		assert.Equal(t, 0, profile.Stats.TotalLoans)
	})

	t.Run("bank removed", func(t *testing.T) {
		tm := setupTestAggregator(t)
		ctx := context.Background()

		tm.store.EXPECT().GetCustomerByWallet(ctx, alice).Return(&schema.Customer{BankAddress: bankAddr, WalletAddress: alice}, nil)
		tm.store.EXPECT().GetBank(ctx, bankAddr).Return(nil, nil)
		tm.store.EXPECT().GetLoansByWallet(ctx, alice).Return(nil, nil)
		tm.store.EXPECT().GetTokenMintsByWallet(ctx, alice).Return(nil, nil)

		profile, err := tm.aggregator.CustomerProfile(ctx, alice)

		require.NoError(t, err)
		assert.Nil(t, profile.Bank)
		assert.Equal(t, "0", profile.TokenBalance)
	})

	t.Run("unknown wallet", func(t *testing.T) {
		tm := setupTestAggregator(t)
		ctx := context.Background()

		tm.store.EXPECT().GetCustomerByWallet(ctx, bob).Return(nil, nil)

		_, err := tm.aggregator.CustomerProfile(ctx, bob)

		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}
