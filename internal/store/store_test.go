package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finara-labs/finara-backend/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const (
	testBank     = "0xb000000000000000000000000000000000000001"
	testWallet   = "0xc000000000000000000000000000000000000001"
	testWallet2  = "0xc000000000000000000000000000000000000002"
	testToken    = "0xa000000000000000000000000000000000000001"
	testLending  = "0xa000000000000000000000000000000000000002"
	testBaseTime = "2025-01-01T00:00:00Z"
)

func baseTime(t *testing.T) time.Time {
	ts, err := time.Parse(time.RFC3339, testBaseTime)
	require.NoError(t, err)
	return ts
}

func buildTestBank(bankAddress string, deployedAt time.Time) CreateBankInput {
	return CreateBankInput{
		BankAddress:            bankAddress,
		BankName:               "Test Bank",
		TokenName:              "Test Token",
		TokenSymbol:            "TST",
		MaxSupply:              decimal.NewFromInt(1_000_000),
		CollateralizationRatio: 150,
		TokenAddress:           testToken,
		LendingAddress:         testLending,
		TransactionHash:        "0xdeploy",
		BlockNumber:            100,
		DeployedAt:             deployedAt,
	}
}

func buildTestAsset(assetID, wallet string, createdAt time.Time) CreateAssetInput {
	return CreateAssetInput{
		AssetID:           assetID,
		BankAddress:       testBank,
		CustomerWallet:    wallet,
		AssetType:         domain.AssetTypeGold,
		Description:       "24K gold bar",
		AssetValue:        decimal.NewFromInt(150000),
		TokenizationRatio: decimal.NewFromInt(1),
		TokenAmount:       decimal.NewFromInt(150000),
		Status:            domain.AssetStatusVerified,
		Metadata: map[string]any{
			domain.MetadataKeyTokenizationRatio: "1",
			domain.MetadataKeyTokenSymbol:       "TST",
		},
		CreatedAt: createdAt,
	}
}

func buildTestLoan(id, borrower string, loan, collateral int64, createdAt time.Time) CreateLoanInput {
	return CreateLoanInput{
		ID:               id,
		BankAddress:      testBank,
		BorrowerAddress:  borrower,
		CollateralAmount: decimal.NewFromInt(collateral),
		LoanAmount:       decimal.NewFromInt(loan),
		InterestRate:     800,
		Duration:         31536000,
		TransactionHash:  "0xloan-" + id,
		BlockNumber:      200,
		CreatedAt:        createdAt,
	}
}

func seedBankAndCustomers(t *testing.T, store Store) {
	ctx := context.Background()
	_, err := store.CreateBank(ctx, buildTestBank(testBank, baseTime(t)))
	require.NoError(t, err)
	_, err = store.UpsertCustomers(ctx, testBank, []CustomerInput{
		{Name: "Alice", AccountID: "ACC-1", WalletAddress: testWallet},
		{Name: "Bob", AccountID: "ACC-2", WalletAddress: testWallet2},
	})
	require.NoError(t, err)
}

// =============================================================================
// Tests
// =============================================================================

func testBanks(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get bank with case-insensitive address", func(t *testing.T) {
		_, err := store.CreateBank(ctx, buildTestBank("0xB000000000000000000000000000000000000001", baseTime(t)))
		require.NoError(t, err)

		bank, err := store.GetBank(ctx, "0xb000000000000000000000000000000000000001")
		require.NoError(t, err)
		require.NotNil(t, bank)
		assert.Equal(t, testBank, bank.BankAddress)
		assert.Equal(t, "TST", bank.TokenSymbol)
		assert.Equal(t, testToken, bank.TokenAddress)
		assert.True(t, decimal.NewFromInt(1_000_000).Equal(bank.MaxSupply))
	})

	t.Run("unknown bank returns nil", func(t *testing.T) {
		bank, err := store.GetBank(ctx, "0xb0000000000000000000000000000000000000ff")
		require.NoError(t, err)
		assert.Nil(t, bank)
	})

	t.Run("duplicate bank is a storage error", func(t *testing.T) {
		_, err := store.CreateBank(ctx, buildTestBank(testBank, baseTime(t)))
		require.Error(t, err)
		assert.True(t, domain.IsStorageError(err))
	})

	t.Run("list banks newest first", func(t *testing.T) {
		_, err := store.CreateBank(ctx, buildTestBank("0xb000000000000000000000000000000000000002", baseTime(t).Add(time.Hour)))
		require.NoError(t, err)

		banks, err := store.ListBanks(ctx)
		require.NoError(t, err)
		require.Len(t, banks, 2)
		assert.Equal(t, "0xb000000000000000000000000000000000000002", banks[0].BankAddress)
	})
}

func testCustomers(t *testing.T, store Store) {
	ctx := context.Background()
	seedBankAndCustomers(t, store)

	t.Run("upsert refreshes existing wallet", func(t *testing.T) {
		n, err := store.UpsertCustomers(ctx, testBank, []CustomerInput{
			{Name: "Alice Updated", AccountID: "ACC-1B", WalletAddress: "0xC000000000000000000000000000000000000001"},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		customers, err := store.ListCustomers(ctx, testBank)
		require.NoError(t, err)
		assert.Len(t, customers, 2)

		customer, err := store.GetCustomer(ctx, testBank, testWallet)
		require.NoError(t, err)
		require.NotNil(t, customer)
		assert.Equal(t, "Alice Updated", customer.Name)
		assert.False(t, customer.KYCVerified)
		assert.False(t, customer.Eligible())
	})

	t.Run("mark verified only once", func(t *testing.T) {
		at := baseTime(t).Add(time.Minute)
		n, err := store.MarkCustomersVerified(ctx, testBank, []string{testWallet, testWallet2}, at)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = store.MarkCustomersVerified(ctx, testBank, []string{testWallet}, at.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		customer, err := store.GetCustomer(ctx, testBank, testWallet)
		require.NoError(t, err)
		require.NotNil(t, customer.VerifiedAt)
		assert.True(t, at.Equal(*customer.VerifiedAt))
		assert.True(t, customer.Eligible())
	})

	t.Run("recent verified customers", func(t *testing.T) {
		customers, err := store.GetRecentVerifiedCustomers(ctx, testBank, 1)
		require.NoError(t, err)
		assert.Len(t, customers, 1)
	})

	t.Run("freeze customer", func(t *testing.T) {
		ok, err := store.FreezeCustomer(ctx, testBank, testWallet2)
		require.NoError(t, err)
		assert.True(t, ok)

		customer, err := store.GetCustomer(ctx, testBank, testWallet2)
		require.NoError(t, err)
		assert.True(t, customer.Frozen)
		assert.False(t, customer.Eligible())

		ok, err = store.FreezeCustomer(ctx, testBank, "0xc0000000000000000000000000000000000000ff")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("customer by wallet across banks", func(t *testing.T) {
		customer, err := store.GetCustomerByWallet(ctx, testWallet)
		require.NoError(t, err)
		require.NotNil(t, customer)
		assert.Equal(t, testBank, customer.BankAddress)

		customer, err = store.GetCustomerByWallet(ctx, "0xc0000000000000000000000000000000000000ff")
		require.NoError(t, err)
		assert.Nil(t, customer)
	})
}

func testAssets(t *testing.T, store Store) {
	ctx := context.Background()
	seedBankAndCustomers(t, store)

	t.Run("create and get asset", func(t *testing.T) {
		_, err := store.CreateAsset(ctx, buildTestAsset("ASSET-1", testWallet, baseTime(t)))
		require.NoError(t, err)

		asset, err := store.GetAsset(ctx, "ASSET-1")
		require.NoError(t, err)
		require.NotNil(t, asset)
		assert.Equal(t, domain.AssetStatusVerified, asset.Status)
		assert.Equal(t, "TST", asset.MetadataMap()[domain.MetadataKeyTokenSymbol])
		assert.JSONEq(t, `{"tokenSymbol":"TST","tokenizationRatio":"1"}`, string(asset.Metadata))
	})

	t.Run("unknown asset returns nil", func(t *testing.T) {
		asset, err := store.GetAsset(ctx, "ASSET-missing")
		require.NoError(t, err)
		assert.Nil(t, asset)
	})

	t.Run("update merges metadata", func(t *testing.T) {
		asset, err := store.UpdateAsset(ctx, "ASSET-1", UpdateAssetInput{
			Status:   domain.AssetStatusFailed,
			Metadata: map[string]any{domain.MetadataKeyError: "execution reverted"},
		})
		require.NoError(t, err)
		require.NotNil(t, asset)
		assert.Equal(t, domain.AssetStatusFailed, asset.Status)

		stored, err := store.GetAsset(ctx, "ASSET-1")
		require.NoError(t, err)
		metadata := stored.MetadataMap()
		assert.Equal(t, domain.AssetStatusFailed, stored.Status)
		assert.Equal(t, "execution reverted", metadata[domain.MetadataKeyError])
		assert.Equal(t, "TST", metadata[domain.MetadataKeyTokenSymbol])
	})

	t.Run("terminal asset refuses a status change", func(t *testing.T) {
		asset, err := store.UpdateAsset(ctx, "ASSET-1", UpdateAssetInput{Status: domain.AssetStatusTokenized})
		require.ErrorIs(t, err, domain.ErrAssetStatusConflict)
		assert.Nil(t, asset)

		stored, err := store.GetAsset(ctx, "ASSET-1")
		require.NoError(t, err)
		assert.Equal(t, domain.AssetStatusFailed, stored.Status)
	})

	t.Run("expected status must match", func(t *testing.T) {
		asset, err := store.UpdateAsset(ctx, "ASSET-1", UpdateAssetInput{
			Status:         domain.AssetStatusFailed,
			Metadata:       map[string]any{domain.MetadataKeyError: "reconciliation: mint outcome unknown"},
			ExpectedStatus: domain.AssetStatusVerified,
		})
		require.ErrorIs(t, err, domain.ErrAssetStatusConflict)
		assert.Nil(t, asset)

		stored, err := store.GetAsset(ctx, "ASSET-1")
		require.NoError(t, err)
		assert.Equal(t, "execution reverted", stored.MetadataMap()[domain.MetadataKeyError])
	})

	t.Run("complete tokenization refuses a failed asset", func(t *testing.T) {
		_, _, err := store.CompleteTokenization(ctx, CompleteTokenizationInput{
			AssetID: "ASSET-1",
			Mint: CreateTokenMintInput{
				TransactionHash: "0xlate",
				BankAddress:     testBank,
				WalletAddress:   testWallet,
				Amount:          decimal.NewFromInt(150000),
				BlockNumber:     320,
				MintedAt:        baseTime(t).Add(time.Minute),
			},
		})
		require.ErrorIs(t, err, domain.ErrAssetStatusConflict)

		mints, err := store.GetTokenMintsByWallet(ctx, testWallet)
		require.NoError(t, err)
		assert.Empty(t, mints)
	})

	t.Run("update of unknown asset returns nil", func(t *testing.T) {
		asset, err := store.UpdateAsset(ctx, "ASSET-missing", UpdateAssetInput{Status: domain.AssetStatusFailed})
		require.NoError(t, err)
		assert.Nil(t, asset)
	})

	t.Run("complete tokenization writes mint and status together", func(t *testing.T) {
		_, err := store.CreateAsset(ctx, buildTestAsset("ASSET-2", testWallet, baseTime(t).Add(time.Minute)))
		require.NoError(t, err)

		asset, mint, err := store.CompleteTokenization(ctx, CompleteTokenizationInput{
			AssetID: "ASSET-2",
			Mint: CreateTokenMintInput{
				TransactionHash: "0xmint2",
				BankAddress:     testBank,
				WalletAddress:   testWallet,
				Amount:          decimal.NewFromInt(150000),
				BlockNumber:     321,
				MintedAt:        baseTime(t).Add(2 * time.Minute),
			},
			Metadata: map[string]any{
				domain.MetadataKeyTransactionHash: "0xmint2",
				domain.MetadataKeyBlockNumber:     321,
			},
		})
		require.NoError(t, err)
		require.NotNil(t, asset)
		require.NotNil(t, mint)
		assert.Equal(t, domain.AssetStatusTokenized, asset.Status)
		require.NotNil(t, mint.AssetID)
		assert.Equal(t, "ASSET-2", *mint.AssetID)

		mints, err := store.GetTokenMintsByWallet(ctx, testWallet)
		require.NoError(t, err)
		require.Len(t, mints, 1)
		assert.True(t, asset.TokenAmount.Equal(mints[0].Amount))
		assert.Equal(t, "0xmint2", asset.MetadataMap()[domain.MetadataKeyTransactionHash])
	})

	t.Run("assets by wallet newest first", func(t *testing.T) {
		assets, err := store.GetAssetsByWallet(ctx, "0xC000000000000000000000000000000000000001")
		require.NoError(t, err)
		require.Len(t, assets, 2)
		assert.Equal(t, "ASSET-2", assets[0].AssetID)
		assert.Equal(t, "ASSET-1", assets[1].AssetID)
	})

	t.Run("stale assets", func(t *testing.T) {
		_, err := store.CreateAsset(ctx, buildTestAsset("ASSET-3", testWallet2, baseTime(t)))
		require.NoError(t, err)
		_, err = store.CreateAsset(ctx, buildTestAsset("ASSET-4", testWallet2, baseTime(t).Add(time.Hour)))
		require.NoError(t, err)

		assets, err := store.GetStaleAssets(ctx, domain.AssetStatusVerified, baseTime(t).Add(30*time.Minute), 10)
		require.NoError(t, err)
		require.Len(t, assets, 1)
		assert.Equal(t, "ASSET-3", assets[0].AssetID)
	})
}

func testLoansAndTotals(t *testing.T, store Store) {
	ctx := context.Background()
	seedBankAndCustomers(t, store)

	t.Run("empty totals", func(t *testing.T) {
		totals, err := store.GetBankTotals(ctx, testBank)
		require.NoError(t, err)
		assert.Equal(t, int64(2), totals.CustomersCount)
		assert.Equal(t, int64(0), totals.TotalLoans)
		assert.True(t, totals.TotalLoanAmount.IsZero())
		assert.True(t, totals.TotalTokensMinted.IsZero())
	})

	t.Run("loans and mints aggregate", func(t *testing.T) {
		loanID := "7"
		input := buildTestLoan("loan-1", testWallet, 100, 200, baseTime(t))
		input.OnchainLoanID = &loanID
		_, err := store.CreateLoan(ctx, input)
		require.NoError(t, err)
		_, err = store.CreateLoan(ctx, buildTestLoan("loan-2", testWallet2, 300, 400, baseTime(t).Add(time.Hour)))
		require.NoError(t, err)

		_, err = store.CreateTokenMint(ctx, CreateTokenMintInput{
			TransactionHash: "0xdirect",
			BankAddress:     testBank,
			WalletAddress:   testWallet,
			Amount:          decimal.RequireFromString("12.5"),
			BlockNumber:     1,
			MintedAt:        baseTime(t),
		})
		require.NoError(t, err)

		totals, err := store.GetBankTotals(ctx, testBank)
		require.NoError(t, err)
		assert.Equal(t, int64(2), totals.TotalLoans)
		assert.Equal(t, "400", totals.TotalLoanAmount.String())
		assert.Equal(t, "600", totals.TotalCollateral.String())
		assert.Equal(t, "12.5", totals.TotalTokensMinted.String())
	})

	t.Run("loan queries", func(t *testing.T) {
		loans, err := store.GetLoansByBank(ctx, testBank, 0)
		require.NoError(t, err)
		require.Len(t, loans, 2)
		assert.Equal(t, "loan-2", loans[0].ID)
		assert.Equal(t, domain.LoanStatusActive, loans[0].Status)

		loans, err = store.GetLoansByBank(ctx, testBank, 1)
		require.NoError(t, err)
		assert.Len(t, loans, 1)

		loans, err = store.GetLoansByBorrower(ctx, testBank, "0xC000000000000000000000000000000000000001")
		require.NoError(t, err)
		require.Len(t, loans, 1)
		require.NotNil(t, loans[0].OnchainLoanID)
		assert.Equal(t, "7", *loans[0].OnchainLoanID)

		loans, err = store.GetLoansByWallet(ctx, testWallet2)
		require.NoError(t, err)
		require.Len(t, loans, 1)
		assert.Nil(t, loans[0].OnchainLoanID)
	})

	t.Run("mints by bank", func(t *testing.T) {
		mints, err := store.GetTokenMintsByBank(ctx, testBank, 5)
		require.NoError(t, err)
		require.Len(t, mints, 1)
		assert.Nil(t, mints[0].AssetID)
	})

	t.Run("equal timestamps list the later insert first", func(t *testing.T) {
		at := baseTime(t).Add(2 * time.Hour)
		for _, hash := range []string{"0xfff", "0x000"} {
			_, err := store.CreateTokenMint(ctx, CreateTokenMintInput{
				TransactionHash: hash,
				BankAddress:     testBank,
				WalletAddress:   testWallet,
				Amount:          decimal.NewFromInt(1),
				BlockNumber:     2,
				MintedAt:        at,
			})
			require.NoError(t, err)
		}
		for _, id := range []string{"loan-z", "loan-a"} {
			_, err := store.CreateLoan(ctx, buildTestLoan(id, testWallet, 1, 2, at))
			require.NoError(t, err)
		}

		mints, err := store.GetTokenMintsByBank(ctx, testBank, 2)
		require.NoError(t, err)
		require.Len(t, mints, 2)
		assert.Equal(t, "0x000", mints[0].TransactionHash)
		assert.Equal(t, "0xfff", mints[1].TransactionHash)

		loans, err := store.GetLoansByBank(ctx, testBank, 2)
		require.NoError(t, err)
		require.Len(t, loans, 2)
		assert.Equal(t, "loan-a", loans[0].ID)
		assert.Equal(t, "loan-z", loans[1].ID)
	})
}

// RunStoreTests runs the store suite with a fresh store per test
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Banks", testBanks},
		{"Customers", testCustomers},
		{"Assets", testAssets},
		{"LoansAndTotals", testLoansAndTotals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, initDB(t))
		})
	}
}
