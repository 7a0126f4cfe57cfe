package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/store/schema"
)

// noopStore backs the API when no database is configured.
// Reads return empty results and writes are accepted and discarded.
type noopStore struct{}

// NewNoopStore creates a store that persists nothing
func NewNoopStore() Store {
	return &noopStore{}
}

func (s *noopStore) CreateBank(_ context.Context, input CreateBankInput) (*schema.Bank, error) {
	return &schema.Bank{
		BankAddress:            domain.NormalizeAddress(input.BankAddress),
		BankName:               input.BankName,
		TokenName:              input.TokenName,
		TokenSymbol:            input.TokenSymbol,
		MaxSupply:              input.MaxSupply,
		CollateralizationRatio: input.CollateralizationRatio,
		TokenAddress:           domain.NormalizeAddress(input.TokenAddress),
		LendingAddress:         domain.NormalizeAddress(input.LendingAddress),
		TransactionHash:        input.TransactionHash,
		BlockNumber:            input.BlockNumber,
		DeployedAt:             input.DeployedAt,
	}, nil
}

func (s *noopStore) GetBank(context.Context, string) (*schema.Bank, error) {
	return nil, nil
}

func (s *noopStore) ListBanks(context.Context) ([]schema.Bank, error) {
	return []schema.Bank{}, nil
}

func (s *noopStore) UpsertCustomers(_ context.Context, _ string, customers []CustomerInput) (int, error) {
	return len(customers), nil
}

func (s *noopStore) GetCustomer(context.Context, string, string) (*schema.Customer, error) {
	return nil, nil
}

func (s *noopStore) GetCustomerByWallet(context.Context, string) (*schema.Customer, error) {
	return nil, nil
}

func (s *noopStore) ListCustomers(context.Context, string) ([]schema.Customer, error) {
	return []schema.Customer{}, nil
}

func (s *noopStore) MarkCustomersVerified(_ context.Context, _ string, walletAddresses []string, _ time.Time) (int64, error) {
	return int64(len(walletAddresses)), nil
}

func (s *noopStore) FreezeCustomer(context.Context, string, string) (bool, error) {
	return false, nil
}

func (s *noopStore) GetRecentVerifiedCustomers(context.Context, string, int) ([]schema.Customer, error) {
	return []schema.Customer{}, nil
}

func (s *noopStore) CreateAsset(_ context.Context, input CreateAssetInput) (*schema.Asset, error) {
	metadata, err := marshalMetadata(input.Metadata)
	if err != nil {
		return nil, domain.NewStorageError("failed to create asset", err)
	}
	return &schema.Asset{
		AssetID:           input.AssetID,
		BankAddress:       domain.NormalizeAddress(input.BankAddress),
		CustomerWallet:    domain.NormalizeAddress(input.CustomerWallet),
		AssetType:         input.AssetType,
		Description:       input.Description,
		AssetValue:        input.AssetValue,
		TokenizationRatio: input.TokenizationRatio,
		TokenAmount:       input.TokenAmount,
		Status:            input.Status,
		Metadata:          metadata,
		CreatedAt:         input.CreatedAt,
		UpdatedAt:         input.CreatedAt,
	}, nil
}

func (s *noopStore) UpdateAsset(context.Context, string, UpdateAssetInput) (*schema.Asset, error) {
	return nil, nil
}

func (s *noopStore) CompleteTokenization(_ context.Context, input CompleteTokenizationInput) (*schema.Asset, *schema.TokenMint, error) {
	assetID := input.AssetID
	return nil, &schema.TokenMint{
		TransactionHash: input.Mint.TransactionHash,
		BankAddress:     domain.NormalizeAddress(input.Mint.BankAddress),
		WalletAddress:   domain.NormalizeAddress(input.Mint.WalletAddress),
		Amount:          input.Mint.Amount,
		BlockNumber:     input.Mint.BlockNumber,
		AssetID:         &assetID,
		MintedAt:        input.Mint.MintedAt,
	}, nil
}

func (s *noopStore) GetAsset(context.Context, string) (*schema.Asset, error) {
	return nil, nil
}

func (s *noopStore) GetAssetsByWallet(context.Context, string) ([]schema.Asset, error) {
	return []schema.Asset{}, nil
}

func (s *noopStore) GetStaleAssets(context.Context, domain.AssetStatus, time.Time, int) ([]schema.Asset, error) {
	return []schema.Asset{}, nil
}

func (s *noopStore) CreateTokenMint(_ context.Context, input CreateTokenMintInput) (*schema.TokenMint, error) {
	return &schema.TokenMint{
		TransactionHash: input.TransactionHash,
		BankAddress:     domain.NormalizeAddress(input.BankAddress),
		WalletAddress:   domain.NormalizeAddress(input.WalletAddress),
		Amount:          input.Amount,
		BlockNumber:     input.BlockNumber,
		AssetID:         input.AssetID,
		MintedAt:        input.MintedAt,
	}, nil
}

func (s *noopStore) GetTokenMintsByBank(context.Context, string, int) ([]schema.TokenMint, error) {
	return []schema.TokenMint{}, nil
}

func (s *noopStore) GetTokenMintsByWallet(context.Context, string) ([]schema.TokenMint, error) {
	return []schema.TokenMint{}, nil
}

func (s *noopStore) CreateLoan(_ context.Context, input CreateLoanInput) (*schema.Loan, error) {
	return &schema.Loan{
		ID:               input.ID,
		BankAddress:      domain.NormalizeAddress(input.BankAddress),
		BorrowerAddress:  domain.NormalizeAddress(input.BorrowerAddress),
		OnchainLoanID:    input.OnchainLoanID,
		CollateralAmount: input.CollateralAmount,
		LoanAmount:       input.LoanAmount,
		InterestRate:     input.InterestRate,
		Duration:         input.Duration,
		Status:           domain.LoanStatusActive,
		TransactionHash:  input.TransactionHash,
		BlockNumber:      input.BlockNumber,
		CreatedAt:        input.CreatedAt,
	}, nil
}

func (s *noopStore) GetLoansByBank(context.Context, string, int) ([]schema.Loan, error) {
	return []schema.Loan{}, nil
}

func (s *noopStore) GetLoansByBorrower(context.Context, string, string) ([]schema.Loan, error) {
	return []schema.Loan{}, nil
}

func (s *noopStore) GetLoansByWallet(context.Context, string) ([]schema.Loan, error) {
	return []schema.Loan{}, nil
}

func (s *noopStore) GetBankTotals(context.Context, string) (*BankTotals, error) {
	return &BankTotals{
		TotalLoanAmount:   decimal.Zero,
		TotalCollateral:   decimal.Zero,
		TotalTokensMinted: decimal.Zero,
	}, nil
}
