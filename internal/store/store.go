package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/store/schema"
)

// CreateBankInput represents the data needed to persist a deployed bank
type CreateBankInput struct {
	BankAddress            string
	BankName               string
	TokenName              string
	TokenSymbol            string
	MaxSupply              decimal.Decimal
	CollateralizationRatio int64
	TokenAddress           string
	LendingAddress         string
	TransactionHash        string
	BlockNumber            uint64
	DeployedAt             time.Time
}

// CustomerInput represents one customer row of an upload
type CustomerInput struct {
	Name          string
	AccountID     string
	WalletAddress string
}

// CreateAssetInput represents the data needed to checkpoint an asset before minting
type CreateAssetInput struct {
	AssetID           string
	BankAddress       string
	CustomerWallet    string
	AssetType         domain.AssetType
	Description       string
	AssetValue        decimal.Decimal
	TokenizationRatio decimal.Decimal
	TokenAmount       decimal.Decimal
	Status            domain.AssetStatus
	Metadata          map[string]any
	CreatedAt         time.Time
}

// UpdateAssetInput changes an asset's status and merges keys into its metadata
// An asset in a terminal status never changes status again.
type UpdateAssetInput struct {
	Status   domain.AssetStatus
	Metadata map[string]any
	// ExpectedStatus, when set, makes the update apply only to an asset currently in that status
	ExpectedStatus domain.AssetStatus
}

// CreateTokenMintInput represents a confirmed mint
type CreateTokenMintInput struct {
	TransactionHash string
	BankAddress     string
	WalletAddress   string
	Amount          decimal.Decimal
	BlockNumber     uint64
	AssetID         *string
	MintedAt        time.Time
}

// CompleteTokenizationInput records the mint and flips the asset to tokenized atomically
type CompleteTokenizationInput struct {
	AssetID  string
	Mint     CreateTokenMintInput
	Metadata map[string]any
}

// CreateLoanInput represents a loan confirmed on chain
type CreateLoanInput struct {
	ID               string
	BankAddress      string
	BorrowerAddress  string
	OnchainLoanID    *string
	CollateralAmount decimal.Decimal
	LoanAmount       decimal.Decimal
	InterestRate     int64
	Duration         int64
	TransactionHash  string
	BlockNumber      uint64
	CreatedAt        time.Time
}

// BankTotals holds aggregate figures for a bank's dashboard
type BankTotals struct {
	CustomersCount    int64
	TotalLoans        int64
	TotalLoanAmount   decimal.Decimal
	TotalCollateral   decimal.Decimal
	TotalTokensMinted decimal.Decimal
}

// Store defines the interface for database operations.
// Lookups return (nil, nil) when the record does not exist; failures are *domain.StorageError.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateBank persists a deployed bank
	CreateBank(ctx context.Context, input CreateBankInput) (*schema.Bank, error)
	// GetBank retrieves a bank by its address
	GetBank(ctx context.Context, bankAddress string) (*schema.Bank, error)
	// ListBanks retrieves all banks, newest first
	ListBanks(ctx context.Context) ([]schema.Bank, error)

	// UpsertCustomers inserts customers for a bank, refreshing name and account ID of existing wallets
	UpsertCustomers(ctx context.Context, bankAddress string, customers []CustomerInput) (int, error)
	// GetCustomer retrieves a customer of a bank by wallet
	GetCustomer(ctx context.Context, bankAddress, walletAddress string) (*schema.Customer, error)
	// GetCustomerByWallet retrieves the earliest registration of a wallet across banks
	GetCustomerByWallet(ctx context.Context, walletAddress string) (*schema.Customer, error)
	// ListCustomers retrieves all customers of a bank, newest first
	ListCustomers(ctx context.Context, bankAddress string) ([]schema.Customer, error)
	// MarkCustomersVerified sets the KYC flag on unverified customers and returns how many changed
	MarkCustomersVerified(ctx context.Context, bankAddress string, walletAddresses []string, verifiedAt time.Time) (int64, error)
	// FreezeCustomer freezes a customer and reports whether the customer exists
	FreezeCustomer(ctx context.Context, bankAddress, walletAddress string) (bool, error)
	// GetRecentVerifiedCustomers retrieves verified customers of a bank by verification time, newest first
	GetRecentVerifiedCustomers(ctx context.Context, bankAddress string, limit int) ([]schema.Customer, error)

	// CreateAsset persists a new asset
	CreateAsset(ctx context.Context, input CreateAssetInput) (*schema.Asset, error)
	// UpdateAsset sets the asset status and merges metadata keys
	UpdateAsset(ctx context.Context, assetID string, input UpdateAssetInput) (*schema.Asset, error)
	// CompleteTokenization inserts the mint record and marks the asset tokenized in one transaction
	CompleteTokenization(ctx context.Context, input CompleteTokenizationInput) (*schema.Asset, *schema.TokenMint, error)
	// GetAsset retrieves an asset by ID
	GetAsset(ctx context.Context, assetID string) (*schema.Asset, error)
	// GetAssetsByWallet retrieves a wallet's assets, newest first
	GetAssetsByWallet(ctx context.Context, walletAddress string) ([]schema.Asset, error)
	// GetStaleAssets retrieves assets stuck in a status since before olderThan, oldest first
	GetStaleAssets(ctx context.Context, status domain.AssetStatus, olderThan time.Time, limit int) ([]schema.Asset, error)

	// CreateTokenMint persists a direct mint
	CreateTokenMint(ctx context.Context, input CreateTokenMintInput) (*schema.TokenMint, error)
	// GetTokenMintsByBank retrieves a bank's mints, newest first. limit <= 0 means no limit.
	GetTokenMintsByBank(ctx context.Context, bankAddress string, limit int) ([]schema.TokenMint, error)
	// GetTokenMintsByWallet retrieves a wallet's mints, newest first
	GetTokenMintsByWallet(ctx context.Context, walletAddress string) ([]schema.TokenMint, error)

	// CreateLoan persists a loan
	CreateLoan(ctx context.Context, input CreateLoanInput) (*schema.Loan, error)
	// GetLoansByBank retrieves a bank's loans, newest first. limit <= 0 means no limit.
	GetLoansByBank(ctx context.Context, bankAddress string, limit int) ([]schema.Loan, error)
	// GetLoansByBorrower retrieves a borrower's loans at a bank, newest first
	GetLoansByBorrower(ctx context.Context, bankAddress, borrowerAddress string) ([]schema.Loan, error)
	// GetLoansByWallet retrieves a borrower's loans across banks, newest first
	GetLoansByWallet(ctx context.Context, walletAddress string) ([]schema.Loan, error)

	// GetBankTotals aggregates customer, loan and mint figures for a bank
	GetBankTotals(ctx context.Context, bankAddress string) (*BankTotals, error)
}
