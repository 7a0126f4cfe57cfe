package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finara-labs/finara-backend/internal/domain"
)

// Response is the success envelope returned by every route
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the health check payload
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
}

// IndexResponse lists the main endpoints
type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// BankResponse represents a deployed bank
type BankResponse struct {
	BankAddress            string          `json:"bankAddress"`
	BankName               string          `json:"bankName"`
	TokenName              string          `json:"tokenName"`
	TokenSymbol            string          `json:"tokenSymbol"`
	MaxSupply              decimal.Decimal `json:"maxSupply"`
	CollateralizationRatio int64           `json:"collateralizationRatio"`
	TokenAddress           string          `json:"tokenAddress"`
	LendingAddress         string          `json:"lendingAddress"`
	TransactionHash        string          `json:"transactionHash"`
	BlockNumber            uint64          `json:"blockNumber"`
	DeployedAt             time.Time       `json:"deployedAt"`
	// TotalCustomers is only set on single bank lookups
	TotalCustomers *int64 `json:"totalCustomers,omitempty"`
}

// CustomerResponse represents a bank customer
type CustomerResponse struct {
	ID            int64      `json:"id"`
	BankAddress   string     `json:"bankAddress"`
	WalletAddress string     `json:"walletAddress"`
	Name          string     `json:"name"`
	AccountID     string     `json:"accountId"`
	KYCVerified   bool       `json:"kycVerified"`
	VerifiedAt    *time.Time `json:"verifiedAt"`
	Frozen        bool       `json:"frozen"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// AssetResponse represents a tokenized (or attempted) asset
type AssetResponse struct {
	AssetID           string             `json:"assetId"`
	BankAddress       string             `json:"bankAddress"`
	CustomerWallet    string             `json:"customerWallet"`
	AssetType         domain.AssetType   `json:"assetType"`
	AssetDescription  string             `json:"assetDescription"`
	AssetValue        decimal.Decimal    `json:"assetValue"`
	TokenizationRatio decimal.Decimal    `json:"tokenizationRatio"`
	TokenAmount       decimal.Decimal    `json:"tokenAmount"`
	Status            domain.AssetStatus `json:"status"`
	Metadata          map[string]any     `json:"metadata"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// TokenMintResponse represents a confirmed mint
type TokenMintResponse struct {
	TransactionHash string          `json:"transactionHash"`
	BankAddress     string          `json:"bankAddress"`
	WalletAddress   string          `json:"walletAddress"`
	Amount          decimal.Decimal `json:"amount"`
	BlockNumber     uint64          `json:"blockNumber"`
	AssetID         *string         `json:"assetId"`
	MintedAt        time.Time       `json:"mintedAt"`
}

// LoanResponse represents a loan
type LoanResponse struct {
	ID               string            `json:"id"`
	BankAddress      string            `json:"bankAddress"`
	BorrowerAddress  string            `json:"borrowerAddress"`
	LoanID           *string           `json:"loanId"`
	CollateralAmount decimal.Decimal   `json:"collateralAmount"`
	LoanAmount       decimal.Decimal   `json:"loanAmount"`
	InterestRate     int64             `json:"interestRate"`
	Duration         int64             `json:"duration"`
	Status           domain.LoanStatus `json:"status"`
	TransactionHash  string            `json:"transactionHash"`
	BlockNumber      uint64            `json:"blockNumber"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// DeployBankResponse represents the outcome of a bank deployment
type DeployBankResponse struct {
	BankAddress     string `json:"bankAddress"`
	TokenAddress    string `json:"tokenAddress"`
	LendingAddress  string `json:"lendingAddress"`
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
}

// UploadCustomersResponse represents the outcome of a customer upload.
// A failed on-chain verification is reported in VerificationError, not as a request failure.
type UploadCustomersResponse struct {
	CustomersAdded    int     `json:"customersAdded"`
	VerifiedCount     int64   `json:"verifiedCount"`
	TransactionHash   *string `json:"transactionHash,omitempty"`
	BlockNumber       *uint64 `json:"blockNumber,omitempty"`
	VerificationError string  `json:"verificationError,omitempty"`
}

// MintTokenResponse represents a direct mint
type MintTokenResponse struct {
	TransactionHash string          `json:"transactionHash"`
	BlockNumber     uint64          `json:"blockNumber"`
	Amount          decimal.Decimal `json:"amount"`
	WalletAddress   string          `json:"walletAddress"`
	TokenAddress    string          `json:"tokenAddress"`
}

// TokenBalanceResponse represents an on-chain token balance
type TokenBalanceResponse struct {
	Balance       string `json:"balance"`
	BalanceRaw    string `json:"balanceRaw"`
	Decimals      uint8  `json:"decimals"`
	Symbol        string `json:"symbol"`
	TokenAddress  string `json:"tokenAddress"`
	WalletAddress string `json:"walletAddress"`
}

// LendResponse represents a created loan
type LendResponse struct {
	ID              string  `json:"id"`
	LoanID          *string `json:"loanId"`
	TransactionHash string  `json:"transactionHash"`
	BlockNumber     uint64  `json:"blockNumber"`
}

// ViewInWallet tells the customer how to display the bank token
type ViewInWallet struct {
	Instructions string `json:"instructions"`
	TokenAddress string `json:"tokenAddress"`
	Symbol       string `json:"symbol"`
	Decimals     int    `json:"decimals"`
}

// TokenizeResponse represents a completed tokenization
type TokenizeResponse struct {
	AssetID         string           `json:"assetId"`
	AssetType       domain.AssetType `json:"assetType"`
	AssetValue      decimal.Decimal  `json:"assetValue"`
	TokensIssued    decimal.Decimal  `json:"tokensIssued"`
	TokenSymbol     string           `json:"tokenSymbol"`
	TokenAddress    string           `json:"tokenAddress"`
	CustomerWallet  string           `json:"customerWallet"`
	TransactionHash string           `json:"transactionHash"`
	BlockNumber     uint64           `json:"blockNumber"`
	ViewInWallet    ViewInWallet     `json:"viewInWallet"`
}

// AssetSummaryResponse totals a customer's assets
type AssetSummaryResponse struct {
	TotalAssets       int                `json:"totalAssets"`
	TotalValue        decimal.Decimal    `json:"totalValue"`
	TotalTokensIssued decimal.Decimal    `json:"totalTokensIssued"`
	AssetTypes        []domain.AssetType `json:"assetTypes"`
}

// CustomerAssetsResponse represents a customer's assets
type CustomerAssetsResponse struct {
	Assets  []AssetResponse      `json:"assets"`
	Summary AssetSummaryResponse `json:"summary"`
}

// BankSummaryResponse is the bank section of the dashboard
type BankSummaryResponse struct {
	Name           string    `json:"name"`
	TokenAddress   string    `json:"tokenAddress"`
	LendingAddress string    `json:"lendingAddress"`
	TokenSymbol    string    `json:"tokenSymbol"`
	DeployedAt     time.Time `json:"deployedAt"`
}

// BankStatsResponse holds the dashboard totals
type BankStatsResponse struct {
	CustomersCount            int64           `json:"customersCount"`
	TotalLoans                int64           `json:"totalLoans"`
	TotalLoanAmount           decimal.Decimal `json:"totalLoanAmount"`
	TotalCollateral           decimal.Decimal `json:"totalCollateral"`
	TotalTokensMinted         decimal.Decimal `json:"totalTokensMinted"`
	AvgCollateralizationRatio string          `json:"avgCollateralizationRatio"`
}

// RecentActivityResponse holds the most recent records of each kind
type RecentActivityResponse struct {
	Mints     []TokenMintResponse `json:"mints"`
	Loans     []LoanResponse      `json:"loans"`
	Customers []CustomerResponse  `json:"customers"`
}

// BankAnalyticsResponse represents a bank dashboard
type BankAnalyticsResponse struct {
	Bank           BankSummaryResponse    `json:"bank"`
	Stats          BankStatsResponse      `json:"stats"`
	RecentActivity RecentActivityResponse `json:"recentActivity"`
}

// ActivityItemResponse represents one activity feed entry
type ActivityItemResponse struct {
	Type       domain.ActivityType `json:"type"`
	Event      string              `json:"event"`
	Customer   string              `json:"customer"`
	Wallet     string              `json:"wallet"`
	Amount     *decimal.Decimal    `json:"amount,omitempty"`
	Collateral *decimal.Decimal    `json:"collateral,omitempty"`
	Timestamp  time.Time           `json:"timestamp"`
	TxHash     string              `json:"txHash,omitempty"`
}

// BankBindingsResponse holds the contract addresses of a customer's bank
type BankBindingsResponse struct {
	TokenAddress   string `json:"tokenAddress"`
	TokenSymbol    string `json:"tokenSymbol"`
	LendingAddress string `json:"lendingAddress"`
}

// ProfileStatsResponse totals a customer's loans and mints
type ProfileStatsResponse struct {
	TotalLoans    int             `json:"totalLoans"`
	TotalBorrowed decimal.Decimal `json:"totalBorrowed"`
	TotalMinted   decimal.Decimal `json:"totalMinted"`
}

// CustomerProfileResponse represents a customer with balance, loans and mints
type CustomerProfileResponse struct {
	Customer     CustomerResponse      `json:"customer"`
	Bank         *BankBindingsResponse `json:"bank"`
	TokenBalance string                `json:"tokenBalance"`
	Loans        []LoanResponse        `json:"loans"`
	Mints        []TokenMintResponse   `json:"mints"`
	Stats        ProfileStatsResponse  `json:"stats"`
}

// NetworkResponse describes the chain the relayer is connected to
type NetworkResponse struct {
	ChainID     string `json:"chainId"`
	BlockNumber uint64 `json:"blockNumber"`
	BaseFee     string `json:"baseFee,omitempty"`
	GasTipCap   string `json:"gasTipCap,omitempty"`
}

// RelayerStatusResponse describes the relayer wallet
type RelayerStatusResponse struct {
	Configured bool             `json:"configured"`
	Address    string           `json:"address"`
	Balance    string           `json:"balance"`
	BalanceWei string           `json:"balanceWei"`
	Network    *NetworkResponse `json:"network,omitempty"`
	Error      string           `json:"error,omitempty"`
}
