package relayer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/logger"
)

// Config holds the relayer configuration
type Config struct {
	RPCURL              string
	ChainID             int64
	PrivateKey          string
	FactoryAddress      string
	ConfirmationTimeout time.Duration
	// SubmitTimeout bounds the time from a request until its transaction is broadcast, queue wait included
	SubmitTimeout       time.Duration
	QueueSize           int
	DialTimeout         time.Duration
	ReceiptPollInterval time.Duration
}

// DeployBankRequest holds the factory deployBank arguments
type DeployBankRequest struct {
	BankAddress            string
	BankName               string
	TokenName              string
	TokenSymbol            string
	MaxSupply              decimal.Decimal
	CollateralizationRatio int64
}

// CreateLoanRequest holds the lending createLoan arguments
type CreateLoanRequest struct {
	LendingAddress   string
	BorrowerAddress  string
	CollateralAmount decimal.Decimal
	LoanAmount       decimal.Decimal
	// InterestRate is in basis points
	InterestRate int64
	// Duration is in seconds
	Duration int64
}

// TxResult identifies a confirmed transaction
type TxResult struct {
	TxHash      string
	BlockNumber uint64
}

// DeployBankResult is a confirmed bank deployment
type DeployBankResult struct {
	TxResult
	TokenAddress   string
	LendingAddress string
}

// VerifyResult is a confirmed batch verification
type VerifyResult struct {
	TxResult
	VerifiedCount int
}

// LoanResult is a confirmed loan. LoanID is nil when the LoanCreated event was not found.
type LoanResult struct {
	TxResult
	LoanID *string
}

// TokenBalance is a wallet's balance of a bank token
type TokenBalance struct {
	Balance  decimal.Decimal
	Raw      *big.Int
	Decimals uint8
	Symbol   string
}

// NetworkInfo describes the connected chain
type NetworkInfo struct {
	ChainID     *big.Int
	BlockNumber uint64
	BaseFee     *big.Int
	GasTipCap   *big.Int
}

// Relayer submits transactions on behalf of banks and customers with a single signing key.
// Mutating operations are serialized in submission order; read-only calls are not queued.
// Every failure is a *domain.ChainError.
//
//go:generate mockgen -source=relayer.go -destination=../mocks/relayer.go -package=mocks -mock_names=Relayer=MockRelayer
type Relayer interface {
	// Configured reports whether the relayer can sign transactions
	Configured() bool
	// Address returns the relayer's signing address
	Address() string
	// Balance returns the relayer's native balance in wei
	Balance(ctx context.Context) (*big.Int, error)
	// NetworkInfo returns chain ID, latest block and fee data
	NetworkInfo(ctx context.Context) (*NetworkInfo, error)

	// DeployBank deploys a bank token and lending pool through the factory
	DeployBank(ctx context.Context, req DeployBankRequest) (*DeployBankResult, error)
	// AuthorizeRelayer registers the relayer as a KYC verifier on a token
	AuthorizeRelayer(ctx context.Context, tokenAddress string) (*TxResult, error)
	// VerifyCustomers whitelists wallets on a token in one transaction
	VerifyCustomers(ctx context.Context, tokenAddress string, wallets []string) (*VerifyResult, error)
	// MintToken mints whole-token amount to a wallet
	MintToken(ctx context.Context, tokenAddress, to string, amount decimal.Decimal) (*TxResult, error)
	// CreateLoan opens a loan on a lending pool
	CreateLoan(ctx context.Context, req CreateLoanRequest) (*LoanResult, error)

	// TokenBalance reads a wallet's balance, decimals and symbol from a token
	TokenBalance(ctx context.Context, tokenAddress, wallet string) (*TokenBalance, error)

	// FactoryOwner reads the factory's owner
	FactoryOwner(ctx context.Context) (string, error)
	// TransferFactoryOwnership hands the factory to newOwner; the signing key must own it
	TransferFactoryOwnership(ctx context.Context, newOwner string) (*TxResult, error)

	// Close stops the transaction queue and closes the RPC connection
	Close()
}

// HasSigningKey reports whether key is set to something other than the zero placeholder
func HasSigningKey(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && !strings.EqualFold(key, domain.ETHEREUM_ZERO_KEY)
}

// ParsePrivateKey parses a hex private key with or without the 0x prefix
func ParsePrivateKey(key string) (*ecdsa.PrivateKey, error) {
	pk, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(key), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid relayer private key: %w", err)
	}
	return pk, nil
}

// New dials the RPC endpoint and returns a configured relayer.
// It falls back to an unconfigured relayer when no signing key is set or the endpoint is unreachable.
// A malformed key is an error.
func New(ctx context.Context, cfg Config, dialer adapter.EthClientDialer, clock adapter.Clock) (Relayer, error) {
	if !HasSigningKey(cfg.PrivateKey) {
		logger.Warn("Relayer private key not configured, running in demo mode")
		return NewUnconfigured(), nil
	}

	key, err := ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	dialCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}

	client, err := dialer.Dial(dialCtx, cfg.RPCURL)
	if err != nil {
		logger.Error(fmt.Errorf("failed to dial RPC: %w", err),
			zap.String("rpcURL", cfg.RPCURL),
			zap.String("message", "Relayer running in demo mode"))
		return NewUnconfigured(), nil
	}

	r, err := newRelayer(dialCtx, cfg, client, key, clock)
	if err != nil {
		client.Close()
		logger.Error(err, zap.String("message", "Relayer running in demo mode"))
		return NewUnconfigured(), nil
	}

	logger.Info("Relayer initialized",
		zap.String("address", r.Address()),
		zap.String("chainID", r.chainID.String()),
		zap.String("factory", cfg.FactoryAddress),
	)

	return r, nil
}

// NewWithClient creates a configured relayer on an existing client
func NewWithClient(ctx context.Context, cfg Config, client adapter.EthClient, clock adapter.Clock) (Relayer, error) {
	key, err := ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}
	return newRelayer(ctx, cfg, client, key, clock)
}

// FetchNetworkInfo reads chain ID, latest header and tip cap from client
func FetchNetworkInfo(ctx context.Context, client adapter.EthClient) (*NetworkInfo, error) {
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	head, err := client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}

	tip, err := client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas tip cap: %w", err)
	}

	return &NetworkInfo{
		ChainID:     chainID,
		BlockNumber: head.Number.Uint64(),
		BaseFee:     head.BaseFee,
		GasTipCap:   tip,
	}, nil
}
