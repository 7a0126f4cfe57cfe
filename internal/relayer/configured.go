package relayer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/logger"
)

const (
	defaultConfirmationTimeout = 2 * time.Minute
	defaultSubmitTimeout       = 5 * time.Minute
	defaultQueueSize           = 64
	defaultReceiptPollInterval = 2 * time.Second
)

type relayer struct {
	cfg     Config
	client  adapter.EthClient
	clock   adapter.Clock
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
	signer  types.Signer
	// queue has a single worker so the signer's nonces are used in order
	queue pond.Pool
}

func newRelayer(ctx context.Context, cfg Config, client adapter.EthClient, key *ecdsa.PrivateKey, clock adapter.Clock) (*relayer, error) {
	if cfg.ConfirmationTimeout <= 0 {
		cfg.ConfirmationTimeout = defaultConfirmationTimeout
	}
	if cfg.SubmitTimeout <= 0 {
		cfg.SubmitTimeout = defaultSubmitTimeout
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.ReceiptPollInterval <= 0 {
		cfg.ReceiptPollInterval = defaultReceiptPollInterval
	}

	var chainID *big.Int
	if cfg.ChainID > 0 {
		chainID = big.NewInt(cfg.ChainID)
	} else {
		id, err := client.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get chain ID: %w", err)
		}
		chainID = id
	}

	return &relayer{
		cfg:     cfg,
		client:  client,
		clock:   clock,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		signer:  types.LatestSignerForChainID(chainID),
		queue:   pond.NewPool(1, pond.WithQueueSize(cfg.QueueSize), pond.WithNonBlocking(true)),
	}, nil
}

func (r *relayer) Configured() bool {
	return true
}

func (r *relayer) Address() string {
	return r.from.Hex()
}

func (r *relayer) Balance(ctx context.Context) (*big.Int, error) {
	balance, err := r.client.BalanceAt(ctx, r.from, nil)
	if err != nil {
		return nil, domain.NewChainError("", fmt.Errorf("failed to get relayer balance: %w", err))
	}
	return balance, nil
}

func (r *relayer) NetworkInfo(ctx context.Context) (*NetworkInfo, error) {
	info, err := FetchNetworkInfo(ctx, r.client)
	if err != nil {
		return nil, domain.NewChainError("", err)
	}
	return info, nil
}

// DeployBank deploys a bank through the factory. The addresses come from the BankDeployed event,
// or from getBankDeployment when the event is missing from the receipt.
func (r *relayer) DeployBank(ctx context.Context, req DeployBankRequest) (*DeployBankResult, error) {
	if !isSetAddress(r.cfg.FactoryAddress) {
		return nil, domain.NewChainError("", errors.New("factory address not configured"))
	}
	factory := common.HexToAddress(r.cfg.FactoryAddress)
	bank := common.HexToAddress(req.BankAddress)

	data, err := factoryABI.Pack("deployBank",
		bank,
		req.BankName,
		req.TokenName,
		req.TokenSymbol,
		ToWei(req.MaxSupply),
		big.NewInt(req.CollateralizationRatio),
	)
	if err != nil {
		return nil, domain.NewChainError("", fmt.Errorf("failed to pack deployBank: %w", err))
	}

	receipt, err := r.transact(ctx, "deploy_bank", factory, data)
	if err != nil {
		return nil, err
	}

	result := &DeployBankResult{TxResult: txResultOf(receipt)}

	token, lending, ok := findBankDeployed(receipt.Logs, factory, bank)
	if !ok {
		logger.WarnCtx(ctx, "BankDeployed event not found, querying factory",
			zap.String("txHash", result.TxHash),
			zap.String("bank", bank.Hex()))

		token, lending, err = r.bankDeployment(context.WithoutCancel(ctx), factory, bank)
		if err != nil {
			return nil, domain.NewChainError("", err)
		}
	}

	result.TokenAddress = domain.NormalizeAddress(token.Hex())
	result.LendingAddress = domain.NormalizeAddress(lending.Hex())
	return result, nil
}

func (r *relayer) bankDeployment(ctx context.Context, factory, bank common.Address) (common.Address, common.Address, error) {
	values, err := r.call(ctx, "getBankDeployment", factory, factoryCaller, bank)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	if len(values) < 2 {
		return common.Address{}, common.Address{}, errors.New("unexpected getBankDeployment result")
	}
	token, tokenOK := values[0].(common.Address)
	lending, lendingOK := values[1].(common.Address)
	if !tokenOK || !lendingOK {
		return common.Address{}, common.Address{}, errors.New("unexpected getBankDeployment result")
	}
	return token, lending, nil
}

// AuthorizeRelayer registers the relayer address as a verifier on the token
func (r *relayer) AuthorizeRelayer(ctx context.Context, tokenAddress string) (*TxResult, error) {
	data, err := tokenABI.Pack("addAuthorizedVerifier", r.from)
	if err != nil {
		return nil, domain.NewChainError("", fmt.Errorf("failed to pack addAuthorizedVerifier: %w", err))
	}

	receipt, err := r.transact(ctx, "authorize_relayer", common.HexToAddress(tokenAddress), data)
	if err != nil {
		return nil, err
	}

	result := txResultOf(receipt)
	return &result, nil
}

// VerifyCustomers whitelists all wallets in a single batchVerifyAddresses transaction
func (r *relayer) VerifyCustomers(ctx context.Context, tokenAddress string, wallets []string) (*VerifyResult, error) {
	accounts := make([]common.Address, 0, len(wallets))
	for _, w := range wallets {
		accounts = append(accounts, common.HexToAddress(w))
	}

	data, err := tokenABI.Pack("batchVerifyAddresses", accounts)
	if err != nil {
		return nil, domain.NewChainError("", fmt.Errorf("failed to pack batchVerifyAddresses: %w", err))
	}

	receipt, err := r.transact(ctx, "verify_customers", common.HexToAddress(tokenAddress), data)
	if err != nil {
		return nil, err
	}

	return &VerifyResult{
		TxResult:      txResultOf(receipt),
		VerifiedCount: len(accounts),
	}, nil
}

// MintToken mints amount whole tokens to a wallet
func (r *relayer) MintToken(ctx context.Context, tokenAddress, to string, amount decimal.Decimal) (*TxResult, error) {
	data, err := tokenABI.Pack("mint", common.HexToAddress(to), ToWei(amount))
	if err != nil {
		return nil, domain.NewChainError("", fmt.Errorf("failed to pack mint: %w", err))
	}

	receipt, err := r.transact(ctx, "mint", common.HexToAddress(tokenAddress), data)
	if err != nil {
		return nil, err
	}

	result := txResultOf(receipt)
	return &result, nil
}

// CreateLoan opens a loan. A receipt without LoanCreated still succeeds with a nil LoanID.
func (r *relayer) CreateLoan(ctx context.Context, req CreateLoanRequest) (*LoanResult, error) {
	lending := common.HexToAddress(req.LendingAddress)

	data, err := lendingABI.Pack("createLoan",
		common.HexToAddress(req.BorrowerAddress),
		ToWei(req.CollateralAmount),
		ToWei(req.LoanAmount),
		big.NewInt(req.InterestRate),
		big.NewInt(req.Duration),
	)
	if err != nil {
		return nil, domain.NewChainError("", fmt.Errorf("failed to pack createLoan: %w", err))
	}

	receipt, err := r.transact(ctx, "create_loan", lending, data)
	if err != nil {
		return nil, err
	}

	result := &LoanResult{TxResult: txResultOf(receipt)}
	if id, ok := findLoanID(receipt.Logs, lending); ok {
		result.LoanID = id
	} else {
		logger.WarnCtx(ctx, "LoanCreated event not found", zap.String("txHash", result.TxHash))
	}
	return result, nil
}

// TokenBalance reads balanceOf, decimals and symbol from the token
func (r *relayer) TokenBalance(ctx context.Context, tokenAddress, wallet string) (*TokenBalance, error) {
	token := common.HexToAddress(tokenAddress)

	values, err := r.call(ctx, "balanceOf", token, tokenCaller, common.HexToAddress(wallet))
	if err != nil {
		return nil, domain.NewChainError("", err)
	}
	raw, ok := values[0].(*big.Int)
	if !ok {
		return nil, domain.NewChainError("", errors.New("unexpected balanceOf result"))
	}

	values, err = r.call(ctx, "decimals", token, tokenCaller)
	if err != nil {
		return nil, domain.NewChainError("", err)
	}
	decimals, ok := values[0].(uint8)
	if !ok {
		return nil, domain.NewChainError("", errors.New("unexpected decimals result"))
	}

	values, err = r.call(ctx, "symbol", token, tokenCaller)
	if err != nil {
		return nil, domain.NewChainError("", err)
	}
	symbol, _ := values[0].(string)

	return &TokenBalance{
		Balance:  FromUnits(raw, decimals),
		Raw:      raw,
		Decimals: decimals,
		Symbol:   symbol,
	}, nil
}

// FactoryOwner reads owner() from the factory
func (r *relayer) FactoryOwner(ctx context.Context) (string, error) {
	if !isSetAddress(r.cfg.FactoryAddress) {
		return "", domain.NewChainError("", errors.New("factory address not configured"))
	}

	values, err := r.call(ctx, "owner", common.HexToAddress(r.cfg.FactoryAddress), factoryCaller)
	if err != nil {
		return "", domain.NewChainError("", err)
	}
	owner, ok := values[0].(common.Address)
	if !ok {
		return "", domain.NewChainError("", errors.New("unexpected owner result"))
	}
	return owner.Hex(), nil
}

// TransferFactoryOwnership calls transferOwnership on the factory
func (r *relayer) TransferFactoryOwnership(ctx context.Context, newOwner string) (*TxResult, error) {
	if !isSetAddress(r.cfg.FactoryAddress) {
		return nil, domain.NewChainError("", errors.New("factory address not configured"))
	}
	if !isSetAddress(newOwner) {
		return nil, domain.NewChainError("", fmt.Errorf("invalid new owner address: %s", newOwner))
	}

	data, err := factoryABI.Pack("transferOwnership", common.HexToAddress(newOwner))
	if err != nil {
		return nil, domain.NewChainError("", fmt.Errorf("failed to pack transferOwnership: %w", err))
	}

	receipt, err := r.transact(ctx, "transfer_ownership", common.HexToAddress(r.cfg.FactoryAddress), data)
	if err != nil {
		return nil, err
	}

	result := txResultOf(receipt)
	return &result, nil
}

func (r *relayer) Close() {
	r.queue.StopAndWait()
	r.client.Close()
}

type contractKind int

const (
	factoryCaller contractKind = iota
	tokenCaller
)

// call runs a read-only contract method and returns its unpacked outputs
func (r *relayer) call(ctx context.Context, method string, contract common.Address, kind contractKind, args ...interface{}) ([]interface{}, error) {
	parsed := tokenABI
	if kind == factoryCaller {
		parsed = factoryABI
	}

	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	result, err := r.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	values, err := parsed.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("empty %s result", method)
	}
	return values, nil
}

func isSetAddress(address string) bool {
	return domain.IsHexAddress(address) && !domain.IsZeroAddress(address)
}
