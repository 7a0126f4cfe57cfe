package executor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/analytics"
	"github.com/finara-labs/finara-backend/internal/api/shared/constants"
	"github.com/finara-labs/finara-backend/internal/api/shared/dto"
	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/messaging"
	"github.com/finara-labs/finara-backend/internal/relayer"
	"github.com/finara-labs/finara-backend/internal/store"
	"github.com/finara-labs/finara-backend/internal/store/schema"
	"github.com/finara-labs/finara-backend/internal/tokenization"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// DeployBank deploys the bank's token and lending contracts and records the bank
	DeployBank(ctx context.Context, req *dto.DeployBankRequest) (*dto.DeployBankResponse, error)
	// GetBank retrieves a bank with its customer count
	GetBank(ctx context.Context, bankAddress string) (*dto.BankResponse, error)
	// ListBanks retrieves all banks
	ListBanks(ctx context.Context) ([]dto.BankResponse, error)

	// UploadCustomers registers customers and whitelists their wallets on the bank token
	UploadCustomers(ctx context.Context, req *dto.UploadCustomersRequest) (*dto.UploadCustomersResponse, error)
	// ListCustomers retrieves a bank's customers
	ListCustomers(ctx context.Context, bankAddress string) ([]dto.CustomerResponse, error)
	// FreezeCustomer blocks further mints and loans for a customer
	FreezeCustomer(ctx context.Context, bankAddress, walletAddress string) (*dto.CustomerResponse, error)

	// MintToken mints bank tokens directly to a verified customer
	MintToken(ctx context.Context, req *dto.MintTokenRequest) (*dto.MintTokenResponse, error)
	// GetTokenBalance reads a wallet's balance of the bank token
	GetTokenBalance(ctx context.Context, bankAddress, walletAddress string) (*dto.TokenBalanceResponse, error)
	// GetTokenBalanceByToken reads a wallet's balance of any token
	GetTokenBalanceByToken(ctx context.Context, tokenAddress, walletAddress string) (*dto.TokenBalanceResponse, error)

	// Lend opens a collateralized loan for a verified customer
	Lend(ctx context.Context, req *dto.LendRequest) (*dto.LendResponse, error)
	// ListLoans retrieves a bank's loans
	ListLoans(ctx context.Context, bankAddress string) ([]dto.LoanResponse, error)
	// GetBorrowerLoans retrieves a borrower's loans at a bank
	GetBorrowerLoans(ctx context.Context, bankAddress, borrowerAddress string) ([]dto.LoanResponse, error)

	// Tokenize converts a declared asset into bank tokens
	Tokenize(ctx context.Context, req *dto.TokenizeRequest) (*dto.TokenizeResponse, error)
	// GetCustomerAssets retrieves a wallet's assets and their summary
	GetCustomerAssets(ctx context.Context, walletAddress string) (*dto.CustomerAssetsResponse, error)
	// GetAsset retrieves an asset by ID
	GetAsset(ctx context.Context, assetID string) (*dto.AssetResponse, error)

	// GetBankAnalytics retrieves a bank dashboard
	GetBankAnalytics(ctx context.Context, bankAddress string) (*dto.BankAnalyticsResponse, error)
	// GetActivity retrieves a bank's merged activity feed
	GetActivity(ctx context.Context, bankAddress string, limit int) ([]dto.ActivityItemResponse, error)
	// GetCustomerProfile retrieves a customer with balance, loans and mints
	GetCustomerProfile(ctx context.Context, walletAddress string) (*dto.CustomerProfileResponse, error)

	// GetRelayerStatus describes the relayer wallet and network
	GetRelayerStatus(ctx context.Context) (*dto.RelayerStatusResponse, error)
}

type executor struct {
	store      store.Store
	relayer    relayer.Relayer
	workflow   tokenization.Workflow
	aggregator analytics.Aggregator
	publisher  messaging.Publisher
	clock      adapter.Clock
}

func NewExecutor(
	st store.Store,
	r relayer.Relayer,
	wf tokenization.Workflow,
	agg analytics.Aggregator,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Executor {
	return &executor{
		store:      st,
		relayer:    r,
		workflow:   wf,
		aggregator: agg,
		publisher:  publisher,
		clock:      clock,
	}
}

func (e *executor) getBank(ctx context.Context, bankAddress string) (*schema.Bank, error) {
	bank, err := e.store.GetBank(ctx, domain.NormalizeAddress(bankAddress))
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domain.NewNotFoundError("Bank", bankAddress)
	}
	return bank, nil
}

// eligibleCustomer returns the customer when it may receive mints and loans
func (e *executor) eligibleCustomer(ctx context.Context, bankAddress, walletAddress string) (*schema.Customer, error) {
	customer, err := e.store.GetCustomer(ctx, bankAddress, walletAddress)
	if err != nil {
		return nil, err
	}
	if !customer.Eligible() {
		return nil, &domain.NotVerifiedError{Wallet: walletAddress}
	}
	return customer, nil
}

func (e *executor) publish(ctx context.Context, event *domain.Event) {
	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event",
			zap.String("type", string(event.Type)),
			zap.String("bank", event.BankAddress),
			zap.Error(err))
	}
}

func (e *executor) DeployBank(ctx context.Context, req *dto.DeployBankRequest) (*dto.DeployBankResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	bankAddress := domain.NormalizeAddress(req.BankAddress)

	existing, err := e.store.GetBank(ctx, bankAddress)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewValidationError("Bank already deployed: %s", bankAddress)
	}

	deployed, err := e.relayer.DeployBank(ctx, relayer.DeployBankRequest{
		BankAddress:            bankAddress,
		BankName:               req.BankName,
		TokenName:              req.TokenName,
		TokenSymbol:            req.TokenSymbol,
		MaxSupply:              *req.MaxSupply,
		CollateralizationRatio: *req.CollateralizationRatio,
	})
	if err != nil {
		return nil, &domain.ChainError{Op: "Failed to deploy bank", Err: err}
	}

	recordCtx := context.WithoutCancel(ctx)
	bank, err := e.store.CreateBank(recordCtx, store.CreateBankInput{
		BankAddress:            bankAddress,
		BankName:               req.BankName,
		TokenName:              req.TokenName,
		TokenSymbol:            req.TokenSymbol,
		MaxSupply:              *req.MaxSupply,
		CollateralizationRatio: *req.CollateralizationRatio,
		TokenAddress:           deployed.TokenAddress,
		LendingAddress:         deployed.LendingAddress,
		TransactionHash:        deployed.TxHash,
		BlockNumber:            deployed.BlockNumber,
		DeployedAt:             e.clock.Now().UTC(),
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record deployed bank: %w", err),
			zap.String("bank", bankAddress),
			zap.String("txHash", deployed.TxHash))
		return nil, &domain.StorageError{Op: "Failed to save bank", Err: err}
	}

	event := messaging.NewEvent(domain.EventTypeBankDeployed, bankAddress, e.clock.Now())
	event.TxHash = deployed.TxHash
	event.BlockNumber = deployed.BlockNumber
	event.Data["tokenAddress"] = deployed.TokenAddress
	event.Data["lendingAddress"] = deployed.LendingAddress
	event.Data["bankName"] = bank.BankName
	e.publish(recordCtx, event)

	return &dto.DeployBankResponse{
		BankAddress:     bankAddress,
		TokenAddress:    deployed.TokenAddress,
		LendingAddress:  deployed.LendingAddress,
		TransactionHash: deployed.TxHash,
		BlockNumber:     deployed.BlockNumber,
	}, nil
}

func (e *executor) GetBank(ctx context.Context, bankAddress string) (*dto.BankResponse, error) {
	bank, err := e.getBank(ctx, bankAddress)
	if err != nil {
		return nil, err
	}

	totals, err := e.store.GetBankTotals(ctx, bank.BankAddress)
	if err != nil {
		return nil, err
	}

	resp := dto.MapBankToDTO(bank)
	resp.TotalCustomers = &totals.CustomersCount
	return resp, nil
}

func (e *executor) ListBanks(ctx context.Context) ([]dto.BankResponse, error) {
	banks, err := e.store.ListBanks(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.BankResponse, len(banks))
	for i := range banks {
		resp[i] = *dto.MapBankToDTO(&banks[i])
	}
	return resp, nil
}

// UploadCustomers upserts the customers, then whitelists every uploaded wallet in one transaction.
// The verification outcome is reported in the response; customers stay unverified when it fails.
func (e *executor) UploadCustomers(ctx context.Context, req *dto.UploadCustomersRequest) (*dto.UploadCustomersResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bank, err := e.getBank(ctx, req.BankAddress)
	if err != nil {
		return nil, err
	}

	inputs := make([]store.CustomerInput, len(req.Customers))
	wallets := make([]string, 0, len(req.Customers))
	seen := make(map[string]bool, len(req.Customers))
	for i, c := range req.Customers {
		wallet := domain.NormalizeAddress(c.WalletAddress)
		inputs[i] = store.CustomerInput{
			Name:          c.Name,
			AccountID:     c.AccountID,
			WalletAddress: wallet,
		}
		if !seen[wallet] {
			seen[wallet] = true
			wallets = append(wallets, wallet)
		}
	}

	added, err := e.store.UpsertCustomers(ctx, bank.BankAddress, inputs)
	if err != nil {
		return nil, err
	}

	resp := &dto.UploadCustomersResponse{CustomersAdded: added}

	if bank.TokenAddress == "" {
		resp.VerificationError = "bank token not deployed"
		return resp, nil
	}

	verified, err := e.relayer.VerifyCustomers(ctx, bank.TokenAddress, wallets)
	if err != nil {
		logger.WarnCtx(ctx, "On-chain customer verification failed",
			zap.String("bank", bank.BankAddress),
			zap.Int("wallets", len(wallets)),
			zap.Error(err))
		resp.VerificationError = err.Error()
		return resp, nil
	}

	recordCtx := context.WithoutCancel(ctx)
	if _, err := e.store.MarkCustomersVerified(recordCtx, bank.BankAddress, wallets, e.clock.Now().UTC()); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to mark customers verified: %w", err),
			zap.String("bank", bank.BankAddress),
			zap.String("txHash", verified.TxHash))
		return nil, &domain.StorageError{Op: "Failed to record customer verification", Err: err}
	}

	resp.VerifiedCount = int64(verified.VerifiedCount)
	resp.TransactionHash = &verified.TxHash
	resp.BlockNumber = &verified.BlockNumber

	event := messaging.NewEvent(domain.EventTypeCustomersVerified, bank.BankAddress, e.clock.Now())
	event.TxHash = verified.TxHash
	event.BlockNumber = verified.BlockNumber
	event.Data["wallets"] = wallets
	event.Data["verifiedCount"] = verified.VerifiedCount
	e.publish(recordCtx, event)

	return resp, nil
}

func (e *executor) ListCustomers(ctx context.Context, bankAddress string) ([]dto.CustomerResponse, error) {
	customers, err := e.store.ListCustomers(ctx, domain.NormalizeAddress(bankAddress))
	if err != nil {
		return nil, err
	}
	return dto.MapCustomersToDTO(customers), nil
}

func (e *executor) FreezeCustomer(ctx context.Context, bankAddress, walletAddress string) (*dto.CustomerResponse, error) {
	bankAddress = domain.NormalizeAddress(bankAddress)
	walletAddress = domain.NormalizeAddress(walletAddress)

	found, err := e.store.FreezeCustomer(ctx, bankAddress, walletAddress)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.NewNotFoundError("Customer", walletAddress)
	}

	customer, err := e.store.GetCustomer(ctx, bankAddress, walletAddress)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFoundError("Customer", walletAddress)
	}

	event := messaging.NewEvent(domain.EventTypeCustomerFrozen, bankAddress, e.clock.Now())
	event.Wallet = walletAddress
	e.publish(ctx, event)

	resp := dto.MapCustomerToDTO(customer)
	return &resp, nil
}

func (e *executor) MintToken(ctx context.Context, req *dto.MintTokenRequest) (*dto.MintTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bank, err := e.getBank(ctx, req.BankAddress)
	if err != nil {
		return nil, err
	}

	wallet := domain.NormalizeAddress(req.WalletAddress)
	if _, err := e.eligibleCustomer(ctx, bank.BankAddress, wallet); err != nil {
		return nil, err
	}

	minted, err := e.relayer.MintToken(ctx, bank.TokenAddress, wallet, *req.Amount)
	if err != nil {
		return nil, &domain.ChainError{Op: "Failed to mint tokens", Err: err}
	}

	recordCtx := context.WithoutCancel(ctx)
	if _, err := e.store.CreateTokenMint(recordCtx, store.CreateTokenMintInput{
		TransactionHash: minted.TxHash,
		BankAddress:     bank.BankAddress,
		WalletAddress:   wallet,
		Amount:          *req.Amount,
		BlockNumber:     minted.BlockNumber,
		MintedAt:        e.clock.Now().UTC(),
	}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record confirmed mint: %w", err),
			zap.String("txHash", minted.TxHash))
		return nil, &domain.StorageError{Op: "Failed to record token mint", Err: err}
	}

	event := messaging.NewEvent(domain.EventTypeTokensMinted, bank.BankAddress, e.clock.Now())
	event.Wallet = wallet
	event.TxHash = minted.TxHash
	event.BlockNumber = minted.BlockNumber
	event.Data["amount"] = req.Amount.String()
	e.publish(recordCtx, event)

	return &dto.MintTokenResponse{
		TransactionHash: minted.TxHash,
		BlockNumber:     minted.BlockNumber,
		Amount:          *req.Amount,
		WalletAddress:   wallet,
		TokenAddress:    bank.TokenAddress,
	}, nil
}

func (e *executor) GetTokenBalance(ctx context.Context, bankAddress, walletAddress string) (*dto.TokenBalanceResponse, error) {
	bank, err := e.getBank(ctx, bankAddress)
	if err != nil {
		return nil, err
	}
	return e.GetTokenBalanceByToken(ctx, bank.TokenAddress, walletAddress)
}

func (e *executor) GetTokenBalanceByToken(ctx context.Context, tokenAddress, walletAddress string) (*dto.TokenBalanceResponse, error) {
	if !domain.IsHexAddress(tokenAddress) {
		return nil, domain.NewValidationError("Invalid token address: %s", tokenAddress)
	}
	if !domain.IsHexAddress(walletAddress) {
		return nil, domain.NewValidationError("Invalid wallet address: %s", walletAddress)
	}
	tokenAddress = domain.NormalizeAddress(tokenAddress)
	walletAddress = domain.NormalizeAddress(walletAddress)

	balance, err := e.relayer.TokenBalance(ctx, tokenAddress, walletAddress)
	if err != nil {
		return nil, &domain.ChainError{Op: "Failed to fetch token balance", Err: err}
	}
	return dto.MapTokenBalanceToDTO(balance, tokenAddress, walletAddress), nil
}

// Lend opens a loan after checking the borrower and the bank's collateralization ratio.
// A missing LoanCreated event still records the loan, without an on-chain loan ID.
func (e *executor) Lend(ctx context.Context, req *dto.LendRequest) (*dto.LendResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bank, err := e.getBank(ctx, req.BankAddress)
	if err != nil {
		return nil, err
	}
	if bank.LendingAddress == "" {
		return nil, domain.NewValidationError("Bank lending pool not deployed")
	}

	borrower := domain.NormalizeAddress(req.BorrowerAddress)
	if _, err := e.eligibleCustomer(ctx, bank.BankAddress, borrower); err != nil {
		return nil, err
	}

	required := req.LoanAmount.Mul(decimal.NewFromInt(bank.CollateralizationRatio)).Div(decimal.NewFromInt(100))
	if req.CollateralAmount.LessThan(required) {
		return nil, domain.NewValidationError("Insufficient collateral: %d%% collateralization required", bank.CollateralizationRatio)
	}

	loan, err := e.relayer.CreateLoan(ctx, relayer.CreateLoanRequest{
		LendingAddress:   bank.LendingAddress,
		BorrowerAddress:  borrower,
		CollateralAmount: *req.CollateralAmount,
		LoanAmount:       *req.LoanAmount,
		InterestRate:     *req.InterestRate,
		Duration:         *req.Duration,
	})
	if err != nil {
		return nil, &domain.ChainError{Op: "Failed to create loan", Err: err}
	}

	recordCtx := context.WithoutCancel(ctx)
	record, err := e.store.CreateLoan(recordCtx, store.CreateLoanInput{
		ID:               uuid.NewString(),
		BankAddress:      bank.BankAddress,
		BorrowerAddress:  borrower,
		OnchainLoanID:    loan.LoanID,
		CollateralAmount: *req.CollateralAmount,
		LoanAmount:       *req.LoanAmount,
		InterestRate:     *req.InterestRate,
		Duration:         *req.Duration,
		TransactionHash:  loan.TxHash,
		BlockNumber:      loan.BlockNumber,
		CreatedAt:        e.clock.Now().UTC(),
	})
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record loan: %w", err),
			zap.String("txHash", loan.TxHash))
		return nil, &domain.StorageError{Op: "Failed to record loan", Err: err}
	}

	event := messaging.NewEvent(domain.EventTypeLoanCreated, bank.BankAddress, e.clock.Now())
	event.Wallet = borrower
	event.TxHash = loan.TxHash
	event.BlockNumber = loan.BlockNumber
	event.Data["loanId"] = record.ID
	event.Data["loanAmount"] = req.LoanAmount.String()
	event.Data["collateralAmount"] = req.CollateralAmount.String()
	if loan.LoanID != nil {
		event.Data["onchainLoanId"] = *loan.LoanID
	}
	e.publish(recordCtx, event)

	return &dto.LendResponse{
		ID:              record.ID,
		LoanID:          loan.LoanID,
		TransactionHash: loan.TxHash,
		BlockNumber:     loan.BlockNumber,
	}, nil
}

func (e *executor) ListLoans(ctx context.Context, bankAddress string) ([]dto.LoanResponse, error) {
	loans, err := e.store.GetLoansByBank(ctx, domain.NormalizeAddress(bankAddress), 0)
	if err != nil {
		return nil, err
	}
	return dto.MapLoansToDTO(loans), nil
}

func (e *executor) GetBorrowerLoans(ctx context.Context, bankAddress, borrowerAddress string) ([]dto.LoanResponse, error) {
	loans, err := e.store.GetLoansByBorrower(ctx, domain.NormalizeAddress(bankAddress), domain.NormalizeAddress(borrowerAddress))
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 {
		return nil, domain.NewNotFoundError("Loans", borrowerAddress)
	}
	return dto.MapLoansToDTO(loans), nil
}

func (e *executor) Tokenize(ctx context.Context, req *dto.TokenizeRequest) (*dto.TokenizeResponse, error) {
	result, err := e.workflow.Tokenize(ctx, req.ToWorkflowRequest())
	if err != nil {
		return nil, err
	}

	resp := &dto.TokenizeResponse{
		AssetID:        result.Asset.AssetID,
		AssetType:      result.Asset.AssetType,
		AssetValue:     result.Asset.AssetValue,
		TokensIssued:   result.Asset.TokenAmount,
		TokenSymbol:    result.Bank.TokenSymbol,
		TokenAddress:   result.Bank.TokenAddress,
		CustomerWallet: result.Asset.CustomerWallet,
		ViewInWallet: dto.ViewInWallet{
			Instructions: constants.TOKEN_WALLET_INSTRUCTIONS,
			TokenAddress: result.Bank.TokenAddress,
			Symbol:       result.Bank.TokenSymbol,
			Decimals:     domain.TOKEN_DECIMALS,
		},
	}
	if result.Mint != nil {
		resp.TransactionHash = result.Mint.TransactionHash
		resp.BlockNumber = result.Mint.BlockNumber
	}
	return resp, nil
}

func (e *executor) GetCustomerAssets(ctx context.Context, walletAddress string) (*dto.CustomerAssetsResponse, error) {
	assets, err := e.aggregator.CustomerAssets(ctx, domain.NormalizeAddress(walletAddress))
	if err != nil {
		return nil, err
	}
	return dto.MapCustomerAssetsToDTO(assets), nil
}

func (e *executor) GetAsset(ctx context.Context, assetID string) (*dto.AssetResponse, error) {
	asset, err := e.store.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.NewNotFoundError("Asset", assetID)
	}

	resp := dto.MapAssetToDTO(asset)
	return &resp, nil
}

func (e *executor) GetBankAnalytics(ctx context.Context, bankAddress string) (*dto.BankAnalyticsResponse, error) {
	result, err := e.aggregator.BankAnalytics(ctx, domain.NormalizeAddress(bankAddress))
	if err != nil {
		return nil, err
	}
	return dto.MapBankAnalyticsToDTO(result), nil
}

func (e *executor) GetActivity(ctx context.Context, bankAddress string, limit int) ([]dto.ActivityItemResponse, error) {
	items, err := e.aggregator.Activity(ctx, domain.NormalizeAddress(bankAddress), limit)
	if err != nil {
		return nil, err
	}
	return dto.MapActivityToDTO(items), nil
}

func (e *executor) GetCustomerProfile(ctx context.Context, walletAddress string) (*dto.CustomerProfileResponse, error) {
	profile, err := e.aggregator.CustomerProfile(ctx, domain.NormalizeAddress(walletAddress))
	if err != nil {
		return nil, err
	}
	return dto.MapCustomerProfileToDTO(profile), nil
}

// GetRelayerStatus never fails; chain read errors are reported in the payload
func (e *executor) GetRelayerStatus(ctx context.Context) (*dto.RelayerStatusResponse, error) {
	resp := &dto.RelayerStatusResponse{
		Configured: e.relayer.Configured(),
		Address:    e.relayer.Address(),
		Balance:    "0",
		BalanceWei: "0",
	}
	if !resp.Configured {
		resp.Error = domain.ErrRelayerNotConfigured.Error()
		return resp, nil
	}

	balance, err := e.relayer.Balance(ctx)
	if err != nil {
		resp.Error = err.Error()
		return resp, nil
	}
	resp.Balance = relayer.FormatEther(balance)
	resp.BalanceWei = balance.String()

	info, err := e.relayer.NetworkInfo(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch network info", zap.Error(err))
		return resp, nil
	}
	resp.Network = &dto.NetworkResponse{
		ChainID:     info.ChainID.String(),
		BlockNumber: info.BlockNumber,
	}
	if info.BaseFee != nil {
		resp.Network.BaseFee = info.BaseFee.String()
	}
	if info.GasTipCap != nil {
		resp.Network.GasTipCap = info.GasTipCap.String()
	}
	return resp, nil
}
