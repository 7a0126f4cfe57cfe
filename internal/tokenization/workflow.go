package tokenization

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finara-labs/finara-backend/internal/adapter"
	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/messaging"
	"github.com/finara-labs/finara-backend/internal/metrics"
	"github.com/finara-labs/finara-backend/internal/relayer"
	"github.com/finara-labs/finara-backend/internal/store"
	"github.com/finara-labs/finara-backend/internal/store/schema"
)

// Final states recorded for each request
const (
	stateRejected      = "rejected"
	stateKYCRejected   = "kyc_rejected"
	statePersistFailed = "persist_failed"
	stateMintFailed    = "mint_failed"
	stateRecordFailed  = "record_failed"
	stateTokenized     = "tokenized"
)

// Request is a tokenization request as received from a client
type Request struct {
	BankAddress    string
	CustomerWallet string
	AssetType      string
	Description    string
	// Value is nil when the client omitted it
	Value *decimal.Decimal
	// Ratio is nil when the client omitted it; the default is 1
	Ratio *decimal.Decimal
}

// Result is a completed tokenization
type Result struct {
	Asset *schema.Asset
	Mint  *schema.TokenMint
	Bank  *schema.Bank
}

// Workflow turns a declared asset of a KYC-verified customer into minted bank tokens.
// The asset row is checkpointed as verified before the mint and moves to tokenized or failed
// once the mint outcome is known. Requests are not idempotent.
//
//go:generate mockgen -source=workflow.go -destination=../mocks/tokenization_workflow.go -package=mocks -mock_names=Workflow=MockTokenizationWorkflow
type Workflow interface {
	Tokenize(ctx context.Context, req Request) (*Result, error)
}

type workflow struct {
	store     store.Store
	relayer   relayer.Relayer
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewWorkflow creates a tokenization workflow
func NewWorkflow(st store.Store, r relayer.Relayer, publisher messaging.Publisher, clock adapter.Clock) Workflow {
	return &workflow{
		store:     st,
		relayer:   r,
		publisher: publisher,
		clock:     clock,
	}
}

// validated is a request that passed validation, with normalized addresses
type validated struct {
	bankAddress string
	wallet      string
	assetType   domain.AssetType
	description string
	value       decimal.Decimal
	ratio       decimal.Decimal
	tokenAmount decimal.Decimal
}

func validate(req Request) (*validated, error) {
	if strings.TrimSpace(req.BankAddress) == "" ||
		strings.TrimSpace(req.CustomerWallet) == "" ||
		strings.TrimSpace(req.AssetType) == "" ||
		req.Value == nil {
		return nil, domain.NewValidationError("Missing required fields: bankAddress, customerWallet, assetType, assetValue")
	}

	if !req.Value.IsPositive() {
		return nil, domain.NewValidationError("Asset value must be greater than 0")
	}

	ratio := domain.DefaultTokenizationRatio
	if req.Ratio != nil {
		if !req.Ratio.IsPositive() {
			return nil, domain.NewValidationError("Tokenization ratio must be greater than 0")
		}
		ratio = *req.Ratio
	}

	assetType := domain.AssetType(strings.TrimSpace(req.AssetType))
	if !assetType.Valid() {
		return nil, domain.NewValidationError("Invalid asset type: %s", req.AssetType)
	}

	if !domain.IsHexAddress(req.BankAddress) {
		return nil, domain.NewValidationError("Invalid bank address: %s", req.BankAddress)
	}
	if !domain.IsHexAddress(req.CustomerWallet) {
		return nil, domain.NewValidationError("Invalid customer wallet address: %s", req.CustomerWallet)
	}

	amount := domain.ComputeTokenAmount(*req.Value, ratio)
	if !amount.IsPositive() {
		return nil, domain.NewValidationError("Asset value too small: computed token amount is 0")
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = domain.DefaultAssetDescription(assetType)
	}

	return &validated{
		bankAddress: domain.NormalizeAddress(req.BankAddress),
		wallet:      domain.NormalizeAddress(req.CustomerWallet),
		assetType:   assetType,
		description: description,
		value:       *req.Value,
		ratio:       ratio,
		tokenAmount: amount,
	}, nil
}

// Tokenize validates the request, gates on KYC, checkpoints the asset, mints and records the outcome
func (w *workflow) Tokenize(ctx context.Context, req Request) (*Result, error) {
	input, err := validate(req)
	if err != nil {
		metrics.RecordTokenization(stateRejected)
		return nil, err
	}

	bank, err := w.store.GetBank(ctx, input.bankAddress)
	if err != nil {
		metrics.RecordTokenization(stateRejected)
		return nil, err
	}
	if bank == nil {
		metrics.RecordTokenization(stateRejected)
		return nil, domain.NewNotFoundError("Bank", input.bankAddress)
	}

	customer, err := w.store.GetCustomer(ctx, input.bankAddress, input.wallet)
	if err != nil {
		metrics.RecordTokenization(stateRejected)
		return nil, err
	}
	if !customer.Eligible() {
		metrics.RecordTokenization(stateKYCRejected)
		logger.InfoCtx(ctx, "Tokenization rejected, customer not eligible",
			zap.String("bank", input.bankAddress),
			zap.String("wallet", input.wallet))
		return nil, &domain.NotVerifiedError{Wallet: input.wallet}
	}

	now := w.clock.Now().UTC()
	asset, err := w.store.CreateAsset(ctx, store.CreateAssetInput{
		AssetID:           domain.NewAssetID(),
		BankAddress:       input.bankAddress,
		CustomerWallet:    input.wallet,
		AssetType:         input.assetType,
		Description:       input.description,
		AssetValue:        input.value,
		TokenizationRatio: input.ratio,
		TokenAmount:       input.tokenAmount,
		Status:            domain.AssetStatusVerified,
		Metadata: map[string]any{
			domain.MetadataKeyTokenizationRatio: input.ratio.String(),
			domain.MetadataKeyTokenSymbol:       bank.TokenSymbol,
			domain.MetadataKeyTokenizedAt:       now.Format(time.RFC3339Nano),
		},
		CreatedAt: now,
	})
	if err != nil {
		metrics.RecordTokenization(statePersistFailed)
		return nil, &domain.StorageError{Op: "Failed to save asset", Err: err}
	}

	logger.InfoCtx(ctx, "Minting tokens for asset",
		zap.String("assetID", asset.AssetID),
		zap.String("wallet", input.wallet),
		zap.String("amount", input.tokenAmount.String()))

	mint, mintErr := w.relayer.MintToken(ctx, bank.TokenAddress, input.wallet, input.tokenAmount)

	// the mint outcome must be recorded even if the client went away
	recordCtx := context.WithoutCancel(ctx)

	if mintErr != nil {
		metrics.RecordTokenization(stateMintFailed)
		w.markFailed(recordCtx, asset, mintErr)
		return nil, &domain.ChainError{Op: "Failed to mint tokens", Err: mintErr}
	}

	tokenized, record, err := w.store.CompleteTokenization(recordCtx, store.CompleteTokenizationInput{
		AssetID: asset.AssetID,
		Mint: store.CreateTokenMintInput{
			TransactionHash: mint.TxHash,
			BankAddress:     input.bankAddress,
			WalletAddress:   input.wallet,
			Amount:          input.tokenAmount,
			BlockNumber:     mint.BlockNumber,
			MintedAt:        w.clock.Now().UTC(),
		},
		Metadata: map[string]any{
			domain.MetadataKeyTransactionHash: mint.TxHash,
			domain.MetadataKeyBlockNumber:     mint.BlockNumber,
		},
	})
	if err != nil {
		metrics.RecordTokenization(stateRecordFailed)
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record confirmed mint: %w", err),
			zap.String("assetID", asset.AssetID),
			zap.String("txHash", mint.TxHash))
		return nil, &domain.StorageError{Op: "Failed to record token mint", Err: err}
	}
	if tokenized == nil {
		// stores without persistence echo nothing back
		tokenized = asset
		tokenized.Status = domain.AssetStatusTokenized
	}

	metrics.RecordTokenization(stateTokenized)
	w.publish(recordCtx, domain.EventTypeAssetTokenized, tokenized, mint.TxHash, mint.BlockNumber, map[string]any{
		"assetType":   string(tokenized.AssetType),
		"tokenAmount": tokenized.TokenAmount.String(),
	})

	return &Result{
		Asset: tokenized,
		Mint:  record,
		Bank:  bank,
	}, nil
}

// markFailed moves the checkpointed asset to failed with the mint error in its metadata
func (w *workflow) markFailed(ctx context.Context, asset *schema.Asset, mintErr error) {
	_, err := w.store.UpdateAsset(ctx, asset.AssetID, store.UpdateAssetInput{
		Status: domain.AssetStatusFailed,
		Metadata: map[string]any{
			domain.MetadataKeyError:    mintErr.Error(),
			domain.MetadataKeyFailedAt: w.clock.Now().UTC().Format(time.RFC3339Nano),
		},
		ExpectedStatus: domain.AssetStatusVerified,
	})
	if err != nil {
		// the sweeper resolves assets left in verified
		logger.ErrorCtx(ctx, fmt.Errorf("failed to mark asset failed: %w", err),
			zap.String("assetID", asset.AssetID))
	}

	w.publish(ctx, domain.EventTypeAssetFailed, asset, "", 0, map[string]any{
		"error": mintErr.Error(),
	})
}

func (w *workflow) publish(ctx context.Context, eventType domain.EventType, asset *schema.Asset, txHash string, blockNumber uint64, data map[string]any) {
	event := messaging.NewEvent(eventType, asset.BankAddress, w.clock.Now())
	event.Wallet = asset.CustomerWallet
	event.TxHash = txHash
	event.BlockNumber = blockNumber
	event.Data = data
	event.Data["assetId"] = asset.AssetID

	if err := w.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish event",
			zap.String("type", string(eventType)),
			zap.String("assetID", asset.AssetID),
			zap.Error(err))
	}
}
