package relayer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/metrics"
)

const (
	outcomeConfirmed = "confirmed"
	outcomeReverted  = "reverted"
	outcomeTimeout   = "timeout"
	outcomeQueueFull = "queue_full"
	outcomeError     = "error"
)

// transact queues a transaction to the contract at to and waits for its successful receipt.
// Calls are executed one at a time in submission order. A transaction not broadcast within
// SubmitTimeout is abandoned, so a call lasts at most SubmitTimeout plus ConfirmationTimeout.
func (r *relayer) transact(ctx context.Context, operation string, to common.Address, data []byte) (*types.Receipt, error) {
	start := r.clock.Now()

	submitCtx, cancel := context.WithTimeout(ctx, r.cfg.SubmitTimeout)
	defer cancel()

	var receipt *types.Receipt
	task := r.queue.SubmitErr(func() error {
		// the caller may have given up while the task was queued
		if err := submitCtx.Err(); err != nil {
			return err
		}
		var err error
		receipt, err = r.sendAndWait(submitCtx, operation, to, data)
		return err
	})

	err := task.Wait()
	if err != nil {
		switch {
		case errors.Is(err, pond.ErrQueueFull):
			err = domain.ErrRelayerQueueFull
		case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
			err = fmt.Errorf("%w: %v", domain.ErrSubmitTimeout, err)
		}
		metrics.RecordRelayerTransaction(operation, outcomeOf(err), r.clock.Since(start))
		logger.ErrorCtx(ctx, fmt.Errorf("relayer %s failed: %w", operation, err),
			zap.String("to", to.Hex()))
		return nil, domain.NewChainError("", err)
	}

	metrics.RecordRelayerTransaction(operation, outcomeConfirmed, r.clock.Since(start))
	return receipt, nil
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrTransactionReverted):
		return outcomeReverted
	case errors.Is(err, domain.ErrConfirmationTimeout), errors.Is(err, domain.ErrSubmitTimeout):
		return outcomeTimeout
	case errors.Is(err, domain.ErrRelayerQueueFull):
		return outcomeQueueFull
	default:
		return outcomeError
	}
}

// sendAndWait signs and submits an EIP-1559 transaction, then waits for its receipt
func (r *relayer) sendAndWait(ctx context.Context, operation string, to common.Address, data []byte) (*types.Receipt, error) {
	nonce, err := r.client.PendingNonceAt(ctx, r.from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	tip, err := r.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas tip cap: %w", err)
	}

	head, err := r.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}

	// fee cap covers two consecutive base fee increases
	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	gas, err := r.client.EstimateGas(ctx, ethereum.CallMsg{
		From:      r.from,
		To:        &to,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Data:      data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   r.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Data:      data,
	})

	signed, err := types.SignTx(tx, r.signer, r.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	// once sent the transaction can be mined, so only the confirmation timeout ends the wait
	ctx = context.WithoutCancel(ctx)

	if err := r.client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("failed to send transaction: %w", err)
	}

	logger.InfoCtx(ctx, "Transaction submitted",
		zap.String("operation", operation),
		zap.String("txHash", signed.Hash().Hex()),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gas", gas),
	)

	receipt, err := r.waitForReceipt(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionReverted, signed.Hash().Hex())
	}

	logger.InfoCtx(ctx, "Transaction confirmed",
		zap.String("operation", operation),
		zap.String("txHash", receipt.TxHash.Hex()),
		zap.Uint64("blockNumber", blockNumberOf(receipt)),
	)

	return receipt, nil
}

// waitForReceipt polls for a receipt with exponential backoff until the confirmation timeout
func (r *relayer) waitForReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, r.cfg.ConfirmationTimeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.cfg.ReceiptPollInterval
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 0 // bounded by waitCtx
	b.Multiplier = 1.5

	var receipt *types.Receipt
	operation := func() error {
		rc, err := r.client.TransactionReceipt(waitCtx, hash)
		if err != nil {
			if !errors.Is(err, ethereum.NotFound) {
				logger.WarnCtx(ctx, "Failed to fetch receipt, retrying",
					zap.String("txHash", hash.Hex()),
					zap.Error(err))
			}
			return err
		}
		receipt = rc
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, waitCtx)); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfirmationTimeout, hash.Hex())
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	return receipt, nil
}

func blockNumberOf(receipt *types.Receipt) uint64 {
	if receipt == nil || receipt.BlockNumber == nil {
		return 0
	}
	return receipt.BlockNumber.Uint64()
}

func txResultOf(receipt *types.Receipt) TxResult {
	return TxResult{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: blockNumberOf(receipt),
	}
}
