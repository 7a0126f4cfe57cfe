package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrRelayerNotConfigured is returned by every chain operation while the relayer runs in demo mode
	ErrRelayerNotConfigured = errors.New("relayer not configured")

	// ErrConfirmationTimeout is returned when a transaction is not mined within the confirmation window
	ErrConfirmationTimeout = errors.New("timed out waiting for transaction confirmation")

	// ErrTransactionReverted is returned when a mined transaction has a failed status
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrRelayerQueueFull is returned when the relayer queue cannot accept more work
	ErrRelayerQueueFull = errors.New("relayer queue is full")

	// ErrSubmitTimeout is returned when a queued transaction was abandoned before it was broadcast
	ErrSubmitTimeout = errors.New("timed out waiting to submit transaction")

	// ErrAssetStatusConflict is returned when an asset is not in a status the update may leave
	ErrAssetStatusConflict = errors.New("asset status conflict")
)

// ValidationError is returned for missing or malformed input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError from a format string
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError is returned when a referenced entity does not exist
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NewNotFoundError creates a NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// NotVerifiedError is returned when a customer is missing, unverified or frozen
type NotVerifiedError struct {
	Wallet string
}

func (e *NotVerifiedError) Error() string {
	return "Customer not found or not KYC verified. Please complete KYC first."
}

// StorageError wraps any persistence failure
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError, returning nil for a nil err
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Err: err}
}

// ChainError wraps a relayer failure: RPC error, revert, timeout or demo mode
type ChainError struct {
	Op  string
	Err error
}

func (e *ChainError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *ChainError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a confirmation timeout rather than a revert
func (e *ChainError) Timeout() bool {
	return errors.Is(e.Err, ErrConfirmationTimeout)
}

// NewChainError wraps err as a ChainError, returning nil for a nil err
func NewChainError(op string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ChainError
	if errors.As(err, &ce) {
		return err
	}
	return &ChainError{Op: op, Err: err}
}

// IsChainError reports whether err is a ChainError
func IsChainError(err error) bool {
	var ce *ChainError
	return errors.As(err, &ce)
}

// IsStorageError reports whether err is a StorageError
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
