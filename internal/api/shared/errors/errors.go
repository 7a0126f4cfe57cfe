package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finara-labs/finara-backend/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeNotVerified      ErrorCode = "not_verified"
	ErrCodeRateLimited      ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeChainError    ErrorCode = "chain_error"
	ErrCodeChainTimeout  ErrorCode = "chain_timeout"
)

// APIError is the failure envelope returned by every route
type APIError struct {
	Status  int       `json:"-"`
	Success bool      `json:"success"`
	Message string    `json:"error"`
	Code    ErrorCode `json:"code"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

func newAPIError(status int, code ErrorCode, message string) *APIError {
	return &APIError{
		Status:  status,
		Success: false,
		Message: message,
		Code:    code,
	}
}

// Error constructors for common error types
func NewBadRequestError(message string) *APIError {
	return newAPIError(http.StatusBadRequest, ErrCodeBadRequest, message)
}

func NewValidationError(message string) *APIError {
	return newAPIError(http.StatusBadRequest, ErrCodeValidationFailed, message)
}

func NewNotFoundError(message string) *APIError {
	return newAPIError(http.StatusNotFound, ErrCodeNotFound, message)
}

func NewUnauthorizedError(message string) *APIError {
	return newAPIError(http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

func NewNotVerifiedError(message string) *APIError {
	return newAPIError(http.StatusForbidden, ErrCodeNotVerified, message)
}

func NewRateLimitedError(message string) *APIError {
	return newAPIError(http.StatusTooManyRequests, ErrCodeRateLimited, message)
}

func NewInternalError(message string) *APIError {
	return newAPIError(http.StatusInternalServerError, ErrCodeInternalError, message)
}

func NewDatabaseError(message string) *APIError {
	return newAPIError(http.StatusInternalServerError, ErrCodeDatabaseError, message)
}

func NewChainError(message string, timeout bool) *APIError {
	if timeout {
		return newAPIError(http.StatusInternalServerError, ErrCodeChainTimeout, message)
	}
	return newAPIError(http.StatusInternalServerError, ErrCodeChainError, message)
}

// FromError maps an error of the domain taxonomy to its API error.
// Anything outside the taxonomy is an internal error.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return NewValidationError(validationErr.Error())
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		return NewNotFoundError(notFoundErr.Error())
	}

	var notVerifiedErr *domain.NotVerifiedError
	if errors.As(err, &notVerifiedErr) {
		return NewNotVerifiedError(notVerifiedErr.Error())
	}

	var chainErr *domain.ChainError
	if errors.As(err, &chainErr) {
		return NewChainError(chainErr.Error(), chainErr.Timeout())
	}

	var storageErr *domain.StorageError
	if errors.As(err, &storageErr) {
		return NewDatabaseError(storageErr.Error())
	}

	return NewInternalError(err.Error())
}
