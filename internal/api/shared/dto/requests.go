package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finara-labs/finara-backend/internal/api/shared/constants"
	apierrors "github.com/finara-labs/finara-backend/internal/api/shared/errors"
	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/tokenization"
)

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func validateAddress(field, address string) error {
	if !domain.IsHexAddress(address) {
		return apierrors.NewValidationError(fmt.Sprintf("Invalid %s: %s", field, address))
	}
	return nil
}

// DeployBankRequest represents the request body for deploying a bank's contracts
type DeployBankRequest struct {
	BankAddress string `json:"bankAddress"`
	BankName    string `json:"bankName"`
	TokenName   string `json:"tokenName"`
	TokenSymbol string `json:"tokenSymbol"`
	// MaxSupply defaults to DEFAULT_MAX_SUPPLY whole tokens
	MaxSupply *decimal.Decimal `json:"maxSupply"`
	// CollateralizationRatio defaults to 150 percent
	CollateralizationRatio *int64 `json:"collateralizationRatio"`
}

// Validate validates the request body and applies defaults
func (r *DeployBankRequest) Validate() error {
	if blank(r.BankAddress, r.BankName, r.TokenName, r.TokenSymbol) {
		return apierrors.NewValidationError("Missing required fields: bankAddress, bankName, tokenName, tokenSymbol")
	}

	if err := validateAddress("bank address", r.BankAddress); err != nil {
		return err
	}

	if r.MaxSupply == nil {
		maxSupply := decimal.NewFromInt(constants.DEFAULT_MAX_SUPPLY)
		r.MaxSupply = &maxSupply
	}
	if !r.MaxSupply.IsPositive() {
		return apierrors.NewValidationError("Max supply must be greater than 0")
	}

	if r.CollateralizationRatio == nil {
		ratio := int64(domain.DEFAULT_COLLATERALIZATION_RATIO)
		r.CollateralizationRatio = &ratio
	}
	if *r.CollateralizationRatio < 100 {
		return apierrors.NewValidationError("Collateralization ratio must be at least 100")
	}

	return nil
}

// CustomerRow represents one customer of an upload
type CustomerRow struct {
	Name          string `json:"name"`
	AccountID     string `json:"accountId"`
	WalletAddress string `json:"walletAddress"`
}

// UploadCustomersRequest represents the request body for onboarding customers
type UploadCustomersRequest struct {
	BankAddress string        `json:"bankAddress"`
	Customers   []CustomerRow `json:"customers"`
}

// Validate validates the request body
func (r *UploadCustomersRequest) Validate() error {
	if blank(r.BankAddress) || len(r.Customers) == 0 {
		return apierrors.NewValidationError("Missing required fields: bankAddress, customers")
	}

	if err := validateAddress("bank address", r.BankAddress); err != nil {
		return err
	}

	if len(r.Customers) > constants.MAX_CUSTOMERS_PER_UPLOAD {
		return apierrors.NewValidationError(fmt.Sprintf("Maximum %d customers per upload", constants.MAX_CUSTOMERS_PER_UPLOAD))
	}

	for i, c := range r.Customers {
		if blank(c.Name, c.WalletAddress) {
			return apierrors.NewValidationError(fmt.Sprintf("Customer %d: name and walletAddress are required", i+1))
		}
		if err := validateAddress("wallet address", c.WalletAddress); err != nil {
			return err
		}
	}

	return nil
}

// MintTokenRequest represents the request body for a direct mint
type MintTokenRequest struct {
	BankAddress   string           `json:"bankAddress"`
	WalletAddress string           `json:"walletAddress"`
	Amount        *decimal.Decimal `json:"amount"`
}

// Validate validates the request body
func (r *MintTokenRequest) Validate() error {
	if blank(r.BankAddress, r.WalletAddress) || r.Amount == nil {
		return apierrors.NewValidationError("Missing required fields: bankAddress, walletAddress, amount")
	}

	if !r.Amount.IsPositive() {
		return apierrors.NewValidationError("Amount must be greater than 0")
	}

	if err := validateAddress("bank address", r.BankAddress); err != nil {
		return err
	}
	return validateAddress("wallet address", r.WalletAddress)
}

// LendRequest represents the request body for creating a loan
type LendRequest struct {
	BankAddress      string           `json:"bankAddress"`
	BorrowerAddress  string           `json:"borrowerAddress"`
	CollateralAmount *decimal.Decimal `json:"collateralAmount"`
	LoanAmount       *decimal.Decimal `json:"loanAmount"`
	// InterestRate is in basis points
	InterestRate *int64 `json:"interestRate"`
	// Duration is in seconds
	Duration *int64 `json:"duration"`
}

// Validate validates the request body
func (r *LendRequest) Validate() error {
	if blank(r.BankAddress, r.BorrowerAddress) ||
		r.CollateralAmount == nil ||
		r.LoanAmount == nil ||
		r.InterestRate == nil ||
		r.Duration == nil {
		return apierrors.NewValidationError("Missing required fields: bankAddress, borrowerAddress, collateralAmount, loanAmount, interestRate, duration")
	}

	if !r.CollateralAmount.IsPositive() || !r.LoanAmount.IsPositive() {
		return apierrors.NewValidationError("Collateral and loan amounts must be greater than 0")
	}
	if *r.InterestRate < 0 {
		return apierrors.NewValidationError("Interest rate must not be negative")
	}
	if *r.Duration <= 0 {
		return apierrors.NewValidationError("Duration must be greater than 0")
	}

	if err := validateAddress("bank address", r.BankAddress); err != nil {
		return err
	}
	return validateAddress("borrower address", r.BorrowerAddress)
}

// TokenizeRequest represents the request body for tokenizing an asset.
// Field validation happens in the tokenization workflow.
type TokenizeRequest struct {
	BankAddress       string           `json:"bankAddress"`
	CustomerWallet    string           `json:"customerWallet"`
	AssetType         string           `json:"assetType"`
	AssetDescription  string           `json:"assetDescription"`
	AssetValue        *decimal.Decimal `json:"assetValue"`
	TokenizationRatio *decimal.Decimal `json:"tokenizationRatio"`
}

// ToWorkflowRequest converts the body into a workflow request
func (r *TokenizeRequest) ToWorkflowRequest() tokenization.Request {
	return tokenization.Request{
		BankAddress:    r.BankAddress,
		CustomerWallet: r.CustomerWallet,
		AssetType:      r.AssetType,
		Description:    r.AssetDescription,
		Value:          r.AssetValue,
		Ratio:          r.TokenizationRatio,
	}
}
