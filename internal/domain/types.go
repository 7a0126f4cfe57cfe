package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType represents the category of a declared physical asset
type AssetType string

const (
	AssetTypeGold        AssetType = "gold"
	AssetTypeRealEstate  AssetType = "real-estate"
	AssetTypeStocks      AssetType = "stocks"
	AssetTypeMutualFunds AssetType = "mutual-funds"
	AssetTypeOther       AssetType = "other"
)

// Valid checks if the asset type is one of the supported categories
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeGold, AssetTypeRealEstate, AssetTypeStocks, AssetTypeMutualFunds, AssetTypeOther:
		return true
	default:
		return false
	}
}

// AssetStatus represents the lifecycle of an asset record.
// verified -> tokenized on a confirmed mint, verified -> failed otherwise.
type AssetStatus string

const (
	AssetStatusVerified  AssetStatus = "verified"
	AssetStatusTokenized AssetStatus = "tokenized"
	AssetStatusFailed    AssetStatus = "failed"
)

// Terminal reports whether no further transition is allowed from the status
func (s AssetStatus) Terminal() bool {
	return s == AssetStatusTokenized || s == AssetStatusFailed
}

// LoanStatus represents the state of a loan
type LoanStatus string

const (
	LoanStatusActive LoanStatus = "active"
	LoanStatusRepaid LoanStatus = "repaid"
)

// ActivityType represents the kind of entry in a bank's activity feed
type ActivityType string

const (
	ActivityTypeMint ActivityType = "mint"
	ActivityTypeLoan ActivityType = "loan"
	ActivityTypeKYC  ActivityType = "kyc"
)

// Metadata keys stored on an asset
const (
	MetadataKeyTokenizationRatio = "tokenizationRatio"
	MetadataKeyTokenSymbol       = "tokenSymbol"
	MetadataKeyTokenizedAt       = "tokenizedAt"
	MetadataKeyTransactionHash   = "transactionHash"
	MetadataKeyBlockNumber       = "blockNumber"
	MetadataKeyError             = "error"
	MetadataKeyFailedAt          = "failedAt"
)

// NormalizeAddress lower-cases a hex address so every comparison is case-insensitive
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// NormalizeAddresses normalizes every address in the slice
func NormalizeAddresses(addresses []string) []string {
	normalized := make([]string, len(addresses))
	for i, a := range addresses {
		normalized[i] = NormalizeAddress(a)
	}
	return normalized
}

// IsHexAddress checks if the address is a 20-byte hex address with 0x prefix
func IsHexAddress(address string) bool {
	address = strings.TrimSpace(address)
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}

// IsZeroAddress reports whether address is the all-zero placeholder
func IsZeroAddress(address string) bool {
	return NormalizeAddress(address) == ETHEREUM_ZERO_ADDRESS
}

// DefaultTokenizationRatio is applied when a tokenization request omits the ratio
var DefaultTokenizationRatio = decimal.NewFromInt(1)

// ComputeTokenAmount returns floor(value * ratio)
func ComputeTokenAmount(value, ratio decimal.Decimal) decimal.Decimal {
	return value.Mul(ratio).Floor()
}

// CollateralizationRatio returns collateral/loan*100 rounded to 2 places, or zero with no loans
func CollateralizationRatio(totalCollateral, totalLoan decimal.Decimal) decimal.Decimal {
	if !totalLoan.IsPositive() {
		return decimal.Zero
	}
	return totalCollateral.Div(totalLoan).Mul(decimal.NewFromInt(100)).Round(2)
}

// NewAssetID generates a collision-resistant asset identifier
func NewAssetID() string {
	return ASSET_ID_PREFIX + uuid.NewString()
}

// DefaultAssetDescription returns the description used when a request omits one
func DefaultAssetDescription(t AssetType) string {
	return string(t) + " asset"
}
