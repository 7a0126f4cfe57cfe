package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTokenAmount(t *testing.T) {
	tests := []struct {
		value    string
		ratio    string
		expected string
	}{
		{"1", "1", "1"},
		{"1", "0.5", "0"},
		{"1", "2", "2"},
		{"150000", "1", "150000"},
		{"150000", "0.5", "75000"},
		{"150000", "2", "300000"},
		{"999999", "1", "999999"},
		{"999999", "0.5", "499999"},
		{"999999", "2", "1999998"},
		{"10.75", "1", "10"},
		{"3", "0.333", "0"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s x %s", tt.value, tt.ratio), func(t *testing.T) {
			got := ComputeTokenAmount(decimal.RequireFromString(tt.value), decimal.RequireFromString(tt.ratio))
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestAssetTypeValid(t *testing.T) {
	tests := []struct {
		name     string
		t        AssetType
		expected bool
	}{
		{"gold", AssetTypeGold, true},
		{"real estate", AssetTypeRealEstate, true},
		{"stocks", AssetTypeStocks, true},
		{"mutual funds", AssetTypeMutualFunds, true},
		{"other", AssetTypeOther, true},
		{"empty", AssetType(""), false},
		{"unknown", AssetType("crypto"), false},
		{"wrong case", AssetType("Gold"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.t.Valid())
		})
	}
}

func TestAssetStatusTerminal(t *testing.T) {
	assert.False(t, AssetStatusVerified.Terminal())
	assert.True(t, AssetStatusTokenized.Terminal())
	assert.True(t, AssetStatusFailed.Terminal())
}

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "checksummed address",
			input:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			expected: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		},
		{
			name:     "already lower case",
			input:    "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
			expected: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		},
		{
			name:     "surrounding whitespace",
			input:    "  0xABCDEF0000000000000000000000000000000001 ",
			expected: "0xabcdef0000000000000000000000000000000001",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAddress(tt.input))
		})
	}

	assert.Equal(t, []string{"0xab", "0xcd"}, NormalizeAddresses([]string{"0xAB", "0xCd"}))
}

func TestIsHexAddress(t *testing.T) {
	assert.True(t, IsHexAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.True(t, IsHexAddress(ETHEREUM_ZERO_ADDRESS))
	assert.False(t, IsHexAddress("5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.False(t, IsHexAddress("0x1234"))
	assert.False(t, IsHexAddress("not-an-address"))
}

func TestCollateralizationRatio(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(CollateralizationRatio(decimal.NewFromInt(100), decimal.Zero)))
	assert.Equal(t, "200", CollateralizationRatio(decimal.NewFromInt(200), decimal.NewFromInt(100)).String())
	assert.Equal(t, "133.33", CollateralizationRatio(decimal.NewFromInt(400), decimal.NewFromInt(300)).String())
}

func TestNewAssetID(t *testing.T) {
	a := NewAssetID()
	b := NewAssetID()
	assert.True(t, strings.HasPrefix(a, ASSET_ID_PREFIX))
	assert.NotEqual(t, a, b)
	assert.Equal(t, "gold asset", DefaultAssetDescription(AssetTypeGold))
}

func TestErrors(t *testing.T) {
	t.Run("chain error wraps and reports timeout", func(t *testing.T) {
		err := NewChainError("mint", ErrConfirmationTimeout)
		var ce *ChainError
		require.True(t, errors.As(err, &ce))
		assert.True(t, ce.Timeout())
		assert.True(t, errors.Is(err, ErrConfirmationTimeout))
		assert.Equal(t, "mint: timed out waiting for transaction confirmation", err.Error())
	})

	t.Run("revert is not a timeout", func(t *testing.T) {
		err := NewChainError("mint", ErrTransactionReverted)
		var ce *ChainError
		require.True(t, errors.As(err, &ce))
		assert.False(t, ce.Timeout())
	})

	t.Run("wrapping twice keeps the inner error", func(t *testing.T) {
		inner := NewChainError("", ErrRelayerNotConfigured)
		outer := NewChainError("mint", fmt.Errorf("queued: %w", inner))
		assert.Equal(t, "queued: relayer not configured", outer.Error())
		assert.True(t, IsChainError(outer))
	})

	t.Run("nil errors stay nil", func(t *testing.T) {
		assert.Nil(t, NewChainError("x", nil))
		assert.Nil(t, NewStorageError("x", nil))
	})

	t.Run("storage error", func(t *testing.T) {
		err := NewStorageError("failed to insert asset", errors.New("connection refused"))
		assert.True(t, IsStorageError(err))
		assert.Equal(t, "failed to insert asset: connection refused", err.Error())
	})

	t.Run("not verified message", func(t *testing.T) {
		err := &NotVerifiedError{Wallet: "0xabc"}
		assert.Contains(t, err.Error(), "not KYC verified")
	})

	t.Run("not found message", func(t *testing.T) {
		assert.Equal(t, "Bank not found", NewNotFoundError("Bank", "0x1").Error())
	})
}
