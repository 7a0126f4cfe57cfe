package relayer

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/finara-labs/finara-backend/internal/domain"
)

// ToWei converts a whole-token amount into 18-decimal fixed point.
// Digits beyond 18 decimals are truncated.
func ToWei(amount decimal.Decimal) *big.Int {
	return amount.Shift(domain.TOKEN_DECIMALS).BigInt()
}

// FromUnits converts a raw on-chain amount into a decimal with the given decimals
func FromUnits(raw *big.Int, decimals uint8) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -int32(decimals))
}

// FormatEther renders a wei amount as ether
func FormatEther(wei *big.Int) string {
	return FromUnits(wei, domain.TOKEN_DECIMALS).String()
}
