package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenMint represents the token_mints table - append-only record of confirmed mints
type TokenMint struct {
	// TransactionHash is the mint transaction and primary key
	TransactionHash string `gorm:"column:transaction_hash;primaryKey;type:text"`
	// BankAddress is the issuing bank (lower-case)
	BankAddress string `gorm:"column:bank_address;not null;type:text;index"`
	// WalletAddress is the recipient (lower-case)
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;index"`
	// Amount is the minted amount in whole tokens
	Amount      decimal.Decimal `gorm:"column:amount;not null;type:numeric(78,18)"`
	BlockNumber uint64          `gorm:"column:block_number;not null"`
	// AssetID links the mint to a tokenized asset; nil for direct mints
	AssetID  *string   `gorm:"column:asset_id;type:text"`
	MintedAt time.Time `gorm:"column:minted_at;not null;default:now()"`
}

// TableName specifies the table name for the TokenMint model
func (TokenMint) TableName() string {
	return "token_mints"
}
