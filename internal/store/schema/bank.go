package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank represents the banks table - one row per bank whose contracts were deployed through the factory
type Bank struct {
	// BankAddress is the bank's lower-case admin address and primary key
	BankAddress string `gorm:"column:bank_address;primaryKey;type:text"`
	// BankName is the display name
	BankName string `gorm:"column:bank_name;not null;type:text"`
	// TokenName is the ERC20 name of the bank token
	TokenName string `gorm:"column:token_name;not null;type:text"`
	// TokenSymbol is the ERC20 symbol of the bank token
	TokenSymbol string `gorm:"column:token_symbol;not null;type:text"`
	// MaxSupply is the token cap in whole tokens
	MaxSupply decimal.Decimal `gorm:"column:max_supply;not null;type:numeric(78,18)"`
	// CollateralizationRatio is the required collateral percentage for loans
	CollateralizationRatio int64 `gorm:"column:collateralization_ratio;not null;default:150"`
	// TokenAddress is the deployed token contract
	TokenAddress string `gorm:"column:token_address;type:text"`
	// LendingAddress is the deployed lending pool contract
	LendingAddress string `gorm:"column:lending_address;type:text"`
	// TransactionHash is the deployment transaction
	TransactionHash string `gorm:"column:transaction_hash;type:text"`
	// BlockNumber is the block the deployment was mined in
	BlockNumber uint64 `gorm:"column:block_number;not null;default:0"`
	// DeployedAt is when the deployment was confirmed
	DeployedAt time.Time `gorm:"column:deployed_at;not null;default:now()"`
}

// TableName specifies the table name for the Bank model
func (Bank) TableName() string {
	return "banks"
}
