package schema

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/finara-labs/finara-backend/internal/domain"
)

// Asset represents the assets table - a declared physical asset and its tokenization outcome
type Asset struct {
	// AssetID is the generated identifier, e.g. ASSET-<uuid>
	AssetID string `gorm:"column:asset_id;primaryKey;type:text"`
	// BankAddress is the issuing bank (lower-case)
	BankAddress string `gorm:"column:bank_address;not null;type:text;index"`
	// CustomerWallet is the owner and mint recipient (lower-case)
	CustomerWallet string `gorm:"column:customer_wallet;not null;type:text;index"`
	// AssetType is the category (gold, real-estate, stocks, mutual-funds, other)
	AssetType domain.AssetType `gorm:"column:asset_type;not null;type:text"`
	// Description is free text; defaults to "<type> asset"
	Description string `gorm:"column:asset_description;type:text"`
	// AssetValue is the declared monetary value
	AssetValue decimal.Decimal `gorm:"column:asset_value;not null;type:numeric(78,18)"`
	// TokenizationRatio is tokens per currency unit
	TokenizationRatio decimal.Decimal `gorm:"column:tokenization_ratio;not null;type:numeric(78,18)"`
	// TokenAmount is floor(AssetValue * TokenizationRatio)
	TokenAmount decimal.Decimal `gorm:"column:token_amount;not null;type:numeric(78,18)"`
	// Status is verified until the mint outcome is known
	Status domain.AssetStatus `gorm:"column:status;not null;type:text;index"`
	// Metadata holds ratio, symbol, timestamps, tx hash, block number or error as canonical JSON
	Metadata  datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}

// MetadataMap decodes the metadata column. Undecodable or empty metadata yields an empty map.
func (a *Asset) MetadataMap() map[string]any {
	m := map[string]any{}
	if a == nil || len(a.Metadata) == 0 {
		return m
	}
	if err := json.Unmarshal(a.Metadata, &m); err != nil {
		return map[string]any{}
	}
	return m
}
