package schema

import "time"

// Customer represents the customers table. A wallet is unique per bank.
type Customer struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BankAddress is the owning bank (lower-case)
	BankAddress string `gorm:"column:bank_address;not null;type:text;uniqueIndex:idx_customers_bank_wallet,priority:1"`
	// WalletAddress is the customer wallet (lower-case)
	WalletAddress string `gorm:"column:wallet_address;not null;type:text;uniqueIndex:idx_customers_bank_wallet,priority:2"`
	// Name is the customer's display name
	Name string `gorm:"column:name;not null;type:text"`
	// AccountID is the bank's external account identifier
	AccountID string `gorm:"column:account_id;type:text"`
	// KYCVerified flips to true exactly once, after the on-chain whitelist transaction
	KYCVerified bool `gorm:"column:kyc_verified;not null;default:false"`
	// VerifiedAt is when KYC verification was confirmed
	VerifiedAt *time.Time `gorm:"column:verified_at"`
	// Frozen blocks further mints and loans for a verified customer
	Frozen    bool      `gorm:"column:frozen;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// Eligible reports whether the customer may receive mints and loans
func (c *Customer) Eligible() bool {
	return c != nil && c.KYCVerified && !c.Frozen
}
