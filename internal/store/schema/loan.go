package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finara-labs/finara-backend/internal/domain"
)

// Loan represents the loans table
type Loan struct {
	ID          string `gorm:"column:id;primaryKey;type:text"`
	BankAddress string `gorm:"column:bank_address;not null;type:text;index"`
	// BorrowerAddress is the borrowing customer wallet (lower-case)
	BorrowerAddress string `gorm:"column:borrower_address;not null;type:text;index"`
	// OnchainLoanID comes from the LoanCreated event; nil when the event was not found
	OnchainLoanID    *string         `gorm:"column:onchain_loan_id;type:text"`
	CollateralAmount decimal.Decimal `gorm:"column:collateral_amount;not null;type:numeric(78,18)"`
	LoanAmount       decimal.Decimal `gorm:"column:loan_amount;not null;type:numeric(78,18)"`
	// InterestRate is in basis points
	InterestRate int64 `gorm:"column:interest_rate;not null"`
	// Duration is in seconds
	Duration        int64             `gorm:"column:duration;not null"`
	Status          domain.LoanStatus `gorm:"column:status;not null;type:text"`
	TransactionHash string            `gorm:"column:transaction_hash;not null;type:text"`
	BlockNumber     uint64            `gorm:"column:block_number;not null"`
	CreatedAt       time.Time         `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Loan model
func (Loan) TableName() string {
	return "loans"
}
