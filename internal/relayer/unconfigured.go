package relayer

import (
	"context"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/finara-labs/finara-backend/internal/domain"
)

// unconfiguredRelayer is the demo-mode relayer. It performs no network I/O.
type unconfiguredRelayer struct{}

// NewUnconfigured creates a relayer that fails every chain operation
func NewUnconfigured() Relayer {
	return &unconfiguredRelayer{}
}

func notConfigured() error {
	return domain.NewChainError("", domain.ErrRelayerNotConfigured)
}

func (u *unconfiguredRelayer) Configured() bool {
	return false
}

func (u *unconfiguredRelayer) Address() string {
	return domain.ETHEREUM_ZERO_ADDRESS
}

func (u *unconfiguredRelayer) Balance(context.Context) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (u *unconfiguredRelayer) NetworkInfo(context.Context) (*NetworkInfo, error) {
	return nil, notConfigured()
}

func (u *unconfiguredRelayer) DeployBank(context.Context, DeployBankRequest) (*DeployBankResult, error) {
	return nil, notConfigured()
}

func (u *unconfiguredRelayer) AuthorizeRelayer(context.Context, string) (*TxResult, error) {
	return nil, notConfigured()
}

func (u *unconfiguredRelayer) VerifyCustomers(context.Context, string, []string) (*VerifyResult, error) {
	return nil, notConfigured()
}

func (u *unconfiguredRelayer) MintToken(context.Context, string, string, decimal.Decimal) (*TxResult, error) {
	return nil, notConfigured()
}

func (u *unconfiguredRelayer) CreateLoan(context.Context, CreateLoanRequest) (*LoanResult, error) {
	return nil, notConfigured()
}

func (u *unconfiguredRelayer) TokenBalance(context.Context, string, string) (*TokenBalance, error) {
	return nil, notConfigured()
}

func (u *unconfiguredRelayer) FactoryOwner(context.Context) (string, error) {
	return "", notConfigured()
}

func (u *unconfiguredRelayer) TransferFactoryOwnership(context.Context, string) (*TxResult, error) {
	return nil, notConfigured()
}

func (u *unconfiguredRelayer) Close() {}
