package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/logger"
	"github.com/finara-labs/finara-backend/internal/relayer"
	"github.com/finara-labs/finara-backend/internal/store"
	"github.com/finara-labs/finara-backend/internal/store/schema"
)

// Activity labels shown in the feed
const (
	EventTokenMinted = "Token Minted"
	EventLoanCreated = "Loan Created"
	EventKYCApproved = "KYC Approved"

	unknownCustomer = "Unknown"
)

// BankSummary is the bank section of the dashboard
type BankSummary struct {
	Name           string
	TokenAddress   string
	LendingAddress string
	TokenSymbol    string
	DeployedAt     time.Time
}

// BankStats holds the dashboard totals
type BankStats struct {
	CustomersCount    int64
	TotalLoans        int64
	TotalLoanAmount   decimal.Decimal
	TotalCollateral   decimal.Decimal
	TotalTokensMinted decimal.Decimal
	// AvgCollateralizationRatio is collateral/loans*100 with 2 decimals, or "0" without loans
	AvgCollateralizationRatio string
}

// RecentActivity holds the most recent records of each kind
type RecentActivity struct {
	Mints     []schema.TokenMint
	Loans     []schema.Loan
	Customers []schema.Customer
}

// BankAnalytics is the full dashboard of a bank
type BankAnalytics struct {
	Bank           BankSummary
	Stats          BankStats
	RecentActivity RecentActivity
}

// ActivityItem is one entry of the merged activity feed
type ActivityItem struct {
	Type     domain.ActivityType
	Event    string
	Customer string
	Wallet   string
	// Amount is nil for KYC entries
	Amount *decimal.Decimal
	// Collateral is set for loans only
	Collateral *decimal.Decimal
	Timestamp  time.Time
	TxHash     string
}

// AssetSummary totals a customer's assets
type AssetSummary struct {
	TotalAssets       int
	TotalValue        decimal.Decimal
	TotalTokensIssued decimal.Decimal
	// AssetTypes lists distinct types in first-seen order
	AssetTypes []domain.AssetType
}

// CustomerAssets is a customer's assets, newest first, with totals
type CustomerAssets struct {
	Assets  []schema.Asset
	Summary AssetSummary
}

// BankBindings are the contract addresses of a customer's bank
type BankBindings struct {
	TokenAddress   string
	TokenSymbol    string
	LendingAddress string
}

// ProfileStats totals a customer's loans and mints
type ProfileStats struct {
	TotalLoans    int
	TotalBorrowed decimal.Decimal
	TotalMinted   decimal.Decimal
}

// CustomerProfile is a customer with bank bindings, on-chain balance, loans and mints
type CustomerProfile struct {
	Customer *schema.Customer
	// Bank is nil when the customer's bank no longer exists
	Bank *BankBindings
	// TokenBalance is "0" when the balance could not be read
	TokenBalance string
	Loans        []schema.Loan
	Mints        []schema.TokenMint
	Stats        ProfileStats
}

// Aggregator computes read-only dashboard and reporting views
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/analytics_aggregator.go -package=mocks -mock_names=Aggregator=MockAnalyticsAggregator
type Aggregator interface {
	// BankAnalytics returns totals and recent activity of a bank
	BankAnalytics(ctx context.Context, bankAddress string) (*BankAnalytics, error)
	// Activity returns mints, loans and KYC approvals merged newest first
	Activity(ctx context.Context, bankAddress string, limit int) ([]ActivityItem, error)
	// CustomerAssets returns a wallet's assets and their summary
	CustomerAssets(ctx context.Context, walletAddress string) (*CustomerAssets, error)
	// CustomerProfile returns a wallet's customer record, balance, loans and mints
	CustomerProfile(ctx context.Context, walletAddress string) (*CustomerProfile, error)
}

type aggregator struct {
	store   store.Store
	relayer relayer.Relayer
}

// NewAggregator creates an analytics aggregator
func NewAggregator(st store.Store, r relayer.Relayer) Aggregator {
	return &aggregator{store: st, relayer: r}
}

// ClampActivityLimit applies the default and maximum feed sizes
func ClampActivityLimit(limit int) int {
	if limit <= 0 {
		return domain.DEFAULT_ACTIVITY_LIMIT
	}
	if limit > domain.MAX_ACTIVITY_LIMIT {
		return domain.MAX_ACTIVITY_LIMIT
	}
	return limit
}

func (a *aggregator) getBank(ctx context.Context, bankAddress string) (*schema.Bank, error) {
	bank, err := a.store.GetBank(ctx, bankAddress)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domain.NewNotFoundError("Bank", bankAddress)
	}
	return bank, nil
}

func (a *aggregator) BankAnalytics(ctx context.Context, bankAddress string) (*BankAnalytics, error) {
	bank, err := a.getBank(ctx, bankAddress)
	if err != nil {
		return nil, err
	}

	totals, err := a.store.GetBankTotals(ctx, bank.BankAddress)
	if err != nil {
		return nil, err
	}

	mints, err := a.store.GetTokenMintsByBank(ctx, bank.BankAddress, domain.RECENT_ACTIVITY_LIMIT)
	if err != nil {
		return nil, err
	}

	loans, err := a.store.GetLoansByBank(ctx, bank.BankAddress, domain.RECENT_ACTIVITY_LIMIT)
	if err != nil {
		return nil, err
	}

	customers, err := a.store.GetRecentVerifiedCustomers(ctx, bank.BankAddress, domain.RECENT_ACTIVITY_LIMIT)
	if err != nil {
		return nil, err
	}

	avgRatio := "0"
	if totals.TotalLoanAmount.IsPositive() {
		avgRatio = domain.CollateralizationRatio(totals.TotalCollateral, totals.TotalLoanAmount).StringFixed(2)
	}

	return &BankAnalytics{
		Bank: BankSummary{
			Name:           bank.BankName,
			TokenAddress:   bank.TokenAddress,
			LendingAddress: bank.LendingAddress,
			TokenSymbol:    bank.TokenSymbol,
			DeployedAt:     bank.DeployedAt,
		},
		Stats: BankStats{
			CustomersCount:            totals.CustomersCount,
			TotalLoans:                totals.TotalLoans,
			TotalLoanAmount:           totals.TotalLoanAmount,
			TotalCollateral:           totals.TotalCollateral,
			TotalTokensMinted:         totals.TotalTokensMinted,
			AvgCollateralizationRatio: avgRatio,
		},
		RecentActivity: RecentActivity{
			Mints:     mints,
			Loans:     loans,
			Customers: customers,
		},
	}, nil
}

// Activity merges the three streams and sorts them by timestamp, newest first.
// Entries with equal timestamps keep the order mints, loans, KYC.
func (a *aggregator) Activity(ctx context.Context, bankAddress string, limit int) ([]ActivityItem, error) {
	limit = ClampActivityLimit(limit)
	bankAddress = domain.NormalizeAddress(bankAddress)

	mints, err := a.store.GetTokenMintsByBank(ctx, bankAddress, limit)
	if err != nil {
		return nil, err
	}

	loans, err := a.store.GetLoansByBank(ctx, bankAddress, limit)
	if err != nil {
		return nil, err
	}

	verified, err := a.store.GetRecentVerifiedCustomers(ctx, bankAddress, limit)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	if len(mints) > 0 || len(loans) > 0 {
		customers, err := a.store.ListCustomers(ctx, bankAddress)
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			names[c.WalletAddress] = c.Name
		}
	}
	nameOf := func(wallet string) string {
		if name, ok := names[wallet]; ok {
			return name
		}
		return unknownCustomer
	}

	items := make([]ActivityItem, 0, len(mints)+len(loans)+len(verified))
	for _, m := range mints {
		amount := m.Amount
		items = append(items, ActivityItem{
			Type:      domain.ActivityTypeMint,
			Event:     EventTokenMinted,
			Customer:  nameOf(m.WalletAddress),
			Wallet:    m.WalletAddress,
			Amount:    &amount,
			Timestamp: m.MintedAt,
			TxHash:    m.TransactionHash,
		})
	}
	for _, l := range loans {
		amount := l.LoanAmount
		collateral := l.CollateralAmount
		items = append(items, ActivityItem{
			Type:       domain.ActivityTypeLoan,
			Event:      EventLoanCreated,
			Customer:   nameOf(l.BorrowerAddress),
			Wallet:     l.BorrowerAddress,
			Amount:     &amount,
			Collateral: &collateral,
			Timestamp:  l.CreatedAt,
			TxHash:     l.TransactionHash,
		})
	}
	for _, c := range verified {
		if c.VerifiedAt == nil {
			continue
		}
		items = append(items, ActivityItem{
			Type:      domain.ActivityTypeKYC,
			Event:     EventKYCApproved,
			Customer:  c.Name,
			Wallet:    c.WalletAddress,
			Timestamp: *c.VerifiedAt,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (a *aggregator) CustomerAssets(ctx context.Context, walletAddress string) (*CustomerAssets, error) {
	assets, err := a.store.GetAssetsByWallet(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	summary := AssetSummary{
		TotalAssets:       len(assets),
		TotalValue:        decimal.Zero,
		TotalTokensIssued: decimal.Zero,
		AssetTypes:        []domain.AssetType{},
	}
	seen := map[domain.AssetType]bool{}
	for _, asset := range assets {
		summary.TotalValue = summary.TotalValue.Add(asset.AssetValue)
		summary.TotalTokensIssued = summary.TotalTokensIssued.Add(asset.TokenAmount)
		if !seen[asset.AssetType] {
			seen[asset.AssetType] = true
			summary.AssetTypes = append(summary.AssetTypes, asset.AssetType)
		}
	}

	return &CustomerAssets{Assets: assets, Summary: summary}, nil
}

func (a *aggregator) CustomerProfile(ctx context.Context, walletAddress string) (*CustomerProfile, error) {
	customer, err := a.store.GetCustomerByWallet(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFoundError("Customer", walletAddress)
	}

	bank, err := a.store.GetBank(ctx, customer.BankAddress)
	if err != nil {
		return nil, err
	}

	profile := &CustomerProfile{
		Customer:     customer,
		TokenBalance: "0",
		Stats: ProfileStats{
			TotalBorrowed: decimal.Zero,
			TotalMinted:   decimal.Zero,
		},
	}

	if bank != nil {
		profile.Bank = &BankBindings{
			TokenAddress:   bank.TokenAddress,
			TokenSymbol:    bank.TokenSymbol,
			LendingAddress: bank.LendingAddress,
		}
		if bank.TokenAddress != "" {
			balance, err := a.relayer.TokenBalance(ctx, bank.TokenAddress, customer.WalletAddress)
			if err != nil {
				logger.WarnCtx(ctx, "Failed to fetch token balance",
					zap.String("token", bank.TokenAddress),
					zap.String("wallet", customer.WalletAddress),
					zap.Error(err))
			} else {
				profile.TokenBalance = balance.Balance.String()
			}
		}
	}

	profile.Loans, err = a.store.GetLoansByWallet(ctx, customer.WalletAddress)
	if err != nil {
		return nil, err
	}

	profile.Mints, err = a.store.GetTokenMintsByWallet(ctx, customer.WalletAddress)
	if err != nil {
		return nil, err
	}

	profile.Stats.TotalLoans = len(profile.Loans)
	for _, l := range profile.Loans {
		profile.Stats.TotalBorrowed = profile.Stats.TotalBorrowed.Add(l.LoanAmount)
	}
	for _, m := range profile.Mints {
		profile.Stats.TotalMinted = profile.Stats.TotalMinted.Add(m.Amount)
	}

	return profile, nil
}
