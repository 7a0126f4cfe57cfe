package dto

import (
	"github.com/finara-labs/finara-backend/internal/analytics"
	"github.com/finara-labs/finara-backend/internal/relayer"
	"github.com/finara-labs/finara-backend/internal/store/schema"
)

// MapBankToDTO maps a bank row to its response
func MapBankToDTO(bank *schema.Bank) *BankResponse {
	return &BankResponse{
		BankAddress:            bank.BankAddress,
		BankName:               bank.BankName,
		TokenName:              bank.TokenName,
		TokenSymbol:            bank.TokenSymbol,
		MaxSupply:              bank.MaxSupply,
		CollateralizationRatio: bank.CollateralizationRatio,
		TokenAddress:           bank.TokenAddress,
		LendingAddress:         bank.LendingAddress,
		TransactionHash:        bank.TransactionHash,
		BlockNumber:            bank.BlockNumber,
		DeployedAt:             bank.DeployedAt,
	}
}

// MapCustomerToDTO maps a customer row to its response
func MapCustomerToDTO(c *schema.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		BankAddress:   c.BankAddress,
		WalletAddress: c.WalletAddress,
		Name:          c.Name,
		AccountID:     c.AccountID,
		KYCVerified:   c.KYCVerified,
		VerifiedAt:    c.VerifiedAt,
		Frozen:        c.Frozen,
		CreatedAt:     c.CreatedAt,
	}
}

// MapCustomersToDTO maps customer rows, never returning nil
func MapCustomersToDTO(customers []schema.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = MapCustomerToDTO(&customers[i])
	}
	return out
}

// MapAssetToDTO maps an asset row to its response
func MapAssetToDTO(a *schema.Asset) AssetResponse {
	return AssetResponse{
		AssetID:           a.AssetID,
		BankAddress:       a.BankAddress,
		CustomerWallet:    a.CustomerWallet,
		AssetType:         a.AssetType,
		AssetDescription:  a.Description,
		AssetValue:        a.AssetValue,
		TokenizationRatio: a.TokenizationRatio,
		TokenAmount:       a.TokenAmount,
		Status:            a.Status,
		Metadata:          a.MetadataMap(),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// MapAssetsToDTO maps asset rows, never returning nil
func MapAssetsToDTO(assets []schema.Asset) []AssetResponse {
	out := make([]AssetResponse, len(assets))
	for i := range assets {
		out[i] = MapAssetToDTO(&assets[i])
	}
	return out
}

// MapTokenMintsToDTO maps mint rows, never returning nil
func MapTokenMintsToDTO(mints []schema.TokenMint) []TokenMintResponse {
	out := make([]TokenMintResponse, len(mints))
	for i, m := range mints {
		out[i] = TokenMintResponse{
			TransactionHash: m.TransactionHash,
			BankAddress:     m.BankAddress,
			WalletAddress:   m.WalletAddress,
			Amount:          m.Amount,
			BlockNumber:     m.BlockNumber,
			AssetID:         m.AssetID,
			MintedAt:        m.MintedAt,
		}
	}
	return out
}

// MapLoanToDTO maps a loan row to its response
func MapLoanToDTO(l *schema.Loan) LoanResponse {
	return LoanResponse{
		ID:               l.ID,
		BankAddress:      l.BankAddress,
		BorrowerAddress:  l.BorrowerAddress,
		LoanID:           l.OnchainLoanID,
		CollateralAmount: l.CollateralAmount,
		LoanAmount:       l.LoanAmount,
		InterestRate:     l.InterestRate,
		Duration:         l.Duration,
		Status:           l.Status,
		TransactionHash:  l.TransactionHash,
		BlockNumber:      l.BlockNumber,
		CreatedAt:        l.CreatedAt,
	}
}

// MapLoansToDTO maps loan rows, never returning nil
func MapLoansToDTO(loans []schema.Loan) []LoanResponse {
	out := make([]LoanResponse, len(loans))
	for i := range loans {
		out[i] = MapLoanToDTO(&loans[i])
	}
	return out
}

// MapTokenBalanceToDTO maps an on-chain balance to its response
func MapTokenBalanceToDTO(b *relayer.TokenBalance, tokenAddress, walletAddress string) *TokenBalanceResponse {
	raw := "0"
	if b.Raw != nil {
		raw = b.Raw.String()
	}
	return &TokenBalanceResponse{
		Balance:       b.Balance.String(),
		BalanceRaw:    raw,
		Decimals:      b.Decimals,
		Symbol:        b.Symbol,
		TokenAddress:  tokenAddress,
		WalletAddress: walletAddress,
	}
}

// MapBankAnalyticsToDTO maps a dashboard to its response
func MapBankAnalyticsToDTO(a *analytics.BankAnalytics) *BankAnalyticsResponse {
	return &BankAnalyticsResponse{
		Bank: BankSummaryResponse{
			Name:           a.Bank.Name,
			TokenAddress:   a.Bank.TokenAddress,
			LendingAddress: a.Bank.LendingAddress,
			TokenSymbol:    a.Bank.TokenSymbol,
			DeployedAt:     a.Bank.DeployedAt,
		},
		Stats: BankStatsResponse{
			CustomersCount:            a.Stats.CustomersCount,
			TotalLoans:                a.Stats.TotalLoans,
			TotalLoanAmount:           a.Stats.TotalLoanAmount,
			TotalCollateral:           a.Stats.TotalCollateral,
			TotalTokensMinted:         a.Stats.TotalTokensMinted,
			AvgCollateralizationRatio: a.Stats.AvgCollateralizationRatio,
		},
		RecentActivity: RecentActivityResponse{
			Mints:     MapTokenMintsToDTO(a.RecentActivity.Mints),
			Loans:     MapLoansToDTO(a.RecentActivity.Loans),
			Customers: MapCustomersToDTO(a.RecentActivity.Customers),
		},
	}
}

// MapActivityToDTO maps feed entries, never returning nil
func MapActivityToDTO(items []analytics.ActivityItem) []ActivityItemResponse {
	out := make([]ActivityItemResponse, len(items))
	for i, item := range items {
		out[i] = ActivityItemResponse{
			Type:       item.Type,
			Event:      item.Event,
			Customer:   item.Customer,
			Wallet:     item.Wallet,
			Amount:     item.Amount,
			Collateral: item.Collateral,
			Timestamp:  item.Timestamp,
			TxHash:     item.TxHash,
		}
	}
	return out
}

// MapCustomerAssetsToDTO maps a customer's assets and summary
func MapCustomerAssetsToDTO(a *analytics.CustomerAssets) *CustomerAssetsResponse {
	return &CustomerAssetsResponse{
		Assets: MapAssetsToDTO(a.Assets),
		Summary: AssetSummaryResponse{
			TotalAssets:       a.Summary.TotalAssets,
			TotalValue:        a.Summary.TotalValue,
			TotalTokensIssued: a.Summary.TotalTokensIssued,
			AssetTypes:        a.Summary.AssetTypes,
		},
	}
}

// MapCustomerProfileToDTO maps a customer profile
func MapCustomerProfileToDTO(p *analytics.CustomerProfile) *CustomerProfileResponse {
	resp := &CustomerProfileResponse{
		Customer:     MapCustomerToDTO(p.Customer),
		TokenBalance: p.TokenBalance,
		Loans:        MapLoansToDTO(p.Loans),
		Mints:        MapTokenMintsToDTO(p.Mints),
		Stats: ProfileStatsResponse{
			TotalLoans:    p.Stats.TotalLoans,
			TotalBorrowed: p.Stats.TotalBorrowed,
			TotalMinted:   p.Stats.TotalMinted,
		},
	}
	if p.Bank != nil {
		resp.Bank = &BankBindingsResponse{
			TokenAddress:   p.Bank.TokenAddress,
			TokenSymbol:    p.Bank.TokenSymbol,
			LendingAddress: p.Bank.LendingAddress,
		}
	}
	return resp
}
