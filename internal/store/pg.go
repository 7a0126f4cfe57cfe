package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gowebpki/jcs"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/finara-labs/finara-backend/internal/domain"
	"github.com/finara-labs/finara-backend/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool of the underlying *sql.DB.
// Zero settings fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// ConfigureReadReplica routes read queries to the replica at readDSN. Writes and transactions stay on the primary.
func ConfigureReadReplica(db *gorm.DB, readDSN string) error {
	err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(readDSN)},
		Policy:   dbresolver.RandomPolicy{},
	}))
	if err != nil {
		return fmt.Errorf("failed to register read replica: %w", err)
	}
	return nil
}

// marshalMetadata encodes metadata as RFC 8785 canonical JSON
func marshalMetadata(metadata map[string]any) (datatypes.JSON, error) {
	if metadata == nil {
		return nil, nil
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize metadata: %w", err)
	}
	return datatypes.JSON(canonical), nil
}

// first runs a single-row lookup and maps not-found to (false, nil)
func first(query *gorm.DB, dest any) (bool, error) {
	err := query.First(dest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// =============================================================================
// Banks
// =============================================================================

// CreateBank persists a deployed bank
func (s *pgStore) CreateBank(ctx context.Context, input CreateBankInput) (*schema.Bank, error) {
	bank := schema.Bank{
		BankAddress:            domain.NormalizeAddress(input.BankAddress),
		BankName:               input.BankName,
		TokenName:              input.TokenName,
		TokenSymbol:            input.TokenSymbol,
		MaxSupply:              input.MaxSupply,
		CollateralizationRatio: input.CollateralizationRatio,
		TokenAddress:           domain.NormalizeAddress(input.TokenAddress),
		LendingAddress:         domain.NormalizeAddress(input.LendingAddress),
		TransactionHash:        input.TransactionHash,
		BlockNumber:            input.BlockNumber,
		DeployedAt:             input.DeployedAt,
	}

	if err := s.db.WithContext(ctx).Create(&bank).Error; err != nil {
		return nil, domain.NewStorageError("failed to create bank", err)
	}

	return &bank, nil
}

// GetBank retrieves a bank by its address
func (s *pgStore) GetBank(ctx context.Context, bankAddress string) (*schema.Bank, error) {
	var bank schema.Bank
	found, err := first(s.db.WithContext(ctx).Where("bank_address = ?", domain.NormalizeAddress(bankAddress)), &bank)
	if err != nil {
		return nil, domain.NewStorageError("failed to get bank", err)
	}
	if !found {
		return nil, nil
	}
	return &bank, nil
}

// ListBanks retrieves all banks, newest first
func (s *pgStore) ListBanks(ctx context.Context) ([]schema.Bank, error) {
	var banks []schema.Bank
	if err := s.db.WithContext(ctx).Order("deployed_at DESC").Find(&banks).Error; err != nil {
		return nil, domain.NewStorageError("failed to list banks", err)
	}
	return banks, nil
}

// =============================================================================
// Customers
// =============================================================================

// UpsertCustomers inserts customers for a bank, refreshing name and account ID of existing wallets
func (s *pgStore) UpsertCustomers(ctx context.Context, bankAddress string, customers []CustomerInput) (int, error) {
	if len(customers) == 0 {
		return 0, nil
	}

	bankAddress = domain.NormalizeAddress(bankAddress)
	rows := make([]schema.Customer, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, schema.Customer{
			BankAddress:   bankAddress,
			WalletAddress: domain.NormalizeAddress(c.WalletAddress),
			Name:          c.Name,
			AccountID:     c.AccountID,
		})
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bank_address"}, {Name: "wallet_address"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "account_id"}),
	}).Create(&rows).Error
	if err != nil {
		return 0, domain.NewStorageError("failed to upsert customers", err)
	}

	return len(rows), nil
}

// GetCustomer retrieves a customer of a bank by wallet.
// A miss on the replica is retried on the primary since KYC gates read right after verification.
func (s *pgStore) GetCustomer(ctx context.Context, bankAddress, walletAddress string) (*schema.Customer, error) {
	query := func(db *gorm.DB) (*schema.Customer, bool, error) {
		var customer schema.Customer
		found, err := first(db.WithContext(ctx).
			Where("bank_address = ? AND wallet_address = ?",
				domain.NormalizeAddress(bankAddress),
				domain.NormalizeAddress(walletAddress)), &customer)
		return &customer, found, err
	}

	customer, found, err := query(s.db)
	if err != nil {
		return nil, domain.NewStorageError("failed to get customer", err)
	}
	if found {
		return customer, nil
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	customer, found, err = query(s.db.Clauses(dbresolver.Write))
	if err != nil {
		return nil, domain.NewStorageError("failed to get customer", err)
	}
	if !found {
		return nil, nil
	}
	return customer, nil
}

// GetCustomerByWallet retrieves the earliest registration of a wallet across banks
func (s *pgStore) GetCustomerByWallet(ctx context.Context, walletAddress string) (*schema.Customer, error) {
	var customer schema.Customer
	err := s.db.WithContext(ctx).
		Where("wallet_address = ?", domain.NormalizeAddress(walletAddress)).
		Order("created_at ASC").
		Order("id ASC").
		Take(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, domain.NewStorageError("failed to get customer by wallet", err)
	}
	return &customer, nil
}

// ListCustomers retrieves all customers of a bank, newest first
func (s *pgStore) ListCustomers(ctx context.Context, bankAddress string) ([]schema.Customer, error) {
	var customers []schema.Customer
	err := s.db.WithContext(ctx).
		Where("bank_address = ?", domain.NormalizeAddress(bankAddress)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&customers).Error
	if err != nil {
		return nil, domain.NewStorageError("failed to list customers", err)
	}
	return customers, nil
}

// MarkCustomersVerified sets the KYC flag on unverified customers and returns how many changed
func (s *pgStore) MarkCustomersVerified(ctx context.Context, bankAddress string, walletAddresses []string, verifiedAt time.Time) (int64, error) {
	if len(walletAddresses) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Customer{}).
		Where("bank_address = ? AND wallet_address IN ? AND kyc_verified = ?",
			domain.NormalizeAddress(bankAddress),
			domain.NormalizeAddresses(walletAddresses),
			false).
		Updates(map[string]any{
			"kyc_verified": true,
			"verified_at":  verifiedAt,
		})
	if result.Error != nil {
		return 0, domain.NewStorageError("failed to mark customers verified", result.Error)
	}

	return result.RowsAffected, nil
}

// FreezeCustomer freezes a customer and reports whether the customer exists
func (s *pgStore) FreezeCustomer(ctx context.Context, bankAddress, walletAddress string) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Customer{}).
		Where("bank_address = ? AND wallet_address = ?",
			domain.NormalizeAddress(bankAddress),
			domain.NormalizeAddress(walletAddress)).
		Update("frozen", true)
	if result.Error != nil {
		return false, domain.NewStorageError("failed to freeze customer", result.Error)
	}

	return result.RowsAffected > 0, nil
}

// GetRecentVerifiedCustomers retrieves verified customers of a bank by verification time, newest first
func (s *pgStore) GetRecentVerifiedCustomers(ctx context.Context, bankAddress string, limit int) ([]schema.Customer, error) {
	query := s.db.WithContext(ctx).
		Where("bank_address = ? AND kyc_verified = ? AND verified_at IS NOT NULL",
			domain.NormalizeAddress(bankAddress), true).
		Order("verified_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var customers []schema.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, domain.NewStorageError("failed to get recent verified customers", err)
	}
	return customers, nil
}

// =============================================================================
// Assets
// =============================================================================

// CreateAsset persists a new asset
func (s *pgStore) CreateAsset(ctx context.Context, input CreateAssetInput) (*schema.Asset, error) {
	metadata, err := marshalMetadata(input.Metadata)
	if err != nil {
		return nil, domain.NewStorageError("failed to create asset", err)
	}

	asset := schema.Asset{
		AssetID:           input.AssetID,
		BankAddress:       domain.NormalizeAddress(input.BankAddress),
		CustomerWallet:    domain.NormalizeAddress(input.CustomerWallet),
		AssetType:         input.AssetType,
		Description:       input.Description,
		AssetValue:        input.AssetValue,
		TokenizationRatio: input.TokenizationRatio,
		TokenAmount:       input.TokenAmount,
		Status:            input.Status,
		Metadata:          metadata,
		CreatedAt:         input.CreatedAt,
		UpdatedAt:         input.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Create(&asset).Error; err != nil {
		return nil, domain.NewStorageError("failed to create asset", err)
	}

	return &asset, nil
}

// updateAssetTx locks the asset row, merges metadata and sets the status
func updateAssetTx(tx *gorm.DB, assetID string, input UpdateAssetInput) (*schema.Asset, error) {
	var asset schema.Asset
	found, err := first(tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("asset_id = ?", assetID), &asset)
	if err != nil || !found {
		return nil, err
	}

	if input.ExpectedStatus != "" && asset.Status != input.ExpectedStatus {
		return nil, fmt.Errorf("%w: asset %s is %s, expected %s", domain.ErrAssetStatusConflict, assetID, asset.Status, input.ExpectedStatus)
	}
	if input.Status != "" && input.Status != asset.Status && asset.Status.Terminal() {
		return nil, fmt.Errorf("%w: asset %s is already %s", domain.ErrAssetStatusConflict, assetID, asset.Status)
	}

	merged := asset.MetadataMap()
	for k, v := range input.Metadata {
		merged[k] = v
	}
	metadata, err := marshalMetadata(merged)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"metadata":   metadata,
		"updated_at": time.Now(),
	}
	if input.Status != "" {
		updates["status"] = input.Status
	}

	if err := tx.Model(&schema.Asset{}).Where("asset_id = ?", assetID).Updates(updates).Error; err != nil {
		return nil, err
	}

	asset.Metadata = metadata
	asset.UpdatedAt = updates["updated_at"].(time.Time)
	if input.Status != "" {
		asset.Status = input.Status
	}
	return &asset, nil
}

// UpdateAsset sets the asset status and merges metadata keys
func (s *pgStore) UpdateAsset(ctx context.Context, assetID string, input UpdateAssetInput) (*schema.Asset, error) {
	var asset *schema.Asset
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		asset, err = updateAssetTx(tx, assetID, input)
		return err
	})
	if err != nil {
		return nil, domain.NewStorageError("failed to update asset", err)
	}
	return asset, nil
}

// CompleteTokenization inserts the mint record and marks the asset tokenized in one transaction
func (s *pgStore) CompleteTokenization(ctx context.Context, input CompleteTokenizationInput) (*schema.Asset, *schema.TokenMint, error) {
	var asset *schema.Asset
	var mint schema.TokenMint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assetID := input.AssetID
		mint = schema.TokenMint{
			TransactionHash: input.Mint.TransactionHash,
			BankAddress:     domain.NormalizeAddress(input.Mint.BankAddress),
			WalletAddress:   domain.NormalizeAddress(input.Mint.WalletAddress),
			Amount:          input.Mint.Amount,
			BlockNumber:     input.Mint.BlockNumber,
			AssetID:         &assetID,
			MintedAt:        input.Mint.MintedAt,
		}
		if err := tx.Create(&mint).Error; err != nil {
			return fmt.Errorf("failed to create token mint: %w", err)
		}

		var err error
		asset, err = updateAssetTx(tx, assetID, UpdateAssetInput{
			Status:         domain.AssetStatusTokenized,
			Metadata:       input.Metadata,
			ExpectedStatus: domain.AssetStatusVerified,
		})
		if err != nil {
			return err
		}
		if asset == nil {
			return fmt.Errorf("asset %s disappeared during tokenization", assetID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, domain.NewStorageError("failed to complete tokenization", err)
	}

	return asset, &mint, nil
}

// GetAsset retrieves an asset by ID
func (s *pgStore) GetAsset(ctx context.Context, assetID string) (*schema.Asset, error) {
	var asset schema.Asset
	found, err := first(s.db.WithContext(ctx).Where("asset_id = ?", assetID), &asset)
	if err != nil {
		return nil, domain.NewStorageError("failed to get asset", err)
	}
	if !found {
		return nil, nil
	}
	return &asset, nil
}

// GetAssetsByWallet retrieves a wallet's assets, newest first
func (s *pgStore) GetAssetsByWallet(ctx context.Context, walletAddress string) ([]schema.Asset, error) {
	var assets []schema.Asset
	err := s.db.WithContext(ctx).
		Where("customer_wallet = ?", domain.NormalizeAddress(walletAddress)).
		Order("created_at DESC").
		Find(&assets).Error
	if err != nil {
		return nil, domain.NewStorageError("failed to get assets by wallet", err)
	}
	return assets, nil
}

// GetStaleAssets retrieves assets stuck in a status since before olderThan, oldest first
func (s *pgStore) GetStaleAssets(ctx context.Context, status domain.AssetStatus, olderThan time.Time, limit int) ([]schema.Asset, error) {
	db := s.db
	if hasDBResolver(db) {
		db = db.Clauses(dbresolver.Write)
	}
	query := db.WithContext(ctx).
		Where("status = ? AND created_at < ?", status, olderThan).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var assets []schema.Asset
	if err := query.Find(&assets).Error; err != nil {
		return nil, domain.NewStorageError("failed to get stale assets", err)
	}
	return assets, nil
}

// =============================================================================
// Token mints
// =============================================================================

// CreateTokenMint persists a direct mint
func (s *pgStore) CreateTokenMint(ctx context.Context, input CreateTokenMintInput) (*schema.TokenMint, error) {
	mint := schema.TokenMint{
		TransactionHash: input.TransactionHash,
		BankAddress:     domain.NormalizeAddress(input.BankAddress),
		WalletAddress:   domain.NormalizeAddress(input.WalletAddress),
		Amount:          input.Amount,
		BlockNumber:     input.BlockNumber,
		AssetID:         input.AssetID,
		MintedAt:        input.MintedAt,
	}

	if err := s.db.WithContext(ctx).Create(&mint).Error; err != nil {
		return nil, domain.NewStorageError("failed to create token mint", err)
	}

	return &mint, nil
}

// GetTokenMintsByBank retrieves a bank's mints, newest first
func (s *pgStore) GetTokenMintsByBank(ctx context.Context, bankAddress string, limit int) ([]schema.TokenMint, error) {
	query := s.db.WithContext(ctx).
		Where("bank_address = ?", domain.NormalizeAddress(bankAddress)).
		Order("minted_at DESC").
		Order("seq DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var mints []schema.TokenMint
	if err := query.Find(&mints).Error; err != nil {
		return nil, domain.NewStorageError("failed to get token mints by bank", err)
	}
	return mints, nil
}

// GetTokenMintsByWallet retrieves a wallet's mints, newest first
func (s *pgStore) GetTokenMintsByWallet(ctx context.Context, walletAddress string) ([]schema.TokenMint, error) {
	var mints []schema.TokenMint
	err := s.db.WithContext(ctx).
		Where("wallet_address = ?", domain.NormalizeAddress(walletAddress)).
		Order("minted_at DESC").
		Order("seq DESC").
		Find(&mints).Error
	if err != nil {
		return nil, domain.NewStorageError("failed to get token mints by wallet", err)
	}
	return mints, nil
}

// =============================================================================
// Loans
// =============================================================================

// CreateLoan persists a loan
func (s *pgStore) CreateLoan(ctx context.Context, input CreateLoanInput) (*schema.Loan, error) {
	loan := schema.Loan{
		ID:               input.ID,
		BankAddress:      domain.NormalizeAddress(input.BankAddress),
		BorrowerAddress:  domain.NormalizeAddress(input.BorrowerAddress),
		OnchainLoanID:    input.OnchainLoanID,
		CollateralAmount: input.CollateralAmount,
		LoanAmount:       input.LoanAmount,
		InterestRate:     input.InterestRate,
		Duration:         input.Duration,
		Status:           domain.LoanStatusActive,
		TransactionHash:  input.TransactionHash,
		BlockNumber:      input.BlockNumber,
		CreatedAt:        input.CreatedAt,
	}

	if err := s.db.WithContext(ctx).Create(&loan).Error; err != nil {
		return nil, domain.NewStorageError("failed to create loan", err)
	}

	return &loan, nil
}

// GetLoansByBank retrieves a bank's loans, newest first
func (s *pgStore) GetLoansByBank(ctx context.Context, bankAddress string, limit int) ([]schema.Loan, error) {
	query := s.db.WithContext(ctx).
		Where("bank_address = ?", domain.NormalizeAddress(bankAddress)).
		Order("created_at DESC").
		Order("seq DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var loans []schema.Loan
	if err := query.Find(&loans).Error; err != nil {
		return nil, domain.NewStorageError("failed to get loans by bank", err)
	}
	return loans, nil
}

// GetLoansByBorrower retrieves a borrower's loans at a bank, newest first
func (s *pgStore) GetLoansByBorrower(ctx context.Context, bankAddress, borrowerAddress string) ([]schema.Loan, error) {
	var loans []schema.Loan
	err := s.db.WithContext(ctx).
		Where("bank_address = ? AND borrower_address = ?",
			domain.NormalizeAddress(bankAddress),
			domain.NormalizeAddress(borrowerAddress)).
		Order("created_at DESC").
		Order("seq DESC").
		Find(&loans).Error
	if err != nil {
		return nil, domain.NewStorageError("failed to get loans by borrower", err)
	}
	return loans, nil
}

// GetLoansByWallet retrieves a borrower's loans across banks, newest first
func (s *pgStore) GetLoansByWallet(ctx context.Context, walletAddress string) ([]schema.Loan, error) {
	var loans []schema.Loan
	err := s.db.WithContext(ctx).
		Where("borrower_address = ?", domain.NormalizeAddress(walletAddress)).
		Order("created_at DESC").
		Order("seq DESC").
		Find(&loans).Error
	if err != nil {
		return nil, domain.NewStorageError("failed to get loans by wallet", err)
	}
	return loans, nil
}

// =============================================================================
// Aggregates
// =============================================================================

// GetBankTotals aggregates customer, loan and mint figures for a bank
func (s *pgStore) GetBankTotals(ctx context.Context, bankAddress string) (*BankTotals, error) {
	bankAddress = domain.NormalizeAddress(bankAddress)
	db := s.db.WithContext(ctx)
	var totals BankTotals

	if err := db.Model(&schema.Customer{}).
		Where("bank_address = ?", bankAddress).
		Count(&totals.CustomersCount).Error; err != nil {
		return nil, domain.NewStorageError("failed to count customers", err)
	}

	var loanAgg struct {
		LoanCount     int64
		LoanSum       decimal.Decimal
		CollateralSum decimal.Decimal
	}
	if err := db.Model(&schema.Loan{}).
		Select("COUNT(*) AS loan_count, COALESCE(SUM(loan_amount), 0) AS loan_sum, COALESCE(SUM(collateral_amount), 0) AS collateral_sum").
		Where("bank_address = ?", bankAddress).
		Scan(&loanAgg).Error; err != nil {
		return nil, domain.NewStorageError("failed to aggregate loans", err)
	}

	var mintAgg struct {
		MintSum decimal.Decimal
	}
	if err := db.Model(&schema.TokenMint{}).
		Select("COALESCE(SUM(amount), 0) AS mint_sum").
		Where("bank_address = ?", bankAddress).
		Scan(&mintAgg).Error; err != nil {
		return nil, domain.NewStorageError("failed to aggregate token mints", err)
	}

	totals.TotalLoans = loanAgg.LoanCount
	totals.TotalLoanAmount = loanAgg.LoanSum
	totals.TotalCollateral = loanAgg.CollateralSum
	totals.TotalTokensMinted = mintAgg.MintSum
	return &totals, nil
}
