package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finara-labs/finara-backend/internal/domain"
)

func newMockedStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewPGStore(gdb), mock
}

func TestPGStore_QueryFailuresAreStorageErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset by peer")

	t.Run("get bank", func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "banks"`)).WillReturnError(boom)

		bank, err := store.GetBank(ctx, testBank)
		assert.Nil(t, bank)
		require.Error(t, err)
		assert.True(t, domain.IsStorageError(err))
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list customers", func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "customers"`)).WillReturnError(boom)

		customers, err := store.ListCustomers(ctx, testBank)
		assert.Nil(t, customers)
		require.Error(t, err)
		assert.True(t, domain.IsStorageError(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bank totals", func(t *testing.T) {
		store, mock := newMockedStore(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "customers"`)).WillReturnError(boom)

		totals, err := store.GetBankTotals(ctx, testBank)
		assert.Nil(t, totals)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to count customers")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPGStore_GetBankNotFound(t *testing.T) {
	store, mock := newMockedStore(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "banks" WHERE bank_address = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"bank_address"}))

	bank, err := store.GetBank(context.Background(), "0xB000000000000000000000000000000000000001")
	require.NoError(t, err)
	assert.Nil(t, bank)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_EmptyInputsSkipDatabase(t *testing.T) {
	store, mock := newMockedStore(t)

	n, err := store.UpsertCustomers(context.Background(), testBank, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	changed, err := store.MarkCustomersVerified(context.Background(), testBank, nil, baseTime(t))
	require.NoError(t, err)
	assert.Equal(t, int64(0), changed)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_TerminalAssetKeepsStatus(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "assets" WHERE asset_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"asset_id", "status"}).AddRow("ASSET-1", "tokenized"))
	mock.ExpectRollback()

	asset, err := store.UpdateAsset(context.Background(), "ASSET-1", UpdateAssetInput{
		Status:   domain.AssetStatusFailed,
		Metadata: map[string]any{domain.MetadataKeyError: "reconciliation: mint outcome unknown"},
	})

	assert.Nil(t, asset)
	require.Error(t, err)
	assert.True(t, domain.IsStorageError(err))
	assert.ErrorIs(t, err, domain.ErrAssetStatusConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGStore_StreamsBreakTimestampTiesByInsertionOrder(t *testing.T) {
	store, mock := newMockedStore(t)

	mock.ExpectQuery(`FROM "token_mints" WHERE bank_address = \$1 ORDER BY minted_at DESC,\s*seq DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"transaction_hash"}))
	mock.ExpectQuery(`FROM "loans" WHERE bank_address = \$1 ORDER BY created_at DESC,\s*seq DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`FROM "customers" WHERE .* ORDER BY verified_at DESC,\s*id DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := store.GetTokenMintsByBank(context.Background(), testBank, 5)
	require.NoError(t, err)
	_, err = store.GetLoansByBank(context.Background(), testBank, 5)
	require.NoError(t, err)
	_, err = store.GetRecentVerifiedCustomers(context.Background(), testBank, 5)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
