package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/services/ledger"
)

func setupLedgerRepoTest(t *testing.T) (*PostgresLedgerRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &PostgresLedgerRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

var entryTestColumns = []string{
	"id", "tenant_id", "entry_type", "transaction_type", "amount", "running_balance",
	"reference_id", "order_id", "withdrawal_id", "external_transaction_id", "description",
	"status", "metadata", "ip_address", "user_agent", "session_id", "created_at",
	"confirmed_at", "reversed_at",
}

func entryRow(id int64, tenantID string, entryType models.EntryType, amount, balance string, status models.EntryStatus, metadata driver.Value) *sqlmock.Rows {
	return sqlmock.NewRows(entryTestColumns).
		AddRow(id, tenantID, entryType, models.TransactionTypeSale, amount, balance,
			nil, nil, nil, nil, "test entry",
			status, metadata, "10.0.0.1", "test-agent", "sess-1", time.Now(),
			nil, nil)
}

func TestCreateEntrySecure_FullTransaction(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs("tenant-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FOR UPDATE").
		WithArgs("tenant-1").
		WillReturnRows(entryRow(41, "tenant-1", models.EntryTypeCredit, "100.00", "100.00", models.EntryStatusConfirmed, nil))
	mock.ExpectQuery("INSERT INTO ledger_entries").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))
	mock.ExpectExec("INSERT INTO security_audit_log").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("COALESCE").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("25.50"))
	mock.ExpectExec("INSERT INTO balance_snapshots").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	entry, err := repo.CreateEntrySecure(context.Background(), "tenant-1", func(txn ledger.EntryTxn) (*models.LedgerEntry, *models.SecurityAuditLog, error) {
		latest := txn.LatestEntry()
		require.NotNil(t, latest)
		assert.True(t, latest.RunningBalance.Equal(decimal.RequireFromString("100.00")))

		return &models.LedgerEntry{
				TenantID:        "tenant-1",
				EntryType:       models.EntryTypeCredit,
				TransactionType: models.TransactionTypeSale,
				Amount:          decimal.RequireFromString("25.50"),
				RunningBalance:  decimal.RequireFromString("125.50"),
				Status:          models.EntryStatusPending,
			}, &models.SecurityAuditLog{
				TenantID: "tenant-1",
				Action:   models.AuditActionLedgerCreate,
				Resource: "ledger_entries",
				Success:  true,
			}, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntrySecure_BuilderErrorRollsBack(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").
		WithArgs("tenant-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FOR UPDATE").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows(entryTestColumns))
	mock.ExpectRollback()

	rejection := ledger.NewValidationError(ledger.CodeInsufficientBalance, "insufficient balance")

	entry, err := repo.CreateEntrySecure(context.Background(), "tenant-1", func(txn ledger.EntryTxn) (*models.LedgerEntry, *models.SecurityAuditLog, error) {
		// Empty ledger surfaces as nil
		assert.Nil(t, txn.LatestEntry())
		return nil, nil, rejection
	})

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, rejection)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEntry_NotFound(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("FROM ledger_entries").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(entryTestColumns))

	entry, err := repo.GetEntry(context.Background(), 404)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ledger.ErrEntryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestEntry_EmptyLedgerReturnsNil(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("FROM ledger_entries").
		WithArgs("tenant-1").
		WillReturnRows(sqlmock.NewRows(entryTestColumns))

	entry, err := repo.GetLatestEntry(context.Background(), "tenant-1")

	assert.NoError(t, err)
	assert.Nil(t, entry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmEntry_MergesMetadataRightWins(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(entryRow(7, "tenant-1", models.EntryTypeCredit, "25.50", "125.50",
			models.EntryStatusPending, []byte(`{"a":"1","b":"2"}`)))
	mock.ExpectExec("UPDATE ledger_entries").
		WithArgs(int64(7), sqlmock.AnyArg(), "ext-991", []byte(`{"a":"1","b":"3","c":"4"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	extID := "ext-991"
	entry, err := repo.ConfirmEntry(context.Background(), 7, &extID, models.Metadata{"b": "3", "c": "4"})

	assert.NoError(t, err)
	assert.Equal(t, models.EntryStatusConfirmed, entry.Status)
	require.NotNil(t, entry.ConfirmedAt)
	assert.Equal(t, models.Metadata{"a": "1", "b": "3", "c": "4"}, entry.Metadata)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmEntry_NotPending(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(entryRow(7, "tenant-1", models.EntryTypeCredit, "25.50", "125.50",
			models.EntryStatusConfirmed, nil))
	mock.ExpectRollback()

	entry, err := repo.ConfirmEntry(context.Background(), 7, nil, nil)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ledger.ErrEntryNotPending)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmEntry_Reversed(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(entryRow(7, "tenant-1", models.EntryTypeCredit, "25.50", "125.50",
			models.EntryStatusReversed, nil))
	mock.ExpectRollback()

	entry, err := repo.ConfirmEntry(context.Background(), 7, nil, nil)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ledger.ErrEntryAlreadyReversed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkEntryReversed_Success(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(entryRow(7, "tenant-1", models.EntryTypeDebit, "40.00", "60.00",
			models.EntryStatusConfirmed, nil))
	mock.ExpectExec("UPDATE ledger_entries SET status = 'reversed'").
		WithArgs(int64(7), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	entry, err := repo.MarkEntryReversed(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, models.EntryStatusReversed, entry.Status)
	require.NotNil(t, entry.ReversedAt)

	// Amount and running balance stay untouched
	assert.True(t, entry.Amount.Equal(decimal.RequireFromString("40.00")))
	assert.True(t, entry.RunningBalance.Equal(decimal.RequireFromString("60.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkEntryReversed_AlreadyReversed(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(entryRow(7, "tenant-1", models.EntryTypeDebit, "40.00", "60.00",
			models.EntryStatusReversed, nil))
	mock.ExpectRollback()

	entry, err := repo.MarkEntryReversed(context.Background(), 7)

	assert.Nil(t, entry)
	assert.ErrorIs(t, err, ledger.ErrEntryAlreadyReversed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSnapshot(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO balance_snapshots").
		WithArgs("tenant-1", decimal.RequireFromString("75.00"), "0", int64(13), models.SnapshotTypeDaily).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))

	snapshot := &models.BalanceSnapshot{
		TenantID:          "tenant-1",
		Balance:           decimal.RequireFromString("75.00"),
		PendingBalance:    decimal.Zero,
		LastLedgerEntryID: 13,
		SnapshotType:      models.SnapshotTypeDaily,
	}

	err := repo.CreateSnapshot(context.Background(), snapshot)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), snapshot.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEntries_ClampsNegativePaging(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("FROM ledger_entries").
		WithArgs("tenant-1", 50, 0).
		WillReturnRows(sqlmock.NewRows(entryTestColumns))

	entries, err := repo.GetEntries(context.Background(), "tenant-1", -10, -3)

	assert.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTenantIDs(t *testing.T) {
	repo, mock, cleanup := setupLedgerRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT DISTINCT tenant_id FROM ledger_entries").
		WillReturnRows(sqlmock.NewRows([]string{"tenant_id"}).
			AddRow("tenant-a").
			AddRow("tenant-b"))

	tenants, err := repo.ListTenantIDs(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"tenant-a", "tenant-b"}, tenants)
	assert.NoError(t, mock.ExpectationsWereMet())
}
