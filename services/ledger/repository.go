package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojinha/ledgercore/internal/pkg/models"
)

// EntryTxn is the view of a tenant's ledger inside the serialized create
// transaction. The latest entry row is locked for the duration of the
// transaction, so every read through it is consistent with the balance the
// new entry will be computed against.
type EntryTxn interface {
	// LatestEntry returns the tenant's most recent entry, or nil for an
	// empty ledger
	LatestEntry() *models.LedgerEntry

	// ConfirmedDebitsSince sums the tenant's confirmed debit entries
	// created at or after the given time
	ConfirmedDebitsSince(since time.Time) (decimal.Decimal, error)
}

// EntryBuilder runs inside the create transaction: it validates the
// operation against the locked balance and produces the entry and its
// success audit record. Returning an error rolls the transaction back.
type EntryBuilder func(txn EntryTxn) (*models.LedgerEntry, *models.SecurityAuditLog, error)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/lojinha/ledgercore/services/ledger LedgerRepo

// LedgerRepo defines the interface for ledger storage operations
type LedgerRepo interface {
	// CreateEntrySecure inserts one entry, its audit record and a
	// transaction snapshot atomically, with all writers for the tenant
	// serialized
	CreateEntrySecure(ctx context.Context, tenantID string, build EntryBuilder) (*models.LedgerEntry, error)

	GetEntry(ctx context.Context, id int64) (*models.LedgerEntry, error)
	GetLatestEntry(ctx context.Context, tenantID string) (*models.LedgerEntry, error)
	GetEntries(ctx context.Context, tenantID string, limit, offset int) ([]*models.LedgerEntry, error)
	GetConfirmedEntriesInWindow(ctx context.Context, tenantID string, start, end time.Time) ([]*models.LedgerEntry, error)

	// ConfirmEntry transitions pending -> confirmed, merging metadata
	ConfirmEntry(ctx context.Context, id int64, externalTransactionID *string, metadata models.Metadata) (*models.LedgerEntry, error)

	// MarkEntryReversed transitions pending|confirmed -> reversed
	MarkEntryReversed(ctx context.Context, id int64) (*models.LedgerEntry, error)

	CreateSnapshot(ctx context.Context, snapshot *models.BalanceSnapshot) error
	GetBalanceHistory(ctx context.Context, tenantID string, start, end time.Time) ([]*models.BalanceSnapshot, error)

	// CreateAuditLog writes an audit record in its own transaction; used
	// for failed attempts whose main transaction rolled back
	CreateAuditLog(ctx context.Context, auditLog *models.SecurityAuditLog) error

	// ListTenantIDs returns every tenant with at least one ledger entry
	ListTenantIDs(ctx context.Context) ([]string, error)
}
