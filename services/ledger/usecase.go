package ledger

import (
	"context"
	"time"

	"github.com/lojinha/ledgercore/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/lojinha/ledgercore/services/ledger LedgerUseCase

// LedgerUseCase defines the interface for ledger operations
type LedgerUseCase interface {
	// CreateSecureLedgerEntry validates and records one monetary movement
	// atomically, serialized per tenant
	CreateSecureLedgerEntry(ctx context.Context, opCtx models.OperationContext, op models.LedgerOperation) (*models.LedgerEntry, error)

	// ConfirmLedgerEntry transitions an entry pending -> confirmed
	ConfirmLedgerEntry(ctx context.Context, opCtx models.OperationContext, id int64, externalTransactionID *string, metadata models.Metadata) (*models.LedgerEntry, error)

	// ReverseLedgerEntry marks an entry reversed and books a compensating
	// adjustment undoing its economic effect
	ReverseLedgerEntry(ctx context.Context, opCtx models.OperationContext, id int64, reason string) (*models.LedgerEntry, error)

	// GetCurrentBalance returns the tenant's balance as a fixed-point
	// decimal string, "0.00" for an empty ledger
	GetCurrentBalance(ctx context.Context, tenantID string) (string, error)

	GetLedgerEntries(ctx context.Context, tenantID string, limit, offset int) ([]*models.LedgerEntry, error)
	GetConfirmedEntries(ctx context.Context, tenantID string, start, end time.Time) ([]*models.LedgerEntry, error)
	GetBalanceHistory(ctx context.Context, tenantID string, start, end time.Time) ([]*models.BalanceSnapshot, error)

	// CreateDailySnapshots captures a daily balance snapshot for every tenant
	CreateDailySnapshots(ctx context.Context) error

	// ListTenantIDs returns every tenant with ledger activity
	ListTenantIDs(ctx context.Context) ([]string, error)
}
