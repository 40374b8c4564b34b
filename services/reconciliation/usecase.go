package reconciliation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lojinha/ledgercore/internal/pkg/models"
)

// ReconciliationUseCase defines the interface for reconciliation operations
type ReconciliationUseCase interface {
	// PerformReconciliation compares the ledger against the external
	// provider's records for the window and persists the outcome
	PerformReconciliation(ctx context.Context, tenantID string, reconciliationType models.ReconciliationType, start, end time.Time) (*models.ReconciliationResult, error)

	// PerformDailyReconciliation reconciles the previous UTC day
	PerformDailyReconciliation(ctx context.Context, tenantID string) (*models.ReconciliationResult, error)

	// ResolveReconciliation marks a discrepancy record resolved by an operator
	ResolveReconciliation(ctx context.Context, id uuid.UUID, resolvedBy, notes string) error

	GetReconciliationHistory(ctx context.Context, tenantID string, limit, offset int) ([]*models.ReconciliationRecord, error)
	GetPendingReconciliations(ctx context.Context) ([]*models.ReconciliationRecord, error)

	// ScheduleAutomatedReconciliation runs daily reconciliation for every
	// tenant with ledger activity, skipping windows already covered
	ScheduleAutomatedReconciliation(ctx context.Context) error

	// StartScheduler runs the periodic reconciliation loop until ctx is done
	StartScheduler(ctx context.Context)
}
