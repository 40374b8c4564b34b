package reconciliation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lojinha/ledgercore/internal/pkg/models"
)

// ErrRecordNotFound is returned when a reconciliation record does not exist
var ErrRecordNotFound = errors.New("reconciliation record not found")

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/lojinha/ledgercore/services/reconciliation ReconciliationRepo

// ReconciliationRepo defines the interface for reconciliation persistence
type ReconciliationRepo interface {
	// CreateRecord persists the artifact of one reconciliation run
	CreateRecord(ctx context.Context, record *models.ReconciliationRecord) error

	// GetRecord fetches a reconciliation record by id
	GetRecord(ctx context.Context, id uuid.UUID) (*models.ReconciliationRecord, error)

	// MarkResolved transitions a discrepancy_found record to resolved
	MarkResolved(ctx context.Context, id uuid.UUID, resolvedBy, notes string) error

	// GetHistory returns a tenant's reconciliation records, newest first
	GetHistory(ctx context.Context, tenantID string, limit, offset int) ([]*models.ReconciliationRecord, error)

	// GetPending returns all records still awaiting manual resolution
	GetPending(ctx context.Context) ([]*models.ReconciliationRecord, error)

	// HasRecordForWindow reports whether a run of the given type already
	// covers the window for the tenant
	HasRecordForWindow(ctx context.Context, tenantID string, reconciliationType models.ReconciliationType, start, end time.Time) (bool, error)
}
