package reconciliation

import (
	"context"

	"github.com/lojinha/ledgercore/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/lojinha/ledgercore/services/reconciliation ReconciliationGW

// ReconciliationGW defines the interface for publishing reconciliation events
type ReconciliationGW interface {
	// PublishReconciliationCompleted announces the outcome of a run
	PublishReconciliationCompleted(ctx context.Context, record *models.ReconciliationRecord) error

	// PublishManualReviewAlert flags a run whose discrepancies need an operator
	PublishManualReviewAlert(ctx context.Context, record *models.ReconciliationRecord) error
}
