package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lojinha/ledgercore/internal/pkg/constants"
	"github.com/lojinha/ledgercore/internal/pkg/models"
	natspkg "github.com/lojinha/ledgercore/internal/pkg/nats"
	"github.com/lojinha/ledgercore/services/reconciliation"
)

// reconciliationGW handles reconciliation event publishing
type reconciliationGW struct {
	natsClient *natspkg.Client
}

// NewReconciliationGW creates a new NATS gateway instance
func NewReconciliationGW(client *natspkg.Client) reconciliation.ReconciliationGW {
	return &reconciliationGW{
		natsClient: client,
	}
}

func (g *reconciliationGW) publishRecordEvent(subject string, record *models.ReconciliationRecord) error {
	event := models.ReconciliationEvent{
		RecordID:             record.ID.String(),
		TenantID:             record.TenantID,
		Status:               record.Status,
		Difference:           record.Difference,
		DiscrepancyCount:     len(record.Discrepancies),
		RequiresManualReview: record.Status == models.ReconciliationStatusDiscrepancyFound,
		Timestamp:            time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal reconciliation event: %w", err)
	}
	return g.natsClient.Publish(subject, data)
}

// PublishReconciliationCompleted publishes a reconciliation completed event
func (g *reconciliationGW) PublishReconciliationCompleted(ctx context.Context, record *models.ReconciliationRecord) error {
	return g.publishRecordEvent(constants.SubjectReconciliationCompleted, record)
}

// PublishManualReviewAlert publishes a manual review alert for a run with
// unresolved discrepancies
func (g *reconciliationGW) PublishManualReviewAlert(ctx context.Context, record *models.ReconciliationRecord) error {
	return g.publishRecordEvent(constants.SubjectReconciliationManualReview, record)
}
