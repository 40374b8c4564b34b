package usecase

import (
	"context"
	"time"

	"github.com/lojinha/ledgercore/internal/pkg/models"
)

// ScheduleAutomatedReconciliation runs daily reconciliation for every tenant
// with ledger activity. Tenants whose previous-day window was already
// reconciled are skipped, and one tenant failing does not stop the sweep.
func (uc *ReconciliationUC) ScheduleAutomatedReconciliation(ctx context.Context) error {
	tenantIDs, err := uc.ledgerUC.ListTenantIDs(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.Add(-24 * time.Hour)

	for _, tenantID := range tenantIDs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		covered, err := uc.repo.HasRecordForWindow(ctx, tenantID, models.ReconciliationTypeDaily, start, end)
		if err != nil {
			uc.logger.WithTenant(tenantID).WithError(err).Error("Failed to check reconciliation checkpoint")
			continue
		}
		if covered {
			continue
		}

		result, err := uc.PerformReconciliation(ctx, tenantID, models.ReconciliationTypeDaily, start, end)
		if err != nil {
			uc.logger.WithTenant(tenantID).WithError(err).Error("Automated reconciliation failed")
			continue
		}

		if result.RequiresManualReview {
			if err := uc.gw.PublishManualReviewAlert(ctx, result.Record); err != nil {
				uc.logger.WithTenant(tenantID).WithError(err).Warn("Failed to publish manual review alert")
			}
		}
	}

	return nil
}

// StartScheduler runs the periodic reconciliation loop until ctx is done.
// Each cycle also captures daily balance snapshots.
func (uc *ReconciliationUC) StartScheduler(ctx context.Context) {
	interval := time.Duration(uc.cfg.Reconciliation.ScheduleIntervalMin) * time.Minute
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	uc.logger.WithField("interval", interval.String()).Info("Reconciliation scheduler started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	uc.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			uc.logger.Info("Reconciliation scheduler stopped")
			return
		case <-ticker.C:
			uc.runCycle(ctx)
		}
	}
}

func (uc *ReconciliationUC) runCycle(ctx context.Context) {
	if err := uc.ledgerUC.CreateDailySnapshots(ctx); err != nil {
		uc.logger.WithError(err).Error("Daily snapshot sweep failed")
	}
	if err := uc.ScheduleAutomatedReconciliation(ctx); err != nil {
		uc.logger.WithError(err).Error("Automated reconciliation sweep failed")
	}
}
