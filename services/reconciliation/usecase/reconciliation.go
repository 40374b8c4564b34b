package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lojinha/ledgercore/internal/pkg/logger"
	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/services/ledger"
	"github.com/lojinha/ledgercore/services/reconciliation"
)

// ReconciliationUC implements the reconciliation engine
type ReconciliationUC struct {
	cfg      *models.Config
	repo     reconciliation.ReconciliationRepo
	gw       reconciliation.ReconciliationGW
	ledgerUC ledger.LedgerUseCase
	provider ledger.ProviderClient
	logger   *logger.AppLogger

	balanceThreshold decimal.Decimal
	entryThreshold   decimal.Decimal
	autoResolveLimit decimal.Decimal
}

// NewReconciliationUC creates a new reconciliation usecase
func NewReconciliationUC(
	cfg *models.Config,
	repo reconciliation.ReconciliationRepo,
	gw reconciliation.ReconciliationGW,
	ledgerUC ledger.LedgerUseCase,
	provider ledger.ProviderClient,
	appLogger *logger.AppLogger,
) *ReconciliationUC {
	return &ReconciliationUC{
		cfg:              cfg,
		repo:             repo,
		gw:               gw,
		ledgerUC:         ledgerUC,
		provider:         provider,
		logger:           appLogger,
		balanceThreshold: thresholdOrDefault(cfg.Reconciliation.BalanceThreshold, "0.05"),
		entryThreshold:   thresholdOrDefault(cfg.Reconciliation.EntryThreshold, "0.01"),
		autoResolveLimit: thresholdOrDefault(cfg.Reconciliation.AutoResolveLimit, "0.10"),
	}
}

func thresholdOrDefault(value, fallback string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		d, _ = decimal.NewFromString(fallback)
	}
	return d
}

// PerformReconciliation compares the ledger against the external provider's
// records for the window and persists the outcome. A failure to gather
// either side still produces a persisted record flagged for manual review.
func (uc *ReconciliationUC) PerformReconciliation(ctx context.Context, tenantID string, reconciliationType models.ReconciliationType, start, end time.Time) (*models.ReconciliationResult, error) {
	systemBalance, entries, providerBalance, providerTxns, gatherErr := uc.gatherRecords(ctx, tenantID, start, end)
	if gatherErr != nil {
		return uc.recordGatherFailure(ctx, tenantID, reconciliationType, start, end, gatherErr)
	}

	difference := systemBalance.Sub(providerBalance.Balance)

	var discrepancies models.DiscrepancyList

	if difference.Abs().GreaterThan(uc.balanceThreshold) {
		discrepancies = append(discrepancies, models.Discrepancy{
			Type:           models.DiscrepancyAmountMismatch,
			SystemAmount:   systemBalance,
			ExternalAmount: providerBalance.Balance,
			Difference:     difference,
			Description:    fmt.Sprintf("balance drift of %s exceeds threshold %s", difference.Abs().StringFixed(2), uc.balanceThreshold.StringFixed(2)),
		})
	}

	discrepancies = append(discrepancies, uc.matchTransactions(entries, providerTxns)...)

	record := &models.ReconciliationRecord{
		ID:                 uuid.New(),
		TenantID:           tenantID,
		ReconciliationType: reconciliationType,
		StartDate:          start,
		EndDate:            end,
		SystemBalance:      systemBalance,
		ExternalBalance:    providerBalance.Balance,
		Difference:         difference,
		TransactionCount:   len(entries),
		Discrepancies:      discrepancies,
		Status:             models.ReconciliationStatusReconciled,
	}

	if len(discrepancies) > 0 {
		record.Status = models.ReconciliationStatusDiscrepancyFound
		if uc.withinAutoResolveLimit(discrepancies) {
			record.Status = models.ReconciliationStatusResolved
			notes := fmt.Sprintf("auto-resolved: all %d discrepancies within limit %s", len(discrepancies), uc.autoResolveLimit.StringFixed(2))
			record.Notes = &notes
		}
	}

	if err := uc.repo.CreateRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist reconciliation record: %w", err)
	}

	result := &models.ReconciliationResult{
		Record:               record,
		Discrepancies:        discrepancies,
		RequiresManualReview: record.Status == models.ReconciliationStatusDiscrepancyFound,
	}

	if err := uc.gw.PublishReconciliationCompleted(ctx, record); err != nil {
		uc.logger.WithTenant(tenantID).WithError(err).Warn("Failed to publish reconciliation completed event")
	}

	uc.logger.WithTenant(tenantID).WithFields(map[string]interface{}{
		"record_id":     record.ID.String(),
		"status":        record.Status,
		"difference":    difference.StringFixed(2),
		"discrepancies": len(discrepancies),
	}).Info("Reconciliation run completed")

	return result, nil
}

// PerformDailyReconciliation reconciles the previous UTC day
func (uc *ReconciliationUC) PerformDailyReconciliation(ctx context.Context, tenantID string) (*models.ReconciliationResult, error) {
	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.Add(-24 * time.Hour)

	return uc.PerformReconciliation(ctx, tenantID, models.ReconciliationTypeDaily, start, end)
}

// ResolveReconciliation marks a discrepancy record resolved by an operator
func (uc *ReconciliationUC) ResolveReconciliation(ctx context.Context, id uuid.UUID, resolvedBy, notes string) error {
	record, err := uc.repo.GetRecord(ctx, id)
	if err != nil {
		return err
	}

	if record.Status != models.ReconciliationStatusDiscrepancyFound {
		return fmt.Errorf("record %s is %s, only discrepancy_found records can be resolved", id, record.Status)
	}

	if err := uc.repo.MarkResolved(ctx, id, resolvedBy, notes); err != nil {
		return fmt.Errorf("failed to resolve reconciliation record: %w", err)
	}

	uc.logger.WithTenant(record.TenantID).WithFields(map[string]interface{}{
		"record_id":   id.String(),
		"resolved_by": resolvedBy,
	}).Info("Reconciliation record resolved")

	return nil
}

// GetReconciliationHistory returns a tenant's reconciliation records
func (uc *ReconciliationUC) GetReconciliationHistory(ctx context.Context, tenantID string, limit, offset int) ([]*models.ReconciliationRecord, error) {
	return uc.repo.GetHistory(ctx, tenantID, limit, offset)
}

// GetPendingReconciliations returns all records awaiting manual resolution
func (uc *ReconciliationUC) GetPendingReconciliations(ctx context.Context) ([]*models.ReconciliationRecord, error) {
	return uc.repo.GetPending(ctx)
}

func (uc *ReconciliationUC) gatherRecords(ctx context.Context, tenantID string, start, end time.Time) (decimal.Decimal, []*models.LedgerEntry, *models.ProviderBalance, []models.ProviderTransaction, error) {
	balanceStr, err := uc.ledgerUC.GetCurrentBalance(ctx, tenantID)
	if err != nil {
		return decimal.Zero, nil, nil, nil, fmt.Errorf("failed to read system balance: %w", err)
	}
	systemBalance, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return decimal.Zero, nil, nil, nil, fmt.Errorf("invalid system balance %q: %w", balanceStr, err)
	}

	entries, err := uc.ledgerUC.GetConfirmedEntries(ctx, tenantID, start, end)
	if err != nil {
		return decimal.Zero, nil, nil, nil, fmt.Errorf("failed to read confirmed entries: %w", err)
	}

	providerBalance, err := uc.provider.GetAccountBalance(ctx, tenantID)
	if err != nil {
		return decimal.Zero, nil, nil, nil, fmt.Errorf("failed to fetch provider balance: %w", err)
	}

	providerTxns, err := uc.provider.GetTransactionLog(ctx, tenantID, start, end)
	if err != nil {
		return decimal.Zero, nil, nil, nil, fmt.Errorf("failed to fetch provider transaction log: %w", err)
	}

	return systemBalance, entries, providerBalance, providerTxns, nil
}

// matchTransactions pairs ledger entries with provider transactions by
// external transaction id and flags entries missing on either side, plus
// amount drift on matched pairs
func (uc *ReconciliationUC) matchTransactions(entries []*models.LedgerEntry, providerTxns []models.ProviderTransaction) models.DiscrepancyList {
	var discrepancies models.DiscrepancyList

	external := make(map[string]models.ProviderTransaction, len(providerTxns))
	for _, txn := range providerTxns {
		if txn.IsSuccessful {
			external[txn.ExternalTransactionID] = txn
		}
	}

	matched := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.ExternalTransactionID == nil || *entry.ExternalTransactionID == "" {
			continue
		}
		extID := *entry.ExternalTransactionID

		txn, ok := external[extID]
		if !ok {
			entryID := entry.ID
			discrepancies = append(discrepancies, models.Discrepancy{
				Type:                  models.DiscrepancyMissingTransaction,
				LedgerEntryID:         &entryID,
				ExternalTransactionID: &extID,
				SystemAmount:          entry.Amount,
				ExternalAmount:        decimal.Zero,
				Difference:            entry.Amount,
				Description:           fmt.Sprintf("ledger entry %d has no matching provider transaction %s", entry.ID, extID),
			})
			continue
		}
		matched[extID] = true

		delta := entry.Amount.Sub(txn.Amount.Abs())
		if delta.Abs().GreaterThan(uc.entryThreshold) {
			entryID := entry.ID
			discrepancies = append(discrepancies, models.Discrepancy{
				Type:                  models.DiscrepancyAmountMismatch,
				LedgerEntryID:         &entryID,
				ExternalTransactionID: &extID,
				SystemAmount:          entry.Amount,
				ExternalAmount:        txn.Amount.Abs(),
				Difference:            delta,
				Description:           fmt.Sprintf("amount drift of %s on transaction %s exceeds threshold %s", delta.Abs().StringFixed(2), extID, uc.entryThreshold.StringFixed(2)),
			})
		}
	}

	for _, txn := range providerTxns {
		if !txn.IsSuccessful || matched[txn.ExternalTransactionID] {
			continue
		}
		extID := txn.ExternalTransactionID
		discrepancies = append(discrepancies, models.Discrepancy{
			Type:                  models.DiscrepancyMissingTransaction,
			ExternalTransactionID: &extID,
			SystemAmount:          decimal.Zero,
			ExternalAmount:        txn.Amount,
			Difference:            txn.Amount.Neg(),
			Description:           fmt.Sprintf("provider transaction %s has no matching ledger entry", extID),
		})
	}

	return discrepancies
}

// withinAutoResolveLimit reports whether every discrepancy magnitude is at
// or below the auto-resolve limit
func (uc *ReconciliationUC) withinAutoResolveLimit(discrepancies models.DiscrepancyList) bool {
	for _, d := range discrepancies {
		if d.Difference.Abs().GreaterThan(uc.autoResolveLimit) {
			return false
		}
	}
	return true
}

// recordGatherFailure persists a manual-review record when either side of
// the comparison could not be gathered, so a failed run still leaves an
// auditable artifact
func (uc *ReconciliationUC) recordGatherFailure(ctx context.Context, tenantID string, reconciliationType models.ReconciliationType, start, end time.Time, gatherErr error) (*models.ReconciliationResult, error) {
	notes := fmt.Sprintf("reconciliation aborted: %v", gatherErr)

	record := &models.ReconciliationRecord{
		ID:                 uuid.New(),
		TenantID:           tenantID,
		ReconciliationType: reconciliationType,
		StartDate:          start,
		EndDate:            end,
		SystemBalance:      decimal.Zero,
		ExternalBalance:    decimal.Zero,
		Difference:         decimal.Zero,
		Status:             models.ReconciliationStatusDiscrepancyFound,
		Notes:              &notes,
	}

	if err := uc.repo.CreateRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist reconciliation record after gather failure %v: %w", gatherErr, err)
	}

	uc.logger.WithTenant(tenantID).WithError(gatherErr).Warn("Reconciliation run flagged for manual review, records could not be gathered")

	return &models.ReconciliationResult{
		Record:               record,
		RequiresManualReview: true,
	}, nil
}
