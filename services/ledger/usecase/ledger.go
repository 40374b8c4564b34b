package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/lojinha/ledgercore/internal/pkg/locker"
	"github.com/lojinha/ledgercore/internal/pkg/logger"
	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/internal/pkg/retry"
	"github.com/lojinha/ledgercore/services/ledger"
)

// LedgerUC implements the ledger.LedgerUseCase interface
type LedgerUC struct {
	cfg       *models.Config
	repo      ledger.LedgerRepo
	gw        ledger.LedgerGW
	provider  ledger.ProviderClient
	validator *OperationValidator
	locker    locker.TenantLocker
	logger    *logger.AppLogger
	retrier   *retry.Retrier
}

// NewLedgerUC creates a new ledger use case. tenantLocker may be nil for
// single-instance deployments; the repository's row lock still serializes
// writers within one instance.
func NewLedgerUC(
	cfg *models.Config,
	repo ledger.LedgerRepo,
	gw ledger.LedgerGW,
	provider ledger.ProviderClient,
	tenantLocker locker.TenantLocker,
	appLogger *logger.AppLogger,
) ledger.LedgerUseCase {
	return &LedgerUC{
		cfg:       cfg,
		repo:      repo,
		gw:        gw,
		provider:  provider,
		validator: NewOperationValidator(cfg.Ledger),
		locker:    tenantLocker,
		logger:    appLogger,
		retrier:   retry.NewWithDefaults(appLogger),
	}
}

// localMidnight returns the start of the current day in server local time,
// the window the daily withdrawal cap is measured against
func localMidnight(now time.Time) time.Time {
	local := now.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// CreateSecureLedgerEntry validates and records one monetary movement.
// The whole sequence runs in a single transaction with all writers for the
// tenant serialized, so the running balance chain can never interleave.
func (uc *LedgerUC) CreateSecureLedgerEntry(ctx context.Context, opCtx models.OperationContext, op models.LedgerOperation) (*models.LedgerEntry, error) {
	riskScore := CalculateRiskScore(op, time.Now())

	if uc.locker != nil {
		release, err := uc.locker.Acquire(ctx, op.TenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to acquire tenant lock: %w", err)
		}
		defer release()
	}

	entry, err := uc.repo.CreateEntrySecure(ctx, op.TenantID, func(txn ledger.EntryTxn) (*models.LedgerEntry, *models.SecurityAuditLog, error) {
		currentBalance := decimal.Zero
		if latest := txn.LatestEntry(); latest != nil {
			currentBalance = latest.RunningBalance
		}

		dailyDebits := decimal.Zero
		if op.TransactionType == models.TransactionTypeWithdrawal ||
			op.TransactionType == models.TransactionTypeCashOut {
			var err error
			dailyDebits, err = txn.ConfirmedDebitsSince(localMidnight(time.Now()))
			if err != nil {
				return nil, nil, fmt.Errorf("failed to sum daily debits: %w", err)
			}
		}

		if err := uc.validator.Validate(op, currentBalance, dailyDebits); err != nil {
			return nil, nil, err
		}

		entryType, newBalance, err := CalculateBalance(currentBalance, op.TransactionType, op.Amount)
		if err != nil {
			return nil, nil, err
		}

		entry := &models.LedgerEntry{
			TenantID:              op.TenantID,
			EntryType:             entryType,
			TransactionType:       op.TransactionType,
			Amount:                op.Amount.Abs(),
			RunningBalance:        newBalance,
			ReferenceID:           op.ReferenceID,
			OrderID:               op.OrderID,
			WithdrawalID:          op.WithdrawalID,
			ExternalTransactionID: op.ExternalTransactionID,
			Description:           op.Description,
			Status:                models.EntryStatusPending,
			Metadata:              op.Metadata,
			IPAddress:             opCtx.IPAddress,
			UserAgent:             opCtx.UserAgent,
			SessionID:             opCtx.SessionID,
		}

		auditLog := uc.newAuditLog(opCtx, op.TenantID, models.AuditActionLedgerCreate, riskScore)
		auditLog.Success = true
		auditLog.NewValues = models.Metadata{
			"transaction_type": string(op.TransactionType),
			"entry_type":       string(entryType),
			"amount":           op.Amount.Abs().StringFixed(2),
			"running_balance":  newBalance.StringFixed(2),
		}

		return entry, auditLog, nil
	})

	if err != nil {
		uc.auditFailure(ctx, opCtx, op.TenantID, models.AuditActionLedgerCreate, "", riskScore, err)
		if ledger.IsValidationError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	if pubErr := uc.gw.PublishEntryCreated(ctx, entry); pubErr != nil {
		uc.logger.WithError(pubErr).WithFields(logrus.Fields{
			"entry_id":  entry.ID,
			"tenant_id": entry.TenantID,
		}).Warn("Failed to publish entry created event")
	}

	return entry, nil
}

// ConfirmLedgerEntry transitions an entry pending -> confirmed and merges
// the caller's metadata. Cash movements trigger a best-effort balance sync
// against the provider; its failure never fails the confirmation.
func (uc *LedgerUC) ConfirmLedgerEntry(ctx context.Context, opCtx models.OperationContext, id int64, externalTransactionID *string, metadata models.Metadata) (*models.LedgerEntry, error) {
	entry, err := uc.repo.ConfirmEntry(ctx, id, externalTransactionID, metadata)
	if err != nil {
		if ledger.IsValidationError(err) {
			uc.auditFailure(ctx, opCtx, "", models.AuditActionLedgerConfirm, strconv.FormatInt(id, 10), 0, err)
			return nil, err
		}
		return nil, fmt.Errorf("failed to confirm ledger entry %d: %w", id, err)
	}

	auditLog := uc.newAuditLog(opCtx, entry.TenantID, models.AuditActionLedgerConfirm, 0)
	auditLog.Success = true
	auditLog.ResourceID = strconv.FormatInt(entry.ID, 10)
	auditLog.NewValues = models.Metadata{"status": string(models.EntryStatusConfirmed)}
	if err := uc.repo.CreateAuditLog(ctx, auditLog); err != nil {
		uc.logger.WithError(err).WithFields(logrus.Fields{"entry_id": entry.ID}).
			Warn("Failed to write confirm audit log")
	}

	if pubErr := uc.gw.PublishEntryConfirmed(ctx, entry); pubErr != nil {
		uc.logger.WithError(pubErr).WithFields(logrus.Fields{"entry_id": entry.ID}).
			Warn("Failed to publish entry confirmed event")
	}

	if entry.TransactionType == models.TransactionTypeCashIn ||
		entry.TransactionType == models.TransactionTypeCashOut {
		go uc.syncProviderBalance(entry.TenantID)
	}

	return entry, nil
}

// syncProviderBalance cross-checks the tenant balance against the provider
// out-of-band. Fire-and-forget: drift is logged for the reconciliation
// engine to pick up, never raised.
func (uc *LedgerUC) syncProviderBalance(tenantID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var providerBalance *models.ProviderBalance
	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		var err error
		providerBalance, err = uc.provider.GetAccountBalance(ctx, tenantID)
		return err
	})
	if err != nil {
		uc.logger.WithError(err).WithFields(logrus.Fields{"tenant_id": tenantID}).
			Warn("Provider balance sync failed")
		return
	}

	systemBalance, err := uc.GetCurrentBalance(ctx, tenantID)
	if err != nil {
		uc.logger.WithError(err).WithFields(logrus.Fields{"tenant_id": tenantID}).
			Warn("Provider balance sync could not read system balance")
		return
	}

	uc.logger.WithFields(logrus.Fields{
		"tenant_id":        tenantID,
		"system_balance":   systemBalance,
		"provider_balance": providerBalance.Balance.StringFixed(2),
	}).Info("Provider balance sync completed")
}

// ReverseLedgerEntry marks the original entry reversed and books a
// compensating adjustment whose signed amount exactly negates the
// original's economic effect
func (uc *LedgerUC) ReverseLedgerEntry(ctx context.Context, opCtx models.OperationContext, id int64, reason string) (*models.LedgerEntry, error) {
	original, err := uc.repo.GetEntry(ctx, id)
	if err != nil {
		if ledger.IsValidationError(err) {
			uc.auditFailure(ctx, opCtx, "", models.AuditActionLedgerReverse, strconv.FormatInt(id, 10), 0, err)
			return nil, err
		}
		return nil, fmt.Errorf("failed to load ledger entry %d: %w", id, err)
	}

	if original.Status == models.EntryStatusReversed {
		uc.auditFailure(ctx, opCtx, original.TenantID, models.AuditActionLedgerReverse,
			strconv.FormatInt(id, 10), 0, ledger.ErrEntryAlreadyReversed)
		return nil, ledger.ErrEntryAlreadyReversed
	}

	reversed, err := uc.repo.MarkEntryReversed(ctx, id)
	if err != nil {
		if ledger.IsValidationError(err) {
			uc.auditFailure(ctx, opCtx, original.TenantID, models.AuditActionLedgerReverse,
				strconv.FormatInt(id, 10), 0, err)
			return nil, err
		}
		return nil, fmt.Errorf("failed to mark entry %d reversed: %w", id, err)
	}

	// The compensating amount is the negation of the original's signed
	// effect, so reversing a debit credits the balance and vice versa.
	// Adjustments reverse the same way: their stored direction determines
	// the sign being undone.
	compensation := original.SignedEffect().Neg()

	op := models.LedgerOperation{
		TenantID:        original.TenantID,
		TransactionType: models.TransactionTypeAdjustment,
		Amount:          compensation,
		ReferenceID:     original.ReferenceID,
		Description:     fmt.Sprintf("Reversal of entry %d: %s", original.ID, reason),
		Metadata: models.Metadata{
			"original_entry_id": strconv.FormatInt(original.ID, 10),
			"reversal_reason":   reason,
		},
	}

	compEntry, err := uc.CreateSecureLedgerEntry(ctx, opCtx, op)
	if err != nil {
		// The reversed mark is already committed at this point, so the
		// ledger holds a reversed entry with no compensation until an
		// operator books the adjustment.
		uc.logger.WithError(err).WithFields(logrus.Fields{
			"entry_id":  original.ID,
			"tenant_id": original.TenantID,
		}).Error("Entry marked reversed but compensating entry failed")
		return nil, fmt.Errorf("entry %d is marked reversed without a compensating entry, manual correction required: %w", original.ID, err)
	}

	auditLog := uc.newAuditLog(opCtx, original.TenantID, models.AuditActionLedgerReverse, 0)
	auditLog.Success = true
	auditLog.ResourceID = strconv.FormatInt(original.ID, 10)
	auditLog.OldValues = models.Metadata{"status": string(original.Status)}
	auditLog.NewValues = models.Metadata{
		"status":             string(models.EntryStatusReversed),
		"compensating_entry": strconv.FormatInt(compEntry.ID, 10),
		"reversal_reason":    reason,
	}
	if err := uc.repo.CreateAuditLog(ctx, auditLog); err != nil {
		uc.logger.WithError(err).WithFields(logrus.Fields{"entry_id": original.ID}).
			Warn("Failed to write reverse audit log")
	}

	if pubErr := uc.gw.PublishEntryReversed(ctx, reversed); pubErr != nil {
		uc.logger.WithError(pubErr).WithFields(logrus.Fields{"entry_id": reversed.ID}).
			Warn("Failed to publish entry reversed event")
	}

	return reversed, nil
}

// GetCurrentBalance returns the running balance of the tenant's most
// recent entry, "0.00" for an empty ledger
func (uc *LedgerUC) GetCurrentBalance(ctx context.Context, tenantID string) (string, error) {
	latest, err := uc.repo.GetLatestEntry(ctx, tenantID)
	if err != nil {
		return "", fmt.Errorf("failed to get latest entry for tenant %s: %w", tenantID, err)
	}
	if latest == nil {
		return "0.00", nil
	}
	return latest.RunningBalance.StringFixed(2), nil
}

// GetLedgerEntries returns a page of the tenant's entries, newest first
func (uc *LedgerUC) GetLedgerEntries(ctx context.Context, tenantID string, limit, offset int) ([]*models.LedgerEntry, error) {
	return uc.repo.GetEntries(ctx, tenantID, limit, offset)
}

// GetConfirmedEntries returns the tenant's confirmed entries inside the
// window, in creation order
func (uc *LedgerUC) GetConfirmedEntries(ctx context.Context, tenantID string, start, end time.Time) ([]*models.LedgerEntry, error) {
	return uc.repo.GetConfirmedEntriesInWindow(ctx, tenantID, start, end)
}

// GetBalanceHistory returns the tenant's balance snapshots inside the window
func (uc *LedgerUC) GetBalanceHistory(ctx context.Context, tenantID string, start, end time.Time) ([]*models.BalanceSnapshot, error) {
	return uc.repo.GetBalanceHistory(ctx, tenantID, start, end)
}

// ListTenantIDs returns every tenant with ledger activity
func (uc *LedgerUC) ListTenantIDs(ctx context.Context) ([]string, error) {
	return uc.repo.ListTenantIDs(ctx)
}

// CreateDailySnapshots captures a daily snapshot for every tenant. A
// failure for one tenant does not abort the others.
func (uc *LedgerUC) CreateDailySnapshots(ctx context.Context) error {
	tenants, err := uc.repo.ListTenantIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tenants: %w", err)
	}

	for _, tenantID := range tenants {
		if err := ctx.Err(); err != nil {
			return err
		}

		latest, err := uc.repo.GetLatestEntry(ctx, tenantID)
		if err != nil {
			uc.logger.WithError(err).WithFields(logrus.Fields{"tenant_id": tenantID}).
				Warn("Daily snapshot skipped: could not read latest entry")
			continue
		}
		if latest == nil {
			continue
		}

		snapshot := &models.BalanceSnapshot{
			TenantID:          tenantID,
			Balance:           latest.RunningBalance,
			PendingBalance:    decimal.Zero,
			LastLedgerEntryID: latest.ID,
			SnapshotType:      models.SnapshotTypeDaily,
		}
		if err := uc.repo.CreateSnapshot(ctx, snapshot); err != nil {
			uc.logger.WithError(err).WithFields(logrus.Fields{"tenant_id": tenantID}).
				Warn("Failed to write daily snapshot")
		}
	}

	return nil
}

func (uc *LedgerUC) newAuditLog(opCtx models.OperationContext, tenantID, action string, riskScore int) *models.SecurityAuditLog {
	return &models.SecurityAuditLog{
		ID:        uuid.New(),
		TenantID:  tenantID,
		UserID:    opCtx.UserID,
		Action:    action,
		Resource:  "ledger_entries",
		IPAddress: opCtx.IPAddress,
		UserAgent: opCtx.UserAgent,
		SessionID: opCtx.SessionID,
		RiskScore: riskScore,
	}
}

// auditFailure records a failed mutation attempt in its own transaction,
// since the main one rolled back. Audit write errors are logged, never
// propagated over the original failure.
func (uc *LedgerUC) auditFailure(ctx context.Context, opCtx models.OperationContext, tenantID, action, resourceID string, riskScore int, cause error) {
	reason := cause.Error()
	auditLog := uc.newAuditLog(opCtx, tenantID, action, riskScore)
	auditLog.Success = false
	auditLog.ResourceID = resourceID
	auditLog.FailureReason = &reason

	if err := uc.repo.CreateAuditLog(ctx, auditLog); err != nil {
		uc.logger.WithError(err).WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"action":    action,
		}).Error("Failed to write failure audit log")
	}
}
