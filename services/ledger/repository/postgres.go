package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/services/ledger"
)

// PostgresLedgerRepo implements the ledger.LedgerRepo interface
type PostgresLedgerRepo struct {
	db *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *sqlx.DB) ledger.LedgerRepo {
	return &PostgresLedgerRepo{
		db: db,
	}
}

const entryColumns = `id, tenant_id, entry_type, transaction_type, amount, running_balance,
	reference_id, order_id, withdrawal_id, external_transaction_id, description,
	status, metadata, ip_address, user_agent, session_id, created_at, confirmed_at, reversed_at`

// entryTxn gives the entry builder a consistent view of the tenant's
// ledger while the latest row is locked
type entryTxn struct {
	ctx      context.Context
	tx       *sqlx.Tx
	tenantID string
	latest   *models.LedgerEntry
}

func (t *entryTxn) LatestEntry() *models.LedgerEntry {
	return t.latest
}

func (t *entryTxn) ConfirmedDebitsSince(since time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := t.tx.GetContext(t.ctx, &sum, `
		SELECT COALESCE(SUM(amount), 0)
		FROM ledger_entries
		WHERE tenant_id = $1 AND entry_type = 'debit' AND status = 'confirmed' AND created_at >= $2
	`, t.tenantID, since)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum confirmed debits: %w", err)
	}
	return sum, nil
}

// CreateEntrySecure inserts one entry, its audit record and a transaction
// snapshot in a single transaction. Writers for the same tenant are
// serialized by an advisory lock (covers the empty-ledger case) plus a row
// lock on the latest entry, so the running balance chain cannot interleave.
func (r *PostgresLedgerRepo) CreateEntrySecure(ctx context.Context, tenantID string, build ledger.EntryBuilder) (*models.LedgerEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, tenantID); err != nil {
		return nil, fmt.Errorf("failed to lock tenant ledger: %w", err)
	}

	latest, err := getLatestEntryTx(ctx, tx, tenantID, true)
	if err != nil {
		return nil, err
	}

	entry, auditLog, err := build(&entryTxn{ctx: ctx, tx: tx, tenantID: tenantID, latest: latest})
	if err != nil {
		return nil, err
	}

	row := tx.QueryRowxContext(ctx, `
		INSERT INTO ledger_entries (
			tenant_id, entry_type, transaction_type, amount, running_balance,
			reference_id, order_id, withdrawal_id, external_transaction_id,
			description, status, metadata, ip_address, user_agent, session_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`,
		entry.TenantID, entry.EntryType, entry.TransactionType, entry.Amount, entry.RunningBalance,
		entry.ReferenceID, entry.OrderID, entry.WithdrawalID, entry.ExternalTransactionID,
		entry.Description, entry.Status, entry.Metadata, entry.IPAddress, entry.UserAgent, entry.SessionID,
	)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	if auditLog != nil {
		auditLog.ResourceID = fmt.Sprintf("%d", entry.ID)
		if err := insertAuditLogTx(ctx, tx, auditLog); err != nil {
			return nil, err
		}
	}

	pendingBalance, err := pendingBalanceTx(ctx, tx, tenantID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO balance_snapshots (tenant_id, balance, pending_balance, last_ledger_entry_id, snapshot_type)
		VALUES ($1, $2, $3, $4, $5)
	`, tenantID, entry.RunningBalance, pendingBalance, entry.ID, models.SnapshotTypeTransaction); err != nil {
		return nil, fmt.Errorf("failed to insert balance snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return entry, nil
}

// pendingBalanceTx sums the signed effect of the tenant's pending entries
func pendingBalanceTx(ctx context.Context, tx *sqlx.Tx, tenantID string) (decimal.Decimal, error) {
	var pending decimal.Decimal
	err := tx.GetContext(ctx, &pending, `
		SELECT COALESCE(SUM(CASE WHEN entry_type = 'credit' THEN amount ELSE -amount END), 0)
		FROM ledger_entries
		WHERE tenant_id = $1 AND status = 'pending'
	`, tenantID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pending balance: %w", err)
	}
	return pending, nil
}

func getLatestEntryTx(ctx context.Context, tx *sqlx.Tx, tenantID string, forUpdate bool) (*models.LedgerEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM ledger_entries
		WHERE tenant_id = $1
		ORDER BY id DESC
		LIMIT 1
	`, entryColumns)
	if forUpdate {
		query += " FOR UPDATE"
	}

	var entry models.LedgerEntry
	err := tx.GetContext(ctx, &entry, query, tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest entry: %w", err)
	}
	return &entry, nil
}

// GetEntry retrieves a single ledger entry by ID
func (r *PostgresLedgerRepo) GetEntry(ctx context.Context, id int64) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	err := r.db.GetContext(ctx, &entry,
		fmt.Sprintf(`SELECT %s FROM ledger_entries WHERE id = $1`, entryColumns), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	return &entry, nil
}

// GetLatestEntry retrieves the tenant's most recent entry, nil if none
func (r *PostgresLedgerRepo) GetLatestEntry(ctx context.Context, tenantID string) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	err := r.db.GetContext(ctx, &entry, fmt.Sprintf(`
		SELECT %s FROM ledger_entries
		WHERE tenant_id = $1
		ORDER BY id DESC
		LIMIT 1
	`, entryColumns), tenantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest entry: %w", err)
	}
	return &entry, nil
}

// GetEntries returns a page of the tenant's entries, newest first
func (r *PostgresLedgerRepo) GetEntries(ctx context.Context, tenantID string, limit, offset int) ([]*models.LedgerEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var entries []*models.LedgerEntry
	err := r.db.SelectContext(ctx, &entries, fmt.Sprintf(`
		SELECT %s FROM ledger_entries
		WHERE tenant_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`, entryColumns), tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	return entries, nil
}

// GetConfirmedEntriesInWindow returns confirmed entries inside the window
// in creation order
func (r *PostgresLedgerRepo) GetConfirmedEntriesInWindow(ctx context.Context, tenantID string, start, end time.Time) ([]*models.LedgerEntry, error) {
	var entries []*models.LedgerEntry
	err := r.db.SelectContext(ctx, &entries, fmt.Sprintf(`
		SELECT %s FROM ledger_entries
		WHERE tenant_id = $1 AND status = 'confirmed' AND created_at >= $2 AND created_at <= $3
		ORDER BY id ASC
	`, entryColumns), tenantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get confirmed entries: %w", err)
	}
	return entries, nil
}

// ConfirmEntry transitions pending -> confirmed under a row lock, merging
// the caller's metadata deterministically (right-hand values win)
func (r *PostgresLedgerRepo) ConfirmEntry(ctx context.Context, id int64, externalTransactionID *string, metadata models.Metadata) (*models.LedgerEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var entry models.LedgerEntry
	err = tx.GetContext(ctx, &entry,
		fmt.Sprintf(`SELECT %s FROM ledger_entries WHERE id = $1 FOR UPDATE`, entryColumns), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}

	if entry.Status != models.EntryStatusPending {
		if entry.Status == models.EntryStatusReversed {
			return nil, ledger.ErrEntryAlreadyReversed
		}
		return nil, ledger.ErrEntryNotPending
	}

	merged := entry.Metadata.Merge(metadata)
	now := time.Now()

	externalID := entry.ExternalTransactionID
	if externalTransactionID != nil {
		externalID = externalTransactionID
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE ledger_entries
		SET status = 'confirmed', confirmed_at = $2, external_transaction_id = $3, metadata = $4
		WHERE id = $1
	`, id, now, externalID, merged); err != nil {
		return nil, fmt.Errorf("failed to confirm ledger entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	entry.Status = models.EntryStatusConfirmed
	entry.ConfirmedAt = &now
	entry.ExternalTransactionID = externalID
	entry.Metadata = merged
	return &entry, nil
}

// MarkEntryReversed transitions pending|confirmed -> reversed under a row
// lock. The entry's amount and running balance are never touched; the
// compensating adjustment carries the economic effect.
func (r *PostgresLedgerRepo) MarkEntryReversed(ctx context.Context, id int64) (*models.LedgerEntry, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var entry models.LedgerEntry
	err = tx.GetContext(ctx, &entry,
		fmt.Sprintf(`SELECT %s FROM ledger_entries WHERE id = $1 FOR UPDATE`, entryColumns), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry: %w", err)
	}

	if entry.Status == models.EntryStatusReversed {
		return nil, ledger.ErrEntryAlreadyReversed
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx, `
		UPDATE ledger_entries SET status = 'reversed', reversed_at = $2 WHERE id = $1
	`, id, now); err != nil {
		return nil, fmt.Errorf("failed to mark entry reversed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	entry.Status = models.EntryStatusReversed
	entry.ReversedAt = &now
	return &entry, nil
}

// CreateSnapshot writes a balance snapshot outside the create transaction
// (daily/manual/reconciliation captures)
func (r *PostgresLedgerRepo) CreateSnapshot(ctx context.Context, snapshot *models.BalanceSnapshot) error {
	row := r.db.QueryRowxContext(ctx, `
		INSERT INTO balance_snapshots (tenant_id, balance, pending_balance, last_ledger_entry_id, snapshot_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, snapshot.TenantID, snapshot.Balance, snapshot.PendingBalance, snapshot.LastLedgerEntryID, snapshot.SnapshotType)
	if err := row.Scan(&snapshot.ID, &snapshot.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert balance snapshot: %w", err)
	}
	return nil
}

// GetBalanceHistory returns snapshots for the tenant inside the window
func (r *PostgresLedgerRepo) GetBalanceHistory(ctx context.Context, tenantID string, start, end time.Time) ([]*models.BalanceSnapshot, error) {
	var snapshots []*models.BalanceSnapshot
	err := r.db.SelectContext(ctx, &snapshots, `
		SELECT id, tenant_id, balance, pending_balance, last_ledger_entry_id, snapshot_type, created_at
		FROM balance_snapshots
		WHERE tenant_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC
	`, tenantID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance history: %w", err)
	}
	return snapshots, nil
}

// CreateAuditLog writes an audit record in its own transaction
func (r *PostgresLedgerRepo) CreateAuditLog(ctx context.Context, auditLog *models.SecurityAuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO security_audit_log (
			id, tenant_id, user_id, action, resource, resource_id,
			old_values, new_values, ip_address, user_agent, session_id,
			success, failure_reason, risk_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		auditLog.ID, auditLog.TenantID, auditLog.UserID, auditLog.Action, auditLog.Resource,
		auditLog.ResourceID, auditLog.OldValues, auditLog.NewValues, auditLog.IPAddress,
		auditLog.UserAgent, auditLog.SessionID, auditLog.Success, auditLog.FailureReason,
		auditLog.RiskScore,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}

func insertAuditLogTx(ctx context.Context, tx *sqlx.Tx, auditLog *models.SecurityAuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO security_audit_log (
			id, tenant_id, user_id, action, resource, resource_id,
			old_values, new_values, ip_address, user_agent, session_id,
			success, failure_reason, risk_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		auditLog.ID, auditLog.TenantID, auditLog.UserID, auditLog.Action, auditLog.Resource,
		auditLog.ResourceID, auditLog.OldValues, auditLog.NewValues, auditLog.IPAddress,
		auditLog.UserAgent, auditLog.SessionID, auditLog.Success, auditLog.FailureReason,
		auditLog.RiskScore,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}

// ListTenantIDs returns every tenant with at least one ledger entry
func (r *PostgresLedgerRepo) ListTenantIDs(ctx context.Context) ([]string, error) {
	var tenants []string
	err := r.db.SelectContext(ctx, &tenants, `
		SELECT DISTINCT tenant_id FROM ledger_entries ORDER BY tenant_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}
