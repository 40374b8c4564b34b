package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/services/reconciliation"
)

// PostgresReconciliationRepo implements the reconciliation.ReconciliationRepo interface
type PostgresReconciliationRepo struct {
	db *sqlx.DB
}

// NewReconciliationRepository creates a new reconciliation repository
func NewReconciliationRepository(db *sqlx.DB) reconciliation.ReconciliationRepo {
	return &PostgresReconciliationRepo{
		db: db,
	}
}

const recordColumns = `id, tenant_id, reconciliation_type, start_date, end_date,
	system_balance, external_balance, difference, transaction_count,
	discrepancies, status, resolved_by, resolved_at, notes, created_at`

// CreateRecord persists the artifact of one reconciliation run
func (r *PostgresReconciliationRepo) CreateRecord(ctx context.Context, record *models.ReconciliationRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO reconciliation_records (
			id, tenant_id, reconciliation_type, start_date, end_date,
			system_balance, external_balance, difference, transaction_count,
			discrepancies, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`, record.ID, record.TenantID, record.ReconciliationType, record.StartDate, record.EndDate,
		record.SystemBalance, record.ExternalBalance, record.Difference, record.TransactionCount,
		record.Discrepancies, record.Status, record.Notes,
	).Scan(&record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create reconciliation record: %w", err)
	}

	return nil
}

// GetRecord fetches a reconciliation record by id
func (r *PostgresReconciliationRepo) GetRecord(ctx context.Context, id uuid.UUID) (*models.ReconciliationRecord, error) {
	var record models.ReconciliationRecord
	err := r.db.GetContext(ctx, &record, `
		SELECT `+recordColumns+`
		FROM reconciliation_records
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reconciliation.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get reconciliation record: %w", err)
	}

	return &record, nil
}

// MarkResolved transitions a discrepancy_found record to resolved. The
// status guard lives in the WHERE clause so concurrent resolvers cannot
// both win.
func (r *PostgresReconciliationRepo) MarkResolved(ctx context.Context, id uuid.UUID, resolvedBy, notes string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE reconciliation_records
		SET status = $1, resolved_by = $2, resolved_at = NOW(), notes = $3
		WHERE id = $4 AND status = $5
	`, models.ReconciliationStatusResolved, resolvedBy, notes, id, models.ReconciliationStatusDiscrepancyFound)
	if err != nil {
		return fmt.Errorf("failed to resolve reconciliation record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return reconciliation.ErrRecordNotFound
	}

	return nil
}

// GetHistory returns a tenant's reconciliation records, newest first
func (r *PostgresReconciliationRepo) GetHistory(ctx context.Context, tenantID string, limit, offset int) ([]*models.ReconciliationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}

	records := []*models.ReconciliationRecord{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT `+recordColumns+`
		FROM reconciliation_records
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get reconciliation history: %w", err)
	}

	return records, nil
}

// GetPending returns all records still awaiting manual resolution
func (r *PostgresReconciliationRepo) GetPending(ctx context.Context) ([]*models.ReconciliationRecord, error) {
	records := []*models.ReconciliationRecord{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT `+recordColumns+`
		FROM reconciliation_records
		WHERE status = $1
		ORDER BY created_at ASC
	`, models.ReconciliationStatusDiscrepancyFound)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending reconciliations: %w", err)
	}

	return records, nil
}

// HasRecordForWindow reports whether a run of the given type already covers
// the window for the tenant
func (r *PostgresReconciliationRepo) HasRecordForWindow(ctx context.Context, tenantID string, reconciliationType models.ReconciliationType, start, end time.Time) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM reconciliation_records
			WHERE tenant_id = $1 AND reconciliation_type = $2 AND start_date = $3 AND end_date = $4
		)
	`, tenantID, reconciliationType, start, end)
	if err != nil {
		return false, fmt.Errorf("failed to check reconciliation window: %w", err)
	}

	return exists, nil
}
