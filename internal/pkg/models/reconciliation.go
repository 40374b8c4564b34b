package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReconciliationType classifies the window a reconciliation run covers
type ReconciliationType string

const (
	ReconciliationTypeDaily   ReconciliationType = "daily"
	ReconciliationTypeWeekly  ReconciliationType = "weekly"
	ReconciliationTypeMonthly ReconciliationType = "monthly"
	ReconciliationTypeManual  ReconciliationType = "manual"
)

// ReconciliationStatus is the lifecycle state of a reconciliation record
type ReconciliationStatus string

const (
	ReconciliationStatusReconciled       ReconciliationStatus = "reconciled"
	ReconciliationStatusDiscrepancyFound ReconciliationStatus = "discrepancy_found"
	ReconciliationStatusResolved         ReconciliationStatus = "resolved"
)

// DiscrepancyType classifies a detected mismatch between system and
// external records
type DiscrepancyType string

const (
	DiscrepancyAmountMismatch     DiscrepancyType = "amount_mismatch"
	DiscrepancyMissingTransaction DiscrepancyType = "missing_transaction"
	DiscrepancyStatusMismatch     DiscrepancyType = "status_mismatch"
	DiscrepancyDuplicate          DiscrepancyType = "duplicate"
)

// Discrepancy is one detected mismatch between the ledger and the external
// provider's records
type Discrepancy struct {
	Type                  DiscrepancyType `json:"type"`
	LedgerEntryID         *int64          `json:"ledger_entry_id,omitempty"`
	ExternalTransactionID *string         `json:"external_transaction_id,omitempty"`
	SystemAmount          decimal.Decimal `json:"system_amount"`
	ExternalAmount        decimal.Decimal `json:"external_amount"`
	Difference            decimal.Decimal `json:"difference"`
	Description           string          `json:"description"`
}

// DiscrepancyList stores discrepancies as a JSONB column
type DiscrepancyList []Discrepancy

// Value implements driver.Valuer for JSONB storage
func (d DiscrepancyList) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for JSONB storage
func (d *DiscrepancyList) Scan(src interface{}) error {
	if src == nil {
		*d = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported discrepancy source type %T", src)
	}

	return json.Unmarshal(data, d)
}

// ReconciliationRecord is the persisted artifact of one reconciliation run
type ReconciliationRecord struct {
	ID                 uuid.UUID            `json:"id" db:"id"`
	TenantID           string               `json:"tenant_id" db:"tenant_id"`
	ReconciliationType ReconciliationType   `json:"reconciliation_type" db:"reconciliation_type"`
	StartDate          time.Time            `json:"start_date" db:"start_date"`
	EndDate            time.Time            `json:"end_date" db:"end_date"`
	SystemBalance      decimal.Decimal      `json:"system_balance" db:"system_balance"`
	ExternalBalance    decimal.Decimal      `json:"external_balance" db:"external_balance"`
	Difference         decimal.Decimal      `json:"difference" db:"difference"`
	TransactionCount   int                  `json:"transaction_count" db:"transaction_count"`
	Discrepancies      DiscrepancyList      `json:"discrepancies,omitempty" db:"discrepancies"`
	Status             ReconciliationStatus `json:"status" db:"status"`
	ResolvedBy         *string              `json:"resolved_by,omitempty" db:"resolved_by"`
	ResolvedAt         *time.Time           `json:"resolved_at,omitempty" db:"resolved_at"`
	Notes              *string              `json:"notes,omitempty" db:"notes"`
	CreatedAt          time.Time            `json:"created_at" db:"created_at"`
}

// ReconciliationResult is what a reconciliation run reports back to its
// caller (scheduler or operator)
type ReconciliationResult struct {
	Record               *ReconciliationRecord `json:"record"`
	Discrepancies        DiscrepancyList       `json:"discrepancies,omitempty"`
	RequiresManualReview bool                  `json:"requires_manual_review"`
}
