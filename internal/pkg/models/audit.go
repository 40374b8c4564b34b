package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded for ledger mutations
const (
	AuditActionLedgerCreate  = "ledger_entry.create"
	AuditActionLedgerConfirm = "ledger_entry.confirm"
	AuditActionLedgerReverse = "ledger_entry.reverse"
)

// SecurityAuditLog is one append-only record of an attempted mutation,
// written for every attempt regardless of outcome
type SecurityAuditLog struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	TenantID      string     `json:"tenant_id" db:"tenant_id"`
	UserID        *string    `json:"user_id,omitempty" db:"user_id"`
	Action        string     `json:"action" db:"action"`
	Resource      string     `json:"resource" db:"resource"`
	ResourceID    string     `json:"resource_id" db:"resource_id"`
	OldValues     Metadata   `json:"old_values,omitempty" db:"old_values"`
	NewValues     Metadata   `json:"new_values,omitempty" db:"new_values"`
	IPAddress     string     `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent     string     `json:"user_agent,omitempty" db:"user_agent"`
	SessionID     string     `json:"session_id,omitempty" db:"session_id"`
	Success       bool       `json:"success" db:"success"`
	FailureReason *string    `json:"failure_reason,omitempty" db:"failure_reason"`
	RiskScore     int        `json:"risk_score" db:"risk_score"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}
