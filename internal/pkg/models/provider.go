package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProviderBalance is the external provider's view of a tenant account
type ProviderBalance struct {
	Balance        decimal.Decimal `json:"balance"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
}

// ProviderTransaction is one entry from the external provider's
// transaction log
type ProviderTransaction struct {
	TenantID              string          `json:"tenant_id"`
	ExternalTransactionID string          `json:"external_transaction_id"`
	Amount                decimal.Decimal `json:"amount"`
	IsSuccessful          bool            `json:"is_successful"`
	CreatedAt             time.Time       `json:"created_at"`
}
