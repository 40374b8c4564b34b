package constants

// NATS Subjects
const (
	// Ledger events
	SubjectLedgerEntryCreated   = "ledger.entry.created"
	SubjectLedgerEntryConfirmed = "ledger.entry.confirmed"
	SubjectLedgerEntryReversed  = "ledger.entry.reversed"

	// Reconciliation events
	SubjectReconciliationCompleted    = "reconciliation.completed"
	SubjectReconciliationManualReview = "reconciliation.manual_review"
)
