package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lojinha/ledgercore/internal/pkg/constants"
	"github.com/lojinha/ledgercore/internal/pkg/models"
	natspkg "github.com/lojinha/ledgercore/internal/pkg/nats"
	"github.com/lojinha/ledgercore/services/ledger"
)

// ledgerGW handles ledger event publishing
type ledgerGW struct {
	natsClient *natspkg.Client
}

// NewLedgerGW creates a new NATS gateway instance
func NewLedgerGW(client *natspkg.Client) ledger.LedgerGW {
	return &ledgerGW{
		natsClient: client,
	}
}

func (g *ledgerGW) publishEntryEvent(subject string, entry *models.LedgerEntry) error {
	event := models.LedgerEntryEvent{
		EntryID:         entry.ID,
		TenantID:        entry.TenantID,
		TransactionType: entry.TransactionType,
		EntryType:       entry.EntryType,
		Amount:          entry.Amount,
		RunningBalance:  entry.RunningBalance,
		Status:          entry.Status,
		Timestamp:       time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}
	return g.natsClient.Publish(subject, data)
}

// PublishEntryCreated publishes a ledger entry created event
func (g *ledgerGW) PublishEntryCreated(ctx context.Context, entry *models.LedgerEntry) error {
	return g.publishEntryEvent(constants.SubjectLedgerEntryCreated, entry)
}

// PublishEntryConfirmed publishes a ledger entry confirmed event
func (g *ledgerGW) PublishEntryConfirmed(ctx context.Context, entry *models.LedgerEntry) error {
	return g.publishEntryEvent(constants.SubjectLedgerEntryConfirmed, entry)
}

// PublishEntryReversed publishes a ledger entry reversed event
func (g *ledgerGW) PublishEntryReversed(ctx context.Context, entry *models.LedgerEntry) error {
	return g.publishEntryEvent(constants.SubjectLedgerEntryReversed, entry)
}
