package ledger

import (
	"context"
	"time"

	"github.com/lojinha/ledgercore/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/lojinha/ledgercore/services/ledger LedgerGW,ProviderClient

// LedgerGW defines the interface for publishing ledger domain events
type LedgerGW interface {
	PublishEntryCreated(ctx context.Context, entry *models.LedgerEntry) error
	PublishEntryConfirmed(ctx context.Context, entry *models.LedgerEntry) error
	PublishEntryReversed(ctx context.Context, entry *models.LedgerEntry) error
}

// ProviderClient is the external money-movement provider capability.
// Implementations are constructor-injected so the core can be tested
// against a fake.
type ProviderClient interface {
	// GetAccountBalance returns the provider's view of a tenant account
	GetAccountBalance(ctx context.Context, providerAccountID string) (*models.ProviderBalance, error)

	// GetTransactionLog returns the provider's transaction entries for the
	// tenant inside the window
	GetTransactionLog(ctx context.Context, tenantID string, start, end time.Time) ([]models.ProviderTransaction, error)
}
