package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/lojinha/ledgercore/internal/pkg/circuitbreaker"
	httpclient "github.com/lojinha/ledgercore/internal/pkg/http"
	"github.com/lojinha/ledgercore/internal/pkg/logger"
	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/services/ledger"
)

// ProviderHTTPClient implements the ledger.ProviderClient capability over
// the provider's REST API. Calls go through a circuit breaker so a dead
// provider fails fast instead of tying up reconciliation runs.
type ProviderHTTPClient struct {
	apiClient *httpclient.APIKeyClient
	breaker   *circuitbreaker.CircuitBreaker
}

// NewProviderClient creates a new provider client from configuration
func NewProviderClient(cfg models.ProviderConfig, l *logger.AppLogger) ledger.ProviderClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &ProviderHTTPClient{
		apiClient: httpclient.NewAPIKeyClient(cfg.BaseURL, cfg.APIKey, timeout),
		breaker:   circuitbreaker.New(circuitbreaker.DefaultConfig("payment-provider"), l),
	}
}

// GetAccountBalance returns the provider's view of a tenant account
func (c *ProviderHTTPClient) GetAccountBalance(ctx context.Context, providerAccountID string) (*models.ProviderBalance, error) {
	endpoint := fmt.Sprintf("/v1/accounts/%s/balance", url.PathEscape(providerAccountID))

	var balance models.ProviderBalance
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.apiClient.GetJSON(ctx, endpoint, &balance)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get provider balance: %w", err)
	}
	return &balance, nil
}

// GetTransactionLog returns the provider's transaction entries for the
// tenant inside the window
func (c *ProviderHTTPClient) GetTransactionLog(ctx context.Context, tenantID string, start, end time.Time) ([]models.ProviderTransaction, error) {
	endpoint := fmt.Sprintf("/v1/accounts/%s/transactions?start=%s&end=%s",
		url.PathEscape(tenantID),
		url.QueryEscape(start.UTC().Format(time.RFC3339)),
		url.QueryEscape(end.UTC().Format(time.RFC3339)),
	)

	var transactions []models.ProviderTransaction
	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.apiClient.GetJSON(ctx, endpoint, &transactions)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get provider transaction log: %w", err)
	}
	return transactions, nil
}
