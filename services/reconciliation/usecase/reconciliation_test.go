package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinha/ledgercore/internal/pkg/logger"
	"github.com/lojinha/ledgercore/internal/pkg/models"
	ledgerMocks "github.com/lojinha/ledgercore/services/ledger/mocks"
	"github.com/lojinha/ledgercore/services/reconciliation/mocks"
)

func newTestLogger(t *testing.T) *logger.AppLogger {
	t.Helper()
	appLogger, err := logger.NewAppLogger(models.LoggerConfig{Level: "fatal"})
	require.NoError(t, err)
	return appLogger
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestConfig() *models.Config {
	return &models.Config{
		Reconciliation: models.ReconciliationConfig{
			BalanceThreshold: "0.05",
			EntryThreshold:   "0.01",
			AutoResolveLimit: "0.10",
		},
	}
}

type reconFixture struct {
	uc       *ReconciliationUC
	repo     *mocks.MockReconciliationRepo
	gw       *mocks.MockReconciliationGW
	ledgerUC *ledgerMocks.MockLedgerUseCase
	provider *ledgerMocks.MockProviderClient
	window   [2]time.Time
}

func newReconFixture(t *testing.T, ctrl *gomock.Controller) *reconFixture {
	repo := mocks.NewMockReconciliationRepo(ctrl)
	gw := mocks.NewMockReconciliationGW(ctrl)
	ledgerUC := ledgerMocks.NewMockLedgerUseCase(ctrl)
	provider := ledgerMocks.NewMockProviderClient(ctrl)

	uc := NewReconciliationUC(newTestConfig(), repo, gw, ledgerUC, provider, newTestLogger(t))

	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	return &reconFixture{
		uc:       uc,
		repo:     repo,
		gw:       gw,
		ledgerUC: ledgerUC,
		provider: provider,
		window:   [2]time.Time{end.Add(-24 * time.Hour), end},
	}
}

func (f *reconFixture) expectGather(systemBalance string, entries []*models.LedgerEntry, providerBalance string, txns []models.ProviderTransaction) {
	f.ledgerUC.EXPECT().GetCurrentBalance(gomock.Any(), "tenant-1").Return(systemBalance, nil)
	f.ledgerUC.EXPECT().GetConfirmedEntries(gomock.Any(), "tenant-1", f.window[0], f.window[1]).Return(entries, nil)
	f.provider.EXPECT().GetAccountBalance(gomock.Any(), "tenant-1").
		Return(&models.ProviderBalance{Balance: decimal.RequireFromString(providerBalance)}, nil)
	f.provider.EXPECT().GetTransactionLog(gomock.Any(), "tenant-1", f.window[0], f.window[1]).Return(txns, nil)
}

func TestPerformReconciliation_BalancesWithinThreshold(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)

	// 0.03 drift is inside the 0.05 balance threshold
	f.expectGather("70.00", nil, "70.03", nil)

	var saved *models.ReconciliationRecord
	f.repo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.ReconciliationRecord) error {
			saved = record
			return nil
		})
	f.gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := f.uc.PerformReconciliation(context.Background(), "tenant-1", models.ReconciliationTypeDaily, f.window[0], f.window[1])

	// Assert
	assert.NoError(t, err)
	assert.False(t, result.RequiresManualReview)
	assert.Empty(t, result.Discrepancies)

	require.NotNil(t, saved)
	assert.Equal(t, models.ReconciliationStatusReconciled, saved.Status)
	assert.True(t, saved.Difference.Equal(decimal.RequireFromString("-0.03")))
}

func TestPerformReconciliation_BalanceDriftExceedsThreshold(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)

	f.expectGather("70.00", nil, "65.00", nil)

	var saved *models.ReconciliationRecord
	f.repo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.ReconciliationRecord) error {
			saved = record
			return nil
		})
	f.gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := f.uc.PerformReconciliation(context.Background(), "tenant-1", models.ReconciliationTypeDaily, f.window[0], f.window[1])

	// Assert
	assert.NoError(t, err)
	assert.True(t, result.RequiresManualReview)
	require.Len(t, result.Discrepancies, 1)
	assert.Equal(t, models.DiscrepancyAmountMismatch, result.Discrepancies[0].Type)
	assert.True(t, result.Discrepancies[0].Difference.Equal(decimal.RequireFromString("5.00")))

	require.NotNil(t, saved)
	assert.Equal(t, models.ReconciliationStatusDiscrepancyFound, saved.Status)
}

func TestPerformReconciliation_SmallDriftAutoResolves(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)

	// 0.07 is over the 0.05 detection threshold but inside the 0.10
	// auto-resolve limit
	f.expectGather("70.00", nil, "70.07", nil)

	var saved *models.ReconciliationRecord
	f.repo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.ReconciliationRecord) error {
			saved = record
			return nil
		})
	f.gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := f.uc.PerformReconciliation(context.Background(), "tenant-1", models.ReconciliationTypeDaily, f.window[0], f.window[1])

	// Assert
	assert.NoError(t, err)
	assert.False(t, result.RequiresManualReview)
	assert.Len(t, result.Discrepancies, 1)

	require.NotNil(t, saved)
	assert.Equal(t, models.ReconciliationStatusResolved, saved.Status)
	require.NotNil(t, saved.Notes)
	assert.Contains(t, *saved.Notes, "auto-resolved")
}

func TestPerformReconciliation_MissingTransactionsBothDirections(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)

	extA := "ext-a"
	entries := []*models.LedgerEntry{
		{
			ID:                    1,
			TenantID:              "tenant-1",
			EntryType:             models.EntryTypeCredit,
			Amount:                decimal.RequireFromString("50.00"),
			ExternalTransactionID: &extA,
		},
	}
	txns := []models.ProviderTransaction{
		{TenantID: "tenant-1", ExternalTransactionID: "ext-b", Amount: decimal.RequireFromString("20.00"), IsSuccessful: true},
		// Failed provider transactions are ignored
		{TenantID: "tenant-1", ExternalTransactionID: "ext-c", Amount: decimal.RequireFromString("99.00"), IsSuccessful: false},
	}

	f.expectGather("70.00", entries, "70.00", txns)

	f.repo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := f.uc.PerformReconciliation(context.Background(), "tenant-1", models.ReconciliationTypeDaily, f.window[0], f.window[1])

	// Assert
	assert.NoError(t, err)
	assert.True(t, result.RequiresManualReview)
	require.Len(t, result.Discrepancies, 2)

	// ext-a exists only in the ledger
	assert.Equal(t, models.DiscrepancyMissingTransaction, result.Discrepancies[0].Type)
	assert.Equal(t, "ext-a", *result.Discrepancies[0].ExternalTransactionID)
	assert.Equal(t, int64(1), *result.Discrepancies[0].LedgerEntryID)

	// ext-b exists only at the provider
	assert.Equal(t, models.DiscrepancyMissingTransaction, result.Discrepancies[1].Type)
	assert.Equal(t, "ext-b", *result.Discrepancies[1].ExternalTransactionID)
	assert.Nil(t, result.Discrepancies[1].LedgerEntryID)
}

func TestPerformReconciliation_EntryAmountDrift(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)

	extA := "ext-a"
	entries := []*models.LedgerEntry{
		{
			ID:                    1,
			TenantID:              "tenant-1",
			EntryType:             models.EntryTypeCredit,
			Amount:                decimal.RequireFromString("50.00"),
			ExternalTransactionID: &extA,
		},
	}
	txns := []models.ProviderTransaction{
		{TenantID: "tenant-1", ExternalTransactionID: "ext-a", Amount: decimal.RequireFromString("50.25"), IsSuccessful: true},
	}

	f.expectGather("70.00", entries, "70.00", txns)

	f.repo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	result, err := f.uc.PerformReconciliation(context.Background(), "tenant-1", models.ReconciliationTypeDaily, f.window[0], f.window[1])

	// Assert
	assert.NoError(t, err)
	require.Len(t, result.Discrepancies, 1)
	assert.Equal(t, models.DiscrepancyAmountMismatch, result.Discrepancies[0].Type)
	assert.True(t, result.Discrepancies[0].Difference.Equal(decimal.RequireFromString("-0.25")))
}

func TestPerformReconciliation_ProviderDownStillPersistsRecord(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)

	f.ledgerUC.EXPECT().GetCurrentBalance(gomock.Any(), "tenant-1").Return("70.00", nil)
	f.ledgerUC.EXPECT().GetConfirmedEntries(gomock.Any(), "tenant-1", f.window[0], f.window[1]).Return(nil, nil)
	f.provider.EXPECT().GetAccountBalance(gomock.Any(), "tenant-1").
		Return(nil, errors.New("provider unavailable"))

	var saved *models.ReconciliationRecord
	f.repo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.ReconciliationRecord) error {
			saved = record
			return nil
		})

	// Act
	result, err := f.uc.PerformReconciliation(context.Background(), "tenant-1", models.ReconciliationTypeDaily, f.window[0], f.window[1])

	// Assert
	assert.NoError(t, err)
	assert.True(t, result.RequiresManualReview)

	require.NotNil(t, saved)
	assert.Equal(t, models.ReconciliationStatusDiscrepancyFound, saved.Status)
	require.NotNil(t, saved.Notes)
	assert.Contains(t, *saved.Notes, "provider unavailable")
}

func TestResolveReconciliation_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)

	id := uuid.New()
	record := &models.ReconciliationRecord{
		ID:       id,
		TenantID: "tenant-1",
		Status:   models.ReconciliationStatusDiscrepancyFound,
	}

	f.repo.EXPECT().GetRecord(gomock.Any(), id).Return(record, nil)
	f.repo.EXPECT().MarkResolved(gomock.Any(), id, "ops-user", "checked with provider").Return(nil)

	// Act
	err := f.uc.ResolveReconciliation(context.Background(), id, "ops-user", "checked with provider")

	// Assert
	assert.NoError(t, err)
}

func TestResolveReconciliation_OnlyDiscrepancyRecordsResolvable(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)

	id := uuid.New()
	record := &models.ReconciliationRecord{
		ID:       id,
		TenantID: "tenant-1",
		Status:   models.ReconciliationStatusReconciled,
	}

	f.repo.EXPECT().GetRecord(gomock.Any(), id).Return(record, nil)

	// Act
	err := f.uc.ResolveReconciliation(context.Background(), id, "ops-user", "")

	// Assert
	assert.Error(t, err)
}
