package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/lojinha/ledgercore/internal/pkg/models"
)

func previousUTCDay() (time.Time, time.Time) {
	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return end.Add(-24 * time.Hour), end
}

func TestScheduleAutomatedReconciliation_SkipsCoveredWindows(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)
	start, end := previousUTCDay()

	f.ledgerUC.EXPECT().ListTenantIDs(gomock.Any()).Return([]string{"tenant-1", "tenant-2"}, nil)

	// tenant-1 already reconciled for yesterday, tenant-2 gets a run
	f.repo.EXPECT().
		HasRecordForWindow(gomock.Any(), "tenant-1", models.ReconciliationTypeDaily, start, end).
		Return(true, nil)
	f.repo.EXPECT().
		HasRecordForWindow(gomock.Any(), "tenant-2", models.ReconciliationTypeDaily, start, end).
		Return(false, nil)

	f.ledgerUC.EXPECT().GetCurrentBalance(gomock.Any(), "tenant-2").Return("10.00", nil)
	f.ledgerUC.EXPECT().GetConfirmedEntries(gomock.Any(), "tenant-2", start, end).Return(nil, nil)
	f.provider.EXPECT().GetAccountBalance(gomock.Any(), "tenant-2").
		Return(&models.ProviderBalance{Balance: mustDecimal("10.00")}, nil)
	f.provider.EXPECT().GetTransactionLog(gomock.Any(), "tenant-2", start, end).Return(nil, nil)
	f.repo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := f.uc.ScheduleAutomatedReconciliation(context.Background())

	// Assert
	assert.NoError(t, err)
}

func TestScheduleAutomatedReconciliation_OneTenantFailingDoesNotStopOthers(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)
	start, end := previousUTCDay()

	f.ledgerUC.EXPECT().ListTenantIDs(gomock.Any()).Return([]string{"tenant-1", "tenant-2"}, nil)

	// Checkpoint lookup fails for tenant-1; the sweep moves on
	f.repo.EXPECT().
		HasRecordForWindow(gomock.Any(), "tenant-1", models.ReconciliationTypeDaily, start, end).
		Return(false, errors.New("db timeout"))
	f.repo.EXPECT().
		HasRecordForWindow(gomock.Any(), "tenant-2", models.ReconciliationTypeDaily, start, end).
		Return(false, nil)

	f.ledgerUC.EXPECT().GetCurrentBalance(gomock.Any(), "tenant-2").Return("10.00", nil)
	f.ledgerUC.EXPECT().GetConfirmedEntries(gomock.Any(), "tenant-2", start, end).Return(nil, nil)
	f.provider.EXPECT().GetAccountBalance(gomock.Any(), "tenant-2").
		Return(&models.ProviderBalance{Balance: mustDecimal("10.00")}, nil)
	f.provider.EXPECT().GetTransactionLog(gomock.Any(), "tenant-2", start, end).Return(nil, nil)
	f.repo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := f.uc.ScheduleAutomatedReconciliation(context.Background())

	// Assert
	assert.NoError(t, err)
}

func TestScheduleAutomatedReconciliation_AlertsOnManualReview(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)
	start, end := previousUTCDay()

	f.ledgerUC.EXPECT().ListTenantIDs(gomock.Any()).Return([]string{"tenant-1"}, nil)
	f.repo.EXPECT().
		HasRecordForWindow(gomock.Any(), "tenant-1", models.ReconciliationTypeDaily, start, end).
		Return(false, nil)

	// Large balance drift forces manual review
	f.ledgerUC.EXPECT().GetCurrentBalance(gomock.Any(), "tenant-1").Return("100.00", nil)
	f.ledgerUC.EXPECT().GetConfirmedEntries(gomock.Any(), "tenant-1", start, end).Return(nil, nil)
	f.provider.EXPECT().GetAccountBalance(gomock.Any(), "tenant-1").
		Return(&models.ProviderBalance{Balance: mustDecimal("50.00")}, nil)
	f.provider.EXPECT().GetTransactionLog(gomock.Any(), "tenant-1", start, end).Return(nil, nil)
	f.repo.EXPECT().CreateRecord(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishManualReviewAlert(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := f.uc.ScheduleAutomatedReconciliation(context.Background())

	// Assert
	assert.NoError(t, err)
}

func TestScheduleAutomatedReconciliation_StopsOnCancelledContext(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newReconFixture(t, ctrl)

	f.ledgerUC.EXPECT().ListTenantIDs(gomock.Any()).Return([]string{"tenant-1", "tenant-2"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	err := f.uc.ScheduleAutomatedReconciliation(ctx)

	// Assert
	assert.ErrorIs(t, err, context.Canceled)
}
