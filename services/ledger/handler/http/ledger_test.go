package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/services/ledger"
	"github.com/lojinha/ledgercore/services/ledger/mocks"
)

func TestCreateEntry_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUseCase(ctrl)
	h := NewLedgerHandler(mockUC)

	e := echo.New()
	requestBody := `{
		"tenant_id": "tenant-1",
		"transaction_type": "sale",
		"amount": "25.50",
		"description": "order 881 settlement"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/entries", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-7")

	mockUC.EXPECT().
		CreateSecureLedgerEntry(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, opCtx models.OperationContext, op models.LedgerOperation) (*models.LedgerEntry, error) {
			assert.Equal(t, "tenant-1", op.TenantID)
			assert.Equal(t, models.TransactionTypeSale, op.TransactionType)
			assert.True(t, op.Amount.Equal(decimal.RequireFromString("25.50")))
			assert.Equal(t, "user-7", *opCtx.UserID)

			return &models.LedgerEntry{
				ID:              42,
				TenantID:        op.TenantID,
				TransactionType: op.TransactionType,
				EntryType:       models.EntryTypeCredit,
				Amount:          op.Amount,
				RunningBalance:  decimal.RequireFromString("125.50"),
				Status:          models.EntryStatusPending,
			}, nil
		})

	// Act
	err := h.CreateEntry(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, float64(42), data["id"])
	assert.Equal(t, "pending", data["status"])
}

func TestCreateEntry_NonDecimalAmount(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUseCase(ctrl)
	h := NewLedgerHandler(mockUC)

	e := echo.New()
	requestBody := `{"tenant_id": "tenant-1", "transaction_type": "sale", "amount": "ten"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/entries", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := h.CreateEntry(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateEntry_ValidationRejectionIsUnprocessable(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUseCase(ctrl)
	h := NewLedgerHandler(mockUC)

	e := echo.New()
	requestBody := `{"tenant_id": "tenant-1", "transaction_type": "withdrawal", "amount": "9999.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/entries", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		CreateSecureLedgerEntry(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, ledger.NewValidationError(ledger.CodeInsufficientBalance, "insufficient balance"))

	// Act
	err := h.CreateEntry(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestConfirmEntry_InvalidID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUseCase(ctrl)
	h := NewLedgerHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/entries/abc/confirm", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	// Act
	err := h.ConfirmEntry(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReverseEntry_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUseCase(ctrl)
	h := NewLedgerHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/entries/404/reverse", strings.NewReader(`{"reason": "typo"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("404")

	mockUC.EXPECT().
		ReverseLedgerEntry(gomock.Any(), gomock.Any(), int64(404), "typo").
		Return(nil, ledger.ErrEntryNotFound)

	// Act
	err := h.ReverseEntry(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReverseEntry_ReasonRequired(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUseCase(ctrl)
	h := NewLedgerHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/entries/7/reverse", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	// Act
	err := h.ReverseEntry(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBalance_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLedgerUseCase(ctrl)
	h := NewLedgerHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/tenants/tenant-1/balance", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tenantId")
	c.SetParamValues("tenant-1")

	mockUC.EXPECT().GetCurrentBalance(gomock.Any(), "tenant-1").Return("125.50", nil)

	// Act
	err := h.GetBalance(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "125.50", data["balance"])
}
