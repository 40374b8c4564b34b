package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/internal/utils"
	"github.com/lojinha/ledgercore/services/ledger"
)

// LedgerHandler handles HTTP requests for ledger operations
type LedgerHandler struct {
	ledgerUC ledger.LedgerUseCase
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(ledgerUC ledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: ledgerUC,
	}
}

// CreateEntryRequest is the payload for creating a ledger entry; amounts
// travel as fixed-point decimal strings
type CreateEntryRequest struct {
	TenantID              string          `json:"tenant_id"`
	TransactionType       string          `json:"transaction_type"`
	Amount                string          `json:"amount"`
	ReferenceID           *string         `json:"reference_id,omitempty"`
	OrderID               *string         `json:"order_id,omitempty"`
	WithdrawalID          *string         `json:"withdrawal_id,omitempty"`
	ExternalTransactionID *string         `json:"external_transaction_id,omitempty"`
	Description           string          `json:"description"`
	Metadata              models.Metadata `json:"metadata,omitempty"`
}

// ConfirmEntryRequest is the payload for confirming a ledger entry
type ConfirmEntryRequest struct {
	ExternalTransactionID *string         `json:"external_transaction_id,omitempty"`
	Metadata              models.Metadata `json:"metadata,omitempty"`
}

// ReverseEntryRequest is the payload for reversing a ledger entry
type ReverseEntryRequest struct {
	Reason string `json:"reason"`
}

func operationContext(c echo.Context) models.OperationContext {
	opCtx := models.OperationContext{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		SessionID: c.Request().Header.Get("X-Session-ID"),
	}
	if userID, ok := c.Get("user_id").(string); ok && userID != "" {
		opCtx.UserID = &userID
	}
	return opCtx
}

func ledgerErrorResponse(c echo.Context, err error) error {
	if errors.Is(err, ledger.ErrEntryNotFound) {
		return utils.NotFoundResponse(c, err.Error())
	}
	if ledger.IsValidationError(err) {
		return utils.UnprocessableResponse(c, err.Error())
	}
	return utils.InternalServerErrorResponse(c, "")
}

// CreateEntry handles ledger entry creation requests
func (h *LedgerHandler) CreateEntry(c echo.Context) error {
	var req CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.TenantID == "" {
		return utils.BadRequestResponse(c, "tenant_id is required")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return utils.BadRequestResponse(c, "amount must be a decimal string")
	}

	op := models.LedgerOperation{
		TenantID:              req.TenantID,
		TransactionType:       models.TransactionType(req.TransactionType),
		Amount:                amount,
		ReferenceID:           req.ReferenceID,
		OrderID:               req.OrderID,
		WithdrawalID:          req.WithdrawalID,
		ExternalTransactionID: req.ExternalTransactionID,
		Description:           req.Description,
		Metadata:              req.Metadata,
	}

	entry, err := h.ledgerUC.CreateSecureLedgerEntry(c.Request().Context(), operationContext(c), op)
	if err != nil {
		return ledgerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ledger entry created", entry)
}

// ConfirmEntry handles ledger entry confirmation requests
func (h *LedgerHandler) ConfirmEntry(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid entry id")
	}

	var req ConfirmEntryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	entry, err := h.ledgerUC.ConfirmLedgerEntry(c.Request().Context(), operationContext(c), id, req.ExternalTransactionID, req.Metadata)
	if err != nil {
		return ledgerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ledger entry confirmed", entry)
}

// ReverseEntry handles ledger entry reversal requests
func (h *LedgerHandler) ReverseEntry(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid entry id")
	}

	var req ReverseEntryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Reason == "" {
		return utils.BadRequestResponse(c, "reason is required")
	}

	entry, err := h.ledgerUC.ReverseLedgerEntry(c.Request().Context(), operationContext(c), id, req.Reason)
	if err != nil {
		return ledgerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ledger entry reversed", entry)
}

// GetBalance returns the tenant's current balance
func (h *LedgerHandler) GetBalance(c echo.Context) error {
	tenantID := c.Param("tenantId")

	balance, err := h.ledgerUC.GetCurrentBalance(c.Request().Context(), tenantID)
	if err != nil {
		return ledgerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", map[string]string{
		"tenant_id": tenantID,
		"balance":   balance,
	})
}

// GetEntries returns a page of the tenant's ledger entries
func (h *LedgerHandler) GetEntries(c echo.Context) error {
	tenantID := c.Param("tenantId")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	entries, err := h.ledgerUC.GetLedgerEntries(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return ledgerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// GetBalanceHistory returns the tenant's balance snapshots in a window
func (h *LedgerHandler) GetBalanceHistory(c echo.Context) error {
	tenantID := c.Param("tenantId")

	start, err := time.Parse(time.RFC3339, c.QueryParam("start"))
	if err != nil {
		return utils.BadRequestResponse(c, "start must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end"))
	if err != nil {
		return utils.BadRequestResponse(c, "end must be RFC3339")
	}

	snapshots, err := h.ledgerUC.GetBalanceHistory(c.Request().Context(), tenantID, start, end)
	if err != nil {
		return ledgerErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", snapshots)
}
