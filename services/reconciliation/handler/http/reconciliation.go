package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/internal/utils"
	"github.com/lojinha/ledgercore/services/reconciliation"
)

// ReconciliationHandler handles HTTP requests for reconciliation operations
type ReconciliationHandler struct {
	reconciliationUC reconciliation.ReconciliationUseCase
}

// NewReconciliationHandler creates a new reconciliation handler
func NewReconciliationHandler(reconciliationUC reconciliation.ReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{
		reconciliationUC: reconciliationUC,
	}
}

// RunReconciliationRequest triggers a manual reconciliation run
type RunReconciliationRequest struct {
	TenantID  string `json:"tenant_id"`
	StartDate string `json:"start_date"` // RFC3339
	EndDate   string `json:"end_date"`   // RFC3339
}

// ResolveReconciliationRequest marks a discrepancy record resolved
type ResolveReconciliationRequest struct {
	Notes string `json:"notes"`
}

// RunReconciliation triggers a manual reconciliation for a window
func (h *ReconciliationHandler) RunReconciliation(c echo.Context) error {
	var req RunReconciliationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.TenantID == "" {
		return utils.BadRequestResponse(c, "tenant_id is required")
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return utils.BadRequestResponse(c, "start_date must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return utils.BadRequestResponse(c, "end_date must be RFC3339")
	}
	if !end.After(start) {
		return utils.BadRequestResponse(c, "end_date must be after start_date")
	}

	result, err := h.reconciliationUC.PerformReconciliation(c.Request().Context(), req.TenantID, models.ReconciliationTypeManual, start, end)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reconciliation completed", result)
}

// ResolveReconciliation marks a discrepancy record resolved by the caller
func (h *ReconciliationHandler) ResolveReconciliation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid record id")
	}

	var req ResolveReconciliationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resolvedBy, _ := c.Get("user_id").(string)
	if resolvedBy == "" {
		return utils.UnauthorizedResponse(c, "resolver identity is required")
	}

	if err := h.reconciliationUC.ResolveReconciliation(c.Request().Context(), id, resolvedBy, req.Notes); err != nil {
		if errors.Is(err, reconciliation.ErrRecordNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		return utils.UnprocessableResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reconciliation resolved", nil)
}

// GetHistory returns a tenant's reconciliation records
func (h *ReconciliationHandler) GetHistory(c echo.Context) error {
	tenantID := c.Param("tenantId")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	records, err := h.reconciliationUC.GetReconciliationHistory(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", records)
}

// GetPending returns all records awaiting manual resolution
func (h *ReconciliationHandler) GetPending(c echo.Context) error {
	records, err := h.reconciliationUC.GetPendingReconciliations(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", records)
}
