package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lojinha/ledgercore/internal/pkg/middleware"
	"github.com/lojinha/ledgercore/internal/pkg/models"
	reconHTTP "github.com/lojinha/ledgercore/services/reconciliation/handler/http"
)

// RegisterRoutes wires the reconciliation HTTP endpoints onto the echo instance
func RegisterRoutes(e *echo.Echo, h *reconHTTP.ReconciliationHandler, jwtConfig models.JWTConfig) {
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(jwtConfig))

	api.POST("/reconciliation/runs", h.RunReconciliation)
	api.POST("/reconciliation/records/:id/resolve", h.ResolveReconciliation)
	api.GET("/reconciliation/tenants/:tenantId/history", h.GetHistory)
	api.GET("/reconciliation/pending", h.GetPending)
}
