package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/lojinha/ledgercore/internal/pkg/middleware"
	"github.com/lojinha/ledgercore/internal/pkg/models"
	ledgerHTTP "github.com/lojinha/ledgercore/services/ledger/handler/http"
)

// RegisterRoutes wires the ledger HTTP endpoints onto the echo instance
func RegisterRoutes(e *echo.Echo, h *ledgerHTTP.LedgerHandler, jwtConfig models.JWTConfig) {
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(jwtConfig))

	api.POST("/ledger/entries", h.CreateEntry)
	api.POST("/ledger/entries/:id/confirm", h.ConfirmEntry)
	api.POST("/ledger/entries/:id/reverse", h.ReverseEntry)
	api.GET("/ledger/tenants/:tenantId/balance", h.GetBalance)
	api.GET("/ledger/tenants/:tenantId/entries", h.GetEntries)
	api.GET("/ledger/tenants/:tenantId/balance-history", h.GetBalanceHistory)
}
