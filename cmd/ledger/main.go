package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/lojinha/ledgercore/internal/pkg/config"
	"github.com/lojinha/ledgercore/internal/pkg/database"
	"github.com/lojinha/ledgercore/internal/pkg/health"
	"github.com/lojinha/ledgercore/internal/pkg/locker"
	"github.com/lojinha/ledgercore/internal/pkg/logger"
	"github.com/lojinha/ledgercore/internal/pkg/middleware"
	natspkg "github.com/lojinha/ledgercore/internal/pkg/nats"
	"github.com/lojinha/ledgercore/internal/pkg/server"
	ledgerHandler "github.com/lojinha/ledgercore/services/ledger/handler"
	ledgerHTTP "github.com/lojinha/ledgercore/services/ledger/handler/http"
	ledgerRepo "github.com/lojinha/ledgercore/services/ledger/repository"
	ledgerUsecase "github.com/lojinha/ledgercore/services/ledger/usecase"
	reconHandler "github.com/lojinha/ledgercore/services/reconciliation/handler"
	reconHTTP "github.com/lojinha/ledgercore/services/reconciliation/handler/http"
	reconRepo "github.com/lojinha/ledgercore/services/reconciliation/repository"
	reconUsecase "github.com/lojinha/ledgercore/services/reconciliation/usecase"

	ledgerGateway "github.com/lojinha/ledgercore/services/ledger/gateway"
	reconGateway "github.com/lojinha/ledgercore/services/reconciliation/gateway"
)

func main() {
	appName := "ledger-service"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	appLogger.WithFields(logrus.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	}).Info("Starting application")

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer postgresClient.Close()

	// Redis is only needed when tenant writes are serialized across instances
	var tenantLocker locker.TenantLocker
	if configs.Ledger.DistributedLock {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()
		tenantLocker = locker.NewRedisLocker(redisClient, time.Duration(configs.Ledger.LockTTLSeconds)*time.Second)
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to NATS")
	}
	defer natsClient.Close()

	// Initialize repositories
	entryRepo := ledgerRepo.NewLedgerRepository(postgresClient.GetDB())
	recordRepo := reconRepo.NewReconciliationRepository(postgresClient.GetDB())

	// Initialize gateways
	entryGW := ledgerGateway.NewLedgerGW(natsClient)
	providerClient := ledgerGateway.NewProviderClient(configs.Provider, appLogger)
	recordGW := reconGateway.NewReconciliationGW(natsClient)

	// Initialize use cases
	ledgerUC := ledgerUsecase.NewLedgerUC(configs, entryRepo, entryGW, providerClient, tenantLocker, appLogger)
	reconUC := reconUsecase.NewReconciliationUC(configs, recordRepo, recordGW, ledgerUC, providerClient, appLogger)

	// Initialize handlers
	entryHandler := ledgerHTTP.NewLedgerHandler(ledgerUC)
	recordHandler := reconHTTP.NewReconciliationHandler(reconUC)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	ledgerHandler.RegisterRoutes(e, entryHandler, configs.JWT)
	reconHandler.RegisterRoutes(e, recordHandler, configs.JWT)

	// Run the reconciliation scheduler until shutdown
	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()
	go reconUC.StartScheduler(schedulerCtx)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, appLogger, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		appLogger.WithError(err).Fatal("Server stopped unexpectedly")
	}
}
