package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"core-bridge-controller/config"
	"core-bridge-controller/internal/adapter/evm"
	httpHandler "core-bridge-controller/internal/adapter/http/handler"
	"core-bridge-controller/internal/adapter/http/stream"
	pgStorage "core-bridge-controller/internal/adapter/storage/postgres"
	redisStorage "core-bridge-controller/internal/adapter/storage/redis"
	"core-bridge-controller/internal/core/domain"
	"core-bridge-controller/internal/core/ports"
	"core-bridge-controller/internal/instrumentation"
	"core-bridge-controller/internal/service"
	"core-bridge-controller/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/mo"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Core Bridge Controller")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize EVM client and gateways
	evmClient, err := evm.NewClient(ctx, cfg.EVM, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to EVM node")
	}
	defer evmClient.Close()

	if !common.IsHexAddress(cfg.EVM.DispatchAddress) {
		log.Fatal().Str("dispatch_address", cfg.EVM.DispatchAddress).Msg("Invalid dispatch gateway address")
	}
	gateway := evm.NewCoreWriterGateway(evmClient, common.HexToAddress(cfg.EVM.DispatchAddress), log)
	mover := evm.NewMover(evmClient, log)

	// Seed controller state from config. The owner is mandatory: without it
	// no mutating operation could ever be authorized.
	if !common.IsHexAddress(cfg.Controller.Owner) {
		log.Fatal().Str("owner", cfg.Controller.Owner).Msg("Controller owner must be a valid address")
	}
	state := domain.ControllerState{
		Owner:  common.HexToAddress(cfg.Controller.Owner),
		Keeper: mo.None[common.Address](),
	}
	if common.IsHexAddress(cfg.Controller.SystemAddress) {
		state.SystemAddress = common.HexToAddress(cfg.Controller.SystemAddress)
	}
	if common.IsHexAddress(cfg.Controller.Keeper) {
		state.Keeper = mo.Some(common.HexToAddress(cfg.Controller.Keeper))
	}

	// Initialize audit pipeline: postgres persistence + live websocket fan-out
	auditRepo := pgStorage.NewAuditRepo(pool)
	hub := stream.NewHub(log)
	auditSvc := service.NewAuditService(auditRepo, hub, log)

	// Initialize core services
	metrics := instrumentation.NewMetrics()
	controllerSvc := service.NewControllerService(
		state,
		gateway,
		mover,
		auditSvc,
		metrics,
		cfg.Protocol.Version,
		log,
	)
	sigSvc := service.NewECDSASignatureService()

	// Initialize Redis stores
	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)
	evmHealth := evm.NewHealthCheck(evmClient)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ControllerSvc:  controllerSvc,
		AuditSvc:       auditSvc,
		SigSvc:         sigSvc,
		NonceStore:     nonceStore,
		RateLimitStore: rateLimitStore,
		StreamHub:      hub,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth, evmHealth},
		AuthCfg:        cfg.Auth,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Str("operator", evmClient.Operator().Hex()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
