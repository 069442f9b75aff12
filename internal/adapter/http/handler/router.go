package handler

import (
	"core-bridge-controller/config"
	"core-bridge-controller/internal/adapter/http/middleware"
	"core-bridge-controller/internal/adapter/http/stream"
	redisStore "core-bridge-controller/internal/adapter/storage/redis"
	"core-bridge-controller/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ControllerSvc  ports.ControllerService
	AuditSvc       ports.AuditService
	SigSvc         ports.SignatureService
	NonceStore     ports.NonceStore
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	StreamHub      *stream.Hub                // nil = live audit stream disabled
	HealthCheckers []ports.HealthChecker
	AuthCfg        config.AuthConfig
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies PostgreSQL + Redis + EVM)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Every API route requires a valid owner signature; the service layer
	// decides whether the recovered principal is the owner.
	sigAuth := middleware.SignatureAuth(deps.SigSvc, deps.NonceStore, deps.AuthCfg, deps.Logger)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Dispatch trigger routes ---
	actionHandler := NewActionHandler(deps.ControllerSvc)
	actions := v1.Group("/actions", sigAuth)
	{
		actions.POST("/api-wallets", rl("actions"), actionHandler.AddAPIWallet)
		actions.POST("/bridge", rl("actions"), actionHandler.BridgeToRemote)
		actions.POST("/spot-transfers", rl("actions"), actionHandler.DirectSpotTransfer)
		actions.POST("/orders", rl("actions"), actionHandler.PlaceLimitOrder)
		actions.POST("/class-transfers", rl("actions"), actionHandler.CrossMarketTransfer)
	}

	// --- Custody routes ---
	custodyHandler := NewCustodyHandler(deps.ControllerSvc)
	custody := v1.Group("/custody", sigAuth)
	{
		custody.POST("/bridge", rl("custody"), custodyHandler.BridgeToCore)
		custody.POST("/withdrawals", rl("custody"), custodyHandler.Withdraw)
		custody.POST("/emergency-withdrawal", rl("custody"), custodyHandler.EmergencyWithdraw)
	}

	// --- Configuration routes ---
	controllerHandler := NewControllerHandler(deps.ControllerSvc)
	controller := v1.Group("/controller", sigAuth)
	{
		controller.GET("/state", rl("controller"), controllerHandler.GetState)
		controller.PUT("/system-address", rl("controller"), controllerHandler.SetSystemAddress)
		controller.PUT("/keeper", rl("controller"), controllerHandler.SetKeeper)
		controller.PUT("/ownership", rl("controller"), controllerHandler.TransferOwnership)
	}

	// --- Audit routes ---
	if deps.AuditSvc != nil {
		auditHandler := NewAuditHandler(deps.AuditSvc)
		audit := v1.Group("/audit", sigAuth)
		{
			audit.GET("/events", rl("audit"), auditHandler.ListEvents)
			if deps.StreamHub != nil {
				audit.GET("/stream", deps.StreamHub.Handler())
			}
		}
	}

	return r
}
