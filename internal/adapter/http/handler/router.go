package handler

import (
	"settlement-ledger/internal/adapter/http/middleware"
	"settlement-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SettlementSvc  ports.SettlementService
	InvoiceSvc     ports.InvoiceService
	WalletSvc      ports.WalletService
	Journal        ports.LedgerJournal
	Paths          ports.LedgerPathResolver
	RateLimiter    ports.RateLimiter // nil = HTTP rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if a limiter is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	settlementHandler := NewSettlementHandler(deps.SettlementSvc, deps.Journal)
	settlements := v1.Group("/settlements")
	{
		settlements.POST("", rl("settlements"), settlementHandler.Settle)
	}
	transactions := v1.Group("/transactions")
	{
		transactions.GET("/:id", rl("reads"), settlementHandler.GetTransaction)
	}

	invoiceHandler := NewInvoiceHandler(deps.InvoiceSvc)
	invoices := v1.Group("/invoices")
	{
		invoices.POST("", rl("invoices"), invoiceHandler.Create)
		invoices.POST("/recipient", rl("invoices"), invoiceHandler.CreateForRecipient)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	accounts := v1.Group("/accounts")
	{
		accounts.POST("", rl("provisioning"), walletHandler.CreateAccount)
		accounts.POST("/:id/wallets", rl("provisioning"), walletHandler.AddWallet)
	}

	adminHandler := NewAdminHandler(deps.RateLimiter, deps.Paths)
	admin := v1.Group("/admin")
	{
		admin.POST("/ratelimits/reset", rl("admin"), adminHandler.ResetRateLimit)
		admin.POST("/dealer-cache/invalidate", rl("admin"), adminHandler.InvalidateDealerCache)
	}

	return r
}
