// Package router wires HTTP handlers and middleware into a gin engine.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tokopos/backend/internal/infrastructure/auth"
	"github.com/tokopos/backend/internal/infrastructure/logger"
	"github.com/tokopos/backend/internal/interfaces/http/handler"
	"github.com/tokopos/backend/internal/interfaces/http/middleware"
)

// Config holds everything the router needs to build the engine
type Config struct {
	Logger      *zap.Logger
	JWTService  *auth.JWTService
	ServiceName string

	// TracingEnabled controls the OpenTelemetry middleware
	TracingEnabled bool
	// AllowAuthHeaderFallback accepts X-Store-ID and X-User-ID headers in
	// place of a bearer token. For local development only.
	AllowAuthHeaderFallback bool
	CORSAllowOrigins        []string

	SaleHandler     *handler.SaleHandler
	OrderHandler    *handler.OrderHandler
	DebtHandler     *handler.DebtHandler
	CustomerHandler *handler.CustomerHandler
	PricingHandler  *handler.PricingHandler
	StockHandler    *handler.StockHandler
}

// New builds the gin engine with the full middleware chain and all routes
func New(cfg Config) *gin.Engine {
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(middleware.SecurityHeaders())

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsCfg))

	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.ServiceName,
		Enabled:     cfg.TracingEnabled,
	}))

	authCfg := middleware.DefaultAuthConfig(cfg.JWTService)
	authCfg.AllowHeaderFallback = cfg.AllowAuthHeaderFallback
	authCfg.Logger = cfg.Logger
	engine.Use(middleware.AuthWithConfig(authCfg))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	registerRoutes(api, cfg)

	return engine
}

func registerRoutes(api *gin.RouterGroup, cfg Config) {
	sales := api.Group("/sales")
	{
		sales.POST("", cfg.SaleHandler.PostSale)
		sales.GET("", cfg.SaleHandler.ListSales)
		sales.GET("/:id", cfg.SaleHandler.GetSale)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", cfg.OrderHandler.CreateOrder)
		orders.GET("", cfg.OrderHandler.ListOrders)
		orders.GET("/:id", cfg.OrderHandler.GetOrder)
		orders.PATCH("/:id/status", cfg.OrderHandler.TransitionStatus)
	}

	debts := api.Group("/debts")
	{
		debts.GET("/:id", cfg.DebtHandler.GetDebt)
		debts.POST("/:id/payments", cfg.DebtHandler.ApplyPayment)
		debts.GET("/:id/payments", cfg.DebtHandler.ListPayments)
	}

	customers := api.Group("/customers")
	{
		customers.POST("", cfg.CustomerHandler.CreateCustomer)
		customers.GET("", cfg.CustomerHandler.ListCustomers)
		customers.POST("/merge", cfg.CustomerHandler.MergeCustomers)
		customers.GET("/:id", cfg.CustomerHandler.GetCustomer)
		customers.GET("/:id/debts", cfg.DebtHandler.ListCustomerDebts)
	}

	products := api.Group("/products")
	{
		products.GET("/:id/effective-price", cfg.PricingHandler.GetEffectivePrice)
		products.GET("/:id/mutations", cfg.StockHandler.ListMutations)
	}

	stock := api.Group("/stock")
	{
		stock.POST("/imports", cfg.StockHandler.ImportStock)
		stock.POST("/edits", cfg.StockHandler.EditStock)
	}
}
