package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"

	inventoryapp "github.com/tokopos/backend/internal/application/inventory"
	partnerapp "github.com/tokopos/backend/internal/application/partner"
	pricingapp "github.com/tokopos/backend/internal/application/pricing"
	tradeapp "github.com/tokopos/backend/internal/application/trade"
	"github.com/tokopos/backend/internal/infrastructure/auth"
	"github.com/tokopos/backend/internal/infrastructure/cache"
	"github.com/tokopos/backend/internal/infrastructure/config"
	"github.com/tokopos/backend/internal/infrastructure/logger"
	"github.com/tokopos/backend/internal/infrastructure/persistence"
	"github.com/tokopos/backend/internal/infrastructure/telemetry"
	"github.com/tokopos/backend/internal/interfaces/http/handler"
	"github.com/tokopos/backend/internal/interfaces/http/middleware"
	"github.com/tokopos/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting POS backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	if cfg.Telemetry.Enabled {
		if err := db.DB.Use(otelgorm.NewPlugin(otelgorm.WithDBName(cfg.Database.DBName))); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}

	// Transaction scope and read-path repositories
	scope := persistence.NewGormTransactionScope(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	promotionRepo := persistence.NewGormPromotionRepository(db.DB)

	// Application services
	saleService := tradeapp.NewSaleService(scope, log)
	orderService := tradeapp.NewOrderService(scope, log)
	debtService := partnerapp.NewDebtService(scope, log)
	customerService := partnerapp.NewCustomerService(scope, log)
	stockService := inventoryapp.NewStockService(scope, log)
	pricingService := pricingapp.NewPricingService(productRepo, promotionRepo, log)

	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		pricingService.SetPromotionCache(
			cache.NewRedisPromotionCache(redisClient, cfg.Cache.PromotionTTL, log))
		log.Info("Promotion cache enabled",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Duration("ttl", cfg.Cache.PromotionTTL),
		)
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := router.New(router.Config{
		Logger:                  log,
		JWTService:              jwtService,
		ServiceName:             cfg.Telemetry.ServiceName,
		TracingEnabled:          cfg.Telemetry.Enabled,
		AllowAuthHeaderFallback: cfg.App.Env != "production",
		CORSAllowOrigins:        cfg.HTTP.CORSAllowOrigins,
		SaleHandler:             handler.NewSaleHandler(saleService),
		OrderHandler:            handler.NewOrderHandler(orderService),
		DebtHandler:             handler.NewDebtHandler(debtService),
		CustomerHandler:         handler.NewCustomerHandler(customerService),
		PricingHandler:          handler.NewPricingHandler(pricingService),
		StockHandler:            handler.NewStockHandler(stockService),
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}
	log.Info("Server stopped")
}
