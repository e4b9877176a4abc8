package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/marketbay/backend/internal/application/catalog"
	identityapp "github.com/marketbay/backend/internal/application/identity"
	orderapp "github.com/marketbay/backend/internal/application/order"
	partnerapp "github.com/marketbay/backend/internal/application/partner"
	shopapp "github.com/marketbay/backend/internal/application/shop"
	"github.com/marketbay/backend/internal/infrastructure/auth"
	"github.com/marketbay/backend/internal/infrastructure/config"
	"github.com/marketbay/backend/internal/infrastructure/logger"
	"github.com/marketbay/backend/internal/infrastructure/payment"
	"github.com/marketbay/backend/internal/infrastructure/persistence"
	"github.com/marketbay/backend/internal/interfaces/http/handler"
	"github.com/marketbay/backend/internal/interfaces/http/middleware"
	"github.com/marketbay/backend/internal/interfaces/http/router"
)

//	@title			MarketBay API
//	@version		1.0
//	@description	Multi-vendor marketplace backend with hosted-checkout payments

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting MarketBay backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist backed by Redis; logout and forced invalidation
	// depend on it
	tokenBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := tokenBlacklist.Close(); err != nil {
			log.Error("Error closing Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected successfully")

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	shopRepo := persistence.NewGormShopRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Payment gateway adapter
	checkoutAdapter, err := payment.NewCheckoutAdapter(cfg.Payment)
	if err != nil {
		log.Fatal("Failed to configure payment gateway", zap.Error(err))
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, customerRepo, vendorRepo,
		jwtService, tokenBlacklist, identityapp.DefaultAuthServiceConfig(), log)
	userService := identityapp.NewUserService(userRepo, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, log)
	customerService := partnerapp.NewCustomerService(customerRepo, log)
	vendorService := partnerapp.NewVendorService(vendorRepo, log)
	shopService := shopapp.NewShopService(shopRepo, vendorRepo, log)
	orderService := orderapp.NewOrderService(orderRepo, customerRepo, vendorRepo, shopRepo, checkoutAdapter, log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, outermost first: request ID, panic recovery,
	// request logging, security headers, CORS, body limit, JWT auth
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = tokenBlacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Register API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewHealthHandler(db.DB)).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewUserHandler(userService)).
		Register(handler.NewCategoryHandler(categoryService)).
		Register(handler.NewProfileHandler(customerService, vendorService)).
		Register(handler.NewShopHandler(shopService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewPaymentCallbackHandler(orderService, checkoutAdapter, log)).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
