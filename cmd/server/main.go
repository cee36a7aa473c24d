package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/vibecoders/backend/internal/application/catalog"
	pantryapp "github.com/vibecoders/backend/internal/application/pantry"
	planningapp "github.com/vibecoders/backend/internal/application/planning"
	"github.com/vibecoders/backend/internal/infrastructure/cache"
	"github.com/vibecoders/backend/internal/infrastructure/config"
	"github.com/vibecoders/backend/internal/infrastructure/logger"
	"github.com/vibecoders/backend/internal/infrastructure/persistence"
	"github.com/vibecoders/backend/internal/infrastructure/telemetry"
	"github.com/vibecoders/backend/internal/interfaces/http/handler"
	"github.com/vibecoders/backend/internal/interfaces/http/middleware"
	"github.com/vibecoders/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

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

	log.Info("Starting recipes backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel,
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))

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

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.EnableTracing(cfg.Database.DBName); err != nil {
			log.Fatal("Failed to enable database tracing", zap.Error(err))
		}
		log.Info("Database query tracing enabled")
	}

	// Rating cache (Redis with in-memory fallback)
	var ratingCache cache.RatingCache
	if cfg.Cache.Enabled {
		factory := cache.NewRatingCacheFactory(cfg.Redis, cache.WithLogger(log))
		ratingCache, err = factory.CreateCache()
		if err != nil {
			log.Fatal("Failed to initialize rating cache", zap.Error(err))
		}
	}

	// Initialize repositories
	recipeRepo := persistence.NewGormRecipeRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	menuPlanRepo := persistence.NewGormMenuPlanRepository(db.DB)
	pantryItemRepo := persistence.NewGormPantryItemRepository(db.DB)
	purchasedItemRepo := persistence.NewGormPurchasedItemRepository(db.DB)

	// Initialize application services
	ratingService := catalogapp.NewRatingService(reviewRepo, ratingCache, cfg.Cache.RatingTTL, log)
	recipeService := catalogapp.NewRecipeService(recipeRepo, ratingService)
	reviewService := catalogapp.NewReviewService(recipeRepo, reviewRepo, ratingService)
	menuPlanService := planningapp.NewMenuPlanService(menuPlanRepo, recipeRepo, recipeService)
	pantryService := pantryapp.NewPantryService(pantryItemRepo)
	purchasedService := pantryapp.NewPurchasedService(purchasedItemRepo)

	// Initialize HTTP handlers
	recipeHandler := handler.NewRecipeHandler(recipeService, reviewService)
	menuPlanHandler := handler.NewMenuPlanHandler(menuPlanService)
	pantryHandler := handler.NewPantryHandler(pantryService)
	purchasedHandler := handler.NewPurchasedHandler(purchasedService)
	systemHandler := handler.NewSystemHandler(db.DB)

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

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Tracing - Create a span per request (if enabled)
	// 3. Recovery - Catch panics
	// 4. Logger - Log requests
	// 5. Security - Add security headers
	// 6. CORS - Handle cross-origin requests
	// 7. BodyLimit - Limit request body size
	// 8. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	if cfg.Telemetry.Enabled {
		engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Enabled:     true,
		}))
		engine.Use(middleware.SpanErrorMarker())
	}
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Catalog domain (recipes, reviews)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.GET("/recipes", recipeHandler.List)
	catalogRoutes.POST("/recipes", recipeHandler.Create)
	catalogRoutes.GET("/recipes/:id", recipeHandler.GetByID)
	catalogRoutes.DELETE("/recipes/:id", recipeHandler.Delete)
	catalogRoutes.POST("/recipes/:id/reviews", recipeHandler.CreateReview)
	catalogRoutes.GET("/recipes/:id/reviews", recipeHandler.ListReviews)

	// Planning domain (weekly menu plans)
	planningRoutes := router.NewDomainGroup("planning", "/planning")
	planningRoutes.GET("/menu-plans", menuPlanHandler.List)
	planningRoutes.POST("/menu-plans", menuPlanHandler.Save)
	planningRoutes.GET("/menu-plans/:date", menuPlanHandler.GetByDate)
	planningRoutes.DELETE("/menu-plans/:date", menuPlanHandler.Delete)

	// Pantry domain (user ingredients, purchased items)
	pantryRoutes := router.NewDomainGroup("pantry", "/pantry")
	pantryRoutes.GET("/items", pantryHandler.List)
	pantryRoutes.POST("/items", pantryHandler.Save)
	pantryRoutes.POST("/items/batch", pantryHandler.SaveBatch)
	pantryRoutes.DELETE("/items/:name", pantryHandler.Delete)
	pantryRoutes.GET("/purchased", purchasedHandler.List)
	pantryRoutes.POST("/purchased", purchasedHandler.Save)
	pantryRoutes.POST("/purchased/batch", purchasedHandler.SaveBatch)
	pantryRoutes.DELETE("/purchased", purchasedHandler.Clear)
	pantryRoutes.DELETE("/purchased/:item_name", purchasedHandler.Delete)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(catalogRoutes).
		Register(planningRoutes).
		Register(pantryRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

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
