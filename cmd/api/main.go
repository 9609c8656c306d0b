package main

// @title Kizuna Back Office API
// @version 1.0
// @description Back-office API for the Kizuna sales team: call-log synchronization, contact exports and reporting.

// @contact.name Back Office Support
// @contact.email dev@kizunaworks.jp

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/joho/godotenv"
	"github.com/kizunaworks/backoffice/config"
	"github.com/kizunaworks/backoffice/pkg/api/handlers"
	"github.com/kizunaworks/backoffice/pkg/cache"
	"github.com/kizunaworks/backoffice/pkg/calllog"
	"github.com/kizunaworks/backoffice/pkg/callsync"
	"github.com/kizunaworks/backoffice/pkg/database"
	"github.com/kizunaworks/backoffice/pkg/email"
	"github.com/kizunaworks/backoffice/pkg/export"
	"github.com/kizunaworks/backoffice/pkg/jobs"
	"github.com/kizunaworks/backoffice/pkg/logger"
	"github.com/kizunaworks/backoffice/pkg/metrics"
	custommiddleware "github.com/kizunaworks/backoffice/pkg/middleware"
	"github.com/kizunaworks/backoffice/pkg/namemap"
	"github.com/kizunaworks/backoffice/pkg/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {
	// Load .env if present (local development; production uses real env vars)
	if err := godotenv.Load(); err != nil {
		log.Printf("ℹ️  No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2) // 5 req/min for login

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))

	e.Use(custommiddleware.SecurityHeaders(custommiddleware.DefaultSecurityHeadersConfig()))
	e.Use(middleware.Gzip())

	// Global rate limiting (default 60 req/min)
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "Kizuna Back Office API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Initialize email service
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.SendGridAPIKey)

	// Optional S3 upload for exports
	var uploader export.Uploader
	if cfg.S3Bucket != "" {
		store, err := storage.NewS3Store(storage.Config{
			AWSAccessKeyID:     cfg.AWSAccessKeyID,
			AWSSecretAccessKey: cfg.AWSSecretAccessKey,
			AWSRegion:          cfg.AWSRegion,
			Bucket:             cfg.S3Bucket,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize S3 storage: %v", err)
		} else {
			uploader = store
			log.Printf("✅ S3 export upload enabled (bucket: %s)", cfg.S3Bucket)
		}
	} else {
		log.Printf("ℹ️  S3 export upload disabled (no bucket configured)")
	}

	// Initialize services
	exportService := export.NewService(db.Ent, uploader, cfg.StorageLocalPath)

	// Call-log sync service (only when the upstream platform is configured)
	var syncService *callsync.Service
	if cfg.CallLogAPIBase != "" {
		callLogClient, err := calllog.NewClient(cfg.CallLogAPIBase, cfg.CallLogAPIToken)
		if err != nil {
			log.Fatalf("❌ Failed to initialize call-log client: %v", err)
		}
		names := namemap.New(cfg.CallLogAgentAliases)
		syncService = callsync.NewService(db.Ent, callLogClient, names, appLogger)
		log.Printf("✅ Call-log sync service initialized (upstream: %s)", cfg.CallLogAPIBase)
	} else {
		log.Printf("ℹ️  Call-log sync disabled (CALLLOG_API_BASE not configured)")
	}

	// Scheduled sync (cron)
	var cronManager *jobs.CronManager
	if cfg.SyncEnabled && syncService != nil {
		cronManager = jobs.NewCronManager(syncService, redisClient, prometheusMetrics, emailService, cfg.AlertEmail, cfg.SyncIntervalMinutes, log.Default())
		if err := cronManager.SetupJobs(); err != nil {
			log.Fatalf("❌ Failed to setup cron jobs: %v", err)
		}
		cronManager.Start()
		log.Printf("✅ Scheduled call-log sync started (every %d minutes)", cfg.SyncIntervalMinutes)
	} else {
		log.Printf("ℹ️  Scheduled call-log sync disabled")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db.Ent, cfg, prometheusMetrics)
	exportHandler := handlers.NewExportHandler(exportService, prometheusMetrics)
	phoneHandler := handlers.NewPhoneHandler()

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Authentication routes
	authRoutes := v1.Group("/auth")
	{
		// Login with rate limit: 5 per minute (prevent brute force)
		authRoutes.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
		authRoutes.GET("/me", authHandler.Me, custommiddleware.JWTMiddleware(cfg.JWTSecret))
	}

	// Protected routes (require JWT)
	protected := v1.Group("")
	protected.Use(custommiddleware.JWTMiddleware(cfg.JWTSecret))
	{
		// Export routes
		exportsGroup := protected.Group("/exports")
		{
			exportsGroup.POST("", exportHandler.CreateExport)
		}

		// Phone inspection routes
		phoneGroup := protected.Group("/phone")
		{
			phoneGroup.POST("/inspect", phoneHandler.InspectPhone)
			phoneGroup.POST("/normalize", phoneHandler.NormalizePhone)
		}

		// Call-log integration routes (only when the upstream platform is configured)
		if syncService != nil {
			callSyncHandler := handlers.NewCallSyncHandler(syncService, redisClient, prometheusMetrics)
			callLogGroup := protected.Group("/integrations/calllog")
			{
				// Manual sync trigger is admin-only; diagnostics are open to any staff account
				callLogGroup.POST("/sync", callSyncHandler.TriggerSync, custommiddleware.RequireAdmin(db.Ent))
				callLogGroup.GET("/peek", callSyncHandler.PeekRecords)
				callLogGroup.GET("/check", callSyncHandler.CheckOwnerDate)
				callLogGroup.GET("/status", callSyncHandler.SyncStatus)
			}
		}
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 Kizuna Back Office API starting on %s", address)
	log.Printf("🔐 JWT expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d), login 5/min", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	if cfg.SyncEnabled && syncService != nil {
		log.Printf("🕐 Call-log sync: every %d minutes (last 2 hours window)", cfg.SyncIntervalMinutes)
	}

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if cronManager != nil {
		cronManager.Stop()
		log.Println("✅ Cron jobs stopped")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
