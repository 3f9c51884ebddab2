package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acme/backend/internal/application/administrator"
	"github.com/acme/backend/internal/application/client"
	"github.com/acme/backend/internal/application/developer"
	identityapp "github.com/acme/backend/internal/application/identity"
	"github.com/acme/backend/internal/application/sponsor"
	"github.com/acme/backend/internal/infrastructure/auth"
	"github.com/acme/backend/internal/infrastructure/cache"
	"github.com/acme/backend/internal/infrastructure/config"
	"github.com/acme/backend/internal/infrastructure/event"
	"github.com/acme/backend/internal/infrastructure/logger"
	"github.com/acme/backend/internal/infrastructure/persistence"
	"github.com/acme/backend/internal/infrastructure/printing"
	"github.com/acme/backend/internal/infrastructure/scheduler"
	"github.com/acme/backend/internal/infrastructure/storage"
	"github.com/acme/backend/internal/infrastructure/telemetry"
	"github.com/acme/backend/internal/interfaces/http/handler"
	"github.com/acme/backend/internal/interfaces/http/middleware"
	"github.com/acme/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/acme/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Acme Backend API
//	@version		1.0
//	@description	Multi-role administration backend: client contracts, developer training modules, sponsor sponsorships and invoices, system configuration.

//	@contact.name	API Support
//	@contact.url	https://github.com/acme/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

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
	log, err := logger.New(logger.FromAppConfig(cfg.Log))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Acme Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	ctx := context.Background()

	// Telemetry: no-op providers unless enabled
	telemetryCfg := telemetry.FromAppConfig(cfg.Telemetry, version)
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetryCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetryCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
	}()
	businessMetrics, err := telemetry.NewBusinessMetrics(meterProvider.Meter(cfg.Telemetry.ServiceName), log)
	if err != nil {
		log.Fatal("Failed to create business metrics", zap.Error(err))
	}

	// Database
	db, err := persistence.NewDatabase(&cfg.Database, log, cfg.Log.Level)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if db.Driver == "sqlite" {
		if err := persistence.AutoMigrate(db.DB); err != nil {
			log.Fatal("Failed to migrate sqlite database", zap.Error(err))
		}
	}
	dbTracing := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL,
		SlowQueryThresh: cfg.Database.SlowQueryThresh,
		DBSystem:        dbSystem(db.Driver),
	}, log)
	if err := dbTracing.Register(db.DB); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully", zap.String("driver", db.Driver))

	// Repositories
	accountRepo := persistence.NewGormUserAccountRepository(db.DB)
	profileRepo := persistence.NewGormRoleProfileRepository(db.DB)
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	trainingModuleRepo := persistence.NewGormTrainingModuleRepository(db.DB)
	sponsorshipRepo := persistence.NewGormSponsorshipRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	settingsRepo := persistence.NewGormConfigurationRepository(db.DB)

	// Redis backs the token blacklist and the dashboard cache when enabled
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
	}
	var blacklist auth.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
	if redisClient != nil {
		blacklist = auth.NewRedisTokenBlacklist(redisClient)
	}
	dashboardCache, err := cache.NewDashboardCacheFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithRedisClient(redisClient),
		cache.WithInMemoryFallback(cfg.App.Env != "production"),
	).Create()
	if err != nil {
		log.Fatal("Failed to create dashboard cache", zap.Error(err))
	}
	defer func() {
		if err := cache.Close(dashboardCache); err != nil {
			log.Error("Error closing dashboard cache", zap.Error(err))
		}
	}()

	// Event bus
	eventBus := event.NewInMemoryEventBus(log, event.WithDispatchObserver(businessMetrics.ObserveDispatch))

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(accountRepo, jwtService, blacklist, log)
	contractService := client.NewContractService(contractRepo, projectRepo, settingsRepo, eventBus, log)
	trainingModuleService := developer.NewTrainingModuleService(trainingModuleRepo, projectRepo, eventBus, log)
	sponsorshipService := sponsor.NewSponsorshipService(sponsorshipRepo, projectRepo, settingsRepo, eventBus, log)
	dashboardService := sponsor.NewDashboardService(sponsorshipRepo, invoiceRepo, settingsRepo, profileRepo, log,
		sponsor.WithDashboardCache(dashboardCache, cfg.Dashboard.CacheTTL))
	configurationService := administrator.NewSystemConfigurationService(settingsRepo, log)

	var invoiceOpts []sponsor.InvoiceServiceOption
	if cfg.Printing.Enabled {
		pdf, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
			DefaultTimeout: cfg.Printing.DefaultTimeout,
			RemoteURL:      cfg.Printing.RemoteURL,
			NoSandbox:      cfg.Printing.NoSandbox,
			Logger:         log,
		})
		if err != nil {
			log.Fatal("Failed to start PDF renderer", zap.Error(err))
		}
		defer func() {
			if err := pdf.Close(); err != nil {
				log.Error("Error closing PDF renderer", zap.Error(err))
			}
		}()
		documents, err := documentStorage(&cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to initialize document storage", zap.Error(err))
		}
		renderer := printing.NewInvoiceRenderer(pdf, printing.WithPaperSize(printing.PaperSize(cfg.Printing.PaperSize)))
		invoiceOpts = append(invoiceOpts, sponsor.WithDocuments(renderer, documents))
		log.Info("Invoice documents enabled", zap.String("storage", cfg.Storage.Backend))
	}
	invoiceService := sponsor.NewInvoiceService(invoiceRepo, sponsorshipRepo, settingsRepo, eventBus, log, invoiceOpts...)

	// Event handlers
	eventBus.Subscribe(sponsor.NewDashboardInvalidationHandler(dashboardService, log))
	eventBus.Subscribe(businessMetrics)
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Scheduler
	if cfg.Scheduler.Enabled {
		jobs := scheduler.NewScheduler(scheduler.Config{
			JobTimeout: cfg.Scheduler.JobTimeout,
			Location:   time.UTC,
		}, log)
		warmJob := scheduler.NewDashboardWarmJob(dashboardService, businessMetrics, log)
		if err := jobs.Register(scheduler.DashboardWarmJobName, cfg.Scheduler.DashboardWarmCron, warmJob); err != nil {
			log.Fatal("Failed to register dashboard warm-up job", zap.Error(err))
		}
		if err := jobs.Start(ctx); err != nil {
			log.Fatal("Failed to start scheduler", zap.Error(err))
		}
		defer func() {
			if err := jobs.Stop(context.Background()); err != nil {
				log.Error("Error stopping scheduler", zap.Error(err))
			}
		}()
		log.Info("Scheduler started", zap.String("dashboard_warm_cron", cfg.Scheduler.DashboardWarmCron))
	}

	// HTTP
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order:
	// 1. RequestID, Recovery, request log
	// 2. Tracing, so handler spans carry the request id
	// 3. Security headers, CORS, body limit, request timeout
	// 4. Locale for localized messages
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	engine.Use(middleware.Locale())

	if cfg.HTTP.MetricsEnabled {
		httpMetrics := middleware.NewHTTPMetrics()
		if sqlDB, err := db.DB.DB(); err == nil {
			if err := httpMetrics.RegisterDB(sqlDB, cfg.Database.DBName); err != nil {
				log.Warn("Failed to export connection pool metrics", zap.Error(err))
			}
		}
		engine.Use(httpMetrics.Middleware())
		engine.GET("/metrics", httpMetrics.Handler())
	}

	jwtMiddleware := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Logger:         log,
	})

	// Health check endpoint (outside API versioning)
	checks := map[string]handler.Pinger{"database": db}
	if redisClient != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	systemHandler := handler.NewSystemHandler(cfg.App.Name, version, checks)
	engine.GET("/health", systemHandler.Health)

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any",
			middleware.SwaggerProtection(cfg.Swagger, jwtMiddleware),
			ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	loginLimiter := middleware.NewRateLimiter(cfg.HTTP.LoginRateLimit, cfg.HTTP.LoginRateWindow)
	defer loginLimiter.Stop()

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(router.APIGroups(router.Handlers{
		Auth:                handler.NewAuthHandler(authService),
		System:              systemHandler,
		SystemConfiguration: handler.NewSystemConfigurationHandler(configurationService),
		Contracts:           handler.NewContractHandler(contractService),
		TrainingModules:     handler.NewTrainingModuleHandler(trainingModuleService),
		Sponsorships:        handler.NewSponsorshipHandler(sponsorshipService, dashboardService),
		Invoices:            handler.NewInvoiceHandler(invoiceService),
	}, router.Guards{
		Authenticate: jwtMiddleware,
		Credentials:  middleware.RateLimit(loginLimiter),
		Annotate:     middleware.TracingAttributeInjector(),
	})...)
	r.Setup()
	for _, route := range r.Routes() {
		log.Debug("Route registered",
			zap.String("group", route.Group),
			zap.String("method", route.Method),
			zap.String("path", route.Path))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// documentStorage opens the configured invoice document store
func documentStorage(cfg *config.StorageConfig, log *zap.Logger) (sponsor.DocumentStorage, error) {
	if cfg.Backend == "s3" {
		return storage.NewS3ObjectStorage(cfg,
			storage.WithLogger(log),
			storage.WithPresignExpiration(cfg.PresignExpiration))
	}
	log.Warn("Using in-memory document storage; document links are not downloadable")
	return storage.NewMemoryStorage(cfg.PublicBaseURL), nil
}

func dbSystem(driver string) string {
	if driver == "sqlite" {
		return "sqlite"
	}
	return "postgresql"
}
