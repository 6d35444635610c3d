package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/holyfit/holyfit-api/config"
	"github.com/holyfit/holyfit-api/pkg/ai/llm"
	apierrors "github.com/holyfit/holyfit-api/pkg/api/errors"
	"github.com/holyfit/holyfit-api/pkg/api/handlers"
	"github.com/holyfit/holyfit-api/pkg/api/middleware"
	"github.com/holyfit/holyfit-api/pkg/billing"
	"github.com/holyfit/holyfit-api/pkg/cache"
	"github.com/holyfit/holyfit-api/pkg/content"
	"github.com/holyfit/holyfit-api/pkg/dashboard"
	"github.com/holyfit/holyfit-api/pkg/jobs"
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/holyfit/holyfit-api/pkg/metrics"
	custommiddleware "github.com/holyfit/holyfit-api/pkg/middleware"
	"github.com/holyfit/holyfit-api/pkg/secrets"
	"github.com/holyfit/holyfit-api/pkg/views"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()
	apierrors.SetLogger(log)
	log.Info("🔧 Configuration loaded", "environment", cfg.APIEnvironment)

	// Overlay credentials from the secrets backend
	secretsManager, err := secrets.NewManager(secrets.Config{
		Backend:       cfg.SecretsBackend,
		AWSRegion:     cfg.AWSRegion,
		Prefix:        cfg.SecretsPrefix,
		CacheDuration: 5 * time.Minute,
		Endpoint:      cfg.SecretsEndpoint,
	}, log)
	if err != nil {
		log.Error("❌ Failed to initialize secrets manager", "error", err)
		os.Exit(1)
	}
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	loaded, err := secrets.Apply(loadCtx, secretsManager, cfg)
	loadCancel()
	if err != nil {
		log.Error("❌ Failed to load secrets", "backend", cfg.SecretsBackend, "error", err)
		os.Exit(1)
	}
	log.Info("✅ Secrets loaded", "backend", cfg.SecretsBackend, "count", loaded)
	defer secretsManager.Close()

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 0.2,
			AttachStacktrace: true,
			BeforeSend:       custommiddleware.ScrubSentryEvent,
		})
		if err != nil {
			log.Warn("⚠️  Failed to initialize Sentry", "error", err)
		} else {
			log.Info("✅ Sentry initialized", "environment", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Info("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL, log)
	if err != nil {
		log.Error("❌ Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()

	// Content backend. A missing key is not fatal: every generation falls back.
	ctx := context.Background()
	llmClient, err := llm.NewClientFromConfig(ctx, cfg, log)
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		log.Warn("⚠️  No API key for content provider, serving fallback content", "provider", cfg.ContentProvider)
	case err != nil:
		log.Error("❌ Failed to create content client", "provider", cfg.ContentProvider, "error", err)
		os.Exit(1)
	}

	provider := content.NewProvider(content.Config{
		Remote:          cfg.RemoteProvider(),
		CalorieTarget:   cfg.DailyCalorieTarget,
		DefaultLanguage: content.ParseLanguage(cfg.ContentLanguage),
		MaxTokens:       cfg.LLMMaxTokens,
	}, llmClient, prometheusMetrics, log)
	log.Info("🥗 Content provider ready", "backend", provider.Backend())

	generationTimeout := time.Duration(cfg.GenerationTimeoutSeconds) * time.Second
	viewService := views.NewService(
		views.NewStore(redisClient, time.Duration(cfg.ViewStateTTLHours)*time.Hour),
		provider, generationTimeout, prometheusMetrics, log,
	)

	billingService := billing.NewService(&billing.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		PricePro:      cfg.StripePricePro,
		PriceElite:    cfg.StripePriceElite,
		SuccessURL:    cfg.FrontendURL + "/subscription?status=success",
		CancelURL:     cfg.FrontendURL + "/subscription?status=cancelled",
	}, billing.NewRedisTierStore(redisClient), log)
	billingService.OnTierChange(prometheusMetrics.RecordSubscriptionSold)
	if !billingService.Configured() {
		log.Info("ℹ️  Stripe disabled (no secret key configured)")
	}

	dashboardService := dashboard.NewService(billingService)

	// Probe the remote backend on a schedule
	var probe *jobs.ProviderProbe
	if llmClient != nil {
		probe = jobs.NewProviderProbe(llmClient, prometheusMetrics, log)
	}
	cronManager := jobs.NewCronManager(probe, log)
	if err := cronManager.SetupJobs(cfg.ProbeSchedule); err != nil {
		log.Error("❌ Failed to setup cron jobs", "error", err)
		os.Exit(1)
	}
	cronManager.Start()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	rootCtx, stopBackground := context.WithCancel(ctx)
	defer stopBackground()
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst, custommiddleware.RealIPKey)
	generateRateLimiter := custommiddleware.NewRateLimiter(cfg.GenerateRateLimitPerMinute, 5, custommiddleware.SessionOrIPKey)
	webhookRateLimiter := custommiddleware.NewRateLimiter(100, 20, custommiddleware.RealIPKey)
	go globalRateLimiter.RunCleanup(rootCtx, 3*time.Minute)
	go generateRateLimiter.RunCleanup(rootCtx, 3*time.Minute)
	go webhookRateLimiter.RunCleanup(rootCtx, 3*time.Minute)

	// Global middleware
	e.Use(custommiddleware.RequestLogger(log))
	e.Use(echomiddleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(custommiddleware.CORSConfig(cfg.CORSAllowedOrigins)))
	e.Use(echomiddleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{}))
	e.Use(custommiddleware.APIVersionMiddleware(custommiddleware.CurrentAPIVersion))
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(redisClient, provider, billingService, probe)
	contentHandler := handlers.NewContentHandler(provider, generationTimeout)
	viewHandler := handlers.NewViewHandler(viewService, provider.DefaultLanguage(), prometheusMetrics)
	billingHandler := handlers.NewBillingHandler(billingService, prometheusMetrics)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	sessionHandler := handlers.NewSessionHandler(cfg.JWTSecret, cfg.SessionExpirationHours)

	// Health check endpoints (public)
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/api/v1")
	v1.GET("/health", healthHandler.Health)
	v1.GET("/version", healthHandler.Version)
	v1.GET("/ping", healthHandler.Ping)

	// Content (public)
	v1.GET("/options", contentHandler.GetOptions)
	v1.GET("/diet-plans", contentHandler.GetDietPlan, generateRateLimiter.RateLimitMiddleware())
	v1.GET("/workouts", contentHandler.GetWorkout, generateRateLimiter.RateLimitMiddleware())
	v1.GET("/subscriptions/tiers", billingHandler.GetTiers)

	// Sessions
	v1.POST("/sessions", sessionHandler.CreateSession)

	// Stripe webhook (signature verified in the handler)
	v1.POST("/webhook/stripe", billingHandler.StripeWebhook, webhookRateLimiter.RateLimitMiddleware())

	// Session-scoped routes
	sessionGroup := v1.Group("", middleware.RequireSession(cfg.JWTSecret))
	sessionGroup.GET("/dashboard", dashboardHandler.GetDashboard)
	sessionGroup.GET("/subscriptions/current", billingHandler.GetCurrentTier)
	sessionGroup.POST("/billing/checkout", billingHandler.CreateCheckout)
	sessionGroup.POST("/views/:view/generate", viewHandler.Generate, generateRateLimiter.RateLimitMiddleware())
	sessionGroup.GET("/views/:view", viewHandler.GetState)
	sessionGroup.GET("/views/:view/export", viewHandler.Export)
	sessionGroup.DELETE("/views", viewHandler.Reset)

	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Info("🚀 HOLYFIT API starting", "address", address)
	log.Info("🛡️  Rate limiting", "requests_per_minute", cfg.RateLimitRequestsPerMinute, "burst", cfg.RateLimitBurst, "generate_per_minute", cfg.GenerateRateLimitPerMinute)
	log.Info("🌍 CORS", "origins", cfg.CORSAllowedOrigins)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Error("❌ Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("🛑 Shutting down server...")

	cronManager.Stop()
	stopBackground()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("❌ Server forced to shutdown", "error", err)
	}

	// Let in-flight view generations commit
	viewService.Wait()

	log.Info("✅ Server gracefully stopped")
}
