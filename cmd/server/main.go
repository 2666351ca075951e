package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zerotosite/config"
	"zerotosite/content"
	"zerotosite/handlers"
	"zerotosite/middleware"
	"zerotosite/services"
	"zerotosite/services/contact"
	"zerotosite/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	site, err := content.Load()
	if err != nil {
		logger.Fatal("Failed to load site content", zap.Error(err))
	}

	// Initialize asset versions for cache busting
	middleware.InitAssetVersions()

	mode, ok := contact.ParseResponseMode(cfg.WebhookResponseMode)
	if !ok {
		logger.Warn("Unknown WEBHOOK_RESPONSE_MODE, using opaque", zap.String("mode", cfg.WebhookResponseMode))
	}
	webhook := contact.NewWebhookClient(cfg.ContactWebhookURL,
		contact.WithResponseMode(mode),
		contact.WithTimeout(cfg.WebhookTimeout),
	)

	workflowOpts := []contact.WorkflowOption{contact.WithLogger(logger)}
	if notifier := services.NewLeadNotifier(cfg, logger); notifier != nil {
		workflowOpts = append(workflowOpts, contact.WithNotifier(notifier))
	}
	workflow := contact.NewWorkflow(webhook, workflowOpts...)

	// Per-visitor forms, swept in the background
	store := contact.NewStore(cfg.SuccessResetDelay, cfg.VisitorSessionTTL)
	scheduler, err := jobs.StartScheduler(store, cfg.SweepSchedule, logger)
	if err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORS(cfg.AllowedOrigins))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(echomiddleware.BodyLimit("64K"))
	imageHosts := cfg.ImageHosts
	if u, err := url.Parse(cfg.PreviewBaseURL); err == nil && u.Scheme == "https" && u.Host != "" {
		imageHosts = append(imageHosts, u.Host)
	}
	e.Use(middleware.CSPNonce(imageHosts))

	// Static files
	e.Static("/static", "static")

	h := handlers.NewSite(cfg, site, workflow, logger)

	e.GET("/robots.txt", h.Robots)
	e.GET("/sitemap.xml", h.Sitemap)

	// Pages and contact endpoints carry the visitor session and CSRF protection
	pages := e.Group("")
	pages.Use(middleware.CSRF(cfg.IsProduction()))
	pages.Use(middleware.VisitorSession(store, cfg.VisitorSessionTTL, cfg.IsProduction()))
	{
		pages.GET("/", h.Landing)
		pages.GET("/contact/status", h.ContactStatus)

		submitLimiter := middleware.NewContactRateLimiter()
		defer submitLimiter.Stop()
		// Live edits fire while typing
		editLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
			Requests: 240,
			Window:   time.Minute,
		})
		defer editLimiter.Stop()

		pages.POST("/contact", h.ContactSubmit, submitLimiter.Middleware())
		pages.POST("/contact/field", h.ContactField, editLimiter.Middleware())
	}

	// Start server
	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.ServerPort),
			zap.String("environment", cfg.Environment),
			zap.String("webhook_mode", string(webhook.Mode())),
		)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	<-scheduler.Stop().Done()
	store.Close()
}
