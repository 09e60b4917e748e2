package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/selimist/AiStudio-Wellness/internal/config"
	"github.com/selimist/AiStudio-Wellness/internal/handler"
	"github.com/selimist/AiStudio-Wellness/internal/logger"
	"github.com/selimist/AiStudio-Wellness/internal/metrics"
	"github.com/selimist/AiStudio-Wellness/internal/middleware"
	"github.com/selimist/AiStudio-Wellness/internal/repository"
	"github.com/selimist/AiStudio-Wellness/internal/service"
	"github.com/selimist/AiStudio-Wellness/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}
	logger.Init(cfg.LogLevel)

	// Initialize the in-memory store
	store := repository.NewMemoryStore(repository.NewUUIDProvider())
	if cfg.SeedFixtures {
		store.Seed()
		logger.Info("Seeded fixture data")
	}
	ctx := context.Background()
	metrics.CatalogEvents.Set(float64(len(store.ListEvents(ctx))))
	metrics.CatalogArticles.Set(float64(len(store.ListArticles(ctx))))

	// Initialize services
	catalogService := service.NewCatalogService(store)
	registrationService := service.NewRegistrationService(store)
	adminService := service.NewAdminService(store, validator.NewValidator())

	// Initialize handlers
	eventHandler := handler.NewEventHandler(catalogService)
	articleHandler := handler.NewArticleHandler(catalogService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	sessionHandler := handler.NewSessionHandler(catalogService)
	adminHandler := handler.NewAdminHandler(adminService)
	healthHandler := handler.NewHealthHandler(catalogService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/featured", eventHandler.ListFeaturedEvents)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("/:id/register", registrationHandler.Register)
		}

		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.GET("/:slug", articleHandler.GetArticle)
		}

		users := v1.Group("/users")
		{
			users.GET("/:id", sessionHandler.GetUser)
			users.GET("/:id/registrations", registrationHandler.ListUserRegistrations)
		}

		v1.POST("/session", sessionHandler.Login)

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/events", adminHandler.CreateEvent)
			admin.PATCH("/events/:id", adminHandler.UpdateEvent)
			admin.POST("/events/:id/status-toggle", adminHandler.ToggleEventStatus)
			admin.DELETE("/events/:id", adminHandler.DeleteEvent)
			admin.POST("/articles", adminHandler.CreateArticle)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
