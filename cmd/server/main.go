// @title           Kids Burger Builder API
// @version         1.0.0
// @description     Backend API for the kids burger builder: ingredient catalog, drag-and-drop build sessions and order placement.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"kids-burger-backend/docs"
	"kids-burger-backend/internal/builder"
	"kids-burger-backend/internal/catalog"
	"kids-burger-backend/internal/config"
	"kids-burger-backend/internal/database"
	"kids-burger-backend/internal/events"
	"kids-burger-backend/internal/handlers"
	"kids-burger-backend/internal/logger"
	"kids-burger-backend/internal/services"
	"kids-burger-backend/internal/store"
	"kids-burger-backend/internal/supabase"
)

const (
	sweepInterval   = time.Minute
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("Server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil && baseURL.Host != "" {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Catalog and ingredient artwork
	cat := catalog.Default()
	var images handlers.ImageStore
	if cfg.SupabaseEnabled() {
		supabaseClient, err := supabase.NewClient(cfg)
		if err != nil {
			return err
		}

		loaded, err := catalog.Load(ctx, supabaseClient.Ingredients())
		if err != nil {
			zl.Warn("Failed to load catalog from Supabase, using built-in ingredients", zap.Error(err))
		} else {
			cat = loaded
		}

		images = supabaseClient.Images()
	}
	zl.Info("Catalog ready", zap.Int("ingredients", cat.Len()))

	// Order store
	var orderStore store.OrderStore = store.NewMemoryStore()
	storeName := "memory"
	if cfg.DatabaseURL != "" {
		db, err := database.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.NewMigrator(db, zl).Run(ctx); err != nil {
			return err
		}
		zl.Info("Migrations completed successfully")

		orderStore = database.NewOrderRepository(db)
		storeName = "postgres"
	} else {
		zl.Warn("DATABASE_URL not set, orders are kept in memory and lost on restart")
	}

	// Order events
	var publisher events.Publisher = events.NewLogPublisher(zl)
	if cfg.RabbitMQURL != "" {
		rabbit, err := events.DialRabbit(cfg.RabbitMQURL)
		if err != nil {
			zl.Warn("Failed to connect to RabbitMQ, order events will only be logged", zap.Error(err))
		} else {
			publisher = rabbit
		}
	}
	defer publisher.Close()

	orderService := services.NewOrderService(orderStore, cat.Lookup, publisher, zl)
	buildService := services.NewBuildService(orderService, cfg.SubmitTimeout, zl)

	registry := builder.NewRegistry(cat.Lookup, cfg.BuildSessionTTL).WithLimit(cfg.MaxBuildSessions)
	go registry.Run(ctx, sweepInterval, func(removed int) {
		zl.Debug("Expired build sessions removed", zap.Int("removed", removed))
	})

	router := handlers.NewRouter(handlers.RouterDeps{
		Logger:              zl,
		Catalog:             cat,
		Orders:              orderService,
		Builds:              buildService,
		Registry:            registry,
		Images:              images,
		StoreName:           storeName,
		StaffJWTSecret:      cfg.StaffJWTSecret,
		KitchenWebhookToken: cfg.KitchenWebhookToken,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	zl.Info("Server starting", zap.String("port", cfg.Port), zap.String("order_store", storeName))

	select {
	case <-ctx.Done():
		zl.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
