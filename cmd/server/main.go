package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agatodfddd/luxora-store/internal/config"
	"github.com/agatodfddd/luxora-store/internal/handlers"
	"github.com/agatodfddd/luxora-store/internal/middleware"
	"github.com/agatodfddd/luxora-store/internal/repositories/mongodb"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/pkg/cache"
	"github.com/agatodfddd/luxora-store/pkg/database"
	"github.com/agatodfddd/luxora-store/pkg/logger"
	"github.com/agatodfddd/luxora-store/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.App.LogLevel),
		Format:     cfg.App.LogFormat,
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
	}).Info("Starting Luxora store API")

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := db.EnsureIndexes(context.Background()); err != nil {
		log.WithError(err).Fatal("Failed to create database indexes")
	}

	// The cache is optional: repositories treat a nil cache as a miss on
	// every lookup.
	var cacheService mongodb.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisCache.Close()
		cacheService = redisCache
	}

	// Repositories
	orderRepo := mongodb.NewOrderRepository(db.Database)
	couponRepo := mongodb.NewCouponRepository(db.Database, cacheService)
	returnRepo := mongodb.NewReturnRepository(db.Database)
	productRepo := mongodb.NewProductRepository(db.Database, cacheService)
	categoryRepo := mongodb.NewCategoryRepository(db.Database)
	ticketRepo := mongodb.NewTicketRepository(db.Database)
	messageRepo := mongodb.NewMessageRepository(db.Database)
	settingsRepo := mongodb.NewSettingsRepository(db.Database, cacheService)

	// Services
	couponService := services.NewCouponService(couponRepo, log)
	shippingService := services.NewShippingService(settingsRepo, log)
	orderService := services.NewOrderService(orderRepo, couponService, shippingService, log)
	returnService := services.NewReturnService(returnRepo, log)
	catalogService := services.NewCatalogService(productRepo, categoryRepo, log)
	supportService := services.NewSupportService(ticketRepo, messageRepo, log)
	settingsService := services.NewSettingsService(settingsRepo, log)
	authService := services.NewAuthService(cfg.Security, log)

	// Handlers
	orderHandler := handlers.NewOrderHandler(orderService, log)
	couponHandler := handlers.NewCouponHandler(couponService, log)
	shippingHandler := handlers.NewShippingHandler(shippingService, log)
	returnHandler := handlers.NewReturnHandler(returnService, log)
	productHandler := handlers.NewProductHandler(catalogService, log)
	categoryHandler := handlers.NewCategoryHandler(catalogService, log)
	supportHandler := handlers.NewSupportHandler(supportService, log)
	settingsHandler := handlers.NewSettingsHandler(settingsService, log)
	authHandler := handlers.NewAuthHandler(authService, log)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		log.WithError(err).Fatal("Invalid trusted proxy configuration")
	}

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		if err := db.Ping(); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}
		c.JSON(status, gin.H{
			"status":   dbStatus,
			"version":  cfg.App.Version,
			"database": dbStatus,
		})
	})

	api := router.Group("/api/v1")
	jwtSecret := cfg.Security.JWTSecret
	routes.SetupAuthRoutes(api, authHandler)
	routes.SetupOrderRoutes(api, orderHandler, jwtSecret)
	routes.SetupCouponRoutes(api, couponHandler, jwtSecret)
	routes.SetupReturnRoutes(api, returnHandler, jwtSecret)
	routes.SetupCatalogRoutes(api, productHandler, categoryHandler, jwtSecret)
	routes.SetupSupportRoutes(api, supportHandler, jwtSecret)
	routes.SetupSettingsRoutes(api, settingsHandler, shippingHandler, jwtSecret)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}

	log.Info("Server stopped")
}
