package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carevan/carevan/internal/pkg/config"
	"github.com/carevan/carevan/internal/pkg/database"
	"github.com/carevan/carevan/internal/pkg/health"
	"github.com/carevan/carevan/internal/pkg/logger"
	"github.com/carevan/carevan/internal/pkg/middleware"
	nsqpkg "github.com/carevan/carevan/internal/pkg/nsq"
	"github.com/carevan/carevan/services/pricing/gateway"
	"github.com/carevan/carevan/services/pricing/handler"
	"github.com/carevan/carevan/services/pricing/repository"
	"github.com/carevan/carevan/services/pricing/usecase"
)

func main() {
	appName := "pricing-service"
	configPath := "config/pricing.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Initialize repository
	quoteRepo := repository.NewQuoteRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	countyGW, err := gateway.NewCountyGateway(configs.Google.MapsAPIKey, redisClient)
	if err != nil {
		zapLogger.Fatal("Failed to initialize county gateway", logger.Err(err))
	}
	eventGW := gateway.NewEventGateway(producer, &configs.NSQ)

	// Initialize usecase; a broken rate card fails here, before serving
	pricingUC, err := usecase.NewPricingUC(configs, quoteRepo, countyGW, eventGW)
	if err != nil {
		zapLogger.Fatal("Failed to initialize pricing use case", logger.Err(err))
	}

	// Initialize handlers
	pricingHandler := handler.NewHandler(pricingUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	// Health endpoints with dependency checkers
	healthService := health.NewService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisChecker(redisClient))
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	pricingHandler.RegisterRoutes(e)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	logger.Info("Server exited")
}
