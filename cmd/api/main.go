package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pageza/wep/backend/config"
	"github.com/pageza/wep/backend/internal/api"
	"github.com/pageza/wep/backend/internal/logging"
	"github.com/pageza/wep/backend/internal/metrics"
	"github.com/pageza/wep/backend/internal/router"
	"github.com/pageza/wep/backend/internal/server"
	"github.com/pageza/wep/backend/internal/service"
)

const serviceName = "wep-backend"

var version = "dev"

func main() {
	if err := run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func run() error {
	// A missing .env file is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Output:      cfg.LogOutput,
		ServiceName: serviceName,
		Environment: string(cfg.Environment),
		Version:     version,
	})
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()

	model, err := service.NewGeminiModel(service.GeminiOptions{
		APIKey:  cfg.GeminiAPIKey,
		ModelID: cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	if err != nil {
		return err
	}
	llmService := service.NewLLMService(model, logger.Named("llm"), m)

	catalog := service.NewMealDBClient(service.MealDBOptions{
		BaseURL: cfg.MealDBBaseURL,
		Timeout: cfg.UpstreamTimeout,
		Logger:  logger.Named("mealdb"),
		Metrics: m,
	})

	handler := router.SetupRouter(
		api.NewLLMHandler(llmService, logger),
		api.NewRecipeHandler(catalog, cfg.MealDBCategory, logger),
		router.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			Logger:         logger,
			Metrics:        m,
		},
	)
	srv := server.New(cfg.Addr(), handler, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown requested", zap.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	logger.Info("Server stopped")
	return nil
}
