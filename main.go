package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"koreatrip/api"
	"koreatrip/auth"
	"koreatrip/config"
	"koreatrip/gemini"
	"koreatrip/store"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load configuration
	cfg := config.Load()
	logger.Info("starting trip planner backend",
		zap.Int("port", cfg.Port),
		zap.String("api_version", cfg.APIVersion),
		zap.String("gemini_model", cfg.GeminiModel),
	)

	ctx := context.Background()

	// Initialize Firebase (auth + Firestore)
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.FirebaseCredentialsPath))
	if err != nil {
		logger.Fatal("failed to initialize firebase", zap.Error(err))
	}

	verifier, err := auth.NewFirebaseVerifier(ctx, app)
	if err != nil {
		logger.Fatal("failed to initialize token verifier", zap.Error(err))
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		logger.Fatal("failed to initialize firestore", zap.Error(err))
	}
	tripStore := store.NewFirestoreStore(fsClient)
	defer tripStore.Close()

	// Initialize Gemini client
	generator, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatal("failed to initialize gemini client", zap.Error(err))
	}

	// Initialize handler
	h := api.NewHandler(tripStore, verifier, generator, cfg, logger)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOriginList(),
		AllowCredentials: true,
	}))

	// Register routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	logger.Info("API started", zap.Int("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server gracefully", zap.Error(err))
	}

	logger.Info("stopped")
}
