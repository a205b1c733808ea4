package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fieldcrm/fieldcrm/internal/models"
	"github.com/fieldcrm/fieldcrm/internal/server/auth"
	"github.com/fieldcrm/fieldcrm/internal/server/handlers"
	"github.com/fieldcrm/fieldcrm/internal/server/middleware"
	"github.com/fieldcrm/fieldcrm/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	shutdownTimeout = 10 * time.Second

	// Лимит на клиента: сессия синхронизации шлет один запрос на запись
	rateLimit       = 300
	rateLimitWindow = time.Minute
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Address to listen on")
	dbPath := flag.String("db", "fieldcrm-server.db", "Path to SQLite database")
	apiKey := flag.String("api-key", "", "Static API key clients authenticate with (or FIELDCRM_API_KEY)")
	jwtSecret := flag.String("jwt-secret", "", "Secret for signing access tokens (or FIELDCRM_JWT_SECRET)")
	tokenTTL := flag.Duration("token-ttl", auth.DefaultAccessTokenTTL, "Access token lifetime")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Секреты можно передать окружением, чтобы не светить их в ps
	if *apiKey == "" {
		*apiKey = os.Getenv("FIELDCRM_API_KEY")
	}
	if *jwtSecret == "" {
		*jwtSecret = os.Getenv("FIELDCRM_JWT_SECRET")
	}
	if *apiKey == "" {
		logger.Error("API key is required (--api-key or FIELDCRM_API_KEY)")
		os.Exit(1)
	}
	if *jwtSecret == "" {
		logger.Error("JWT secret is required (--jwt-secret or FIELDCRM_JWT_SECRET)")
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open database", "path", *dbPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	tokens := auth.NewTokenService(*jwtSecret, *tokenTTL)

	healthHandler := handlers.NewHealthHandler(logger)
	tokenHandler := handlers.NewTokenHandler(logger, tokens, *apiKey)
	recordsHandler := handlers.NewRecordsHandler(logger, store)

	requireAuth := middleware.AuthMiddleware(logger, *apiKey, tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/health", healthHandler.Health)
	mux.HandleFunc("/api/v1/auth/token", tokenHandler.Token)
	for _, kind := range models.KindsInSyncOrder() {
		mux.Handle("/api/v1/"+string(kind), requireAuth(recordsHandler.HandleKind(kind)))
	}

	// Health check не логируем: клиент опрашивает его перед каждой сессией
	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(
			middleware.RateLimitMiddleware(rateLimit, rateLimitWindow, logger)(mux)))

	httpServer := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: даем активным запросам дописаться
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
		close(done)
	}()

	logger.Info("server starting", "addr", *addr, "db", *dbPath, "version", Version)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}

func printVersion() {
	fmt.Printf("FieldCRM Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
