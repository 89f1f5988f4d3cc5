// Command notekeep-server starts the note-keeping REST API server.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/avolodin/notekeep/internal/config"
	"github.com/avolodin/notekeep/internal/httpapi"
	"github.com/avolodin/notekeep/internal/migrate"
	"github.com/avolodin/notekeep/internal/repository/postgres"
	"github.com/avolodin/notekeep/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the HTTP API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not up yet
		panic(err)
	}

	// Flags override environment
	addr := flag.String("addr", cfg.HTTPAddr, "listen address")
	dsn := flag.String("dsn", cfg.DatabaseURL, "PostgreSQL DSN")
	jwtKey := flag.String("jwt-key", cfg.JWTSecret, "HS256 signing key (required)")
	accessTTL := flag.Duration("access-ttl", cfg.AccessTTL, "access token TTL")
	corsOrigin := flag.String("cors-origin", cfg.CORSOrigin, "allowed CORS origin")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", *addr),
	)

	if *jwtKey == "" {
		logger.Fatal("missing jwt signing key (--jwt-key or JWT_SECRET)")
	}
	if *dsn == "" {
		logger.Fatal("missing database DSN (--dsn or DATABASE_URL)")
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, *dsn); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	db, err := postgres.New(ctx, *dsn)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	noteRepo := postgres.NewNoteRepo(db)

	// Services
	authSvc := service.NewAuthService(userRepo, []byte(*jwtKey), *accessTTL)
	noteSvc := service.NewNoteService(noteRepo)

	// HTTP server
	api := httpapi.New(authSvc, noteSvc)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           api.Routes(logger, *corsOrigin),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", *addr))
		errCh <- srv.ListenAndServe()
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}

	logger.Info("shutdown complete")
}
