package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vacay-dev/vacay/db"
	"github.com/vacay-dev/vacay/internal/auth"
	"github.com/vacay-dev/vacay/internal/logger"
	"github.com/vacay-dev/vacay/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.L.Warn("No .env file found, relying on process environment")
	}

	if err := logger.Init(); err != nil {
		logger.L.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		logger.L.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	driver := os.Getenv("DATABASE_DRIVER")
	dsn := os.Getenv("DATABASE_URL")

	if err := db.ConnectDatabase(driver, dsn); err != nil {
		logger.L.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		logger.L.Fatalf("Failed to migrate database: %v", err)
	}

	if os.Getenv("SEED_DEMO") == "true" {
		if err := db.SeedDatabase(); err != nil {
			logger.L.Fatalf("Failed to seed database: %v", err)
		}
		logger.L.Info("Demo data seeded")
	}

	r := router.NewRouter()

	port := os.Getenv("PORT")

	if port == "" {
		port = "3000"
		logger.L.Info("PORT not set, defaulting to 3000")
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.L.Infof("Listening on :%s", port)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.L.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L.Errorf("Forced shutdown: %v", err)
	}
}
