package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Godson70118993/Backend-produit/config"
	"github.com/Godson70118993/Backend-produit/internal/handler"
	"github.com/Godson70118993/Backend-produit/traits/database"
	"github.com/Godson70118993/Backend-produit/traits/logger"
)

func main() {
	// Initialize logger
	zapLogger, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting product catalog backend...")

	// Load .env if present, then build configuration
	if err := godotenv.Load(); err == nil {
		zapLogger.Info("Loaded environment from .env file")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		zapLogger.Fatal("Failed to initialize config", zap.Error(err))
		return
	}

	// Initialize database
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("Failed to access database connection", zap.Error(err))
		return
	}
	defer sqlDB.Close()

	// Test database connection
	if err = sqlDB.Ping(); err != nil {
		zapLogger.Fatal("Failed to ping database", zap.Error(err))
		return
	}

	zapLogger.Info("Database connected successfully", zap.String("url", cfg.DatabaseURL))

	// Create database tables
	if err := database.CreateTables(db); err != nil {
		zapLogger.Fatal("Failed to create database tables", zap.Error(err))
		return
	}

	zapLogger.Info("Database setup completed successfully")

	// Initialize handler with the product repository
	handle := handler.NewHandler(cfg, zapLogger, db)

	srv := &http.Server{
		Addr:    cfg.Port,
		Handler: handle.Routes(),
	}

	// Setup graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Start web server in a goroutine
	go func() {
		zapLogger.Info("Starting web server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start web server", zap.Error(err))
		}
	}()

	<-stop
	zapLogger.Info("Shutdown signal received, gracefully stopping...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Error shutting down web server", zap.Error(err))
	}

	zapLogger.Info("Application stopped gracefully")
}
