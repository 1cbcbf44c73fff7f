package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/scamlens/backend/internal/analysis"
	"github.com/scamlens/backend/internal/api/handlers"
	"github.com/scamlens/backend/internal/config"
	"github.com/scamlens/backend/internal/detector"
	"github.com/scamlens/backend/internal/middleware"
	"github.com/scamlens/backend/internal/scanner"
	"github.com/scamlens/backend/pkg/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := cfg.ValidateDetector(); err != nil {
		logger.WithError(err).Fatal("Detector configuration validation failed")
	}

	detectorClient := detector.NewClient(cfg.Detector.Endpoint, cfg.Detector.APIKey, logger)
	analysisService := analysis.NewService(detectorClient, logger)
	pageScanner := scanner.New(cfg.Scanner.UserAgent, logger)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// The API is consumed by a browser extension, so CORS stays open.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestID())

	analyzeHandler := handlers.NewAnalyzeHandler(detectorClient, analysisService, pageScanner, logger)

	router.POST("/check-text", analyzeHandler.HandleCheckText)
	router.POST("/analyze-product", analyzeHandler.HandleAnalyzeProduct)
	router.POST("/analyze-url", analyzeHandler.HandleAnalyzeURL)
	router.GET("/health", analyzeHandler.HandleHealth)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Starting product analysis API")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
