// cmd/scan is a command-line front end for the analysis pipeline: it
// scans a live product listing page and prints the analysis as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/scamlens/backend/internal/analysis"
	"github.com/scamlens/backend/internal/config"
	"github.com/scamlens/backend/internal/detector"
	"github.com/scamlens/backend/internal/models"
	"github.com/scamlens/backend/internal/scanner"
	"github.com/scamlens/backend/pkg/utils"
	"github.com/sirupsen/logrus"
)

var (
	targetURL = flag.String("url", "", "Product listing URL to analyze")
	skipAI    = flag.Bool("skip-ai", false, "Skip the AI-detection pass, heuristics only")
	verbose   = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()

	if *targetURL == "" {
		log.Fatal("-url is required")
	}

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	pageScanner := scanner.New(cfg.Scanner.UserAgent, logger)

	product, err := pageScanner.FetchProduct(*targetURL)
	if err != nil {
		logger.WithError(err).Fatal("Failed to scan product page")
	}

	logger.WithFields(logrus.Fields{
		"title":  product.Title,
		"seller": product.Seller,
		"price":  product.Price,
	}).Info("Product page scanned")

	var result models.AnalysisResult
	if *skipAI {
		result = models.AnalysisResult{ScoreResult: analysis.Score(product)}
	} else {
		if err := cfg.ValidateDetector(); err != nil {
			logger.WithError(err).Fatal("Detector configuration validation failed")
		}

		detectorClient := detector.NewClient(cfg.Detector.Endpoint, cfg.Detector.APIKey, logger)
		analysisService := analysis.NewService(detectorClient, logger)
		result = analysisService.AnalyzeProduct(context.Background(), product)
	}

	response := models.AnalysisResponse{
		Success:  true,
		Analysis: result,
		ProductInfo: models.ProductInfo{
			Title: product.Title,
			URL:   product.URL,
		},
	}

	out, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		logger.WithError(err).Fatal("Failed to encode analysis result")
	}

	fmt.Println(string(out))
}
