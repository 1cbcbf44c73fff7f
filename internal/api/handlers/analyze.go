package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scamlens/backend/internal/analysis"
	"github.com/scamlens/backend/internal/detector"
	"github.com/scamlens/backend/internal/models"
	"github.com/scamlens/backend/internal/scanner"
	"github.com/scamlens/backend/pkg/utils"
	"github.com/sirupsen/logrus"
)

type AnalyzeHandler struct {
	detector *detector.Client
	analysis *analysis.Service
	scanner  *scanner.Scanner
	logger   *logrus.Logger
}

func NewAnalyzeHandler(
	detectorClient *detector.Client,
	analysisService *analysis.Service,
	pageScanner *scanner.Scanner,
	logger *logrus.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		detector: detectorClient,
		analysis: analysisService,
		scanner:  pageScanner,
		logger:   logger,
	}
}

// HandleCheckText relays text to the AI-detection endpoint and returns
// the detector's JSON untouched.
func (h *AnalyzeHandler) HandleCheckText(c *gin.Context) {
	var req models.TextInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid check-text request")
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.WithField("text_length", len(req.Text)).Info("Processing check-text request")

	detection, err := h.detector.Detect(c.Request.Context(), req.Text)
	if err != nil {
		h.logger.WithError(err).Error("AI detection request failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "API error: "+err.Error())
		return
	}

	c.Data(http.StatusOK, "application/json", detection.Raw)
}

// HandleAnalyzeProduct scores a product listing and blends in the AI
// detector's verdict. Detector failures never fail the request.
func (h *AnalyzeHandler) HandleAnalyzeProduct(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.WithField("panic", r).Error("Product analysis failed")
			utils.ErrorResponse(c, http.StatusInternalServerError, fmt.Sprintf("Analysis error: %v", r))
		}
	}()

	var product models.ProductRecord
	if err := c.ShouldBindJSON(&product); err != nil {
		h.logger.WithError(err).Error("Invalid analyze-product request")
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.WithFields(logrus.Fields{
		"title":  product.Title,
		"seller": product.Seller,
	}).Info("Processing product analysis request")

	result := h.analysis.AnalyzeProduct(c.Request.Context(), product)

	h.logger.WithFields(logrus.Fields{
		"status":     result.Status,
		"confidence": result.Confidence,
	}).Info("Product analysis completed")

	c.JSON(http.StatusOK, models.AnalysisResponse{
		Success:  true,
		Analysis: result,
		ProductInfo: models.ProductInfo{
			Title: product.Title,
			URL:   product.URL,
		},
	})
}

// HandleAnalyzeURL scans a listing page server-side, then runs the same
// analysis as /analyze-product on the extracted record.
func (h *AnalyzeHandler) HandleAnalyzeURL(c *gin.Context) {
	var req models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid analyze-url request")
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.WithField("url", req.URL).Info("Processing URL analysis request")

	product, err := h.scanner.FetchProduct(req.URL)
	if err != nil {
		h.logger.WithError(err).Error("Product page scan failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Scan error: "+err.Error())
		return
	}

	result := h.analysis.AnalyzeProduct(c.Request.Context(), product)

	c.JSON(http.StatusOK, models.AnalysisResponse{
		Success:  true,
		Analysis: result,
		ProductInfo: models.ProductInfo{
			Title: product.Title,
			URL:   product.URL,
		},
	})
}
