package analysis

import (
	"context"
	"math"
	"strings"

	"github.com/scamlens/backend/internal/detector"
	"github.com/scamlens/backend/internal/models"
	"github.com/sirupsen/logrus"
)

// aiScoreThreshold is the detector score above which listing text is
// considered AI-generated.
const aiScoreThreshold = 0.7

type Service struct {
	detector *detector.Client
	logger   *logrus.Logger
}

func NewService(detectorClient *detector.Client, logger *logrus.Logger) *Service {
	return &Service{
		detector: detectorClient,
		logger:   logger,
	}
}

// AnalyzeProduct runs the heuristic scorer and blends in the external
// detector's verdict on the listing text. Detector failures degrade to
// the heuristic-only result; this method never fails.
func (s *Service) AnalyzeProduct(ctx context.Context, product models.ProductRecord) models.AnalysisResult {
	result := models.AnalysisResult{ScoreResult: Score(product)}

	combinedText := strings.TrimSpace(product.Title + " " + product.Description)
	if combinedText == "" {
		return result
	}

	detection, err := s.detector.Detect(ctx, combinedText)
	if err != nil {
		s.logger.WithError(err).Warn("AI detection failed, continuing with heuristic result")
		result.AIError = err.Error()
		return result
	}

	result.AIAnalysis = detection.Raw

	if score, ok := detection.Score(); ok && score > aiScoreThreshold {
		if result.Status == models.StatusLegit {
			result.Status = models.StatusUncertain
			result.Confidence = math.Max(0.3, result.Confidence-0.2)
		}
		result.Reasons = append(result.Reasons, "AI-generated content detected")

		s.logger.WithFields(logrus.Fields{
			"ai_score": score,
			"status":   result.Status,
		}).Info("High AI-content score folded into analysis")
	}

	return result
}
