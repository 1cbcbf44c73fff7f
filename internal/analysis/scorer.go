package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/scamlens/backend/internal/models"
)

var suspiciousPhrases = []string{
	"urgent", "limited time", "act now", "guaranteed", "miracle", "secret", "exclusive offer",
}

var reputableSellers = []string{"amazon", "walmart", "target"}

var (
	decimalPattern = regexp.MustCompile(`\d+\.?\d*`)
	integerPattern = regexp.MustCompile(`\d+`)
)

// Score classifies a product listing as legit, scam or uncertain based
// on a fixed set of heuristic rules. Each rule increments one indicator
// counter and appends a reason when it triggers; a field that fails to
// parse contributes nothing. The function is pure and never fails.
func Score(product models.ProductRecord) models.ScoreResult {
	reasons := []string{}
	scamIndicators := 0
	legitIndicators := 0

	titleLower := strings.ToLower(product.Title)
	for _, phrase := range suspiciousPhrases {
		if strings.Contains(titleLower, phrase) {
			// One increment no matter how many phrases match.
			scamIndicators++
			reasons = append(reasons, "Suspicious language")
			break
		}
	}

	if product.Price != "" {
		stripped := strings.NewReplacer("$", "", ",", "").Replace(product.Price)
		if match := decimalPattern.FindString(stripped); match != "" {
			if price, err := strconv.ParseFloat(match, 64); err == nil {
				if price < 1.0 {
					scamIndicators++
					reasons = append(reasons, "Low price")
				} else if price > 1000 {
					legitIndicators++
					reasons = append(reasons, "Normal price")
				}
			}
		}
	}

	if product.Seller != "" {
		sellerLower := strings.ToLower(product.Seller)
		if containsAny(sellerLower, reputableSellers) {
			legitIndicators++
			reasons = append(reasons, "Reputable seller")
		} else if len(sellerLower) < 3 || isAllDigits(sellerLower) {
			scamIndicators++
			reasons = append(reasons, "Suspicious seller")
		}
	}

	if product.Rating != "" {
		if rating, err := strconv.ParseFloat(strings.TrimSpace(product.Rating), 64); err == nil {
			if rating < 2.0 {
				scamIndicators++
				reasons = append(reasons, "Low rating")
			} else if rating > 4.0 {
				legitIndicators++
				reasons = append(reasons, "Good rating")
			}
		}
	}

	if product.ReviewsCount != "" {
		stripped := strings.ReplaceAll(product.ReviewsCount, ",", "")
		if match := integerPattern.FindString(stripped); match != "" {
			if reviews, err := strconv.Atoi(match); err == nil {
				if reviews < 5 {
					scamIndicators++
					reasons = append(reasons, "Few reviews")
				} else if reviews > 50 {
					legitIndicators++
					reasons = append(reasons, "Many reviews")
				}
			}
		}
	}

	result := models.ScoreResult{
		Reasons: reasons,
		Indicators: models.Indicators{
			ScamCount:  scamIndicators,
			LegitCount: legitIndicators,
		},
	}

	// Confidence is intentionally not clamped to 1.0.
	switch {
	case scamIndicators > legitIndicators:
		result.Status = models.StatusScam
		result.Confidence = 0.7 + 0.05*float64(scamIndicators)
	case legitIndicators > scamIndicators:
		result.Status = models.StatusLegit
		result.Confidence = 0.7 + 0.05*float64(legitIndicators)
	default:
		result.Status = models.StatusUncertain
		result.Confidence = 0.4
	}

	return result
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
