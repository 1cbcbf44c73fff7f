package analysis

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/scamlens/backend/internal/detector"
	"github.com/scamlens/backend/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := newTestLogger()
	client := detector.NewClient(server.URL, "test-key", logger)
	return NewService(client, logger), server
}

func legitProduct() models.ProductRecord {
	return models.ProductRecord{
		Title:        "Wireless Earbuds Pro",
		Description:  "Noise cancelling earbuds with long battery life.",
		Price:        "$1,499.00",
		Seller:       "Amazon",
		Rating:       "4.8",
		ReviewsCount: "1,200",
	}
}

func TestAnalyzeProduct_HighAIScoreDowngradesLegit(t *testing.T) {
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"score":0.9}`))
	})

	result := service.AnalyzeProduct(context.Background(), legitProduct())

	// Heuristics alone say legit with confidence 0.9; the AI verdict
	// downgrades to uncertain and shaves 0.2 off.
	assert.Equal(t, models.StatusUncertain, result.Status)
	assert.InDelta(t, 0.7, result.Confidence, 1e-9)
	assert.Contains(t, result.Reasons, "AI-generated content detected")
	require.NotNil(t, result.AIAnalysis)
	assert.Empty(t, result.AIError)
}

func TestAnalyzeProduct_HighAIScoreOnlyAppendsReasonForScam(t *testing.T) {
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"score":0.95}`))
	})

	product := models.ProductRecord{
		Title:        "Guaranteed Miracle Cure",
		Seller:       "xx",
		Rating:       "1.0",
		ReviewsCount: "2",
	}

	result := service.AnalyzeProduct(context.Background(), product)

	assert.Equal(t, models.StatusScam, result.Status)
	assert.InDelta(t, 0.7+0.05*4, result.Confidence, 1e-9)
	assert.Contains(t, result.Reasons, "AI-generated content detected")
}

func TestAnalyzeProduct_LowAIScoreLeavesResultAlone(t *testing.T) {
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"score":0.3}`))
	})

	result := service.AnalyzeProduct(context.Background(), legitProduct())

	assert.Equal(t, models.StatusLegit, result.Status)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)
	assert.NotContains(t, result.Reasons, "AI-generated content detected")
	assert.NotNil(t, result.AIAnalysis)
}

func TestAnalyzeProduct_DetectorFailureDegradesGracefully(t *testing.T) {
	service, server := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	result := service.AnalyzeProduct(context.Background(), legitProduct())

	assert.Equal(t, models.StatusLegit, result.Status)
	assert.InDelta(t, 0.9, result.Confidence, 1e-9)
	assert.NotEmpty(t, result.AIError)
	assert.Nil(t, result.AIAnalysis)
}

func TestAnalyzeProduct_BlankTextSkipsDetector(t *testing.T) {
	var calls int64
	service, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		w.Write([]byte(`{"score":0.9}`))
	})

	result := service.AnalyzeProduct(context.Background(), models.ProductRecord{Title: "   "})

	assert.EqualValues(t, 0, atomic.LoadInt64(&calls))
	assert.Empty(t, result.AIError)
	assert.Nil(t, result.AIAnalysis)
	assert.Equal(t, models.StatusUncertain, result.Status)
}
