package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scamlens/backend/internal/models"
)

// HandleHealth reports service liveness. The service holds no state, so
// there is nothing deeper to probe.
func (h *AnalyzeHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Service:   "scamlens-api",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
