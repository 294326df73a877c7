package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/search-gateway/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports liveness and whether the upstream provider credential is configured
// @Tags         meta
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Upstream:  getUpstreamStatus(deps),
		})
	}
}

// getUpstreamStatus reports provider readiness without calling it
func getUpstreamStatus(deps *types.Dependencies) map[string]string {
	if deps == nil || deps.SearchClient == nil || deps.ProviderCredential == "" {
		return map[string]string{"status": "not configured"}
	}
	return map[string]string{"status": "configured"}
}
