package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/search-gateway/internal/buildinfo"
)

// Get handles version requests
// @Summary      Service information
// @Tags         meta
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        buildinfo.Name,
			"version":     buildinfo.Version,
			"commit":      buildinfo.GitCommit,
			"description": "Search aggregation gateway for web and image results",
			"status":      "running",
		})
	}
}
