package suggestions

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/search-gateway/api/types"
	"github.com/killallgit/search-gateway/internal/models"
)

// Get handles suggestion requests
// @Summary      Related search suggestions
// @Description  Expands a query into a fixed list of related searches. No upstream call is made.
// @Tags         search
// @Produce      json
// @Param        q  query  string  false  "Partial query"
// @Success      200 {object} types.SuggestionsResponse
// @Router       /api/suggestions [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.SuggestionsResponse{
			Suggestions: models.Suggestions(c.Query("q")),
		})
	}
}
