package suggestions

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/search-gateway/api/types"
)

// RegisterRoutes registers suggestion routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", Get())
}
