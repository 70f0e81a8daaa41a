package api

import (
	"github.com/gin-gonic/gin"
)

// SetupAPI mounts the liveness route and the /api handlers on router
func SetupAPI(router *gin.Engine, llmHandler *LLMHandler, recipeHandler *RecipeHandler) {
	router.GET("/health", HealthCheck)

	group := router.Group("/api")
	{
		llmHandler.RegisterRoutes(group)
		recipeHandler.RegisterRoutes(group)
	}
}
