package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/wep/backend/internal/middleware"
	"github.com/pageza/wep/backend/internal/service"
)

const (
	msgRecipesFailed      = "No se pudieron obtener las recetas."
	msgRecipeNotFound     = "Receta no encontrada."
	msgRecipeDetailFailed = "No se pudo obtener el detalle de la receta."
)

// RecipeHandler handles the recipe catalog endpoints
type RecipeHandler struct {
	provider service.IRecipeProvider
	category string
	logger   *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler listing the given category
func NewRecipeHandler(provider service.IRecipeProvider, category string, logger *zap.Logger) *RecipeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeHandler{
		provider: provider,
		category: category,
		logger:   logger,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthy-recipes", h.ListHealthyRecipes)
	router.GET("/recipes/:id", h.GetRecipe)
}

// ListHealthyRecipes returns the summaries of the configured category
func (h *RecipeHandler) ListHealthyRecipes(c *gin.Context) {
	meals, err := h.provider.ListByCategory(c.Request.Context(), h.category)
	if err != nil {
		h.logger.Error("failed to list recipes",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.String("category", h.category),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgRecipesFailed})
		return
	}

	c.JSON(http.StatusOK, service.SummarizeAll(meals))
}

// GetRecipe returns the normalized detail of one recipe
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")

	meal, err := h.provider.LookupByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgRecipeNotFound})
			return
		}
		h.detailFailed(c, id, err)
		return
	}

	detail, err := service.NormalizeDetail(meal)
	if err != nil {
		h.detailFailed(c, id, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *RecipeHandler) detailFailed(c *gin.Context, id string, err error) {
	h.logger.Error("failed to get recipe",
		zap.String("request_id", c.GetString(middleware.RequestIDKey)),
		zap.String("recipe_id", id),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgRecipeDetailFailed})
}
