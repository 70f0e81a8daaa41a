package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/wep/backend/internal/api"
	"github.com/pageza/wep/backend/internal/metrics"
	"github.com/pageza/wep/backend/internal/middleware"
)

// Options carries what the router needs besides the handlers
type Options struct {
	AllowedOrigins []string
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
}

// SetupRouter configures the application routes
func SetupRouter(
	llmHandler *api.LLMHandler,
	recipeHandler *api.RecipeHandler,
	opts Options,
) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(opts.Metrics),
		middleware.Recovery(logger, opts.Metrics),
		middleware.CORS(opts.AllowedOrigins),
	)

	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	api.SetupAPI(router, llmHandler, recipeHandler)

	return router
}
