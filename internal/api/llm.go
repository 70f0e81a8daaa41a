package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/wep/backend/internal/middleware"
	"github.com/pageza/wep/backend/internal/service"
	"github.com/pageza/wep/backend/internal/types"
)

const (
	msgRoutineMissingFields = "Faltan datos para generar la rutina."
	msgRoutineFailed        = "No se pudo generar la rutina."
	msgTipMissingFields     = "Faltan el contexto y el resultado del quiz."
	msgTipFailed            = "No se pudo generar el consejo."
)

// LLMHandler handles the generative advice endpoints
type LLMHandler struct {
	llmService service.ILLMService
	logger     *zap.Logger
}

// NewLLMHandler creates a new LLMHandler instance
func NewLLMHandler(llmService service.ILLMService, logger *zap.Logger) *LLMHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMHandler{
		llmService: llmService,
		logger:     logger,
	}
}

// RegisterRoutes registers the advice routes
func (h *LLMHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate-routine", h.GenerateRoutine)
	router.POST("/get-generic-tip", h.GetGenericTip)
}

// GenerateRoutine handles micro-routine requests
func (h *LLMHandler) GenerateRoutine(c *gin.Context) {
	var req types.RoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgRoutineMissingFields})
		return
	}

	routine, err := h.llmService.GenerateRoutine(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("failed to generate routine",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgRoutineFailed})
		return
	}

	c.JSON(http.StatusOK, routine)
}

// GetGenericTip handles quiz tip requests
func (h *LLMHandler) GetGenericTip(c *gin.Context) {
	var req types.GenericTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTipMissingFields})
		return
	}

	tip, err := h.llmService.GenerateTip(c.Request.Context(), &req)
	if err != nil {
		h.logger.Error("failed to generate tip",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgTipFailed})
		return
	}

	c.JSON(http.StatusOK, tip)
}
