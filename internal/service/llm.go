package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"
	"go.uber.org/zap"

	"github.com/pageza/wep/backend/internal/metrics"
	"github.com/pageza/wep/backend/internal/types"
)

const (
	geminiProvider = "gemini"

	routineTemperature = 0.9
	tipTemperature     = 0.8
)

// LLMService turns wellness inputs into short personalised snippets
type LLMService struct {
	model   TextGenerator
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewLLMService creates a new LLMService instance
func NewLLMService(model TextGenerator, logger *zap.Logger, m *metrics.Metrics) *LLMService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMService{
		model:   model,
		logger:  logger,
		metrics: m,
	}
}

// GenerateRoutine asks the model for a micro-routine fitting the request
func (s *LLMService) GenerateRoutine(ctx context.Context, req *types.RoutineRequest) (*types.RoutineSuggestion, error) {
	prompt := fmt.Sprintf(`Eres un coach de bienestar experto en crear micro-rutinas hiper-personalizadas.
Contexto: Objetivo=%s, Tiempo=%s min, Energía=%s, Ubicación=%s.
Responde SOLAMENTE con un objeto JSON con el formato {"name": "Título Creativo", "description": "Descripción de la actividad."}.`,
		req.Objective, req.Time, req.Energy, req.Location)

	var suggestion types.RoutineSuggestion
	if err := s.generateJSON(ctx, "routine", prompt, routineTemperature, &suggestion); err != nil {
		return nil, err
	}
	if strings.TrimSpace(suggestion.Name) == "" || strings.TrimSpace(suggestion.Description) == "" {
		return nil, fmt.Errorf("routine: %w: missing name or description", ErrUnparseableOutput)
	}
	return &suggestion, nil
}

// GenerateTip asks the model for a short actionable tip about a quiz result
func (s *LLMService) GenerateTip(ctx context.Context, req *types.GenericTipRequest) (*types.Tip, error) {
	prompt := fmt.Sprintf(`Eres un coach de bienestar empático. El resultado principal de un quiz sobre %s es: "%s".
Basado en esto, genera un consejo corto, accionable y positivo de 2 a 4 frases.
Responde SOLAMENTE con un objeto JSON con el formato {"tip": "Tu consejo personalizado aquí."}.`,
		req.Context, req.Result)

	var tip types.Tip
	if err := s.generateJSON(ctx, "tip", prompt, tipTemperature, &tip); err != nil {
		return nil, err
	}
	if strings.TrimSpace(tip.Tip) == "" {
		return nil, fmt.Errorf("tip: %w: missing tip", ErrUnparseableOutput)
	}
	return &tip, nil
}

// generateJSON sends a single user prompt and decodes the JSON embedded in the answer
func (s *LLMService) generateJSON(ctx context.Context, operation, prompt string, temperature float64, out any) error {
	start := time.Now()
	resp, err := s.model.Generate(ctx, &llmsdk.LanguageModelInput{
		Messages: []llmsdk.Message{
			llmsdk.NewUserMessage(textPart(prompt)),
		},
		Temperature: &temperature,
	})
	if err != nil {
		s.metrics.ObserveUpstream(geminiProvider, operation, metrics.OutcomeError, time.Since(start))
		return fmt.Errorf("%w: %s generation failed: %v", ErrUpstream, operation, err)
	}

	text := responseText(resp)
	s.logger.Debug("model response received",
		zap.String("operation", operation),
		zap.Int("length", len(text)),
	)

	if err := ExtractJSON(text, out); err != nil {
		s.metrics.ObserveUpstream(geminiProvider, operation, metrics.OutcomeError, time.Since(start))
		return fmt.Errorf("%s: %w", operation, err)
	}

	s.metrics.ObserveUpstream(geminiProvider, operation, metrics.OutcomeSuccess, time.Since(start))
	return nil
}
