package mocks

import (
	"context"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"
	"github.com/pageza/wep/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockLLMService is a mock implementation of the advice service
type MockLLMService struct {
	mock.Mock
}

// GenerateRoutine mocks the GenerateRoutine method
func (m *MockLLMService) GenerateRoutine(ctx context.Context, req *types.RoutineRequest) (*types.RoutineSuggestion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RoutineSuggestion), args.Error(1)
}

// GenerateTip mocks the GenerateTip method
func (m *MockLLMService) GenerateTip(ctx context.Context, req *types.GenericTipRequest) (*types.Tip, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Tip), args.Error(1)
}

// MockTextGenerator is a mock implementation of the language model
type MockTextGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockTextGenerator) Generate(ctx context.Context, input *llmsdk.LanguageModelInput) (*llmsdk.ModelResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llmsdk.ModelResponse), args.Error(1)
}

// TextResponse builds a model response holding a single text part
func TextResponse(text string) *llmsdk.ModelResponse {
	return &llmsdk.ModelResponse{
		Content: []llmsdk.Part{{TextPart: &llmsdk.TextPart{Text: text}}},
	}
}
