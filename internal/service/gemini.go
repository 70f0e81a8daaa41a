package service

import (
	"context"
	"fmt"
	"strings"

	llmsdk "github.com/hoangvvo/llm-sdk/sdk-go"
	"github.com/hoangvvo/llm-sdk/sdk-go/google"
)

// DefaultGeminiModel is the model used for every advice prompt
const DefaultGeminiModel = "gemini-1.5-flash"

// TextGenerator is the part of an llm-sdk language model the advice service needs
type TextGenerator interface {
	Generate(ctx context.Context, input *llmsdk.LanguageModelInput) (*llmsdk.ModelResponse, error)
}

// GeminiOptions configures the Gemini language model
type GeminiOptions struct {
	APIKey  string
	ModelID string
	BaseURL string
}

// NewGeminiModel creates the Google generative model client
func NewGeminiModel(opts GeminiOptions) (*google.GoogleModel, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("gemini API key must be set")
	}
	modelID := opts.ModelID
	if modelID == "" {
		modelID = DefaultGeminiModel
	}

	return google.NewGoogleModel(modelID, google.GoogleModelOptions{
		APIKey:  opts.APIKey,
		BaseURL: opts.BaseURL,
	}), nil
}

// responseText joins the text parts of a model response
func responseText(resp *llmsdk.ModelResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Content {
		if part.TextPart != nil {
			b.WriteString(part.TextPart.Text)
		}
	}
	return b.String()
}

func textPart(text string) llmsdk.Part {
	return llmsdk.Part{TextPart: &llmsdk.TextPart{Text: text}}
}
