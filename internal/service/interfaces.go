package service

import (
	"context"

	"github.com/pageza/wep/backend/internal/model"
	"github.com/pageza/wep/backend/internal/types"
)

// IRecipeProvider defines the recipe catalog operations the handlers use
type IRecipeProvider interface {
	ListByCategory(ctx context.Context, category string) ([]model.RawMeal, error)
	LookupByID(ctx context.Context, id string) (*model.RawMeal, error)
}

// ILLMService defines the generative advice operations the handlers use
type ILLMService interface {
	GenerateRoutine(ctx context.Context, req *types.RoutineRequest) (*types.RoutineSuggestion, error)
	GenerateTip(ctx context.Context, req *types.GenericTipRequest) (*types.Tip, error)
}

var (
	_ IRecipeProvider = (*MealDBClient)(nil)
	_ ILLMService     = (*LLMService)(nil)
)
