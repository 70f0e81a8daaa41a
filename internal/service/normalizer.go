package service

import (
	"fmt"
	"strings"

	"github.com/pageza/wep/backend/internal/model"
	"github.com/pageza/wep/backend/internal/types"
)

// SummaryExcerpt is the static blurb shown for every listed recipe
const SummaryExcerpt = "Una deliciosa y saludable opción vegetariana."

const (
	instructionSeparator = "\r\n"
	tagSeparator         = ","
)

// Summarize converts a catalog meal into a list entry
func Summarize(meal model.RawMeal) types.RecipeSummary {
	return types.RecipeSummary{
		Slug:     meal.ID,
		Title:    meal.Title,
		Excerpt:  SummaryExcerpt,
		ImageURL: meal.ImageURL,
	}
}

// SummarizeAll converts a catalog listing, preserving upstream order
func SummarizeAll(meals []model.RawMeal) []types.RecipeSummary {
	summaries := make([]types.RecipeSummary, 0, len(meals))
	for _, meal := range meals {
		summaries = append(summaries, Summarize(meal))
	}
	return summaries
}

// NormalizeDetail converts a found catalog meal into the client-facing detail view.
// It fails only when the instructions field is absent.
func NormalizeDetail(meal *model.RawMeal) (*types.RecipeDetail, error) {
	if meal.Instructions == nil {
		return nil, fmt.Errorf("meal %s: %w", meal.ID, ErrMissingInstructions)
	}

	return &types.RecipeDetail{
		Title:        meal.Title,
		ImageURL:     meal.ImageURL,
		Instructions: splitInstructions(*meal.Instructions),
		Tags:         splitTags(meal.Tags),
		YoutubeURL:   meal.YoutubeURL,
		Ingredients:  collectIngredients(meal),
	}, nil
}

// collectIngredients walks slots 1..20 in order and keeps every slot with a
// non-blank ingredient name. A null measure counts as empty.
func collectIngredients(meal *model.RawMeal) []string {
	ingredients := make([]string, 0, model.MaxIngredientSlots)
	for i := 0; i < model.MaxIngredientSlots; i++ {
		ingredient := meal.Ingredients[i]
		if ingredient == nil || strings.TrimSpace(*ingredient) == "" {
			continue
		}
		measure := ""
		if meal.Measures[i] != nil {
			measure = *meal.Measures[i]
		}
		ingredients = append(ingredients, strings.TrimSpace(measure+" "+*ingredient))
	}
	return ingredients
}

func splitInstructions(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, instructionSeparator) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitTags keeps tag text untouched; a missing or empty field yields no tags
func splitTags(tags *string) []string {
	if tags == nil || *tags == "" {
		return []string{}
	}
	return strings.Split(*tags, tagSeparator)
}
