package model

import (
	"encoding/json"
	"fmt"
)

// MaxIngredientSlots is the number of positional ingredient/measure pairs a meal carries
const MaxIngredientSlots = 20

// RawMeal is a meal record as returned by TheMealDB. Nullable upstream fields are
// pointers so that an absent value can be told apart from an empty one.
type RawMeal struct {
	ID           string
	Title        string
	ImageURL     string
	Instructions *string
	Tags         *string
	YoutubeURL   *string

	// Ingredients[i] and Measures[i] hold strIngredient{i+1} and strMeasure{i+1}
	Ingredients [MaxIngredientSlots]*string
	Measures    [MaxIngredientSlots]*string
}

// MealsEnvelope is the top-level shape of every TheMealDB response. A null
// element decodes to a nil entry.
type MealsEnvelope struct {
	Meals []*RawMeal `json:"meals"`
}

// UnmarshalJSON reads the flat upstream record, collecting the numbered
// strIngredientN/strMeasureN fields into slot arrays.
func (m *RawMeal) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("failed to decode meal: %w", err)
	}

	*m = RawMeal{
		ID:           stringValue(fields["idMeal"]),
		Title:        stringValue(fields["strMeal"]),
		ImageURL:     stringValue(fields["strMealThumb"]),
		Instructions: nullableString(fields["strInstructions"]),
		Tags:         nullableString(fields["strTags"]),
		YoutubeURL:   nullableString(fields["strYoutube"]),
	}

	for i := 0; i < MaxIngredientSlots; i++ {
		m.Ingredients[i] = nullableString(fields[fmt.Sprintf("strIngredient%d", i+1)])
		m.Measures[i] = nullableString(fields[fmt.Sprintf("strMeasure%d", i+1)])
	}

	return nil
}

// MarshalJSON writes the record back in the upstream field layout
func (m RawMeal) MarshalJSON() ([]byte, error) {
	out := map[string]*string{
		"idMeal":          &m.ID,
		"strMeal":         &m.Title,
		"strMealThumb":    &m.ImageURL,
		"strInstructions": m.Instructions,
		"strTags":         m.Tags,
		"strYoutube":      m.YoutubeURL,
	}
	for i := 0; i < MaxIngredientSlots; i++ {
		out[fmt.Sprintf("strIngredient%d", i+1)] = m.Ingredients[i]
		out[fmt.Sprintf("strMeasure%d", i+1)] = m.Measures[i]
	}
	return json.Marshal(out)
}

// nullableString returns nil for missing, null or non-string values
func nullableString(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return s
}

func stringValue(raw json.RawMessage) string {
	if s := nullableString(raw); s != nil {
		return *s
	}
	return ""
}
