package types

// RecipeSummary represents a recipe entry in list responses
type RecipeSummary struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"imageUrl"`
}

// RecipeDetail represents a single recipe as served to clients
type RecipeDetail struct {
	Title        string   `json:"title"`
	ImageURL     string   `json:"imageUrl"`
	Instructions []string `json:"instructions"`
	Tags         []string `json:"tags"`
	YoutubeURL   *string  `json:"youtubeUrl"`
	Ingredients  []string `json:"ingredients"`
}
