package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/wep/backend/internal/mocks"
	"github.com/pageza/wep/backend/internal/model"
	"github.com/pageza/wep/backend/internal/service"
	"github.com/pageza/wep/backend/internal/types"
)

func setupRecipeTestRouter(provider service.IRecipeProvider) *gin.Engine {
	handler := NewRecipeHandler(provider, "Vegetarian", nil)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/api"))
	return router
}

func TestListHealthyRecipes(t *testing.T) {
	t.Run("summarizes meals in upstream order", func(t *testing.T) {
		provider := new(mocks.MockRecipeProvider)
		provider.On("ListByCategory", mock.Anything, "Vegetarian").Return([]model.RawMeal{
			{ID: "52807", Title: "Baingan Bharta", ImageURL: "https://img/1.jpg"},
			{ID: "52870", Title: "Chickpea Fajitas", ImageURL: "https://img/2.jpg"},
		}, nil)

		w := PerformRequest(t, setupRecipeTestRouter(provider), http.MethodGet, "/api/healthy-recipes", nil)

		require.Equal(t, http.StatusOK, w.Code)
		var got []types.RecipeSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, []types.RecipeSummary{
			{Slug: "52807", Title: "Baingan Bharta", Excerpt: service.SummaryExcerpt, ImageURL: "https://img/1.jpg"},
			{Slug: "52870", Title: "Chickpea Fajitas", Excerpt: service.SummaryExcerpt, ImageURL: "https://img/2.jpg"},
		}, got)
		provider.AssertExpectations(t)
	})

	t.Run("empty category is an empty array", func(t *testing.T) {
		provider := new(mocks.MockRecipeProvider)
		provider.On("ListByCategory", mock.Anything, "Vegetarian").Return([]model.RawMeal{}, nil)

		w := PerformRequest(t, setupRecipeTestRouter(provider), http.MethodGet, "/api/healthy-recipes", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("upstream failure is a 500", func(t *testing.T) {
		provider := new(mocks.MockRecipeProvider)
		provider.On("ListByCategory", mock.Anything, "Vegetarian").Return(nil, service.ErrUpstream)

		w := PerformRequest(t, setupRecipeTestRouter(provider), http.MethodGet, "/api/healthy-recipes", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "No se pudieron obtener las recetas.", decodeError(t, w))
	})
}

func TestGetRecipe(t *testing.T) {
	t.Run("returns the normalized detail", func(t *testing.T) {
		meal := &model.RawMeal{
			ID:           "52772",
			Title:        "Teriyaki Chicken Casserole",
			ImageURL:     "https://img/52772.jpg",
			Instructions: strPtr("Preheat oven.\r\n\r\nBake."),
			Tags:         strPtr("Meat,Casserole"),
		}
		meal.Ingredients[0] = strPtr("soy sauce")
		meal.Measures[0] = strPtr("3/4 cup")

		provider := new(mocks.MockRecipeProvider)
		provider.On("LookupByID", mock.Anything, "52772").Return(meal, nil)

		w := PerformRequest(t, setupRecipeTestRouter(provider), http.MethodGet, "/api/recipes/52772", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"title": "Teriyaki Chicken Casserole",
			"imageUrl": "https://img/52772.jpg",
			"instructions": ["Preheat oven.", "Bake."],
			"tags": ["Meat", "Casserole"],
			"youtubeUrl": null,
			"ingredients": ["3/4 cup soy sauce"]
		}`, w.Body.String())
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		provider := new(mocks.MockRecipeProvider)
		provider.On("LookupByID", mock.Anything, "nope").
			Return(nil, fmt.Errorf("meal %q: %w", "nope", service.ErrRecipeNotFound))

		w := PerformRequest(t, setupRecipeTestRouter(provider), http.MethodGet, "/api/recipes/nope", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Receta no encontrada.", decodeError(t, w))
	})

	t.Run("missing instructions is a 500", func(t *testing.T) {
		provider := new(mocks.MockRecipeProvider)
		provider.On("LookupByID", mock.Anything, "1").Return(&model.RawMeal{ID: "1", Title: "Broken"}, nil)

		w := PerformRequest(t, setupRecipeTestRouter(provider), http.MethodGet, "/api/recipes/1", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "No se pudo obtener el detalle de la receta.", decodeError(t, w))
	})

	t.Run("upstream failure is a 500", func(t *testing.T) {
		provider := new(mocks.MockRecipeProvider)
		provider.On("LookupByID", mock.Anything, "2").Return(nil, service.ErrUpstream)

		w := PerformRequest(t, setupRecipeTestRouter(provider), http.MethodGet, "/api/recipes/2", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "No se pudo obtener el detalle de la receta.", decodeError(t, w))
	})
}

func TestGetRecipeAgainstCatalogServer(t *testing.T) {
	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("i") {
		case "52772":
			fmt.Fprint(w, `{"meals":[{"idMeal":"52772","strMeal":"Pasta","strMealThumb":"https://img/p.jpg",
				"strInstructions":"Boil.\r\nServe.","strTags":null,"strYoutube":"https://youtube.com/watch?v=x",
				"strIngredient1":"Pasta","strMeasure1":"200g","strIngredient2":"","strMeasure2":" "}]}`)
		case "52773":
			fmt.Fprint(w, `{"meals":[null]}`)
		default:
			fmt.Fprint(w, `{"meals":null}`)
		}
	}))
	defer catalog.Close()

	client := service.NewMealDBClient(service.MealDBOptions{BaseURL: catalog.URL})
	router := setupRecipeTestRouter(client)

	w := PerformRequest(t, router, http.MethodGet, "/api/recipes/52772", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"title": "Pasta",
		"imageUrl": "https://img/p.jpg",
		"instructions": ["Boil.", "Serve."],
		"tags": [],
		"youtubeUrl": "https://youtube.com/watch?v=x",
		"ingredients": ["200g Pasta"]
	}`, w.Body.String())

	for _, id := range []string{"000000", "52773"} {
		w = PerformRequest(t, router, http.MethodGet, "/api/recipes/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, "id %s", id)
		assert.Equal(t, "Receta no encontrada.", decodeError(t, w))
	}
}
