package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/wep/backend/internal/metrics"
	"github.com/pageza/wep/backend/internal/model"
)

const (
	// DefaultMealDBURL is the public TheMealDB v1 endpoint with the shared test key
	DefaultMealDBURL = "https://www.themealdb.com/api/json/v1/1"

	mealDBProvider = "themealdb"
)

// MealDBClient fetches meals from TheMealDB
type MealDBClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// MealDBOptions configures a MealDBClient
type MealDBOptions struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// NewMealDBClient creates a new MealDBClient instance
func NewMealDBClient(opts MealDBOptions) *MealDBClient {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultMealDBURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MealDBClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: opts.Metrics,
	}
}

// ListByCategory returns the meals of a category in upstream order. Filter
// results only carry id, title and thumbnail.
func (c *MealDBClient) ListByCategory(ctx context.Context, category string) ([]model.RawMeal, error) {
	start := time.Now()
	envelope, err := c.get(ctx, "filter.php", url.Values{"c": {category}})
	if err != nil {
		c.metrics.ObserveUpstream(mealDBProvider, "filter", metrics.OutcomeError, time.Since(start))
		return nil, err
	}
	if envelope.Meals == nil {
		c.metrics.ObserveUpstream(mealDBProvider, "filter", metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("%w: no meals returned for category %q", ErrUpstream, category)
	}

	meals := make([]model.RawMeal, 0, len(envelope.Meals))
	for i, meal := range envelope.Meals {
		if meal == nil {
			c.metrics.ObserveUpstream(mealDBProvider, "filter", metrics.OutcomeError, time.Since(start))
			return nil, fmt.Errorf("%w: null meal at index %d for category %q", ErrUpstream, i, category)
		}
		meals = append(meals, *meal)
	}

	c.metrics.ObserveUpstream(mealDBProvider, "filter", metrics.OutcomeSuccess, time.Since(start))
	return meals, nil
}

// LookupByID returns the full record for a meal, or ErrRecipeNotFound
func (c *MealDBClient) LookupByID(ctx context.Context, id string) (*model.RawMeal, error) {
	start := time.Now()
	envelope, err := c.get(ctx, "lookup.php", url.Values{"i": {id}})
	if err != nil {
		c.metrics.ObserveUpstream(mealDBProvider, "lookup", metrics.OutcomeError, time.Since(start))
		return nil, err
	}
	// Only the first element counts, and a null one means no record
	if len(envelope.Meals) == 0 || envelope.Meals[0] == nil {
		c.metrics.ObserveUpstream(mealDBProvider, "lookup", metrics.OutcomeNotFound, time.Since(start))
		return nil, fmt.Errorf("meal %q: %w", id, ErrRecipeNotFound)
	}

	c.metrics.ObserveUpstream(mealDBProvider, "lookup", metrics.OutcomeSuccess, time.Since(start))
	return envelope.Meals[0], nil
}

func (c *MealDBClient) get(ctx context.Context, endpoint string, query url.Values) (*model.MealsEnvelope, error) {
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUpstream, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("recipe catalog request failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: %s returned status %d", ErrUpstream, endpoint, resp.StatusCode)
	}

	var envelope model.MealsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrUpstream, err)
	}

	return &envelope, nil
}
