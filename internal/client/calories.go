package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/utils"
)

// ListFoods fetches the food catalog, optionally filtered by category
// and/or a case-insensitive name search.
func (c *Client) ListFoods(ctx context.Context, category, search string) ([]models.Food, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, "/api/calories/foods")
	defer done()

	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("search", search)
	}

	var foods []models.Food
	if err := c.get(ctx, "list_foods", "/api/calories/foods", query, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// AddMeal logs a food portion against today. The server computes calories
// from the catalog entry and the portion size.
func (c *Client) AddMeal(ctx context.Context, input models.FoodEntryCreate) (*models.FoodEntry, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodPost, "/api/calories/add-meal")
	defer done()

	var entry models.FoodEntry
	if err := c.request(ctx, http.MethodPost, "/api/calories/add-meal", nil, input, &entry, true); err != nil {
		return nil, err
	}
	return &entry, nil
}

// TodayCalories fetches today's food entries grouped by meal plus the
// consumed total.
func (c *Client) TodayCalories(ctx context.Context) (*models.TodayCalories, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, "/api/calories/today")
	defer done()

	var today models.TodayCalories
	if err := c.get(ctx, "today_calories", "/api/calories/today", nil, &today); err != nil {
		return nil, err
	}
	return &today, nil
}
