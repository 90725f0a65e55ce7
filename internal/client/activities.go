package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/utils"
)

// ListActivities fetches the activity catalog, optionally filtered by
// category. This is the one unauthenticated read of the API.
func (c *Client) ListActivities(ctx context.Context, category string) ([]models.Activity, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, "/api/activities/list")
	defer done()

	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}

	var activities []models.Activity
	err := c.withRetry(ctx, "list_activities", func() error {
		return c.request(ctx, http.MethodGet, "/api/activities/list", query, nil, &activities, false)
	})
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// AddActivity logs an activity session against today. The server computes
// the calories burned from the activity's MET value, duration and
// intensity.
func (c *Client) AddActivity(ctx context.Context, input models.ActivityEntryCreate) (*models.ActivityEntry, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodPost, "/api/activities/add")
	defer done()

	var entry models.ActivityEntry
	if err := c.request(ctx, http.MethodPost, "/api/activities/add", nil, input, &entry, true); err != nil {
		return nil, err
	}
	return &entry, nil
}

// TodayActivities fetches today's activity entries plus the burned total.
func (c *Client) TodayActivities(ctx context.Context) (*models.TodayActivities, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, "/api/activities/today")
	defer done()

	var today models.TodayActivities
	if err := c.get(ctx, "today_activities", "/api/activities/today", nil, &today); err != nil {
		return nil, err
	}
	return &today, nil
}
