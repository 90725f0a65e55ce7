package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/utils"
)

// GetDailyRecord fetches the record for a calendar day (YYYY-MM-DD).
// Absence is a valid state and returns (nil, nil), not an error.
func (c *Client) GetDailyRecord(ctx context.Context, date string) (*models.DailyRecord, error) {
	path := "/api/daily/record/" + date
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, path)
	defer done()

	var record *models.DailyRecord
	err := c.get(ctx, "get_daily_record", path, nil, &record)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListDailyRecords fetches every daily record of the current user,
// ordered by date.
func (c *Client) ListDailyRecords(ctx context.Context) ([]models.DailyRecord, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, "/api/daily/records")
	defer done()

	var records []models.DailyRecord
	if err := c.get(ctx, "list_daily_records", "/api/daily/records", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpsertDailyRecord creates or updates the record keyed by (user, date).
func (c *Client) UpsertDailyRecord(ctx context.Context, input models.DailyRecordUpsert) (*models.DailyRecord, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodPost, "/api/daily/record")
	defer done()

	var record models.DailyRecord
	if err := c.request(ctx, http.MethodPost, "/api/daily/record", nil, input, &record, true); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateWaterIntake sets today's water intake total in milliliters.
func (c *Client) UpdateWaterIntake(ctx context.Context, waterML int) (int, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodPut, "/api/daily/water")
	defer done()

	query := url.Values{"water_ml": []string{strconv.Itoa(waterML)}}

	var resp struct {
		WaterIntake int `json:"water_intake"`
	}
	if err := c.request(ctx, http.MethodPut, "/api/daily/water", query, nil, &resp, true); err != nil {
		return 0, err
	}
	return resp.WaterIntake, nil
}
