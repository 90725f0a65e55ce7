package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/utils"
)

// GetProgress fetches the aggregate challenge state: goals, all daily
// records and the completed-day count.
func (c *Client) GetProgress(ctx context.Context) (*models.MethodProgress, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, "/api/method/progress")
	defer done()

	var progress models.MethodProgress
	if err := c.get(ctx, "get_progress", "/api/method/progress", nil, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// CreateFinalReflection submits the end-of-challenge reflection.
func (c *Client) CreateFinalReflection(ctx context.Context, input models.FinalReflectionCreate) (*models.FinalReflection, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodPost, "/api/method/final-reflection")
	defer done()

	var reflection models.FinalReflection
	if err := c.request(ctx, http.MethodPost, "/api/method/final-reflection", nil, input, &reflection, true); err != nil {
		return nil, err
	}
	return &reflection, nil
}

// GetFinalReflection fetches the final reflection, or (nil, nil) when it
// has not been written yet.
func (c *Client) GetFinalReflection(ctx context.Context) (*models.FinalReflection, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, "/api/method/final-reflection")
	defer done()

	var reflection *models.FinalReflection
	err := c.get(ctx, "get_final_reflection", "/api/method/final-reflection", nil, &reflection)
	if errors.Is(err, models.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return reflection, nil
}
