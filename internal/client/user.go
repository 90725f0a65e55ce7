package client

import (
	"context"
	"net/http"

	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/utils"
)

// GetGoals fetches the user's challenge goals. Returns (nil, nil) when the
// user has not set goals yet; that state gates onboarding.
func (c *Client) GetGoals(ctx context.Context) (*models.UserGoals, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, "/api/user/goals")
	defer done()

	var goals *models.UserGoals
	if err := c.get(ctx, "get_goals", "/api/user/goals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

// CreateGoals creates or replaces the user's challenge goals. The server
// stamps created_at, which becomes day 1 of the challenge.
func (c *Client) CreateGoals(ctx context.Context, input models.UserGoalsCreate) (*models.UserGoals, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodPost, "/api/user/goals")
	defer done()

	if result := utils.ValidateGoals(input); !result.IsValid {
		return nil, result
	}

	var goals models.UserGoals
	if err := c.request(ctx, http.MethodPost, "/api/user/goals", nil, input, &goals, true); err != nil {
		return nil, err
	}
	return &goals, nil
}

// UpdateProfile applies a partial profile update; nil fields are left
// untouched. Input is validated before any network call.
func (c *Client) UpdateProfile(ctx context.Context, input models.ProfileUpdate) (*models.User, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodPut, "/api/user/profile")
	defer done()

	if result := utils.ValidateProfileUpdate(input); !result.IsValid {
		return nil, result
	}

	var user models.User
	if err := c.request(ctx, http.MethodPut, "/api/user/profile", nil, input, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}
