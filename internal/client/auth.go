package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/utils"
	"go.uber.org/zap"
)

// ProcessSession exchanges a one-time session id from the login redirect
// for a durable session token plus the user's profile. Exactly one network
// exchange; a rejected or expired id surfaces as ErrExchangeRejected.
func (c *Client) ProcessSession(ctx context.Context, sessionID string) (*models.SessionData, error) {
	ctx, span, done := utils.TraceSessionExchange(ctx)
	defer done()

	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	var data models.SessionData
	body := map[string]string{"session_id": sessionID}

	err := c.request(ctx, http.MethodPost, "/api/auth/process-session", nil, body, &data, false)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)

		var apiErr *models.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest {
			return nil, models.ErrExchangeRejected
		}
		return nil, err
	}

	c.logger.Info("session exchange succeeded",
		zap.String("user_id", data.User.UserID))

	return &data, nil
}

// GetMe fetches the current user's profile. ErrNotAuthenticated means the
// token is missing, revoked or expired.
func (c *Client) GetMe(ctx context.Context) (*models.User, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, "/api/auth/me")
	defer done()

	var user models.User
	if err := c.get(ctx, "get_me", "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the session server-side. Callers clear local state
// regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodPost, "/api/auth/logout")
	defer done()

	return c.request(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil, true)
}
