package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/metodo21/app-client/internal/models"
	"github.com/metodo21/app-client/internal/utils"
)

// GenerateActivationCodes mints a batch of unused activation codes.
// Quantity is validated locally (1..100) before any network call.
func (c *Client) GenerateActivationCodes(ctx context.Context, quantity int) ([]string, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodPost, "/api/admin/codes/generate")
	defer done()

	if result := utils.ValidateCodeQuantity(quantity); !result.IsValid {
		return nil, result
	}

	query := url.Values{"quantity": []string{strconv.Itoa(quantity)}}

	var resp struct {
		Codes []string `json:"codes"`
	}
	if err := c.request(ctx, http.MethodPost, "/api/admin/codes/generate", query, nil, &resp, true); err != nil {
		return nil, err
	}
	return resp.Codes, nil
}

// ListActivationCodes fetches all codes with their redemption status.
func (c *Client) ListActivationCodes(ctx context.Context) ([]models.ActivationCode, error) {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodGet, "/api/admin/codes")
	defer done()

	var resp struct {
		Codes []models.ActivationCode `json:"codes"`
	}
	if err := c.get(ctx, "list_activation_codes", "/api/admin/codes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Codes, nil
}

// ValidateActivationCode redeems a code for the current user. Codes are
// normalized (trimmed, uppercased) before submission. A code that was
// already redeemed fails with ErrCodeAlreadyUsed; redemption is atomic
// server-side, so exactly one attempt per code ever succeeds.
func (c *Client) ValidateActivationCode(ctx context.Context, code string) error {
	ctx, _, done := utils.TraceAPICall(ctx, http.MethodPost, "/api/auth/validate-code")
	defer done()

	normalized := models.NormalizeActivationCode(code)
	if normalized == "" {
		result := utils.NewValidationResult()
		result.AddError("code", "activation code is required")
		return result
	}

	body := map[string]string{"code": normalized}
	return c.request(ctx, http.MethodPost, "/api/auth/validate-code", nil, body, nil, true)
}
