package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
)

// GetProfile fetches the authenticated user's identity record.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	u, err := do[models.User](ctx, c, http.MethodGet, "/users/me", nil, nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfile replaces the editable profile fields and returns the
// server-confirmed identity.
func (c *Client) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (*models.User, error) {
	u, err := do[models.User](ctx, c, http.MethodPut, "/users/me", patch, nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ChangePassword verifies the current password server-side and sets a new one.
func (c *Client) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	return doAck(ctx, c, http.MethodPut, "/users/me/password", change)
}

// GetDashboard fetches the aggregate view for the signed-in user.
func (c *Client) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	d, err := do[models.Dashboard](ctx, c, http.MethodGet, "/dashboard", nil, nil)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
