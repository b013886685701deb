package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
)

// Login exchanges credentials for a bearer token and the matching identity.
// Bad credentials surface as ErrUnauthorized; validation problems as *APIError.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	res, err := do[models.AuthResult](ctx, c, http.MethodPost, "/auth/login", creds, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates an account and, like Login, returns a live session payload.
func (c *Client) Register(ctx context.Context, data models.Registration) (*models.AuthResult, error) {
	res, err := do[models.AuthResult](ctx, c, http.MethodPost, "/auth/register", data, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
