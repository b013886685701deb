package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
)

// ListAccounts returns every account owned by the current user.
func (c *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return do[[]models.Account](ctx, c, http.MethodGet, "/accounts", nil, nil)
}

// GetAccount returns a single account by id.
func (c *Client) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	a, err := do[models.Account](ctx, c, http.MethodGet, fmt.Sprintf("/accounts/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAccount opens a new account.
func (c *Client) CreateAccount(ctx context.Context, req models.NewAccount) (*models.Account, error) {
	a, err := do[models.Account](ctx, c, http.MethodPost, "/accounts", req, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAccount renames an account.
func (c *Client) UpdateAccount(ctx context.Context, id int64, patch models.AccountPatch) (*models.Account, error) {
	a, err := do[models.Account](ctx, c, http.MethodPatch, fmt.Sprintf("/accounts/%d", id), patch, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CloseAccount closes an account. The backend rejects accounts with a
// non-zero balance; that arrives here as an *APIError.
func (c *Client) CloseAccount(ctx context.Context, id int64) error {
	return doAck(ctx, c, http.MethodDelete, fmt.Sprintf("/accounts/%d", id), nil)
}
