package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
)

// ListParams narrows admin list endpoints: zero-based page, page size, and
// an optional free-text search filter.
type ListParams struct {
	Page   int
	Size   int
	Search string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// AdminDashboard fetches platform-wide totals.
func (c *Client) AdminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	d, err := do[models.AdminDashboard](ctx, c, http.MethodGet, "/admin/dashboard", nil, nil)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// AdminListUsers pages through all registered users.
func (c *Client) AdminListUsers(ctx context.Context, params ListParams) (*models.Page[models.User], error) {
	p, err := do[models.Page[models.User]](ctx, c, http.MethodGet, "/admin/users", nil, params.values())
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AdminGetUser returns one user's full record.
func (c *Client) AdminGetUser(ctx context.Context, userID int64) (*models.User, error) {
	u, err := do[models.User](ctx, c, http.MethodGet, fmt.Sprintf("/admin/users/%d", userID), nil, nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AdminToggleUserStatus flips a user's enabled flag and returns the record.
func (c *Client) AdminToggleUserStatus(ctx context.Context, userID int64) (*models.User, error) {
	u, err := do[models.User](ctx, c, http.MethodPatch, fmt.Sprintf("/admin/users/%d/toggle-status", userID), nil, nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AdminUpdateUserRole grants or revokes the admin role.
func (c *Client) AdminUpdateUserRole(ctx context.Context, userID int64, role models.Role) (*models.User, error) {
	body := map[string]models.Role{"role": role}
	u, err := do[models.User](ctx, c, http.MethodPatch, fmt.Sprintf("/admin/users/%d/role", userID), body, nil)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AdminDeleteUser removes a user entirely.
func (c *Client) AdminDeleteUser(ctx context.Context, userID int64) error {
	return doAck(ctx, c, http.MethodDelete, fmt.Sprintf("/admin/users/%d", userID), nil)
}

// AdminListAccounts pages through all accounts on the platform.
func (c *Client) AdminListAccounts(ctx context.Context, params ListParams) (*models.Page[models.Account], error) {
	p, err := do[models.Page[models.Account]](ctx, c, http.MethodGet, "/admin/accounts", nil, params.values())
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AdminGetAccount returns one account regardless of owner.
func (c *Client) AdminGetAccount(ctx context.Context, accountID int64) (*models.Account, error) {
	a, err := do[models.Account](ctx, c, http.MethodGet, fmt.Sprintf("/admin/accounts/%d", accountID), nil, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AdminUpdateAccountStatus freezes, unfreezes, or closes an account.
func (c *Client) AdminUpdateAccountStatus(ctx context.Context, accountID int64, status models.AccountStatus) (*models.Account, error) {
	body := map[string]models.AccountStatus{"status": status}
	a, err := do[models.Account](ctx, c, http.MethodPatch, fmt.Sprintf("/admin/accounts/%d/status", accountID), body, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AdminAdjustBalance applies a manual balance correction.
func (c *Client) AdminAdjustBalance(ctx context.Context, accountID int64, adj models.BalanceAdjustment) (*models.Account, error) {
	a, err := do[models.Account](ctx, c, http.MethodPost, fmt.Sprintf("/admin/accounts/%d/adjust", accountID), adj, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AdminListTransactions pages through every transaction on the platform.
func (c *Client) AdminListTransactions(ctx context.Context, params ListParams) (*models.Page[models.Transaction], error) {
	p, err := do[models.Page[models.Transaction]](ctx, c, http.MethodGet, "/admin/transactions", nil, params.values())
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AdminGetTransaction returns one transaction by id.
func (c *Client) AdminGetTransaction(ctx context.Context, txID int64) (*models.Transaction, error) {
	t, err := do[models.Transaction](ctx, c, http.MethodGet, fmt.Sprintf("/admin/transactions/%d", txID), nil, nil)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// AdminAnalytics fetches aggregated statistics for a period
// ("week", "month", or "year").
func (c *Client) AdminAnalytics(ctx context.Context, period string) (*models.Analytics, error) {
	q := url.Values{}
	q.Set("period", period)
	a, err := do[models.Analytics](ctx, c, http.MethodGet, "/admin/analytics", nil, q)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
