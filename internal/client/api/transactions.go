package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
)

// ListTransactions fetches one page of an account's ledger, newest first.
// Page numbering is zero-based.
func (c *Client) ListTransactions(ctx context.Context, accountID int64, page, size int) (*models.Page[models.Transaction], error) {
	q := url.Values{}
	q.Set("accountId", strconv.FormatInt(accountID, 10))
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	p, err := do[models.Page[models.Transaction]](ctx, c, http.MethodGet, "/transactions", nil, q)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Deposit credits an account.
func (c *Client) Deposit(ctx context.Context, req models.CashRequest) (*models.Transaction, error) {
	tx, err := do[models.Transaction](ctx, c, http.MethodPost, "/transactions/deposit", req, nil)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Withdraw debits an account. Insufficient balance arrives as an *APIError.
func (c *Client) Withdraw(ctx context.Context, req models.CashRequest) (*models.Transaction, error) {
	tx, err := do[models.Transaction](ctx, c, http.MethodPost, "/transactions/withdraw", req, nil)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Transfer moves money between two accounts. A missing Reference is filled
// with a fresh uuid so a retry of the same logical transfer is idempotent
// server-side.
func (c *Client) Transfer(ctx context.Context, req models.TransferRequest) (*models.Transaction, error) {
	if req.Reference == "" {
		req.Reference = uuid.NewString()
	}
	tx, err := do[models.Transaction](ctx, c, http.MethodPost, "/transactions/transfer", req, nil)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
