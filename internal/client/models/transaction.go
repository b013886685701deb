package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enumerates the money movements the backend records.
type TransactionType string

const (
	TxDeposit    TransactionType = "DEPOSIT"
	TxWithdrawal TransactionType = "WITHDRAWAL"
	TxTransfer   TransactionType = "TRANSFER"
	TxAdjustment TransactionType = "ADJUSTMENT"
)

// Transaction is a single ledger entry on an account.
type Transaction struct {
	ID           int64           `json:"id"`
	AccountID    int64           `json:"accountId"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	IsCredit     bool            `json:"isCredit"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
	Reference    string          `json:"reference,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Page is the server's pagination envelope for list endpoints.
// Numbering is zero-based, matching the backend.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// CashRequest is the request body for deposits and withdrawals.
type CashRequest struct {
	AccountID   int64           `json:"accountId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// TransferRequest is the request body for transfers between accounts.
// Reference is generated client-side so a retried transfer is idempotent.
type TransferRequest struct {
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
}
