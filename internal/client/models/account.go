package models

import "github.com/shopspring/decimal"

// AccountType enumerates the product types offered by the backend.
type AccountType string

const (
	AccountSavings  AccountType = "SAVINGS"
	AccountChecking AccountType = "CHECKING"
	AccountBusiness AccountType = "BUSINESS"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
	AccountFrozen AccountStatus = "FROZEN"
	AccountClosed AccountStatus = "CLOSED"
)

// Account is a bank account owned by the current user (or, in admin views,
// by an arbitrary user).
type Account struct {
	ID            int64           `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	Status        AccountStatus   `json:"status"`
	OwnerID       int64           `json:"ownerId,omitempty"`
}

// NewAccount is the request body for POST /accounts.
type NewAccount struct {
	AccountName string      `json:"accountName"`
	AccountType AccountType `json:"accountType"`
	Currency    string      `json:"currency"`
}

// AccountPatch carries the editable account fields for PATCH /accounts/{id}.
type AccountPatch struct {
	AccountName string `json:"accountName"`
}

// BalanceAdjustment is the admin request body for balance corrections.
type BalanceAdjustment struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}
