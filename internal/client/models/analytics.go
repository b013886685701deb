package models

import "github.com/shopspring/decimal"

// Dashboard is the payload of GET /dashboard for a regular user.
type Dashboard struct {
	TotalBalance       decimal.Decimal `json:"totalBalance"`
	TotalAccounts      int             `json:"totalAccounts"`
	TotalTransactions  int64           `json:"totalTransactions"`
	Accounts           []Account       `json:"accounts"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
}

// AdminDashboard is the payload of GET /admin/dashboard.
type AdminDashboard struct {
	TotalUsers        int64           `json:"totalUsers"`
	TotalAccounts     int64           `json:"totalAccounts"`
	TotalTransactions int64           `json:"totalTransactions"`
	TotalBalance      decimal.Decimal `json:"totalBalance"`
}

// DailyStat is one point of the admin analytics time series.
type DailyStat struct {
	Date        string          `json:"date"`
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Transfers   decimal.Decimal `json:"transfers"`
	Count       int64           `json:"count"`
}

// AccountTypeStat aggregates accounts of one type for admin analytics.
type AccountTypeStat struct {
	AccountType  AccountType     `json:"accountType"`
	Count        int64           `json:"count"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

// Analytics is the payload of GET /admin/analytics for a given period.
type Analytics struct {
	Period           string            `json:"period"`
	DailyStats       []DailyStat       `json:"dailyStats"`
	AccountTypeStats []AccountTypeStat `json:"accountTypeStats"`
}
