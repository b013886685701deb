package cli

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
)

func money(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(2) + " " + currency
}

func renderAccounts(accounts []models.Account) {
	if len(accounts) == 0 {
		printlnFn("No accounts yet. Use 'openaccount' to open one.")
		return
	}
	for _, a := range accounts {
		printlnFn(fmt.Sprintf("[%d] %s  %s  %s  %s  %s",
			a.ID, a.AccountNumber, a.AccountName, a.AccountType, money(a.Balance, a.Currency), a.Status))
	}
}

func renderTransaction(tx *models.Transaction) {
	sign := "-"
	if tx.IsCredit {
		sign = "+"
	}
	printlnFn(fmt.Sprintf("[%d] %s  %s%s  %s  balance after: %s",
		tx.ID, tx.Type, sign, tx.Amount.StringFixed(2), tx.Description, tx.BalanceAfter.StringFixed(2)))
}

func renderTransactionPage(p *models.Page[models.Transaction]) {
	if len(p.Content) == 0 {
		printlnFn("No transactions on this page.")
	}
	for i := range p.Content {
		renderTransaction(&p.Content[i])
	}
	printlnFn(fmt.Sprintf("Page %d of %d (%d total)", p.Page+1, p.TotalPages, p.TotalElements))
}

func renderUser(u *models.User) {
	enabled := "enabled"
	if !u.Enabled {
		enabled = "disabled"
	}
	printlnFn(fmt.Sprintf("[%d] %s  %s  %s  %s  %s", u.ID, u.FullName(), u.Email, u.PhoneNumber, u.Role, enabled))
}
