package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
)

const txPageSize = 10

// Deposit credits an account with a cash amount.
func (a *App) Deposit(ctx context.Context) error {
	return a.cashOp(ctx, "deposit")
}

// Withdraw debits an account.
func (a *App) Withdraw(ctx context.Context) error {
	return a.cashOp(ctx, "withdraw")
}

func (a *App) cashOp(ctx context.Context, op string) error {
	id, err := GetID(a.reader, "Account id", a.out)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	amount, err := GetAmount(a.reader, "Amount", a.out)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	req := models.CashRequest{AccountID: id, Amount: amount, Description: description}

	var tx *models.Transaction
	if op == "deposit" {
		tx, err = a.bank.Deposit(ctx, req)
	} else {
		tx, err = a.bank.Withdraw(ctx, req)
	}
	if err != nil {
		a.showError(err)
		return err
	}
	renderTransaction(tx)
	return nil
}

// Transfer moves money between two accounts.
func (a *App) Transfer(ctx context.Context) error {
	from, err := GetID(a.reader, "From account id", a.out)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	to, err := GetID(a.reader, "To account id", a.out)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	amount, err := GetAmount(a.reader, "Amount", a.out)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	tx, err := a.bank.Transfer(ctx, models.TransferRequest{
		FromAccountID: from,
		ToAccountID:   to,
		Amount:        amount,
		Description:   description,
	})
	if err != nil {
		a.showError(err)
		return err
	}
	renderTransaction(tx)
	return nil
}

// Transactions browses an account's ledger page by page.
//
// Page fetches run asynchronously and are never cancelled; a fetch commits
// its render only while it is still the latest one, so flipping pages faster
// than the network answers cannot leave a stale page on screen.
func (a *App) Transactions(ctx context.Context) error {
	accountID, err := GetID(a.reader, "Account id", a.out)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	fetch := func(page int) {
		commit := a.txLatest.Begin()
		go func() {
			res, err := a.bank.ListTransactions(ctx, accountID, page, txPageSize)
			if !commit() {
				return
			}
			if err != nil {
				a.showError(err)
				return
			}
			renderTransactionPage(res)
		}()
	}

	page := 0
	fetch(page)
	for {
		answer, err := getSimpleText(a.reader, "(n)ext, (p)revious, (q)uit", a.out)
		if err != nil {
			return err
		}
		switch answer {
		case "n", "next":
			page++
			fetch(page)
		case "p", "prev", "previous":
			if page > 0 {
				page--
			}
			fetch(page)
		case "q", "quit", "":
			return nil
		default:
			printlnFn("Unknown choice:", answer)
		}
	}
}

// Dashboard prints balances and recent activity for the signed-in user.
func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.bank.GetDashboard(ctx)
	if err != nil {
		a.showError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Total balance: %s across %d account(s), %d transaction(s)",
		d.TotalBalance.StringFixed(2), d.TotalAccounts, d.TotalTransactions))
	renderAccounts(d.Accounts)
	if len(d.RecentTransactions) > 0 {
		printlnFn("Recent activity:")
		for i := range d.RecentTransactions {
			renderTransaction(&d.RecentTransactions[i])
		}
	}
	return nil
}
