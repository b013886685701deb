package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
)

// Accounts lists the user's accounts.
func (a *App) Accounts(ctx context.Context) error {
	accounts, err := a.bank.ListAccounts(ctx)
	if err != nil {
		a.showError(err)
		return err
	}
	renderAccounts(accounts)
	return nil
}

// OpenAccount prompts for the new account's fields and creates it.
func (a *App) OpenAccount(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Account name", a.out)
	if err != nil {
		return err
	}
	accType, err := getSimpleText(a.reader, "Account type (SAVINGS/CHECKING/BUSINESS)", a.out)
	if err != nil {
		return err
	}
	currency, err := getSimpleText(a.reader, "Currency (e.g. PHP)", a.out)
	if err != nil {
		return err
	}

	account, err := a.bank.CreateAccount(ctx, models.NewAccount{
		AccountName: name,
		AccountType: models.AccountType(accType),
		Currency:    currency,
	})
	if err != nil {
		a.showError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Opened account %s (%s)", account.AccountNumber, account.AccountName))
	return nil
}

// EditAccount renames an account.
func (a *App) EditAccount(ctx context.Context) error {
	id, err := GetID(a.reader, "Account id", a.out)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	name, err := getSimpleText(a.reader, "New account name", a.out)
	if err != nil {
		return err
	}

	account, err := a.bank.UpdateAccount(ctx, id, models.AccountPatch{AccountName: name})
	if err != nil {
		a.showError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Renamed account %s to %q", account.AccountNumber, account.AccountName))
	return nil
}

// CloseAccount closes an account after confirmation.
func (a *App) CloseAccount(ctx context.Context) error {
	id, err := GetID(a.reader, "Account id", a.out)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	confirm, err := getSimpleText(a.reader, "Close this account? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.bank.CloseAccount(ctx, id); err != nil {
		a.showError(err)
		return err
	}
	printlnFn("Account closed.")
	return nil
}
