package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/bankterm/internal/client/api"
	"github.com/dmitrijs2005/bankterm/internal/client/models"
	"github.com/shopspring/decimal"
)

const adminUsage = `admin subcommands:
  dashboard                      platform totals
  users [page] [search]          list users
  user <id>                      user detail
  toggle <id>                    enable/disable a user
  role <id> <USER|ADMIN>         change a user's role
  rmuser <id>                    delete a user
  accounts [page] [search]       list accounts
  account <id>                   account detail
  status <id> <ACTIVE|FROZEN|CLOSED>  set account status
  adjust <id> <amount> [reason]  correct an account balance
  tx [page]                      list transactions
  txdetail <id>                  transaction detail
  analytics [week|month|year]    aggregated statistics`

// Admin dispatches the admin console subcommands. The REPL has already
// confirmed the admin role through the route guard.
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn(adminUsage)
		return nil
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "dashboard":
		return a.adminDashboard(ctx)
	case "users":
		return a.adminUsers(ctx, rest)
	case "user":
		return a.adminUserDetail(ctx, rest)
	case "toggle":
		return a.adminToggle(ctx, rest)
	case "role":
		return a.adminRole(ctx, rest)
	case "rmuser":
		return a.adminDeleteUser(ctx, rest)
	case "accounts":
		return a.adminAccounts(ctx, rest)
	case "account":
		return a.adminAccountDetail(ctx, rest)
	case "status":
		return a.adminStatus(ctx, rest)
	case "adjust":
		return a.adminAdjust(ctx, rest)
	case "tx":
		return a.adminTransactions(ctx, rest)
	case "txdetail":
		return a.adminTransactionDetail(ctx, rest)
	case "analytics":
		return a.adminAnalytics(ctx, rest)
	default:
		printlnFn("Unknown admin subcommand:", sub)
		printlnFn(adminUsage)
		return nil
	}
}

// listParams builds admin list parameters from positional args:
// optional page, then optional search text.
func listParams(args []string) api.ListParams {
	params := api.ListParams{Size: txPageSize}
	if len(args) > 0 {
		if p, err := strconv.Atoi(args[0]); err == nil {
			params.Page = p
			args = args[1:]
		}
	}
	if len(args) > 0 {
		params.Search = args[0]
	}
	return params
}

func argID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid id: %q", args[0])
	}
	return id, nil
}

func (a *App) adminDashboard(ctx context.Context) error {
	d, err := a.bank.AdminDashboard(ctx)
	if err != nil {
		a.showError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Users: %d  Accounts: %d  Transactions: %d  Total balance: %s",
		d.TotalUsers, d.TotalAccounts, d.TotalTransactions, d.TotalBalance.StringFixed(2)))
	return nil
}

func (a *App) adminUsers(ctx context.Context, args []string) error {
	page, err := a.bank.AdminListUsers(ctx, listParams(args))
	if err != nil {
		a.showError(err)
		return err
	}
	for i := range page.Content {
		renderUser(&page.Content[i])
	}
	printlnFn(fmt.Sprintf("Page %d of %d (%d total)", page.Page+1, page.TotalPages, page.TotalElements))
	return nil
}

func (a *App) adminUserDetail(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	user, err := a.bank.AdminGetUser(ctx, id)
	if err != nil {
		a.showError(err)
		return err
	}
	renderUser(user)
	return nil
}

func (a *App) adminToggle(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	user, err := a.bank.AdminToggleUserStatus(ctx, id)
	if err != nil {
		a.showError(err)
		return err
	}
	renderUser(user)
	return nil
}

func (a *App) adminRole(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: admin role <id> <USER|ADMIN>")
		return fmt.Errorf("missing role")
	}
	role := models.Role(args[1])
	if role != models.RoleUser && role != models.RoleAdmin {
		printlnFn("Role must be USER or ADMIN")
		return fmt.Errorf("invalid role %q", args[1])
	}
	user, err := a.bank.AdminUpdateUserRole(ctx, id, role)
	if err != nil {
		a.showError(err)
		return err
	}
	renderUser(user)
	return nil
}

func (a *App) adminDeleteUser(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete user %d? (yes/no)", id), a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Cancelled.")
		return nil
	}
	if err := a.bank.AdminDeleteUser(ctx, id); err != nil {
		a.showError(err)
		return err
	}
	printlnFn("User deleted.")
	return nil
}

func (a *App) adminAccounts(ctx context.Context, args []string) error {
	page, err := a.bank.AdminListAccounts(ctx, listParams(args))
	if err != nil {
		a.showError(err)
		return err
	}
	renderAccounts(page.Content)
	printlnFn(fmt.Sprintf("Page %d of %d (%d total)", page.Page+1, page.TotalPages, page.TotalElements))
	return nil
}

func (a *App) adminAccountDetail(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	account, err := a.bank.AdminGetAccount(ctx, id)
	if err != nil {
		a.showError(err)
		return err
	}
	renderAccounts([]models.Account{*account})
	return nil
}

func (a *App) adminStatus(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: admin status <id> <ACTIVE|FROZEN|CLOSED>")
		return fmt.Errorf("missing status")
	}
	account, err := a.bank.AdminUpdateAccountStatus(ctx, id, models.AccountStatus(args[1]))
	if err != nil {
		a.showError(err)
		return err
	}
	renderAccounts([]models.Account{*account})
	return nil
}

func (a *App) adminAdjust(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(args) < 2 {
		printlnFn("Usage: admin adjust <id> <amount> [reason]")
		return fmt.Errorf("missing amount")
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		printlnFn("Not a valid amount:", args[1])
		return err
	}
	reason := ""
	if len(args) > 2 {
		reason = args[2]
	}
	account, err := a.bank.AdminAdjustBalance(ctx, id, models.BalanceAdjustment{Amount: amount, Reason: reason})
	if err != nil {
		a.showError(err)
		return err
	}
	renderAccounts([]models.Account{*account})
	return nil
}

func (a *App) adminTransactions(ctx context.Context, args []string) error {
	page, err := a.bank.AdminListTransactions(ctx, listParams(args))
	if err != nil {
		a.showError(err)
		return err
	}
	renderTransactionPage(page)
	return nil
}

func (a *App) adminTransactionDetail(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	tx, err := a.bank.AdminGetTransaction(ctx, id)
	if err != nil {
		a.showError(err)
		return err
	}
	renderTransaction(tx)
	return nil
}

func (a *App) adminAnalytics(ctx context.Context, args []string) error {
	period := "month"
	if len(args) > 0 {
		period = args[0]
	}
	analytics, err := a.bank.AdminAnalytics(ctx, period)
	if err != nil {
		a.showError(err)
		return err
	}
	printlnFn("Daily stats for period:", analytics.Period)
	for _, d := range analytics.DailyStats {
		printlnFn(fmt.Sprintf("%s  deposits %s  withdrawals %s  transfers %s  (%d tx)",
			d.Date, d.Deposits.StringFixed(2), d.Withdrawals.StringFixed(2), d.Transfers.StringFixed(2), d.Count))
	}
	for _, s := range analytics.AccountTypeStats {
		printlnFn(fmt.Sprintf("%s  %d account(s)  total %s", s.AccountType, s.Count, s.TotalBalance.StringFixed(2)))
	}
	return nil
}
