package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Guard(admin bool) Decision
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Accounts(ctx context.Context) error
	OpenAccount(ctx context.Context) error
	EditAccount(ctx context.Context) error
	CloseAccount(ctx context.Context) error
	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Transfer(ctx context.Context) error
	Transactions(ctx context.Context) error
	Profile(ctx context.Context) error
	Passwd(ctx context.Context) error
	Admin(ctx context.Context, args []string) error
}

// allowed consults the route guard and reports the verdict to the user when
// the command may not run. While the session is still rehydrating it shows a
// waiting message instead of a login prompt.
func allowed(a execIface, admin bool) bool {
	switch a.Guard(admin) {
	case GuardLoading:
		printlnFn("Session is still loading, try again in a moment")
	case GuardDenyAnonymous:
		printlnFn("Please log in first")
	case GuardDenyForbidden:
		printlnFn("Admin access required")
	default:
		return true
	}
	return false
}

// runREPL starts a simple read–eval–print loop for the bankterm client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Protected commands pass through
// the route guard first. Unknown commands are reported back to the user.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - whoami         — show and re-fetch the profile
//	  - dashboard      — balances and recent activity
//	  - accounts       — list accounts
//	  - openaccount    — open a new account
//	  - editaccount    — rename an account
//	  - closeaccount   — close an account
//	  - deposit | withdraw | transfer
//	  - tx             — browse transactions page by page
//	  - profile        — edit profile fields
//	  - passwd         — change password
//	  - admin <sub>    — admin console (role-gated)
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bank> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.Guard(false) == GuardAllow {
				printlnFn("Available commands: whoami, dashboard, accounts, openaccount, editaccount, closeaccount, deposit, withdraw, transfer, tx, profile, passwd, admin, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			if allowed(a, false) {
				_ = a.WhoAmI(ctx)
			}

		case "dashboard":
			if allowed(a, false) {
				_ = a.Dashboard(ctx)
			}

		case "accounts":
			if allowed(a, false) {
				_ = a.Accounts(ctx)
			}

		case "openaccount":
			if allowed(a, false) {
				_ = a.OpenAccount(ctx)
			}

		case "editaccount":
			if allowed(a, false) {
				_ = a.EditAccount(ctx)
			}

		case "closeaccount":
			if allowed(a, false) {
				_ = a.CloseAccount(ctx)
			}

		case "deposit":
			if allowed(a, false) {
				_ = a.Deposit(ctx)
			}

		case "withdraw":
			if allowed(a, false) {
				_ = a.Withdraw(ctx)
			}

		case "transfer":
			if allowed(a, false) {
				_ = a.Transfer(ctx)
			}

		case "tx":
			if allowed(a, false) {
				_ = a.Transactions(ctx)
			}

		case "profile":
			if allowed(a, false) {
				_ = a.Profile(ctx)
			}

		case "passwd":
			if allowed(a, false) {
				_ = a.Passwd(ctx)
			}

		case "admin":
			if allowed(a, true) {
				_ = a.Admin(ctx, args)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
