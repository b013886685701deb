// Package cli provides the interactive bankterm command-line client.
//
// It wires configuration, the local session database, the API gateway, and
// an interactive REPL over the session store. Typical flow: rehydrate the
// persisted session, then execute user commands; protected commands pass
// through the route guard, which distinguishes "still loading", "not logged
// in", and "not an admin".
//
// Key features:
//   - Login / Register / Logout with a persisted session
//   - Account management: list, open, rename, close
//   - Money movement: deposit, withdraw, transfer
//   - Paginated transaction browsing with stale-response discarding
//   - Profile editing (optimistic, rolled back on rejection) and password change
//   - Admin console: users, accounts, transactions, analytics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Guard, and runREPL for details.
package cli
