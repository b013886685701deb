package cli

import "github.com/dmitrijs2005/bankterm/internal/client/session"

// Decision is the route guard's verdict for a protected command.
type Decision int

const (
	// GuardAllow lets the command run.
	GuardAllow Decision = iota
	// GuardLoading means session rehydration has not settled; show a neutral
	// waiting message, never a login prompt.
	GuardLoading
	// GuardDenyAnonymous means no live session; send the user to login.
	GuardDenyAnonymous
	// GuardDenyForbidden means the session is live but lacks the admin role.
	GuardDenyForbidden
)

// Guard gates access to protected commands. It is a pure function of the
// session snapshot and keeps no state of its own.
func Guard(snap session.Snapshot, admin bool) Decision {
	if snap.Loading {
		return GuardLoading
	}
	if !snap.Authenticated() {
		return GuardDenyAnonymous
	}
	if admin && !snap.Admin() {
		return GuardDenyForbidden
	}
	return GuardAllow
}
