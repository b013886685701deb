package session

import "github.com/dmitrijs2005/bankterm/internal/client/models"

// State is the lifecycle phase of the session.
type State string

const (
	// StateInitializing means startup rehydration has not settled yet.
	// Consumers must render a neutral waiting view, never a redirect.
	StateInitializing State = "initializing"

	// StateAnonymous means no credential is held.
	StateAnonymous State = "anonymous"

	// StateAuthenticated means both credential and identity are held.
	StateAuthenticated State = "authenticated"
)

// Snapshot is the session tuple handed to consumers. User is a copy;
// mutating it does not affect the store.
type Snapshot struct {
	State   State
	Token   string
	User    *models.User
	Loading bool
}

// Authenticated reports whether both credential and identity are present.
func (s Snapshot) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Admin reports whether the identity is present and carries the admin role.
func (s Snapshot) Admin() bool {
	return s.User != nil && s.User.Role == models.RoleAdmin
}
