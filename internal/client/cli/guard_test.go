package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
	"github.com/dmitrijs2005/bankterm/internal/client/session"
)

func TestGuard(t *testing.T) {
	admin := &models.User{ID: 1, Role: models.RoleAdmin}
	user := &models.User{ID: 2, Role: models.RoleUser}

	tests := []struct {
		name      string
		snap      session.Snapshot
		wantAdmin bool
		want      Decision
	}{
		{"loading shows waiting view, never a redirect",
			session.Snapshot{State: session.StateInitializing, Loading: true}, false, GuardLoading},
		{"loading gates admin commands too",
			session.Snapshot{State: session.StateInitializing, Loading: true}, true, GuardLoading},
		{"anonymous denied",
			session.Snapshot{State: session.StateAnonymous}, false, GuardDenyAnonymous},
		{"token without identity is not authenticated",
			session.Snapshot{State: session.StateAuthenticated, Token: "T1"}, false, GuardDenyAnonymous},
		{"identity without token is not authenticated",
			session.Snapshot{State: session.StateAuthenticated, User: user}, false, GuardDenyAnonymous},
		{"authenticated user allowed",
			session.Snapshot{State: session.StateAuthenticated, Token: "T1", User: user}, false, GuardAllow},
		{"regular user denied admin command",
			session.Snapshot{State: session.StateAuthenticated, Token: "T1", User: user}, true, GuardDenyForbidden},
		{"admin allowed admin command",
			session.Snapshot{State: session.StateAuthenticated, Token: "T1", User: admin}, true, GuardAllow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guard(tt.snap, tt.wantAdmin))
		})
	}
}
