package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
	"github.com/dmitrijs2005/bankterm/internal/client/session"
)

func authedSession(u *models.User) *fakeSession {
	return &fakeSession{
		snap: session.Snapshot{State: session.StateAuthenticated, Token: "T1", User: u},
	}
}

func TestApp_Profile_EmptyInputKeepsCurrentValues(t *testing.T) {
	current := &models.User{
		ID:          1,
		FirstName:   "Ann",
		LastName:    "Smith",
		Email:       "ann@bank.test",
		PhoneNumber: "+111",
	}
	fs := authedSession(current)
	fs.updateUser = current
	app := &App{session: fs}
	stubInputs(t, []string{"", "Jones", "", ""}, nil)

	require.NoError(t, app.Profile(context.Background()))

	assert.Equal(t, models.ProfilePatch{
		FirstName:   "Ann",
		LastName:    "Jones",
		Email:       "ann@bank.test",
		PhoneNumber: "+111",
	}, fs.updatePatch)
}

func TestApp_Profile_ServerRejectionSurfaces(t *testing.T) {
	fs := authedSession(&models.User{ID: 1, FirstName: "Ann"})
	fs.updateErr = errors.New("email already in use")
	app := &App{session: fs}
	stubInputs(t, []string{"", "", "taken@bank.test", ""}, nil)

	err := app.Profile(context.Background())

	assert.ErrorIs(t, err, fs.updateErr)
}

func TestApp_Passwd(t *testing.T) {
	fs := authedSession(&models.User{ID: 1})
	app := &App{session: fs}
	stubInputs(t, nil, []string{"old-secret", "new-secret", "new-secret"})

	require.NoError(t, app.Passwd(context.Background()))
	assert.Equal(t, "old-secret", fs.changeCurrent)
	assert.Equal(t, "new-secret", fs.changeNew)
}

func TestApp_Passwd_ConfirmationMismatch(t *testing.T) {
	fs := authedSession(&models.User{ID: 1})
	app := &App{session: fs}
	stubInputs(t, nil, []string{"old-secret", "new-secret", "typo"})

	err := app.Passwd(context.Background())

	require.Error(t, err)
	assert.Empty(t, fs.changeNew, "mismatch must not reach the session store")
}
