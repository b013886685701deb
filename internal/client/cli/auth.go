package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bankterm/internal/client/api"
	"github.com/dmitrijs2005/bankterm/internal/client/models"
	"github.com/dmitrijs2005/bankterm/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// showError renders a failure as a transient notification. Validation
// rejections carry the server's message verbatim; everything else is
// translated to a short phrase.
func (a *App) showError(err error) {
	switch {
	case errors.Is(err, session.ErrNoCredential):
		printlnFn("The server answered without a credential; please try again")
	case errors.Is(err, api.ErrUnauthorized):
		printlnFn("Not authorized")
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Service unavailable, try again later")
	case api.IsValidation(err):
		printlnFn(err.Error())
	default:
		printlnFn("Error:", err.Error())
	}
}

// Login prompts for credentials and establishes a session. Errors are shown
// to the user and returned unchanged.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		a.showError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.FirstName))
	return nil
}

// Register prompts for the registration fields and establishes a session,
// mirroring the Login contract.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Phone number", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.session.Register(ctx, models.Registration{
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phone,
		Password:    string(password),
	})
	if err != nil {
		a.showError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", user.FirstName))
	return nil
}

// Logout clears the session. Callable from any state; logging out while
// anonymous is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.showError(err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI re-fetches the profile and prints it. When the re-fetch fails for a
// reason other than authorization, the cached identity is shown instead.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.session.RefreshIdentity(ctx)
	if err != nil {
		if snap := a.session.Snapshot(); snap.User != nil {
			printlnFn("(offline copy)")
			renderUser(snap.User)
			return nil
		}
		a.showError(err)
		return err
	}
	renderUser(user)
	return nil
}
