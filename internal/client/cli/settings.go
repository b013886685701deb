package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bankterm/internal/client/models"
)

// Profile shows the current profile and lets the user edit it. Empty input
// keeps the existing value. The session store applies the patch
// optimistically and rolls it back if the server rejects the update.
func (a *App) Profile(ctx context.Context) error {
	snap := a.session.Snapshot()
	if snap.User == nil {
		return errors.New("no identity")
	}
	renderUser(snap.User)

	patch := models.ProfilePatch{
		FirstName:   snap.User.FirstName,
		LastName:    snap.User.LastName,
		Email:       snap.User.Email,
		PhoneNumber: snap.User.PhoneNumber,
	}

	if v, err := getSimpleText(a.reader, "First name (empty keeps current)", a.out); err != nil {
		return err
	} else if v != "" {
		patch.FirstName = v
	}
	if v, err := getSimpleText(a.reader, "Last name (empty keeps current)", a.out); err != nil {
		return err
	} else if v != "" {
		patch.LastName = v
	}
	if v, err := getSimpleText(a.reader, "Email (empty keeps current)", a.out); err != nil {
		return err
	} else if v != "" {
		patch.Email = v
	}
	if v, err := getSimpleText(a.reader, "Phone number (empty keeps current)", a.out); err != nil {
		return err
	} else if v != "" {
		patch.PhoneNumber = v
	}

	user, err := a.session.UpdateProfile(ctx, patch)
	if err != nil {
		a.showError(err)
		return err
	}
	printlnFn("Profile updated.")
	renderUser(user)
	return nil
}

// Passwd changes the password after confirming the new one twice.
func (a *App) Passwd(ctx context.Context) error {
	current, err := getPassword(a.out)
	if err != nil {
		return err
	}
	printlnFn("New password:")
	newPw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	printlnFn("Repeat new password:")
	confirm, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if string(newPw) != string(confirm) {
		printlnFn("New passwords do not match")
		return errors.New("password confirmation mismatch")
	}

	if err := a.session.ChangePassword(ctx, string(current), string(newPw)); err != nil {
		a.showError(err)
		return err
	}
	printlnFn("Password changed.")
	return nil
}
