package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/common"
	"github.com/dustin/go-humanize"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password, creates the account and
// signs the new member in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Register(ctx, name, email, password)
	if err != nil {
		return a.fail(err)
	}

	a.workflow.Cancel()
	fmt.Fprintf(a.out, "Welcome to ArtSpace, %s!\n", user.Name)
	return nil
}

// Login prompts for credentials and signs in. A failed attempt leaves the
// current session as it was.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return a.fail(err)
	}

	a.workflow.Cancel()
	fmt.Fprintf(a.out, "Signed in as %s (%s).\n", user.Name, roleName(user))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.workflow.Cancel()
	if err := a.authService.Logout(ctx); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Signed out.")
	return a.Gallery(ctx, "")
}

// Whoami prints the signed-in viewer and how long ago they signed in.
func (a *App) Whoami(ctx context.Context) error {
	v := a.session.CurrentViewer()
	if v == nil {
		fmt.Fprintln(a.out, "You are browsing as a guest.")
		return nil
	}
	fmt.Fprintf(a.out, "Signed in as %s <%s> (%s), since %s.\n",
		v.Name, v.Email, roleName(*v), humanize.Time(a.session.LoggedInAt()))
	return nil
}

func roleName(u models.User) string {
	if u.IsAdmin() {
		return "Administrator"
	}
	return "Member"
}

// DeleteAccount removes the viewer's account after confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please sign in first.")
		return nil
	}

	ok, err := GetConfirmation(a.reader, "Delete your account?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	a.workflow.Cancel()
	if err := a.authService.DeleteAccount(ctx); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Your account has been deleted.")
	a.catalog.Reload(ctx)
	return nil
}
