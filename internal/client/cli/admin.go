package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/artspace/internal/client/services"
)

// Users prints all accounts. Admin only.
func (a *App) Users(ctx context.Context) error {
	users, err := a.adminService.Users(ctx)
	if err != nil {
		return a.fail(err)
	}
	renderUsers(a.out, users)
	return nil
}

// DeleteUser removes a member account. Admin only.
func (a *App) DeleteUser(ctx context.Context, email string) error {
	if !a.isAdmin() {
		return a.fail(services.ErrNotPermitted)
	}

	ok, err := GetConfirmation(a.reader, fmt.Sprintf("Delete user %s?", email), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.adminService.DeleteUser(ctx, email); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "User deleted.")
	return nil
}

// Reset wipes the whole marketplace. Admin only; the session ends.
func (a *App) Reset(ctx context.Context) error {
	if !a.isAdmin() {
		return a.fail(services.ErrNotPermitted)
	}

	ok, err := GetConfirmation(a.reader, "Reset the whole system? All artworks and users will be removed.", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	a.workflow.Cancel()
	if err := a.adminService.Reset(ctx); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "System reset. You have been signed out.")
	return nil
}
