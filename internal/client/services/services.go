// Package services contains the application services of the ArtSpace
// client: sign-in and account management, uploads and the admin console.
// Purchases, edits and deletions go through the workflow package.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/artspace/internal/client/catalog"
	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/client/session"
)

var (
	ErrNotSignedIn  = errors.New("please sign in first")
	ErrNotPermitted = errors.New("not permitted")
	ErrMissingField = errors.New("required field is empty")
	ErrInvalidPrice = errors.New("price must not be negative")
	ErrUserNotFound = errors.New("user not found")
)

// Session is the part of session.State the services use.
type Session interface {
	CurrentViewer() *models.User
	Begin() session.Ticket
	Login(ctx context.Context, t session.Ticket, user models.User) error
	Logout(ctx context.Context) error
	End(ctx context.Context) error
}

// Reloader refreshes the catalog after a mutation.
type Reloader interface {
	Reload(ctx context.Context) catalog.Catalog
}
