package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/artspace/internal/client/client"
	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/logging"
)

// AdminService is the admin console. Every call requires an admin viewer.
type AdminService interface {
	Users(ctx context.Context) ([]models.User, error)
	// DeleteUser removes a member account. Admin accounts cannot be removed.
	DeleteUser(ctx context.Context, email string) error
	// Reset wipes the marketplace, ends the session and reloads the catalog.
	Reset(ctx context.Context) error
}

type adminService struct {
	client  client.Client
	session Session
	catalog Reloader
	log     logging.Logger
}

func NewAdminService(c client.Client, s Session, r Reloader, log logging.Logger) AdminService {
	return &adminService{client: c, session: s, catalog: r, log: log}
}

func (a *adminService) requireAdmin() (*models.User, error) {
	viewer := a.session.CurrentViewer()
	if viewer == nil {
		return nil, ErrNotSignedIn
	}
	if !viewer.IsAdmin() {
		return nil, ErrNotPermitted
	}
	return viewer, nil
}

func (a *adminService) Users(ctx context.Context) ([]models.User, error) {
	if _, err := a.requireAdmin(); err != nil {
		return nil, err
	}
	return a.client.Users(ctx)
}

func (a *adminService) DeleteUser(ctx context.Context, email string) error {
	viewer, err := a.requireAdmin()
	if err != nil {
		return err
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingField
	}

	users, err := a.client.Users(ctx)
	if err != nil {
		return err
	}
	var target *models.User
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return ErrUserNotFound
	}
	if target.IsAdmin() {
		return ErrNotPermitted
	}

	if err := a.client.DeleteUser(ctx, target.Email); err != nil {
		return err
	}
	a.log.Info(ctx, "user deleted", "email", target.Email, "by", viewer.Name)
	return nil
}

func (a *adminService) Reset(ctx context.Context) error {
	viewer, err := a.requireAdmin()
	if err != nil {
		return err
	}

	if err := a.client.Reset(ctx); err != nil {
		return err
	}
	a.log.Warn(ctx, "marketplace reset", "by", viewer.Name)

	if err := a.session.End(ctx); err != nil {
		return err
	}
	a.catalog.Reload(ctx)
	return nil
}
