package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/artspace/internal/client/client"
	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/common"
	"github.com/dmitrijs2005/artspace/internal/logging"
)

// AuthService signs viewers in and out and manages their account.
//
// A failed Register or Login leaves the session as it was. Passwords are
// wiped once sent.
type AuthService interface {
	Register(ctx context.Context, name, email string, password []byte) (models.User, error)
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session Session
	log     logging.Logger
}

func NewAuthService(c client.Client, s Session, log logging.Logger) AuthService {
	return &authService{client: c, session: s, log: log}
}

// Register creates the account and signs the new user in.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) (models.User, error) {
	defer common.WipeByteArray(password)

	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" || len(password) == 0 {
		return models.User{}, ErrMissingField
	}

	ticket := a.session.Begin()
	user, err := a.client.Register(ctx, name, email, password)
	if err != nil {
		return models.User{}, err
	}

	if err := a.session.Login(ctx, ticket, user); err != nil {
		return models.User{}, fmt.Errorf("sign in after register: %w", err)
	}
	return user, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	defer common.WipeByteArray(password)

	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return models.User{}, ErrMissingField
	}

	ticket := a.session.Begin()
	user, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.log.Debug(ctx, "login failed", "email", email, "error", err)
		return models.User{}, err
	}

	if err := a.session.Login(ctx, ticket, user); err != nil {
		return models.User{}, fmt.Errorf("sign in: %w", err)
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// DeleteAccount removes the viewer's account and ends the session.
func (a *authService) DeleteAccount(ctx context.Context) error {
	viewer := a.session.CurrentViewer()
	if viewer == nil {
		return ErrNotSignedIn
	}

	if err := a.client.DeleteAccount(ctx, viewer.Email); err != nil {
		return err
	}
	a.log.Info(ctx, "account deleted", "viewer", viewer.Name)

	return a.session.End(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
