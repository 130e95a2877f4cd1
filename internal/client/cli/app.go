package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dmitrijs2005/artspace/internal/client/catalog"
	"github.com/dmitrijs2005/artspace/internal/client/client"
	"github.com/dmitrijs2005/artspace/internal/client/config"
	"github.com/dmitrijs2005/artspace/internal/client/session"
	"github.com/dmitrijs2005/artspace/internal/client/services"
	"github.com/dmitrijs2005/artspace/internal/client/workflow"
	"github.com/dmitrijs2005/artspace/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db       *sql.DB
	api      client.Client
	session  *session.State
	catalog  *catalog.Store
	workflow *workflow.Workflow

	authService   services.AuthService
	studioService services.StudioService
	adminService  services.AdminService

	reader *bufio.Reader
	out    io.Writer

	shutdown sync.Once
}

// NewApp opens the session database and builds the services. Input is read
// from in and all user-facing output goes to out.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("init session database: %w", err)
	}

	api, err := client.NewHTTPClient(c.ServerURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "api")),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sess, err := session.Open(ctx, db, log.With("component", "session"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := catalog.NewStore(api, log.With("component", "catalog"))
	wf := workflow.New(sess, store, api, log.With("component", "workflow"))

	return &App{
		config:        c,
		log:           log,
		db:            db,
		api:           api,
		session:       sess,
		catalog:       store,
		workflow:      wf,
		authService:   services.NewAuthService(api, sess, log),
		studioService: services.NewStudioService(api, sess, store, log),
		adminService:  services.NewAdminService(api, sess, store, log),
		reader:        bufio.NewReader(in),
		out:           out,
	}, nil
}

// Run shows the intro, loads the catalog and serves commands until the user
// exits, in is exhausted or ctx is cancelled. The session ends with Run.
func (a *App) Run(ctx context.Context) error {
	defer a.Shutdown(context.WithoutCancel(ctx))

	if err := a.intro(ctx); err != nil {
		a.log.Warn(ctx, "intro flag unavailable", "error", err)
	}

	a.catalog.Load(ctx)
	_ = a.Gallery(ctx, "")

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Shutdown ends the session and releases the API client and the session
// database. Only the first call does anything, so it may race with Run from
// a signal handler. ctx must not be cancelled or the session record stays
// behind.
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	a.shutdown.Do(func() {
		if err = a.session.End(ctx); err != nil {
			a.log.Warn(ctx, "could not end session", "error", err)
		}
		if cerr := a.Close(ctx); err == nil {
			err = cerr
		}
	})
	return err
}

// Close releases the API client and the session database without ending
// the session.
func (a *App) Close(ctx context.Context) error {
	err := a.authService.Close(ctx)
	if cerr := a.db.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentViewer() != nil
}

func (a *App) isAdmin() bool {
	v := a.session.CurrentViewer()
	return v != nil && v.IsAdmin()
}

func (a *App) getStatus() string {
	v := a.session.CurrentViewer()
	if v == nil {
		return "guest"
	}
	if v.IsAdmin() {
		return v.Name + " [admin]"
	}
	return v.Name
}

func (a *App) intro(ctx context.Context) error {
	shown, err := a.session.IntroShown(ctx)
	if err != nil {
		return err
	}
	if shown {
		return nil
	}

	fmt.Fprintln(a.out, introBanner)
	return a.session.MarkIntroShown(ctx)
}

const introBanner = `
   _         _   ___
  /_\  _ _ _| |_/ __|_ __  __ _ __ ___
 / _ \| '_|  _\__ \ '_ \/ _' / _/ -_)
/_/ \_\_|  \__|___/ .__/\__,_\__\___|
                  |_|
Discover, collect and sell original art.
Type 'help' for commands.`

// imageURL resolves an artwork image path against the server URL.
func (a *App) imageURL(img string) string {
	if img == "" || strings.HasPrefix(img, "http://") || strings.HasPrefix(img, "https://") {
		return img
	}
	return strings.TrimRight(a.config.ServerURL, "/") + "/" + strings.TrimLeft(img, "/")
}

// fail reports err to the user and returns it.
func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, "Error:", client.Message(err))
	return err
}
