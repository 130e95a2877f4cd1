// Package session keeps the signed-in viewer for the lifetime of the client
// process and mirrors it into the local session database.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/artspace/internal/dbx"
	"github.com/dmitrijs2005/artspace/internal/logging"
)

// ErrStaleTicket is returned by Login when another login or a logout
// completed after the ticket was taken.
var ErrStaleTicket = errors.New("session changed during sign-in")

// Ticket identifies the session generation an auth round trip started in.
type Ticket uint64

// State is the current viewer. A nil viewer means guest.
type State struct {
	mu      sync.RWMutex
	db      *sql.DB
	repo    metadata.Repository
	log     logging.Logger
	viewer  *models.User
	loginAt time.Time
	gen     uint64

	now func() time.Time
}

// Open restores the session stored in db, if any. A corrupt record is
// dropped and the session starts as guest.
func Open(ctx context.Context, db *sql.DB, log logging.Logger) (*State, error) {
	s := &State{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		log:  log,
		now:  time.Now,
	}

	raw, err := s.repo.Get(ctx, metadata.KeyViewer)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if raw == nil {
		return s, nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil || u.Name == "" {
		log.Warn(ctx, "discarding unreadable session record", "error", err)
		if err := s.clearViewer(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
	s.viewer = &u

	if stamp, err := s.repo.Get(ctx, metadata.KeyLoginAt); err == nil && stamp != nil {
		if t, err := time.Parse(time.RFC3339, string(stamp)); err == nil {
			s.loginAt = t
		}
	}

	log.Debug(ctx, "session restored", "viewer", u.Name)
	return s, nil
}

// CurrentViewer returns a copy of the viewer, or nil for a guest.
func (s *State) CurrentViewer() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.viewer == nil {
		return nil
	}
	u := *s.viewer
	return &u
}

// LoggedInAt is the time of the last successful login, zero for a guest.
func (s *State) LoggedInAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loginAt
}

// Begin captures the generation before an auth request is sent.
func (s *State) Begin() Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Ticket(s.gen)
}

// Login makes user the viewer, if t is still current.
func (s *State) Login(ctx context.Context, t Ticket, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if uint64(t) != s.gen {
		return ErrStaleTicket
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode viewer: %w", err)
	}
	at := s.now().UTC().Truncate(time.Second)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyViewer, raw); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyLoginAt, []byte(at.Format(time.RFC3339)))
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.viewer = &user
	s.loginAt = at
	s.gen++

	s.log.Info(ctx, "signed in", "viewer", user.Name, "role", user.Role)
	return nil
}

// Logout drops the viewer. It is a no-op for a guest apart from
// invalidating outstanding tickets.
func (s *State) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.viewer == nil {
		return nil
	}

	name := s.viewer.Name
	s.viewer = nil
	s.loginAt = time.Time{}

	if err := s.clearViewer(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "signed out", "viewer", name)
	return nil
}

// End wipes everything the session holds, including the intro flag.
func (s *State) End(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.viewer = nil
	s.loginAt = time.Time{}

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// IntroShown reports whether the intro banner was already shown.
func (s *State) IntroShown(ctx context.Context) (bool, error) {
	v, err := s.repo.Get(ctx, metadata.KeyIntroShown)
	if err != nil {
		return false, err
	}
	return v != nil, nil
}

func (s *State) MarkIntroShown(ctx context.Context) error {
	return s.repo.Set(ctx, metadata.KeyIntroShown, []byte("1"))
}

func (s *State) clearViewer(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, metadata.KeyViewer); err != nil {
			return err
		}
		return repo.Delete(ctx, metadata.KeyLoginAt)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
