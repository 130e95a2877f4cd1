package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/artspace/internal/client/client"
	"github.com/dmitrijs2005/artspace/internal/client/models"
	"github.com/dmitrijs2005/artspace/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/artspace/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	mali  = models.User{Name: "Mali", Email: "mali@example.com", Role: models.RoleMember}
	admin = models.User{Name: "Admin", Email: "admin@artspace.com", Role: models.RoleAdmin}
)

func setupDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")
	db, err := client.InitDatabase(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, path
}

func openState(t *testing.T, db *sql.DB) *State {
	t.Helper()
	s, err := Open(context.Background(), db, logging.Nop())
	require.NoError(t, err)
	s.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestOpen_EmptyIsGuest(t *testing.T) {
	db, _ := setupDB(t)
	s := openState(t, db)

	assert.Nil(t, s.CurrentViewer())
	assert.True(t, s.LoggedInAt().IsZero())
}

func TestLogin_SetsViewerAndPersists(t *testing.T) {
	db, _ := setupDB(t)
	s := openState(t, db)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, s.Begin(), mali))

	v := s.CurrentViewer()
	require.NotNil(t, v)
	assert.Equal(t, mali, *v)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), s.LoggedInAt())

	repo := metadata.NewSQLiteRepository(db)
	raw, err := repo.Get(ctx, metadata.KeyViewer)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Mali","email":"mali@example.com","role":"member"}`, string(raw))

	stamp, err := repo.Get(ctx, metadata.KeyLoginAt)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01T10:00:00Z", string(stamp))
}

func TestCurrentViewer_ReturnsCopy(t *testing.T) {
	db, _ := setupDB(t)
	s := openState(t, db)
	require.NoError(t, s.Login(context.Background(), s.Begin(), mali))

	v := s.CurrentViewer()
	v.Role = models.RoleAdmin

	assert.Equal(t, models.RoleMember, s.CurrentViewer().Role)
}

func TestOpen_RestoresViewer(t *testing.T) {
	db, _ := setupDB(t)
	ctx := context.Background()

	s := openState(t, db)
	require.NoError(t, s.Login(ctx, s.Begin(), admin))

	restored := openState(t, db)
	v := restored.CurrentViewer()
	require.NotNil(t, v)
	assert.Equal(t, admin, *v)
	assert.False(t, restored.LoggedInAt().IsZero())
}

func TestOpen_CorruptRecordDropped(t *testing.T) {
	db, _ := setupDB(t)
	ctx := context.Background()
	require.NoError(t, metadata.NewSQLiteRepository(db).Set(ctx, metadata.KeyViewer, []byte("{not json")))

	s := openState(t, db)
	assert.Nil(t, s.CurrentViewer())

	raw, err := metadata.NewSQLiteRepository(db).Get(ctx, metadata.KeyViewer)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestLogout_ClearsViewer(t *testing.T) {
	db, _ := setupDB(t)
	s := openState(t, db)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, s.Begin(), mali))
	require.NoError(t, s.Logout(ctx))

	assert.Nil(t, s.CurrentViewer())
	assert.Nil(t, openState(t, db).CurrentViewer())
}

func TestLogout_GuestIsNoop(t *testing.T) {
	db, _ := setupDB(t)
	s := openState(t, db)

	require.NoError(t, s.Logout(context.Background()))
	assert.Nil(t, s.CurrentViewer())
}

func TestLogin_StaleTicketAfterLogout(t *testing.T) {
	db, _ := setupDB(t)
	s := openState(t, db)
	ctx := context.Background()

	ticket := s.Begin()
	require.NoError(t, s.Logout(ctx))

	err := s.Login(ctx, ticket, mali)
	require.ErrorIs(t, err, ErrStaleTicket)
	assert.Nil(t, s.CurrentViewer())
}

func TestLogin_StaleTicketAfterNewerLogin(t *testing.T) {
	db, _ := setupDB(t)
	s := openState(t, db)
	ctx := context.Background()

	slow := s.Begin()
	fast := s.Begin()
	require.NoError(t, s.Login(ctx, fast, admin))

	require.ErrorIs(t, s.Login(ctx, slow, mali), ErrStaleTicket)
	assert.Equal(t, admin, *s.CurrentViewer())
}

func TestEnd_WipesEverything(t *testing.T) {
	db, _ := setupDB(t)
	s := openState(t, db)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, s.Begin(), mali))
	require.NoError(t, s.MarkIntroShown(ctx))

	ticket := s.Begin()
	require.NoError(t, s.End(ctx))

	assert.Nil(t, s.CurrentViewer())
	shown, err := s.IntroShown(ctx)
	require.NoError(t, err)
	assert.False(t, shown)
	assert.ErrorIs(t, s.Login(ctx, ticket, mali), ErrStaleTicket)

	m, err := metadata.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestIntroFlag(t *testing.T) {
	db, _ := setupDB(t)
	s := openState(t, db)
	ctx := context.Background()

	shown, err := s.IntroShown(ctx)
	require.NoError(t, err)
	assert.False(t, shown)

	require.NoError(t, s.MarkIntroShown(ctx))
	require.NoError(t, s.MarkIntroShown(ctx))

	shown, err = s.IntroShown(ctx)
	require.NoError(t, err)
	assert.True(t, shown)

	require.NoError(t, s.Logout(ctx))
	shown, err = s.IntroShown(ctx)
	require.NoError(t, err)
	assert.True(t, shown, "logout keeps the intro flag")
}
