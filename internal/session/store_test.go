package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"ticketapp/internal/localstore"
	"ticketapp/internal/logging"
	"ticketapp/internal/models"
	"ticketapp/internal/notify"
)

func setupStorage(t *testing.T) localstore.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE storage (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return localstore.NewSQLiteStore(db)
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestStore(t *testing.T) (*Store, *notify.Center, localstore.Store) {
	t.Helper()
	storage := setupStorage(t)
	notifier := notify.NewCenter()
	return NewStore(storage, notifier, discardLogger()), notifier, storage
}

func TestSignupThenLoginSucceeds(t *testing.T) {
	ctx := context.Background()
	s, notifier, _ := newTestStore(t)

	require.NoError(t, s.Signup(ctx, "alice@example.org", "s3cret"))

	target, err := s.Login(ctx, "alice@example.org", "s3cret", false, "")
	require.NoError(t, err)
	assert.Equal(t, RouteDashboard, target)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "alice@example.org", s.CurrentUser())

	got := notifier.Flush()
	require.Len(t, got, 2)
	assert.Equal(t, notify.KindSuccess, got[0].Kind)
	assert.Equal(t, notify.KindSuccess, got[1].Kind)
}

func TestSignup_DuplicateEmailFailsAndKeepsOneEntry(t *testing.T) {
	ctx := context.Background()
	s, notifier, storage := newTestStore(t)

	require.NoError(t, s.Signup(ctx, "bob@example.org", "one"))
	err := s.Signup(ctx, "bob@example.org", "two")
	require.ErrorIs(t, err, ErrAlreadyExists)

	raw, err := storage.GetItem(ctx, "ticketapp_users")
	require.NoError(t, err)
	var accounts []models.Account
	require.NoError(t, json.Unmarshal(raw, &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, "one", accounts[0].Password)

	got := notifier.Flush()
	require.Len(t, got, 2)
	assert.Equal(t, notify.KindError, got[1].Kind)
}

func TestSignup_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	require.NoError(t, s.Signup(ctx, "carol@example.org", "pw"))
	require.NoError(t, s.Signup(ctx, "Carol@example.org", "pw"))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	s, notifier, _ := newTestStore(t)

	require.NoError(t, s.Signup(ctx, "dave@example.org", "right"))
	notifier.Flush()

	_, err := s.Login(ctx, "dave@example.org", "wrong", false, "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, s.IsAuthenticated())

	_, err = s.Login(ctx, "nobody@example.org", "right", false, "")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	got := notifier.Flush()
	require.Len(t, got, 2)
	assert.Equal(t, notify.KindError, got[0].Kind)
}

func TestLogin_RedirectTargetIsUsedWhenPresent(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestStore(t)

	require.NoError(t, s.Signup(ctx, "erin@example.org", "pw"))

	target, err := s.Login(ctx, "erin@example.org", "pw", false, "/tickets")
	require.NoError(t, err)
	assert.Equal(t, "/tickets", target)
}

func TestLogin_PersistedSessionShape(t *testing.T) {
	ctx := context.Background()
	s, _, storage := newTestStore(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Signup(ctx, "frank@example.org", "pw"))

	t.Run("transient session records createdAt", func(t *testing.T) {
		_, err := s.Login(ctx, "frank@example.org", "pw", false, "")
		require.NoError(t, err)

		var sess models.Session
		raw, err := storage.GetItem(ctx, "ticketapp_session")
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &sess))

		assert.Equal(t, models.SessionToken, sess.Token)
		assert.Equal(t, "frank@example.org", sess.User)
		assert.Equal(t, now.UnixMilli(), sess.CreatedAt)
		assert.False(t, sess.StayLoggedIn)
	})

	t.Run("stay-logged-in session has no createdAt", func(t *testing.T) {
		_, err := s.Login(ctx, "frank@example.org", "pw", true, "")
		require.NoError(t, err)

		var sess models.Session
		raw, err := storage.GetItem(ctx, "ticketapp_session")
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &sess))

		assert.True(t, sess.StayLoggedIn)
		assert.Zero(t, sess.CreatedAt)
	})
}

func TestLogout_ClearsSessionAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, notifier, storage := newTestStore(t)

	require.NoError(t, s.Signup(ctx, "gina@example.org", "pw"))
	_, err := s.Login(ctx, "gina@example.org", "pw", false, "")
	require.NoError(t, err)
	notifier.Flush()

	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.IsAuthenticated())

	raw, err := storage.GetItem(ctx, "ticketapp_session")
	require.NoError(t, err)
	assert.Nil(t, raw)

	// no active session: still just the notification
	require.NoError(t, s.Logout(ctx))
	got := notifier.Flush()
	require.Len(t, got, 2)
	assert.Equal(t, notify.KindInfo, got[0].Kind)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("absent session leaves user unset", func(t *testing.T) {
		s, _, _ := newTestStore(t)
		require.NoError(t, s.Restore(ctx))
		assert.False(t, s.IsAuthenticated())
	})

	t.Run("valid session sets current user", func(t *testing.T) {
		s, _, storage := newTestStore(t)
		sess := models.Session{Token: models.SessionToken, User: "henry@example.org", CreatedAt: time.Now().UnixMilli()}
		raw, _ := json.Marshal(sess)
		require.NoError(t, storage.SetItem(ctx, "ticketapp_session", raw))

		require.NoError(t, s.Restore(ctx))
		assert.Equal(t, "henry@example.org", s.CurrentUser())
	})

	t.Run("expired session is deleted", func(t *testing.T) {
		s, _, storage := newTestStore(t)
		created := time.Now().Add(-models.SessionTTL - time.Minute)
		sess := models.Session{Token: models.SessionToken, User: "henry@example.org", CreatedAt: created.UnixMilli()}
		raw, _ := json.Marshal(sess)
		require.NoError(t, storage.SetItem(ctx, "ticketapp_session", raw))

		require.NoError(t, s.Restore(ctx))
		assert.False(t, s.IsAuthenticated())

		left, err := storage.GetItem(ctx, "ticketapp_session")
		require.NoError(t, err)
		assert.Nil(t, left)
	})

	t.Run("stay-logged-in session survives any age", func(t *testing.T) {
		s, _, storage := newTestStore(t)
		sess := models.Session{Token: models.SessionToken, User: "henry@example.org", StayLoggedIn: true}
		raw, _ := json.Marshal(sess)
		require.NoError(t, storage.SetItem(ctx, "ticketapp_session", raw))

		require.NoError(t, s.Restore(ctx))
		assert.True(t, s.IsAuthenticated())
	})

	t.Run("corrupt session record is discarded", func(t *testing.T) {
		s, _, storage := newTestStore(t)
		require.NoError(t, storage.SetItem(ctx, "ticketapp_session", []byte("{not json")))

		require.NoError(t, s.Restore(ctx))
		assert.False(t, s.IsAuthenticated())

		left, err := storage.GetItem(ctx, "ticketapp_session")
		require.NoError(t, err)
		assert.Nil(t, left)
	})
}

func TestSignup_CorruptDirectoryIsReset(t *testing.T) {
	ctx := context.Background()
	s, _, storage := newTestStore(t)

	require.NoError(t, storage.SetItem(ctx, "ticketapp_users", []byte("][")))
	require.NoError(t, s.Signup(ctx, "iris@example.org", "pw"))

	raw, err := storage.GetItem(ctx, "ticketapp_users")
	require.NoError(t, err)
	var accounts []models.Account
	require.NoError(t, json.Unmarshal(raw, &accounts))
	require.Len(t, accounts, 1)
}
