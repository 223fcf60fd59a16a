package localstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestSetItemAndGetItem(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "ticketapp_session", []byte(`{"token":"demo_token_123"}`)))

	v, err := s.GetItem(ctx, "ticketapp_session")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"token":"demo_token_123"}`), v)
}

func TestGetItem_AbsentKeyReturnsNilNil(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)

	v, err := s.GetItem(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSetItem_UpsertOverwritesValue(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "k", []byte("old")))
	require.NoError(t, s.SetItem(ctx, "k", []byte("new")))

	v, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestRemoveItem_RemovesKeyAndIsIdempotent(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "x", []byte{0x01}))
	require.NoError(t, s.RemoveItem(ctx, "x"))

	v, err := s.GetItem(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, s.RemoveItem(ctx, "x"))
}

func TestList_ReturnsAllPairs(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "a", []byte{0xAA}))
	require.NoError(t, s.SetItem(ctx, "b", []byte{0xBB, 0xCC}))

	m, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 2)
	assert.Equal(t, []byte{0xAA}, m["a"])
	assert.Equal(t, []byte{0xBB, 0xCC}, m["b"])
}

func TestClear_RemovesAllKeys(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "a", []byte{1}))
	require.NoError(t, s.SetItem(ctx, "b", []byte{2}))
	require.NoError(t, s.Clear(ctx))

	m, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestGetItem_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	v, err := s.GetItem(ctx, "k")
	require.Error(t, err)
	require.Nil(t, v)
	require.Contains(t, err.Error(), "failed to get storage[k]")
}

func TestSetItem_DBErrorWrapped(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, db.Close())

	err := s.SetItem(ctx, "k", []byte("v"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to set storage[k]")
}
