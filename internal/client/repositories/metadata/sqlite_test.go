package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("jwt")))

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, []byte("jwt"), v)
}

func TestGet_MissingKeyIsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "role", []byte("user")))
	require.NoError(t, r.Set(ctx, "role", []byte("admin")))

	v, err := r.Get(ctx, "role")
	require.NoError(t, err)
	require.Equal(t, []byte("admin"), v)
}

func TestListDeleteClear(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", []byte{0xAA}))
	require.NoError(t, r.Set(ctx, "b", []byte{0xBB, 0xCC}))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": {0xAA}, "b": {0xBB, 0xCC}}, m)

	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx, "a"))

	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, m, 1)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestClosedDB_ErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"get", func() error { _, err := r.Get(ctx, "k"); return err }, "get metadata[k]"},
		{"set", func() error { return r.Set(ctx, "k", []byte("v")) }, "set metadata[k]"},
		{"delete", func() error { return r.Delete(ctx, "k") }, "delete metadata[k]"},
		{"clear", func() error { return r.Clear(ctx) }, "clear metadata"},
		{"list", func() error { _, err := r.List(ctx); return err }, "list metadata"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
