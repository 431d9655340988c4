package recordstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return store
}

func TestLocalStore_ReadAbsentKeyLeavesOutUntouched(t *testing.T) {
	t.Parallel()
	store := newTestLocalStore(t)

	var records []testRecord
	err := store.Read(context.Background(), "missing", &records)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestLocalStore_WriteThenRead(t *testing.T) {
	t.Parallel()
	store := newTestLocalStore(t)
	ctx := context.Background()

	in := []testRecord{{ID: "1", Name: "Alice"}, {ID: "2", Name: "Bob"}}
	require.NoError(t, store.Write(ctx, KeyUsers, in))

	var out []testRecord
	require.NoError(t, store.Read(ctx, KeyUsers, &out))
	assert.Equal(t, in, out)
}

func TestLocalStore_WriteReplacesWholeCollection(t *testing.T) {
	t.Parallel()
	store := newTestLocalStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, KeyUsers, []testRecord{{ID: "1"}}))
	require.NoError(t, store.Write(ctx, KeyUsers, []testRecord{}))

	var out []testRecord
	require.NoError(t, store.Read(ctx, KeyUsers, &out))
	assert.Empty(t, out)
}

func TestLocalStore_DeleteAbsentKeyIsNoError(t *testing.T) {
	t.Parallel()
	store := newTestLocalStore(t)

	assert.NoError(t, store.Delete(context.Background(), "never-written"))
}

func TestLocalStore_DeleteRemovesKey(t *testing.T) {
	t.Parallel()
	store := newTestLocalStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, KeySession, testRecord{ID: "1"}))
	require.NoError(t, store.Delete(ctx, KeySession))

	var out testRecord
	require.NoError(t, store.Read(ctx, KeySession, &out))
	assert.Empty(t, out.ID)
}

func TestLocalStore_CorruptFileIsAnError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store, err := NewLocalStore(Config{BasePath: dir})
	require.NoError(t, err)

	path := filepath.Join(dir, KeyCandidates+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var out []testRecord
	err = store.Read(context.Background(), KeyCandidates, &out)
	assert.Error(t, err)
}
