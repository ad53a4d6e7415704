package jsonstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracie007-cloud/stock-scanner-dashboard/pkg/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return New(log)
}

type testDoc struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "doc.json")

	want := testDoc{Name: "scan", Count: 3, Tags: []string{"a", "b"}}
	require.NoError(t, store.Save(path, want))

	var got testDoc
	require.NoError(t, store.Load(path, &got))
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	var got testDoc
	err := store.Load(filepath.Join(t.TempDir(), "absent.json"), &got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadMalformedFile(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var got testDoc
	err := store.Load(path, &got)
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestSaveReplacesAtomically(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "doc.json")

	require.NoError(t, store.Save(path, testDoc{Name: "v1"}))
	require.NoError(t, store.Save(path, testDoc{Name: "v2"}))

	var got testDoc
	require.NoError(t, store.Load(path, &got))
	assert.Equal(t, "v2", got.Name)
}

func TestSaveAfterSimulatedCrash(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")

	require.NoError(t, store.Save(path, testDoc{Name: "v1"}))

	// A crashed writer leaves a stale temp file behind. It must neither be
	// visible to readers nor break the next save.
	require.NoError(t, os.WriteFile(path+".tmp", []byte(`{"name":"torn`), 0o644))

	var got testDoc
	require.NoError(t, store.Load(path, &got))
	assert.Equal(t, "v1", got.Name)

	require.NoError(t, store.Save(path, testDoc{Name: "v2"}))
	require.NoError(t, store.Load(path, &got))
	assert.Equal(t, "v2", got.Name)
}

func TestSaveCreatesParentDir(t *testing.T) {
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "nested", "deep", "doc.json")

	require.NoError(t, store.Save(path, testDoc{Name: "v1"}))

	var got testDoc
	require.NoError(t, store.Load(path, &got))
	assert.Equal(t, "v1", got.Name)
}
