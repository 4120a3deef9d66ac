package store_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybergodev/container"
	"github.com/cybergodev/container/store"
)

func openStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "containers.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestStore_PutGet verifies that stored containers come back with key order intact.
func TestStore_PutGet(t *testing.T) {
	s := openStore(t)

	c := container.MustNew(`{"z":1,"a":{"list":[1,2]},"5":"five"}`)
	require.NoError(t, s.Put("config", c))

	loaded, err := s.Get("config")
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":{"list":[1,2]},"5":"five"}`, loaded.String())

	ok, err := s.Has("config")
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestStore_Missing verifies lookups of names that were never stored.
func TestStore_Missing(t *testing.T) {
	s := openStore(t)

	_, err := s.Get("nothing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	var cerr *container.ContainerError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "store_get", cerr.Op)
	assert.Equal(t, "nothing", cerr.Path)

	ok, err := s.Has("nothing")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Delete("nothing"), "deleting a missing name is not an error")
}

// TestStore_EmptyName verifies that names are required for writes.
func TestStore_EmptyName(t *testing.T) {
	s := openStore(t)

	err := s.Put("", container.MustNew(nil))
	assert.ErrorIs(t, err, container.ErrBadArgument)

	err = s.Update("", func(*container.Container) error { return nil })
	assert.ErrorIs(t, err, container.ErrBadArgument)
}

// TestStore_NamesAndDelete verifies listing order and removal.
func TestStore_NamesAndDelete(t *testing.T) {
	s := openStore(t, store.WithBucket("custom"))

	for _, name := range []string{"b", "a", "c"} {
		require.NoError(t, s.Put(name, container.MustNew(`[1]`)))
	}

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, names)

	require.NoError(t, s.Delete("b"))
	names, err = s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, names)
}

// TestStore_Update verifies read-modify-write and rollback on error.
func TestStore_Update(t *testing.T) {
	s := openStore(t)

	err := s.Update("counter", func(c *container.Container) error {
		assert.True(t, c.IsEmpty(), "a missing name starts empty")
		c.Set("hits", 1)
		return nil
	})
	require.NoError(t, err)

	err = s.Update("counter", func(c *container.Container) error {
		c.Set("hits", c.GetInt("hits", 0)+1)
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = s.Update("counter", func(c *container.Container) error {
		c.Set("hits", 100)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	loaded, err := s.Get("counter")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Get("hits", nil))
}

// TestStore_ContainerOptions verifies that loaded containers carry the configured options.
func TestStore_ContainerOptions(t *testing.T) {
	s := openStore(t, store.WithContainerOptions(container.WithPreserveKeys(true)))

	require.NoError(t, s.Put("rows", container.MustNew(`{"a":{"id":1},"b":{"id":1}}`)))

	loaded, err := s.Get("rows")
	require.NoError(t, err)
	assert.True(t, loaded.Config().WherePreserveKeys)
	assert.True(t, loaded.Where(container.Cond("id", 1)).Has("b.id"))
}

// TestStore_Reopen verifies that data survives closing the database.
func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put("doc", container.MustNew(`{"k":"v"}`)))
	require.NoError(t, s.Close())

	s, err = store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	loaded, err := s.Get("doc")
	require.NoError(t, err)
	assert.Equal(t, "v", loaded.Get("k", nil))
}
