package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Save(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	t.Run("names the blob by its content hash", func(t *testing.T) {
		hash, size, err := store.Save(strings.NewReader("hello blob"))
		require.NoError(t, err)
		assert.Equal(t, int64(10), size)

		sum := sha256.Sum256([]byte("hello blob"))
		assert.Equal(t, hex.EncodeToString(sum[:]), hash)
	})

	t.Run("identical uploads share one blob", func(t *testing.T) {
		first, _, err := store.Save(strings.NewReader("same bytes"))
		require.NoError(t, err)
		second, _, err := store.Save(strings.NewReader("same bytes"))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("no temporary files are left behind", func(t *testing.T) {
		dir := t.TempDir()
		s, err := NewFileStore(dir)
		require.NoError(t, err)

		_, _, err = s.Save(strings.NewReader("payload"))
		require.NoError(t, err)
		_, _, err = s.Save(strings.NewReader("payload"))
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestFileStore_Open(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	hash, _, err := store.Save(strings.NewReader("read me back"))
	require.NoError(t, err)

	f, err := store.Open(hash)
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "read me back", string(data))

	_, err = store.Open("unknownhash")
	assert.Error(t, err)
}

func TestFileStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	hash, _, err := store.Save(strings.NewReader("ephemeral"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(hash))
	_, statErr := os.Stat(filepath.Join(dir, hash))
	assert.True(t, os.IsNotExist(statErr))

	assert.NoError(t, store.Remove(hash), "removing an absent blob is not an error")
}
