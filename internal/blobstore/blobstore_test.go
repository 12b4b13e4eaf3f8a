package blobstore_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"citykitch/internal/blobstore"
)

func TestPutURLDelete(t *testing.T) {
	store, err := blobstore.NewDiskStore(t.TempDir(), "/media/")
	require.NoError(t, err)

	handle, err := store.Put("photo.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	require.Equal(t, "photo.jpg", handle)
	require.Equal(t, "/media/photo.jpg", store.URL(handle))

	data, err := os.ReadFile(filepath.Join(store.Dir(), handle))
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(data))

	require.NoError(t, store.Delete(handle))
	_, err = os.Stat(filepath.Join(store.Dir(), handle))
	require.True(t, os.IsNotExist(err))

	// Deleting a missing blob is not an error.
	require.NoError(t, store.Delete(handle))
}

func TestPutRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := blobstore.NewDiskStore(dir, "/media")
	require.NoError(t, err)

	// Base-name cleaning keeps writes inside the media dir.
	handle, err := store.Put("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	require.Equal(t, "passwd", handle)

	_, err = store.Put("..", strings.NewReader("x"))
	require.ErrorIs(t, err, blobstore.ErrInvalidName)
}
