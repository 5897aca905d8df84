package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"gestfin/pgc-engine/internal/enginerror"
	"gestfin/pgc-engine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier-store.yaml")
	fs := NewFileStore(path)

	store := NewDefaultStore()
	store.Categories[models.DocumentIncoming].Terms["fatura"] = 3
	store.Categories[models.DocumentIncoming].Docs = 2
	store.TotalDocs = 2

	require.NoError(t, fs.Save(store))

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Categories[models.DocumentIncoming].Terms["fatura"])
	assert.Equal(t, 2, loaded.Categories[models.DocumentIncoming].Docs)
	assert.Equal(t, 2, loaded.TotalDocs)
}

func TestFileStoreLoadMissingFileIsColdStart(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	store, err := fs.Load()

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, 0, store.TotalDocs)
	assert.Len(t, store.Categories, len(models.AllDocumentTypes()))
}

func TestFileStoreLoadCorruptFileReturnsDefaultAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier-store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{ not yaml :::"), 0600))

	fs := NewFileStore(path)
	store, err := fs.Load()

	var corruption *enginerror.StoreCorruptionError
	require.ErrorAs(t, err, &corruption)
	assert.Equal(t, path, corruption.Path)

	// The caller still gets a usable default store.
	require.NotNil(t, store)
	assert.Equal(t, 0, store.TotalDocs)
}

func TestFileStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "classifier-store.yaml"))

	require.NoError(t, fs.Save(NewDefaultStore()))
	require.NoError(t, fs.Save(NewDefaultStore()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "classifier-store.yaml", entries[0].Name())
}

func TestFileStoreDefaultPath(t *testing.T) {
	fs := NewFileStore("")
	assert.Equal(t, "classifier-store.yaml", fs.Path)
}
