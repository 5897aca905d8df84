package classifier

import (
	"os"

	"gestfin/pgc-engine/internal/enginerror"
	"gestfin/pgc-engine/internal/fileutils"

	"gopkg.in/yaml.v3"
)

// FileStore persists the classifier store as a single YAML document,
// replaced atomically on every save.
type FileStore struct {
	Path string
}

// NewFileStore creates a file-backed classifier store at the given path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = "classifier-store.yaml"
	}
	return &FileStore{Path: path}
}

// Load reads the whole store from disk. A missing file is a normal cold
// start and yields a default store. An unreadable or invalid file also
// yields a default store, together with a StoreCorruptionError the caller
// is expected to log and otherwise ignore.
func (fs *FileStore) Load() (*ClassifierStore, error) {
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefaultStore(), nil
		}
		return NewDefaultStore(), &enginerror.StoreCorruptionError{Path: fs.Path, Err: err}
	}

	var store ClassifierStore
	if err := yaml.Unmarshal(data, &store); err != nil {
		return NewDefaultStore(), &enginerror.StoreCorruptionError{Path: fs.Path, Err: err}
	}

	store.normalize()
	return &store, nil
}

// Save marshals the store and atomically replaces the file, so concurrent
// readers see either the previous or the new record, never a partial write.
func (fs *FileStore) Save(store *ClassifierStore) error {
	data, err := yaml.Marshal(store)
	if err != nil {
		return &enginerror.StoreWriteError{Path: fs.Path, Err: err}
	}

	if err := fileutils.WriteFileAtomic(fs.Path, data, 0600); err != nil {
		return &enginerror.StoreWriteError{Path: fs.Path, Err: err}
	}
	return nil
}
