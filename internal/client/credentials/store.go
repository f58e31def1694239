// Package credentials persists the classifier credential between runs.
//
// The credential is kept in cleartext in a single file. That is a known
// limitation of this client, not something the store tries to hide.
package credentials

import (
	"os"
	"strings"

	"github.com/dmitrijs2005/sentimeter/internal/client/models"
	"github.com/dmitrijs2005/sentimeter/internal/filex"
)

// DefaultPath is used when no path is configured.
const DefaultPath = "./saved_key.txt"

// Store loads and saves a single credential.
type Store interface {
	// Load returns the stored credential and true, or false when nothing
	// usable is stored. Absence is not an error.
	Load() (models.Credential, bool)
	Save(cred models.Credential) error
	Path() string
}

// FileStore is a Store backed by one plain-text file.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load treats a missing, unreadable, empty or whitespace-only file the same way.
func (s *FileStore) Load() (models.Credential, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	cred := models.Credential(strings.TrimSpace(string(data)))
	if cred.IsBlank() {
		return "", false
	}
	return cred, true
}

// Save overwrites the file with the raw credential.
func (s *FileStore) Save(cred models.Credential) error {
	return filex.WritePrivate(s.path, []byte(cred))
}
