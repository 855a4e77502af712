// Package storage defines the notes directory abstraction.
package storage

import "github.com/starford/denote/internal/models"

// Provider is the interface for notes directory operations. Names are plain
// file names inside the directory; nested paths are rejected.
type Provider interface {
	// Root returns the absolute path of the notes directory.
	Root() string
	// Path returns the absolute path of name.
	Path(name string) string
	// List returns the immediate regular files of the directory, sorted by name.
	List() ([]models.Entry, error)
	// Exists reports whether name is present.
	Exists(name string) (bool, error)
	// Read returns the raw bytes of name.
	Read(name string) ([]byte, error)
	// Create atomically writes a new file. It never replaces an existing one:
	// the error matches fs.ErrExist when name is taken.
	Create(name string, content []byte) error
	// Rename atomically moves oldName to newName. It never replaces an
	// existing file: the error matches fs.ErrExist when newName is taken.
	Rename(oldName, newName string) error
}
