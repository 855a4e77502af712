// Package renamer changes a note's title and keywords by renaming its file.
// The identifier and extension of a note never change.
package renamer

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/starford/denote/internal/denote"
)

var (
	ErrNotDenote = errors.New("rename: not a denote filename")
	ErrCollision = errors.New("rename: target already exists")
	ErrIOFailure = errors.New("rename: filesystem failure")
)

// Store is the directory the renamer works in.
type Store interface {
	Exists(name string) (bool, error)
	// Rename must be atomic and must refuse to replace an existing file
	// with an error matching fs.ErrExist.
	Rename(oldName, newName string) error
}

// Target computes the filename name would have with the new title and
// keywords, keeping its identifier and extension.
func Target(name, newTitle string, newKeywords []string) (denote.NoteName, error) {
	cur, err := denote.Decode(name)
	if err != nil {
		return denote.NoteName{}, fmt.Errorf("%w: %w", ErrNotDenote, err)
	}
	return denote.New(cur.Identifier, newTitle, newKeywords, cur.Extension), nil
}

// Rename moves name to the filename derived from newTitle and newKeywords and
// returns the new name. Renaming to the current name is a no-op. On any error
// the file keeps its old name.
func Rename(store Store, name, newTitle string, newKeywords []string) (string, error) {
	next, err := Target(name, newTitle, newKeywords)
	if err != nil {
		return "", err
	}
	newName := next.Filename()
	if newName == name {
		return name, nil
	}

	exists, err := store.Exists(newName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if exists {
		return "", fmt.Errorf("%w: %s", ErrCollision, newName)
	}

	if err := store.Rename(name, newName); err != nil {
		// Lost a race with another writer between the check and the move.
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrCollision, newName)
		}
		return "", fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	return newName, nil
}
