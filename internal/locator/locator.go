// Package locator finds notes in a directory by keyword or creation date.
package locator

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/starford/denote/internal/denote"
	"github.com/starford/denote/internal/models"
)

// Source is a notes directory as seen by the locator.
type Source interface {
	Root() string
	List() ([]models.Entry, error)
}

// Find returns the notes carrying every keyword in required, oldest first.
// An empty filter matches every Denote file.
func Find(src Source, required denote.Keywords) ([]models.Note, error) {
	return filter(src, func(n denote.NoteName) bool {
		return n.Keywords.ContainsAll(required)
	})
}

// FindByDate returns the notes whose identifier falls on day's calendar date
// in day's location, oldest first.
func FindByDate(src Source, day time.Time) ([]models.Note, error) {
	y, m, d := day.Date()
	return filter(src, func(n denote.NoteName) bool {
		t, err := denote.ParseIdentifier(n.Identifier, day.Location())
		if err != nil {
			return false
		}
		ty, tm, td := t.Date()
		return ty == y && tm == m && td == d
	})
}

func filter(src Source, keep func(denote.NoteName) bool) ([]models.Note, error) {
	entries, err := src.List()
	if err != nil {
		return nil, fmt.Errorf("locator: %w", err)
	}
	var out []models.Note
	for _, e := range entries {
		n, err := denote.Decode(e.Name)
		if errors.Is(err, denote.ErrNotDenote) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("locator: %w", err)
		}
		if keep(n) {
			out = append(out, models.Note{Path: filepath.Join(src.Root(), e.Name), Name: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Name.Identifier, out[j].Name.Identifier
		if a != b {
			return a < b
		}
		return out[i].Path < out[j].Path
	})
	return out, nil
}
