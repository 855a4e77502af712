// Package index builds the keyword index of a notes directory.
package index

import (
	"errors"
	"fmt"
	"strings"

	"github.com/starford/denote/internal/denote"
	"github.com/starford/denote/internal/models"
)

// Lister is the part of a notes directory the index reads.
type Lister interface {
	List() ([]models.Entry, error)
}

// TagIndex is a snapshot of the keywords in use, in first-seen order.
// It is never refreshed: build a new one after the directory changes.
type TagIndex struct {
	keywords denote.Keywords
	skipped  int
}

// Build scans src once and collects the union of keywords of every Denote
// file. Files that are not Denote names are skipped.
func Build(src Lister) (*TagIndex, error) {
	entries, err := src.List()
	if err != nil {
		return nil, fmt.Errorf("index: build: %w", err)
	}
	idx := &TagIndex{}
	for _, e := range entries {
		n, err := denote.Decode(e.Name)
		if err != nil {
			if errors.Is(err, denote.ErrNotDenote) {
				idx.skipped++
				continue
			}
			return nil, fmt.Errorf("index: build: %w", err)
		}
		for _, kw := range n.Keywords.Slice() {
			idx.keywords.Add(kw)
		}
	}
	return idx, nil
}

// Complete returns every keyword starting with prefix, in index order. The
// prefix is matched in its sanitized form, so case does not matter. An empty
// prefix returns the whole index.
func (t *TagIndex) Complete(prefix string) []string {
	p := denote.SanitizeKeyword(strings.TrimSpace(prefix))
	out := make([]string, 0, t.keywords.Len())
	for _, kw := range t.keywords.Slice() {
		if strings.HasPrefix(kw, p) {
			out = append(out, kw)
		}
	}
	return out
}

// Keywords returns all indexed keywords in first-seen order.
func (t *TagIndex) Keywords() []string { return t.keywords.Slice() }

// Contains reports whether kw is in use.
func (t *TagIndex) Contains(kw string) bool { return t.keywords.Has(kw) }

// Len returns the number of distinct keywords.
func (t *TagIndex) Len() int { return t.keywords.Len() }

// Skipped returns how many entries were not Denote names.
func (t *TagIndex) Skipped() int { return t.skipped }
