// Package display prints note listings, coloured when attached to a terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/starford/denote/internal/denote"
	"github.com/starford/denote/internal/models"
)

const (
	colorIdentifier = "\033[36m"
	colorKeyword    = "\033[33m"
	colorReset      = "\033[0m"
)

// Printer writes one note path per line.
type Printer struct {
	w     io.Writer
	color bool
}

// NewPrinter returns a Printer that colours output only when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, color: isTerminalWriter(w)}
}

// WithColor forces colouring on or off.
func (p *Printer) WithColor(on bool) *Printer {
	p.color = on
	return p
}

// Notes prints each note's path.
func (p *Printer) Notes(notes []models.Note) error {
	for _, n := range notes {
		if err := p.Path(n.Path); err != nil {
			return err
		}
	}
	return nil
}

// Path prints one path, colouring the identifier and keywords of the file
// name as it is on disk.
func (p *Printer) Path(path string) error {
	if !p.color {
		_, err := fmt.Fprintln(p.w, path)
		return err
	}
	_, err := fmt.Fprintln(p.w, colorize(path))
	return err
}

func colorize(path string) string {
	base := filepath.Base(path)
	dir := strings.TrimSuffix(path, base)
	dot := strings.LastIndex(base, denote.ExtensionMarker)
	if len(base) < denote.IdentifierLen || dot < denote.IdentifierLen ||
		!denote.IsIdentifier(base[:denote.IdentifierLen]) {
		return path
	}

	var b strings.Builder
	b.WriteString(dir)
	b.WriteString(colorIdentifier + base[:denote.IdentifierLen] + colorReset)
	stem := base[denote.IdentifierLen:dot]
	if k := strings.Index(stem, denote.KeywordsMarker); k >= 0 {
		b.WriteString(stem[:k+len(denote.KeywordsMarker)])
		for i, kw := range strings.Split(stem[k+len(denote.KeywordsMarker):], denote.KeywordSep) {
			if i > 0 {
				b.WriteString(denote.KeywordSep)
			}
			b.WriteString(colorKeyword + kw + colorReset)
		}
	} else {
		b.WriteString(stem)
	}
	b.WriteString(base[dot:])
	return b.String()
}

// Lines prints plain strings, one per line.
func (p *Printer) Lines(lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.w, l); err != nil {
			return err
		}
	}
	return nil
}

func isTerminalWriter(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
