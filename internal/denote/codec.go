// Package denote implements the Denote file naming convention: a note's
// identity (creation identifier, title, keywords, extension) is encoded in its
// filename and nowhere else.
//
//	<identifier>["--"<title>]["__"<keyword>("_"<keyword>)*]"."<extension>
package denote

import (
	"errors"
	"fmt"
	"strings"
)

// Filename markers.
const (
	TitleMarker     = "--"
	KeywordsMarker  = "__"
	KeywordSep      = "_"
	ExtensionMarker = "."
)

var (
	// ErrNotDenote classifies any name that does not follow the convention.
	ErrNotDenote = errors.New("not a denote filename")
	// ErrBadIdentifier is a name whose first 15 characters are not an identifier.
	ErrBadIdentifier = fmt.Errorf("%w: bad identifier", ErrNotDenote)
	// ErrMissingExtension is a name without an extension.
	ErrMissingExtension = fmt.Errorf("%w: missing extension", ErrNotDenote)
)

// FormatError reports why a filename could not be decoded.
type FormatError struct {
	Name string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("denote: %q: %v", e.Name, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// NoteName is the identity of a note as decoded from its filename.
type NoteName struct {
	Identifier string
	Title      string // title slug, empty when the note has no title
	Keywords   Keywords
	Extension  string
}

// New builds a NoteName from raw user input, sanitizing title and keywords.
// The identifier and extension are taken as they are.
func New(identifier, rawTitle string, rawKeywords []string, extension string) NoteName {
	return NoteName{
		Identifier: identifier,
		Title:      SanitizeTitle(rawTitle),
		Keywords:   SanitizeKeywords(rawKeywords...),
		Extension:  extension,
	}
}

// Filename encodes n. See Encode.
func (n NoteName) Filename() string {
	return Encode(n.Identifier, n.Title, n.Keywords, n.Extension)
}

// DisplayTitle returns the title as readable text.
func (n NoteName) DisplayTitle() string {
	return DecodeTitle(n.Title)
}

// Equal reports whether two names encode to the same identity.
func (n NoteName) Equal(o NoteName) bool {
	return n.Identifier == o.Identifier &&
		n.Title == o.Title &&
		n.Extension == o.Extension &&
		n.Keywords.Equal(o.Keywords)
}

// Encode composes a filename. The title and keywords must already be
// sanitized: an empty title drops the "--" segment, an empty keyword set drops
// the "__" segment.
func Encode(identifier, title string, keywords Keywords, extension string) string {
	var b strings.Builder
	b.WriteString(identifier)
	if title != "" {
		b.WriteString(TitleMarker)
		b.WriteString(title)
	}
	if keywords.Len() > 0 {
		b.WriteString(KeywordsMarker)
		b.WriteString(strings.Join(keywords.order, KeywordSep))
	}
	b.WriteString(ExtensionMarker)
	b.WriteString(extension)
	return b.String()
}

// Decode parses a filename (no directory part). It is the exact inverse of
// Encode for every name Encode produces from sanitized input. All returned
// errors are *FormatError and match ErrNotDenote.
func Decode(filename string) (NoteName, error) {
	fail := func(err error) (NoteName, error) {
		return NoteName{}, &FormatError{Name: filename, Err: err}
	}

	if len(filename) < IdentifierLen || !IsIdentifier(filename[:IdentifierLen]) {
		return fail(ErrBadIdentifier)
	}
	n := NoteName{Identifier: filename[:IdentifierLen]}
	rest := filename[IdentifierLen:]

	dot := strings.LastIndex(rest, ExtensionMarker)
	if dot < 0 || dot == len(rest)-1 {
		return fail(ErrMissingExtension)
	}
	n.Extension = rest[dot+1:]
	if !isToken(n.Extension) {
		return fail(fmt.Errorf("%w: bad extension %q", ErrNotDenote, n.Extension))
	}
	stem := rest[:dot]

	if strings.HasPrefix(stem, TitleMarker) {
		stem = stem[len(TitleMarker):]
		end := strings.Index(stem, KeywordsMarker)
		if end < 0 {
			end = len(stem)
		}
		n.Title = stem[:end]
		if !isSlug(n.Title) {
			return fail(fmt.Errorf("%w: bad title %q", ErrNotDenote, n.Title))
		}
		stem = stem[end:]
	}

	if stem == "" {
		return n, nil
	}
	if !strings.HasPrefix(stem, KeywordsMarker) {
		return fail(fmt.Errorf("%w: unexpected %q", ErrNotDenote, stem))
	}
	for _, kw := range strings.Split(stem[len(KeywordsMarker):], KeywordSep) {
		if !isToken(kw) {
			return fail(fmt.Errorf("%w: bad keyword %q", ErrNotDenote, kw))
		}
		n.Keywords.Add(kw)
	}
	return n, nil
}

// IsExtension reports whether ext is usable as a note extension: one or more
// lowercase ASCII letters or digits, without the dot.
func IsExtension(ext string) bool { return isToken(ext) }

// isToken reports whether s is a non-empty run of [a-z0-9].
func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isSlugRune(rune(s[i])) {
			return false
		}
	}
	return true
}

// isSlug reports whether s is one or more tokens joined by single dashes.
func isSlug(s string) bool {
	for _, tok := range strings.Split(s, "-") {
		if !isToken(tok) {
			return false
		}
	}
	return true
}
