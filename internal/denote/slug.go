package denote

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold strips diacritics so that "Café" sanitizes to "cafe" rather than "caf".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isSlugRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func isSeparatorRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// SanitizeTitle turns free text into a title slug: lowercase [a-z0-9] tokens
// joined by single dashes. Whitespace, punctuation and symbols separate
// tokens, anything else outside the charset is dropped. The result may be
// empty, in which case the title is omitted from the filename.
func SanitizeTitle(raw string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(fold(raw)) {
		switch {
		case isSlugRune(r):
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		case isSeparatorRune(r):
			pending = true
		}
	}
	return b.String()
}

// SanitizeKeyword reduces one word to a keyword token made of [a-z0-9] only.
func SanitizeKeyword(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(fold(raw)) {
		if isSlugRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeKeywords splits every argument on whitespace and sanitizes each word
// into one keyword. Words that sanitize to nothing are dropped and duplicates
// collapse onto their first occurrence.
func SanitizeKeywords(raw ...string) Keywords {
	var k Keywords
	for _, s := range raw {
		for _, word := range strings.Fields(s) {
			k.Add(SanitizeKeyword(word))
		}
	}
	return k
}

// DecodeTitle renders a title slug as readable text.
func DecodeTitle(segment string) string {
	return strings.ReplaceAll(segment, "-", " ")
}

// DecodeKeywords splits a serialized keyword segment such as "_a_b".
// The leading separator is optional.
func DecodeKeywords(segment string) []string {
	var out []string
	for _, part := range strings.Split(segment, "_") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
