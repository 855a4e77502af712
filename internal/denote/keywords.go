package denote

import "strings"

// Keywords is an insertion-ordered set of keyword tokens. Membership queries
// use set semantics, serialization keeps the order keywords were added in.
// The zero value is an empty set ready to use.
type Keywords struct {
	order []string
	index map[string]struct{}
}

// NewKeywords builds a set from already sanitized tokens. Empty and duplicate
// tokens are dropped, first occurrence wins.
func NewKeywords(tokens ...string) Keywords {
	var k Keywords
	for _, t := range tokens {
		k.Add(t)
	}
	return k
}

// Add appends token unless it is empty or already present.
// It reports whether the set changed.
func (k *Keywords) Add(token string) bool {
	if token == "" || k.Has(token) {
		return false
	}
	if k.index == nil {
		k.index = make(map[string]struct{})
	}
	k.index[token] = struct{}{}
	k.order = append(k.order, token)
	return true
}

// Has reports whether token is in the set.
func (k Keywords) Has(token string) bool {
	_, ok := k.index[token]
	return ok
}

// Len returns the number of keywords.
func (k Keywords) Len() int { return len(k.order) }

// Slice returns a copy of the keywords in insertion order.
func (k Keywords) Slice() []string {
	out := make([]string, len(k.order))
	copy(out, k.order)
	return out
}

// ContainsAll reports whether every keyword of other is also in k.
// An empty other is contained in any set.
func (k Keywords) ContainsAll(other Keywords) bool {
	for _, t := range other.order {
		if !k.Has(t) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same keywords in the same order.
func (k Keywords) Equal(other Keywords) bool {
	if len(k.order) != len(other.order) {
		return false
	}
	for i := range k.order {
		if k.order[i] != other.order[i] {
			return false
		}
	}
	return true
}

// String returns the keywords separated by single spaces.
func (k Keywords) String() string {
	return strings.Join(k.order, " ")
}
