package bm

import "bytes"

// Matcher searches a fixed text for a replaceable pattern.
//
// The text is copied at construction and never changes. The pattern is
// replaced only through SearchFor, which builds the new table before storing
// it, so the pattern and its table never disagree.
//
// A Matcher is not safe for concurrent use while SearchFor may run; callers
// must serialize pattern replacement against searches. Concurrent Search
// calls with no replacement in flight are safe.
type Matcher struct {
	text []byte
	s    Searcher
}

// New returns a Matcher over text for pattern. A nil text or pattern is
// treated as empty.
func New(text, pattern []byte) *Matcher {
	return &Matcher{
		text: bytes.Clone(text),
		s:    NewSearcher(pattern),
	}
}

// NewString is like New but takes strings.
func NewString(text, pattern string) *Matcher {
	return New([]byte(text), []byte(pattern))
}

// Search returns the index of the first instance of the current pattern in
// the text, or -1. Repeated calls return the same result.
func (m *Matcher) Search() int {
	return m.s.Index(m.text)
}

// SearchFor replaces the pattern, rebuilds the table and searches.
func (m *Matcher) SearchFor(pattern []byte) int {
	m.s = NewSearcher(pattern)
	return m.Search()
}

// SearchForString is like SearchFor but takes a string.
func (m *Matcher) SearchForString(pattern string) int {
	return m.SearchFor([]byte(pattern))
}

// Text returns the text. The caller must not modify it.
func (m *Matcher) Text() []byte {
	return m.text
}

// Pattern returns the current pattern. The caller must not modify it.
func (m *Matcher) Pattern() []byte {
	return m.s.Pattern()
}
