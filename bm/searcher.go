// Package bm implements single-pattern byte search with the bad-character
// rule of Boyer-Moore.
//
// Every byte is an opaque symbol from a 256-value alphabet: there is no case
// folding and no Unicode awareness. An empty pattern never matches; all
// searches report -1 for it, as they do for a pattern that is absent.
package bm

import (
	"bytes"

	"github.com/mhr3/skipscan/internal/bytealg"
)

// Searcher is a prepared pattern for repeated searches.
// Construct once with NewSearcher, then call Index on any number of texts.
// A Searcher is immutable and safe for concurrent use.
type Searcher struct {
	pattern []byte         // owned copy
	last    LastOccurrence // derived from pattern
}

// NewSearcher copies pattern and builds its bad-character table.
func NewSearcher(pattern []byte) Searcher {
	p := bytes.Clone(pattern)
	return Searcher{
		pattern: p,
		last:    NewLastOccurrence(p),
	}
}

// Len returns the pattern length.
func (s *Searcher) Len() int {
	return len(s.pattern)
}

// Pattern returns the pattern. The caller must not modify it.
func (s *Searcher) Pattern() []byte {
	return s.pattern
}

// Index returns the index of the first instance of the pattern in text,
// or -1 if it is not present or the pattern is empty.
func (s *Searcher) Index(text []byte) int {
	m := len(s.pattern)
	if m == 0 {
		return -1
	}
	maxSkip := len(text) - m
	if maxSkip < 0 {
		return -1
	}
	// With one byte every mismatch shifts by exactly one.
	if m == 1 {
		return bytealg.IndexByte(text, s.pattern[0])
	}

	pattern := s.pattern
	last := &s.last
	for skip := 0; skip <= maxSkip; {
		p := m - 1
		for p >= 0 && text[skip+p] == pattern[p] {
			p--
		}
		if p < 0 {
			return skip
		}
		// text[skip+p] is the bad character
		update := p - last[text[skip+p]]
		if update >= 1 {
			skip += update
		} else {
			skip++
		}
	}
	return -1
}

// IndexString is like Index but takes the text as a string.
func (s *Searcher) IndexString(text string) int {
	return s.Index([]byte(text))
}

// Index returns the index of the first instance of pattern in text,
// or -1 if pattern is empty or not present.
func Index(text, pattern []byte) int {
	s := NewSearcher(pattern)
	return s.Index(text)
}

// IndexString is like Index but takes strings.
func IndexString(text, pattern string) int {
	return Index([]byte(text), []byte(pattern))
}
