package bytealg

import "bytes"

// IndexByte returns the index of the first c in b, or -1.
func IndexByte(b []byte, c byte) int {
	return bytes.IndexByte(b, c)
}

// Index finds the first match of pattern in text by testing every
// alignment left to right. An empty pattern never matches.
func Index(text, pattern []byte) int {
	n := len(pattern)
	if n == 0 {
		return -1
	}
	for i := 0; i+n <= len(text); i++ {
		if text[i] == pattern[0] && bytes.Equal(text[i:i+n], pattern) {
			return i
		}
	}
	return -1
}
