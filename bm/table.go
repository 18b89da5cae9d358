package bm

// LastOccurrence is the bad-character table of a pattern.
// Entry b holds the highest index at which byte b appears in the pattern,
// or -1 if b does not appear at all.
type LastOccurrence [256]int

// NewLastOccurrence builds the bad-character table for pattern.
// An empty pattern yields a table of all -1.
func NewLastOccurrence(pattern []byte) LastOccurrence {
	var t LastOccurrence
	for i := range t {
		t[i] = -1
	}
	// later occurrences overwrite earlier ones
	for i := 0; i < len(pattern); i++ {
		t[pattern[i]] = i
	}
	return t
}

// Shift returns the bad-character shift for a mismatch at pattern position
// mismatch against text byte bad. The result is not clamped and may be zero
// or negative when the last occurrence of bad lies at or right of mismatch.
func (t *LastOccurrence) Shift(mismatch int, bad byte) int {
	return mismatch - t[bad]
}

// Skipper computes how far a pattern may be realigned after a mismatch.
// Implementations return the raw shift; callers advance by at least one.
type Skipper interface {
	Shift(mismatch int, bad byte) int
}

// MaxShift combines skip strategies by taking the largest shift any of them
// proposes. With no strategies the shift is always zero.
func MaxShift(skippers ...Skipper) Skipper {
	return maxShift(skippers)
}

type maxShift []Skipper

func (ms maxShift) Shift(mismatch int, bad byte) int {
	if len(ms) == 0 {
		return 0
	}
	best := ms[0].Shift(mismatch, bad)
	for _, s := range ms[1:] {
		if v := s.Shift(mismatch, bad); v > best {
			best = v
		}
	}
	return best
}

// IndexWith returns the index of the first instance of pattern in text,
// scanning right to left and realigning with sk after each mismatch.
// It returns -1 if pattern is empty or not present.
// A nil sk shifts by one after every mismatch.
// Searcher.Index runs the same loop with the bad-character table inlined.
func IndexWith(text, pattern []byte, sk Skipper) int {
	m := len(pattern)
	if m == 0 {
		return -1
	}
	if sk == nil {
		sk = MaxShift()
	}
	maxSkip := len(text) - m
	for skip := 0; skip <= maxSkip; {
		p := m - 1
		for p >= 0 && text[skip+p] == pattern[p] {
			p--
		}
		if p < 0 {
			return skip
		}
		if update := sk.Shift(p, text[skip+p]); update >= 1 {
			skip += update
		} else {
			skip++
		}
	}
	return -1
}
