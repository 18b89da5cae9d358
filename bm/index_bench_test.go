package bm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mhr3/skipscan/internal/bytealg"
)

type indexBenchCase struct {
	scenario, size, text, pattern string
}

func indexBenchCases() []indexBenchCase {
	prose := "the bad character rule skips ahead whenever a text byte is missing from the pattern. "
	return []indexBenchCase{
		// Bytes absent from the pattern: every mismatch skips a full pattern length
		{"absent", "1KB", strings.Repeat(prose, 12), "quixotic"},
		{"absent", "64KB", strings.Repeat(prose, 760), "quixotic"},
		{"absent_long", "64KB", strings.Repeat(prose, 760), "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"},

		// Match positions
		{"match_first", "1KB", "pattern" + strings.Repeat(prose, 12), "pattern"},
		{"match_last", "1KB", strings.Repeat(prose, 12) + "quixotic", "quixotic"},

		// Last byte of the pattern is common: shifts stay short
		{"common_tail", "1KB", strings.Repeat(prose, 12) + "skips aheae", "skips aheae"},

		// Bad byte's last occurrence lies right of the mismatch: the raw
		// shift is non-positive and the scan advances one alignment at a time
		{"fallback", "1KB", strings.Repeat("ba", 512), "aab"},
		{"fallback", "64KB", strings.Repeat("ba", 32768), "aab"},
		{"fallback_run", "64KB", strings.Repeat("a", 65536), "ba" + strings.Repeat("a", 30)},

		// Tiny alphabet
		{"binary", "64KB", strings.Repeat("0110100110010110", 4096) + "1111", "1111"},
		{"single_byte", "64KB", strings.Repeat("-", 65536) + "|", "|"},
		{"high_bytes", "1KB", strings.Repeat("\x80\xfe\xff", 341) + "\x00", "\xff\x00"},
	}
}

func BenchmarkIndex(b *testing.B) {
	for _, tc := range indexBenchCases() {
		name := "scenario=" + tc.scenario + "/size=" + tc.size
		text, pattern := []byte(tc.text), []byte(tc.pattern)

		b.Run(name+"/impl=stdlib", func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				bytes.Index(text, pattern)
			}
		})

		b.Run(name+"/impl=naive", func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				bytealg.Index(text, pattern)
			}
		})

		b.Run(name+"/impl=badchar", func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				Index(text, pattern)
			}
		})

		s := NewSearcher(pattern)
		b.Run(name+"/impl=searcher", func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				s.Index(text)
			}
		})
	}
}
