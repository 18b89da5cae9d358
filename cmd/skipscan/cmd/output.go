package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/segmentio/asm/ascii"
)

// printer writes one line per match: [name:]offset:pattern[:context].
type printer struct {
	w        io.Writer
	withName bool
	context  int
	hex      bool
	quiet    bool
}

func (p *printer) print(in input, r result) {
	if p.quiet {
		return
	}
	if p.withName {
		fmt.Fprintf(p.w, "%s:", in.name)
	}
	fmt.Fprintf(p.w, "%d:%s", r.offset, renderBytes([]byte(r.pattern), p.hex))
	if p.context > 0 {
		fmt.Fprintf(p.w, ":%s", renderBytes(contextWindow(in.data, r.offset, len(r.pattern), p.context), p.hex))
	}
	fmt.Fprintln(p.w)
}

// contextWindow returns the match plus up to n bytes on each side.
func contextWindow(data []byte, offset, length, n int) []byte {
	if n > len(data) {
		n = len(data)
	}
	start := offset - n
	if start < 0 {
		start = 0
	}
	end := offset + length + n
	if end > len(data) {
		end = len(data)
	}
	return data[start:end]
}

// renderBytes quotes printable ASCII and hex-encodes anything else.
func renderBytes(b []byte, forceHex bool) string {
	if !forceHex && ascii.ValidPrint(b) {
		return strconv.Quote(string(b))
	}
	return "0x" + hex.EncodeToString(b)
}
