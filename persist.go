package vnspell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteFrequencies serializes table as one bigram per line, `<left-token>
// <right-token> <count>\n`, resolving token ids through interner. No
// header or framing.
func WriteFrequencies(w io.Writer, interner *Interner, views sortedViews) error {
	buf := bufio.NewWriter(w)
	for _, e := range views.forward {
		left := interner.Reverse(e.Key.left())
		right := interner.Reverse(e.Key.right())
		if _, err := fmt.Fprintf(buf, "%s %s %d\n", left, right, e.Count); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// LoadFrequencies reads the persistence format written by WriteFrequencies,
// re-interning both tokens of every line (so ids are assigned in file
// order, not the order they were originally learned in) and populating
// table directly. Grounded on the original source's `initialize` frequency
// read loop.
//
// A malformed line (wrong field count, non-integer count) is treated as
// end-of-stream for this file, the same way the original source's
// `while (frequency_input >> token)` extraction loop stops for good the
// moment one extraction fails: a *FormatError is returned and nothing
// from that line or after it is applied to table.
func LoadFrequencies(r io.Reader, path string, interner *Interner, table BigramTable) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return &FormatError{Path: path, Line: lineNo, Text: line}
		}
		count, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return &FormatError{Path: path, Line: lineNo, Text: line}
		}

		left := interner.Intern(fields[0])
		right := interner.Intern(fields[1])
		table[packBigram(left, right)] = uint32(count)
	}
	if err := scanner.Err(); err != nil {
		return &IoError{Path: path, Op: "read", Err: err}
	}
	return nil
}
