package gml

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLine is one line of a line diff. Op is '-' for a line only in the
// original, '+' for a line only in the new text and ' ' for a shared line.
type DiffLine struct {
	Op   byte
	Text string
}

func (l DiffLine) String() string {
	return string(l.Op) + l.Text
}

// Diff computes a line diff from a to b. It returns nil if a and b are
// equal.
func Diff(a, b string) []DiffLine {
	if a == b {
		return nil
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []DiffLine
	for _, d := range diffs {
		var op byte
		switch d.Type {
		case diffpatch.DiffDelete:
			op = '-'
		case diffpatch.DiffInsert:
			op = '+'
		default:
			op = ' '
		}
		for _, ln := range splitLines(d.Text) {
			res = append(res, DiffLine{Op: op, Text: ln})
		}
	}
	return res
}

// DiffString renders the line diff from a to b, one line per diff line,
// under a header naming both sides. It returns "" if a and b are equal.
func DiffString(name string, a, b string) string {
	lines := Diff(a, b)
	if lines == nil {
		return ""
	}
	sb := &strings.Builder{}
	sb.WriteString("--- " + name + "\n")
	sb.WriteString("+++ " + name + " (formatted)\n")
	for _, ln := range lines {
		sb.WriteString(ln.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
