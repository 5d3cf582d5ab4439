package token

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf8"
)

// PosDoc is the (normalized) input shared by all positions of one
// tokenization. It records the offsets of newlines so that a byte offset
// can be resolved into a line and column.
type PosDoc struct {
	d []byte
	n []int
}

// NewPosDoc creates a PosDoc for d, which is expected to already have
// "\r\n" sequences normalized.
func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.nl(i)
		}
	}
	return p
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	if i >= len(p.d) || p.d[i] != '\n' {
		panic("newline offset does not refer to a newline")
	}
	p.n = append(p.n, i)
}

// Bytes returns the document the positions refer to.
func (p *PosDoc) Bytes() []byte {
	return p.d
}

// LineCol returns the 0-based line and column of offset off. The line
// increments and the column resets on every newline before off; the
// column counts runes.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	start := 0
	if di > 0 {
		start = p.n[di-1] + 1
	}
	end := min(off, len(p.d))
	if start >= end {
		return di, max(0, off-start)
	}
	return di, utf8.RuneCount(p.d[start:end])
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

func (p *PosDoc) End() *Pos {
	return p.Pos(len(p.d))
}

// Pos is a position in a document.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p == nil || p.D == nil {
		return 0, 0
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p *Pos) String() string {
	if p == nil {
		return "<unknown position>"
	}
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		lo := max(0, min(p.I-5, len(p.D.d)))
		hi := max(lo, min(p.I+5, len(p.D.d)))
		sample = string(p.D.d[lo:hi])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
