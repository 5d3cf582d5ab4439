package token

import (
	"bytes"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/gml/debug"
)

const eof = -1

type tkState struct {
	d   []byte
	i   int
	doc *PosDoc
	dst []Token
}

// Tokenize appends the tokens of src to dst and returns the result.
//
// "\r\n" is normalized to "\n" before scanning, so token bytes and
// positions refer to the normalized text. Tokenize never fails: characters
// which start no token are emitted as TUnknown.
func Tokenize(dst []Token, src []byte) []Token {
	d := bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	ts := &tkState{d: d, doc: NewPosDoc(d), dst: dst}
	start := len(dst)
	for ts.i < len(ts.d) {
		ts.next()
	}
	if debug.Tokenize() {
		PrintTokens(os.Stderr, ts.dst[start:], "tokenize")
	}
	return ts.dst
}

func (ts *tkState) next() {
	r, sz := ts.peek()
	switch {
	case unicode.IsSpace(r):
		ts.skipSpace()
	case r == '/' && ts.i+1 < len(ts.d) && ts.d[ts.i+1] == '/':
		start := ts.i
		ts.toEOL()
		ts.commit(TComment, start)
	case r == '{':
		ts.single(TLCurl)
	case r == '}':
		ts.single(TRCurl)
	case r == '@':
		ts.class()
	case isIdentStart(r):
		start := ts.i
		ts.i += sz
		ts.takeWhile(isIdentChar)
		ts.commit(TIdentifier, start)
	case r == ':':
		ts.single(TColon)
		ts.skipSpace()
		if r, _ := ts.peek(); r == '@' {
			ts.class()
			return
		}
		start := ts.i
		ts.toEOL()
		ts.commit(TRawValue, start)
	default:
		start := ts.i
		ts.i += sz
		ts.commit(TUnknown, start)
	}
}

// class scans a class reference: the '@' marker followed by the
// (possibly empty) run of class name characters.
func (ts *tkState) class() {
	ts.single(TClassMarker)
	start := ts.i
	ts.takeWhile(isClassChar)
	ts.commit(TClassName, start)
}

func (ts *tkState) peek() (rune, int) {
	if ts.i >= len(ts.d) {
		return eof, 0
	}
	c := ts.d[ts.i]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRune(ts.d[ts.i:])
}

func (ts *tkState) single(tt TokenType) {
	start := ts.i
	_, sz := ts.peek()
	ts.i += sz
	ts.commit(tt, start)
}

func (ts *tkState) takeWhile(f func(rune) bool) {
	for {
		r, sz := ts.peek()
		if r == eof || !f(r) {
			return
		}
		ts.i += sz
	}
}

func (ts *tkState) skipSpace() {
	ts.takeWhile(unicode.IsSpace)
}

func (ts *tkState) toEOL() {
	j := bytes.IndexByte(ts.d[ts.i:], '\n')
	if j == -1 {
		ts.i = len(ts.d)
		return
	}
	ts.i += j
}

func (ts *tkState) commit(tt TokenType, start int) {
	ts.dst = append(ts.dst, Token{
		Type:  tt,
		Bytes: ts.d[start:ts.i:ts.i],
		Start: ts.doc.Pos(start),
		End:   ts.doc.Pos(ts.i),
	})
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isClassChar(r rune) bool {
	return r == ':' || isIdentChar(r)
}
