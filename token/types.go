package token

import "fmt"

type TokenType int

const (
	TUnknown TokenType = iota
	TComment
	TClassMarker
	TClassName
	TLCurl
	TRCurl
	TIdentifier
	TColon
	TRawValue
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TUnknown:     "TUnknown",
		TComment:     "TComment",
		TClassMarker: "TClassMarker",
		TClassName:   "TClassName",
		TLCurl:       "TLCurl",
		TRCurl:       "TRCurl",
		TIdentifier:  "TIdentifier",
		TColon:       "TColon",
		TRawValue:    "TRawValue",
	}[t]
	if ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexical element of a GML document. Bytes is the exact source
// text of the token, Start and End delimit it in the document.
type Token struct {
	Type  TokenType
	Bytes []byte
	Start *Pos
	End   *Pos
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Start.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}
