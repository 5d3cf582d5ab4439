package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/gml/token"
)

var (
	ErrParse = errors.New("parse error")

	ErrMissingMainClass              = fmt.Errorf("%w: missing main class", ErrParse)
	ErrUnexpectedDataBeforeMainClass = fmt.Errorf("%w: unexpected data before main class", ErrParse)
	ErrDataAfterMainClass            = fmt.Errorf("%w: data not allowed after main class", ErrParse)
	ErrExpectedClassMarker           = fmt.Errorf("%w: expected class marker", ErrParse)
	ErrExpectedClassName             = fmt.Errorf("%w: expected class name", ErrParse)
	ErrExpectedColon                 = fmt.Errorf("%w: expected ':'", ErrParse)
	ErrExpectedClosingBrace          = fmt.Errorf("%w: expected '}'", ErrParse)
	ErrEmptyPropertyName             = fmt.Errorf("%w: expected non-empty property name", ErrParse)
	ErrUnexpectedToken               = fmt.Errorf("%w: unexpected token", ErrParse)
)

// Error is a parse error at a position. Tok is the offending token, nil if
// the input ended early.
type Error struct {
	Err error
	Pos *token.Pos
	Tok *token.Token
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Tok == nil {
		return fmt.Sprintf("%s at end of input %s", e.Err.Error(), e.Pos)
	}
	return fmt.Sprintf("%s: got %s %q at %s", e.Err.Error(), e.Tok.Type, e.Tok.Bytes, e.Pos)
}
