// Package token provides tokenization support for GML markup.
//
// [Tokenize] is a function for tokenizing bytes. It never fails: every
// input byte is either skipped as whitespace or attributed to exactly one
// [Token], and malformed input surfaces later as a parse error.
//
// Each token carries its start and end [Pos], which resolve to a line and
// column through the [PosDoc] shared by all tokens of one input.
package token
