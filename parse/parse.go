package parse

import (
	"github.com/signadot/gml/ast"
	"github.com/signadot/gml/debug"
	"github.com/signadot/gml/token"
)

// Parse parses a GML document.
func Parse(d []byte, opts ...ParseOption) (*ast.Document, error) {
	return ParseTokens(token.Tokenize(nil, d), opts...)
}

func ParseString(s string, opts ...ParseOption) (*ast.Document, error) {
	return Parse([]byte(s), opts...)
}

// ParseTokens parses a GML document from the tokens of a complete input.
// The tokens are consumed in order with one token of lookahead.
func ParseTokens(toks []token.Token, opts ...ParseOption) (*ast.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{toks: toks, opts: pOpts}
	doc, err := p.parseDocument()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: %v\n", err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %d tokens, document:\n%v", len(toks), doc)
	}
	return doc, nil
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

func (p *parser) peek() *token.Token {
	if p.i >= len(p.toks) {
		return nil
	}
	return &p.toks[p.i]
}

func (p *parser) peekIs(tt token.TokenType) bool {
	tok := p.peek()
	return tok != nil && tok.Type == tt
}

func (p *parser) next() *token.Token {
	tok := p.peek()
	if tok != nil {
		p.i++
	}
	return tok
}

func (p *parser) errAt(err error, tok *token.Token) error {
	e := &Error{Err: err, Tok: tok}
	switch {
	case tok != nil:
		e.Pos = tok.Start
	case len(p.toks) > 0:
		e.Pos = p.toks[len(p.toks)-1].End
	}
	return e
}

func (p *parser) trackPos(node ast.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

func (p *parser) comment() *ast.Comment {
	tok := p.next()
	c := ast.NewComment(string(tok.Bytes))
	p.trackPos(c, tok.Start)
	return c
}

func (p *parser) parseDocument() (*ast.Document, error) {
	doc := &ast.Document{}
	for p.peekIs(token.TComment) {
		doc.LeadingComments = append(doc.LeadingComments, p.comment())
	}
	tok := p.peek()
	if tok == nil {
		return nil, p.errAt(ErrMissingMainClass, nil)
	}
	if tok.Type != token.TClassMarker {
		return nil, p.errAt(ErrUnexpectedDataBeforeMainClass, tok)
	}
	root, err := p.parseObject()
	if err != nil {
		return nil, err
	}
	doc.Root = root
	for tok := p.peek(); tok != nil; tok = p.peek() {
		if tok.Type != token.TComment {
			return nil, p.errAt(ErrDataAfterMainClass, tok)
		}
		doc.TrailingComments = append(doc.TrailingComments, p.comment())
	}
	return doc, nil
}

// parseObject parses a class reference and its optional body.
//
// Comments in the body are held until the next entry is known: they go to
// the properties before a key and to the children before an object.
// Comments ending the body go to the children.
func (p *parser) parseObject() (*ast.Object, error) {
	obj := &ast.Object{}
	for p.peekIs(token.TComment) {
		obj.AddProperty(p.comment())
	}
	marker := p.peek()
	if marker == nil || marker.Type != token.TClassMarker {
		return nil, p.errAt(ErrExpectedClassMarker, marker)
	}
	p.i++
	name := p.peek()
	if name == nil || name.Type != token.TClassName || len(name.Bytes) == 0 {
		return nil, p.errAt(ErrExpectedClassName, name)
	}
	p.i++
	obj.Name = string(name.Bytes)
	p.trackPos(obj, marker.Start)
	if debug.Parse() {
		debug.Logf("parse: object %s at %s\n", obj.Name, marker.Start)
	}
	if !p.peekIs(token.TLCurl) {
		return obj, nil
	}
	p.i++

	var pending []*ast.Comment
	for {
		tok := p.peek()
		if tok == nil || tok.Type == token.TRCurl {
			break
		}
		switch tok.Type {
		case token.TClassMarker:
			for _, c := range pending {
				obj.AddChild(c)
			}
			pending = nil
			child, err := p.parseObject()
			if err != nil {
				return nil, err
			}
			obj.AddChild(child)
		case token.TIdentifier:
			for _, c := range pending {
				obj.AddProperty(c)
			}
			pending = nil
			kv, err := p.parseKeyValue()
			if err != nil {
				return nil, err
			}
			obj.AddProperty(kv)
		case token.TComment:
			pending = append(pending, p.comment())
		default:
			return nil, p.errAt(ErrUnexpectedToken, tok)
		}
	}
	for _, c := range pending {
		obj.AddChild(c)
	}

	tok := p.peek()
	if tok == nil || tok.Type != token.TRCurl {
		return nil, p.errAt(ErrExpectedClosingBrace, tok)
	}
	p.i++
	return obj, nil
}

func (p *parser) parseKeyValue() (*ast.KeyValuePair, error) {
	keyTok := p.next()
	if len(keyTok.Bytes) == 0 {
		return nil, p.errAt(ErrEmptyPropertyName, keyTok)
	}
	colon := p.peek()
	if colon == nil || colon.Type != token.TColon {
		return nil, p.errAt(ErrExpectedColon, colon)
	}
	p.i++

	var val ast.Value
	tok := p.peek()
	switch {
	case tok == nil:
		return nil, p.errAt(ErrUnexpectedToken, nil)
	case tok.Type == token.TClassMarker:
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		val = obj
	case tok.Type == token.TRawValue:
		p.i++
		s := ast.NewScalar(string(tok.Bytes))
		p.trackPos(s, tok.Start)
		val = s
	default:
		return nil, p.errAt(ErrUnexpectedToken, tok)
	}
	kv := ast.NewKeyValuePair(string(keyTok.Bytes), val)
	p.trackPos(kv, keyTok.Start)
	return kv, nil
}
