// Package parser implements a recursive-descent recognizer for the MySQL
// SELECT grammar, capturing each top-level clause's verbatim source span
// and placeholder offsets as it goes.
package parser

import (
	"sync"

	"github.com/sqlshape/mysqlselect/lexer"
	"github.com/sqlshape/mysqlselect/result"
	"github.com/sqlshape/mysqlselect/token"
)

// Parser drives a Lexer over a MySQL SELECT statement. It builds no AST:
// each grammar production returns whether it matched, and section tracking
// (tracking.go) records clause spans and placeholders as a side effect.
type Parser struct {
	lx  *lexer.Lexer
	buf []byte
	res *result.Result

	tracking trackingState
}

var parserPool = sync.Pool{
	New: func() any { return &Parser{} },
}

// New creates a Parser over buf.
func New(buf []byte) *Parser {
	return &Parser{lx: lexer.New(buf), buf: buf}
}

// Get returns a Parser from the pool, reset over buf.
func Get(buf []byte) *Parser {
	p := parserPool.Get().(*Parser)
	p.Reset(buf)
	return p
}

// Put returns p and its lexer to their pools.
func Put(p *Parser) {
	if p.lx != nil {
		lexer.Put(p.lx)
		p.lx = nil
	}
	parserPool.Put(p)
}

// Reset rewinds p to parse buf from the start.
func (p *Parser) Reset(buf []byte) {
	p.lx = lexer.Get(buf)
	p.buf = buf
	p.res = nil
	p.tracking = trackingState{}
}

// ParseError reports the parse outcome's status. The grammar has no error
// recovery, so there is no failure site to point at — only the taxonomy.
type ParseError struct {
	Status  result.Status
	Message string
}

func (e *ParseError) Error() string {
	return e.Status.Message() + ": " + e.Message
}

// Parse runs the stmt production over p's buffer and, on success, checks
// that no input remains.
func (p *Parser) Parse() (*result.Result, error) {
	p.res = &result.Result{}
	if !p.stmt() {
		return nil, &ParseError{Status: result.InvalidSyntax, Message: "syntax error"}
	}
	if p.lx.Has() {
		return nil, &ParseError{Status: result.InvalidSyntax, Message: "unexpected trailing input"}
	}
	return p.res, nil
}

// Token navigation helpers.

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) peekKind() token.Kind {
	return p.lx.Peek().Kind
}

func (p *Parser) peekNextKind() token.Kind {
	return p.lx.PeekNext().Kind
}

func (p *Parser) is(k token.Kind) bool {
	return p.peekKind() == k
}

func (p *Parser) consume() token.Token {
	return p.lx.Consume()
}

// accept consumes and returns true if the current token has kind k;
// otherwise it leaves the stream untouched and returns false.
func (p *Parser) accept(k token.Kind) bool {
	if p.is(k) {
		p.consume()
		return true
	}
	return false
}

// expect is accept with intent: used where the grammar requires k.
func (p *Parser) expect(k token.Kind) bool {
	return p.accept(k)
}

func (p *Parser) text(tok token.Token) []byte {
	return tok.Text(p.buf)
}

func (p *Parser) identifier() bool {
	return p.expect(token.IDENT)
}

// countIdentSegments counts the dot-separated segments of a qualified or
// wildcard identifier's verbatim text, ignoring dots inside backtick
// quoting.
func countIdentSegments(text []byte) int {
	segments := 1
	inBacktick := false
	for _, b := range text {
		switch b {
		case '`':
			inBacktick = !inBacktick
		case '.':
			if !inBacktick {
				segments++
			}
		}
	}
	return segments
}

// consumeIdentOrQualified accepts a plain or dot-qualified identifier (but
// not a wildcard identifier), rejecting qualified chains longer than 3
// segments per the grammar's parser-level enforcement.
func (p *Parser) consumeIdentOrQualified() bool {
	tok := p.peek()
	switch tok.Kind {
	case token.IDENT:
		p.consume()
		return true
	case token.QUALIFIED_IDENT:
		if countIdentSegments(p.text(tok)) > 3 {
			return false
		}
		p.consume()
		return true
	default:
		return false
	}
}

// consumeIdentQualifiedOrWildcard is consumeIdentOrQualified plus
// WILDCARD_IDENT, for expression-leaf contexts where `t.*` is valid.
func (p *Parser) consumeIdentQualifiedOrWildcard() bool {
	tok := p.peek()
	switch tok.Kind {
	case token.IDENT:
		p.consume()
		return true
	case token.QUALIFIED_IDENT, token.WILDCARD_IDENT:
		if countIdentSegments(p.text(tok)) > 3 {
			return false
		}
		p.consume()
		return true
	default:
		return false
	}
}

func (p *Parser) identList() bool {
	if !p.identifier() {
		return false
	}
	for p.accept(token.COMMA) {
		if !p.identifier() {
			return false
		}
	}
	return true
}
