// Package lexer provides a lexical scanner for MySQL-dialect SELECT
// statements, exposing a pull interface with a three-slot token window.
package lexer

import (
	"strings"
	"sync"

	"github.com/sqlshape/mysqlselect/token"
)

// Lexer tokenizes a MySQL SELECT statement. It never copies source bytes:
// every Token it yields is a (Kind, Offset, Length) view into buf.
type Lexer struct {
	buf []byte
	pos int

	current    token.Token
	hasCurrent bool
	previous   token.Token
	hasPrevious bool
	next       token.Token
	hasNext    bool

	done           bool
	tokensConsumed int
}

var lexerPool = sync.Pool{
	New: func() any { return &Lexer{} },
}

// New creates a Lexer over buf. buf must outlive the Lexer.
func New(buf []byte) *Lexer {
	return &Lexer{buf: buf}
}

// Get returns a Lexer from the pool, reset over buf.
func Get(buf []byte) *Lexer {
	l := lexerPool.Get().(*Lexer)
	l.Reset(buf)
	return l
}

// Put returns l to the pool.
func Put(l *Lexer) {
	lexerPool.Put(l)
}

// Reset rewinds l to scan buf from the start.
func (l *Lexer) Reset(buf []byte) {
	l.buf = buf
	l.pos = 0
	l.current = token.Token{}
	l.hasCurrent = false
	l.previous = token.Token{}
	l.hasPrevious = false
	l.next = token.Token{}
	l.hasNext = false
	l.done = false
	l.tokensConsumed = 0
}

// Has reports whether the stream has a non-EOF token still to consume.
func (l *Lexer) Has() bool {
	l.ensureCurrent()
	return l.current.Kind != token.EOF
}

// Peek returns the current token without consuming it, lexing lazily.
func (l *Lexer) Peek() token.Token {
	l.ensureCurrent()
	return l.current
}

// PeekNext returns the token after current, lexing lazily.
func (l *Lexer) PeekNext() token.Token {
	l.ensureNext()
	return l.next
}

// PeekPrevious returns the last consumed token. ok is false before the
// first Consume call.
func (l *Lexer) PeekPrevious() (tok token.Token, ok bool) {
	return l.previous, l.hasPrevious
}

// Consume returns the current token and advances the window.
func (l *Lexer) Consume() token.Token {
	l.ensureCurrent()

	tok := l.current
	l.hasCurrent = false
	l.tokensConsumed++

	l.previous = tok
	l.hasPrevious = true

	if l.hasNext {
		l.current = l.next
		l.hasNext = false
		l.hasCurrent = true
	}

	return tok
}

// TokensConsumed is a monotonic count of tokens returned by Consume, used
// by the parser's section tracking to detect whether a production advanced.
func (l *Lexer) TokensConsumed() int {
	return l.tokensConsumed
}

func (l *Lexer) ensureCurrent() {
	if l.hasCurrent || l.done {
		return
	}
	tok := l.readNextSignificant()
	l.current = tok
	l.hasCurrent = true
}

func (l *Lexer) ensureNext() {
	if l.hasNext || l.done {
		return
	}
	l.ensureCurrent()
	tok := l.readNextSignificant()
	l.next = tok
	l.hasNext = true
}

// readNextSignificant skips whitespace and comments, lexes one token, and
// marks the lexer done on EOF or an unknown token.
func (l *Lexer) readNextSignificant() token.Token {
	tok := l.scan()
	if tok.Kind == token.EOF || tok.Kind == token.ILLEGAL {
		l.done = true
	}
	return tok
}

func (l *Lexer) make(kind token.Kind, start int) token.Token {
	return token.Token{Kind: kind, Offset: start, Length: l.pos - start}
}

func (l *Lexer) scan() token.Token {
	l.skipWhitespaceAndComments()

	start := l.pos
	if l.pos >= len(l.buf) {
		return token.Token{Kind: token.EOF, Offset: start, Length: 0}
	}

	ch := l.buf[l.pos]

	switch ch {
	case ',':
		l.pos++
		return l.make(token.COMMA, start)
	case '(':
		l.pos++
		return l.make(token.LPAREN, start)
	case ')':
		l.pos++
		return l.make(token.RPAREN, start)
	case '+':
		l.pos++
		return l.make(token.PLUS, start)
	case '-':
		l.pos++
		if l.pos < len(l.buf) && l.buf[l.pos] == '>' {
			l.pos++
			return l.make(token.ARROW, start)
		}
		return l.make(token.MINUS, start)
	case '~':
		l.pos++
		return l.make(token.TILDE, start)
	case '*':
		l.pos++
		return l.make(token.STAR, start)
	case '/':
		l.pos++
		return l.make(token.SLASH, start)
	case '%':
		l.pos++
		return l.make(token.PERCENT, start)
	case '^':
		l.pos++
		return l.make(token.CARET, start)
	case '.':
		if l.pos+1 < len(l.buf) && isDigit(l.buf[l.pos+1]) {
			return l.scanNumber(start)
		}
		l.pos++
		return l.make(token.DOT, start)
	case '?':
		l.pos++
		return l.make(token.PLACEHOLDER, start)
	case '\'':
		return l.scanString('\'', start, token.STRING)
	case '"':
		return l.scanString('"', start, token.STRING)
	case '`':
		return l.scanIdentChain(start)
	case '@':
		l.pos++
		if l.pos < len(l.buf) && l.buf[l.pos] == '@' {
			l.pos++
		}
		for l.pos < len(l.buf) && isIdentPart(l.buf[l.pos]) {
			l.pos++
		}
		return l.make(token.VARIABLE, start)
	case '=':
		l.pos++
		return l.make(token.COMPARISON_OPERATOR, start)
	case '!':
		l.pos++
		if l.pos < len(l.buf) && l.buf[l.pos] == '=' {
			l.pos++
			return l.make(token.COMPARISON_OPERATOR, start)
		}
		return l.make(token.BANG, start)
	case '<':
		l.pos++
		if l.pos < len(l.buf) {
			switch l.buf[l.pos] {
			case '=':
				l.pos++
				if l.pos < len(l.buf) && l.buf[l.pos] == '>' {
					l.pos++
				}
				return l.make(token.COMPARISON_OPERATOR, start)
			case '>':
				l.pos++
				return l.make(token.COMPARISON_OPERATOR, start)
			case '<':
				l.pos++
				return l.make(token.SHL, start)
			}
		}
		return l.make(token.COMPARISON_OPERATOR, start)
	case '>':
		l.pos++
		if l.pos < len(l.buf) {
			switch l.buf[l.pos] {
			case '=':
				l.pos++
				return l.make(token.COMPARISON_OPERATOR, start)
			case '>':
				l.pos++
				return l.make(token.SHR, start)
			}
		}
		return l.make(token.COMPARISON_OPERATOR, start)
	case '&':
		l.pos++
		if l.pos < len(l.buf) && l.buf[l.pos] == '&' {
			l.pos++
			return l.make(token.K_AND, start)
		}
		return l.make(token.AMP, start)
	case '|':
		l.pos++
		if l.pos < len(l.buf) && l.buf[l.pos] == '|' {
			l.pos++
			return l.make(token.K_OR, start)
		}
		return l.make(token.PIPE, start)
	}

	if ch == 'b' || ch == 'B' {
		if l.pos+1 < len(l.buf) && l.buf[l.pos+1] == '\'' {
			l.pos++
			return l.scanString('\'', start, token.BIT_VALUE)
		}
	}
	if ch == 'x' || ch == 'X' {
		if l.pos+1 < len(l.buf) && l.buf[l.pos+1] == '\'' {
			l.pos++
			return l.scanString('\'', start, token.HEX_VALUE)
		}
	}

	if isIdentStart(ch) {
		return l.scanIdentChain(start)
	}

	if isDigit(ch) {
		return l.scanNumber(start)
	}

	l.pos++
	return token.Token{Kind: token.ILLEGAL, Offset: start, Length: l.pos - start}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.buf) {
		ch := l.buf[l.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.pos++
		case ch == '#':
			l.skipToLineEnd()
		case ch == '-' && l.pos+2 < len(l.buf) && l.buf[l.pos+1] == '-' &&
			(l.buf[l.pos+2] == ' ' || l.buf[l.pos+2] == '\t'):
			l.skipToLineEnd()
		case ch == '/' && l.pos+1 < len(l.buf) && l.buf[l.pos+1] == '*':
			l.pos += 2
			for l.pos < len(l.buf) {
				if l.buf[l.pos] == '*' && l.pos+1 < len(l.buf) && l.buf[l.pos+1] == '/' {
					l.pos += 2
					break
				}
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *Lexer) skipToLineEnd() {
	for l.pos < len(l.buf) && l.buf[l.pos] != '\n' {
		l.pos++
	}
}

// scanString scans a quoted run starting at the opening quote, honoring
// backslash escapes and doubled-quote escapes. If the run never closes it
// returns ILLEGAL, signalling an unterminated literal.
func (l *Lexer) scanString(quote byte, start int, kind token.Kind) token.Token {
	l.pos++ // opening quote
	for l.pos < len(l.buf) {
		ch := l.buf[l.pos]
		if ch == quote {
			if l.pos+1 < len(l.buf) && l.buf[l.pos+1] == quote {
				l.pos += 2
				continue
			}
			l.pos++
			return l.make(kind, start)
		}
		if ch == '\\' && l.pos+1 < len(l.buf) {
			l.pos += 2
			continue
		}
		l.pos++
	}
	return token.Token{Kind: token.ILLEGAL, Offset: start, Length: l.pos - start}
}

// scanIdentChain scans a backtick-quoted or bare identifier, follows any
// `.`-joined qualification chain, and recognizes trailing `.*` wildcards
// and leading charset-prefixed string literals (utf8'a').
func (l *Lexer) scanIdentChain(start int) token.Token {
	if l.buf[l.pos] == '`' {
		if !l.scanBacktickRun() {
			return token.Token{Kind: token.ILLEGAL, Offset: start, Length: l.pos - start}
		}
		return l.continueIdentChain(start, true, 1)
	}

	l.scanPlainIdentRun()

	if l.pos < len(l.buf) && l.buf[l.pos] == '\'' {
		// charset-prefixed string literal, e.g. utf8'hello'
		return l.scanString('\'', start, token.STRING)
	}

	return l.continueIdentChain(start, false, 1)
}

func (l *Lexer) continueIdentChain(start int, firstIsBacktick bool, segments int) token.Token {
	wildcard := false
	for l.pos < len(l.buf) && l.buf[l.pos] == '.' {
		if l.pos+1 < len(l.buf) && l.buf[l.pos+1] == '*' {
			l.pos += 2
			segments++
			wildcard = true
			break
		}
		if l.pos+1 < len(l.buf) && (isIdentStart(l.buf[l.pos+1]) || l.buf[l.pos+1] == '`') {
			l.pos++ // dot
			if l.buf[l.pos] == '`' {
				if !l.scanBacktickRun() {
					return token.Token{Kind: token.ILLEGAL, Offset: start, Length: l.pos - start}
				}
			} else {
				l.scanPlainIdentRun()
			}
			segments++
			continue
		}
		break
	}

	switch {
	case wildcard:
		return l.make(token.WILDCARD_IDENT, start)
	case segments > 1:
		return l.make(token.QUALIFIED_IDENT, start)
	case firstIsBacktick:
		return l.make(token.IDENT, start)
	default:
		text := strings.ToLower(string(l.buf[start:l.pos]))
		return l.make(token.LookupIdent(text), start)
	}
}

func (l *Lexer) scanPlainIdentRun() {
	for l.pos < len(l.buf) && isIdentPart(l.buf[l.pos]) {
		l.pos++
	}
}

// scanBacktickRun scans a backtick-quoted identifier segment, honoring the
// doubled-backtick escape. Reports false if it never closes.
func (l *Lexer) scanBacktickRun() bool {
	l.pos++ // opening `
	for l.pos < len(l.buf) {
		if l.buf[l.pos] == '`' {
			if l.pos+1 < len(l.buf) && l.buf[l.pos+1] == '`' {
				l.pos += 2
				continue
			}
			l.pos++
			return true
		}
		l.pos++
	}
	return false
}

// scanNumber scans the four accepted shapes (N, N.N, .N, N.) with an
// optional exponent, or a 0x-prefixed hex literal.
func (l *Lexer) scanNumber(start int) token.Token {
	if l.buf[l.pos] == '0' && l.pos+1 < len(l.buf) && (l.buf[l.pos+1] == 'x' || l.buf[l.pos+1] == 'X') {
		l.pos += 2
		for l.pos < len(l.buf) && isHexDigit(l.buf[l.pos]) {
			l.pos++
		}
		return l.make(token.HEX_VALUE, start)
	}

	if l.buf[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.buf) && isDigit(l.buf[l.pos]) {
			l.pos++
		}
	} else {
		for l.pos < len(l.buf) && isDigit(l.buf[l.pos]) {
			l.pos++
		}
		if l.pos < len(l.buf) && l.buf[l.pos] == '.' {
			l.pos++
			for l.pos < len(l.buf) && isDigit(l.buf[l.pos]) {
				l.pos++
			}
		}
	}

	if l.pos < len(l.buf) && (l.buf[l.pos] == 'e' || l.buf[l.pos] == 'E') {
		p := l.pos + 1
		if p < len(l.buf) && (l.buf[p] == '+' || l.buf[p] == '-') {
			p++
		}
		if p < len(l.buf) && isDigit(l.buf[p]) {
			l.pos = p
			for l.pos < len(l.buf) && isDigit(l.buf[l.pos]) {
				l.pos++
			}
		}
	}

	return l.make(token.NUMBER, start)
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
