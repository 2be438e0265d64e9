package parser

import "github.com/sqlshape/mysqlselect/token"

// expression is the top precedence level: a predicate_expression optionally
// followed by IS [NOT] NULL/TRUE/FALSE/UNKNOWN, a comparison (optionally
// against ALL/ANY (subquery)), or one of OR/AND/XOR/-> joining another
// expression. The combinators recurse back into expression so chains like
// `a = 1 AND b = 2` parse left-to-right through repeated tail calls.
func (p *Parser) expression() bool {
	if !p.predicateExpression() {
		return false
	}
	return p.expressionTail()
}

func (p *Parser) expressionTail() bool {
	switch {
	case p.accept(token.K_OR):
		return p.expression()
	case p.accept(token.K_AND):
		return p.expression()
	case p.accept(token.K_XOR):
		return p.expression()
	case p.accept(token.ARROW):
		return p.expression()
	case p.is(token.COMPARISON_OPERATOR):
		p.consume()
		if p.is(token.K_ALL) || p.is(token.K_ANY) {
			p.consume()
			if !p.expect(token.LPAREN) || !p.stmt() || !p.expect(token.RPAREN) {
				return false
			}
		} else if !p.predicateExpression() {
			return false
		}
		return p.expressionTail()
	case p.is(token.K_IS):
		p.consume()
		p.accept(token.K_NOT)
		switch {
		case p.accept(token.K_NULL):
		case p.accept(token.K_TRUE):
		case p.accept(token.K_FALSE):
		case p.accept(token.K_UNKNOWN):
		default:
			return false
		}
		return p.expressionTail()
	default:
		return true
	}
}

// predicateExpression layers SOUNDS LIKE, and the NOT-prefixable REGEXP /
// BETWEEN ... AND ... / LIKE [ESCAPE ...] / IN (...) predicates, over an
// arithm_expression operand.
func (p *Parser) predicateExpression() bool {
	if !p.arithmExpression() {
		return false
	}
	if p.accept(token.K_SOUNDS) {
		if !p.expect(token.K_LIKE) || !p.expression() {
			return false
		}
	}
	negated := p.accept(token.K_NOT)
	switch {
	case p.accept(token.K_REGEXP):
		return p.expression()
	case p.accept(token.K_BETWEEN):
		if !p.predicateExpression() || !p.expect(token.K_AND) || !p.expression() {
			return false
		}
		return true
	case p.accept(token.K_LIKE):
		if !p.expression() {
			return false
		}
		if p.accept(token.K_ESCAPE) {
			if !p.expression() {
				return false
			}
		}
		return true
	case p.accept(token.K_IN):
		if !p.expect(token.LPAREN) || !p.expression() {
			return false
		}
		for p.accept(token.COMMA) {
			if !p.expression() {
				return false
			}
		}
		return p.expect(token.RPAREN)
	default:
		return !negated
	}
}

// arithmExpression is a simple_expression, optionally followed by a COLLATE
// identifier tail or one binary arithmetic/bitwise operator whose right
// operand recurses into the full expression grammar.
func (p *Parser) arithmExpression() bool {
	if !p.simpleExpression() {
		return false
	}
	switch {
	case p.accept(token.K_COLLATE):
		return p.identifier()
	case p.isArithmeticOp():
		p.consume()
		return p.expression()
	default:
		return true
	}
}

func (p *Parser) isArithmeticOp() bool {
	switch p.peekKind() {
	case token.PIPE, token.AMP, token.SHL, token.SHR, token.PLUS, token.MINUS,
		token.STAR, token.SLASH, token.K_DIV, token.K_MOD, token.PERCENT, token.CARET:
		return true
	default:
		return false
	}
}

// simpleExpression covers every leaf and prefix form: literals, variables,
// placeholders, parenthesised expression lists, EXISTS/subqueries, function
// calls, unary prefixes, INTERVAL, CASE, MATCH...AGAINST, and ROW(...).
func (p *Parser) simpleExpression() bool {
	switch {
	case p.is(token.NUMBER), p.is(token.BIT_VALUE), p.is(token.HEX_VALUE),
		p.is(token.K_TRUE), p.is(token.K_FALSE), p.is(token.K_NULL),
		p.is(token.VARIABLE), p.is(token.STAR):
		p.consume()
		return true
	case p.is(token.QUALIFIED_IDENT), p.is(token.WILDCARD_IDENT):
		return p.consumeIdentQualifiedOrWildcard()
	case p.is(token.STRING):
		p.consumeStringLiteral()
		if p.accept(token.K_COLLATE) {
			return p.identifier()
		}
		return true
	case p.is(token.K_DATE), p.is(token.K_TIME), p.is(token.K_TIMESTAMP):
		p.consume()
		return p.expect(token.STRING)
	case p.is(token.PLACEHOLDER):
		tok := p.consume()
		p.registerPlaceholder(tok.Offset)
		return true
	case p.is(token.LPAREN):
		p.consume()
		if !p.expression() {
			return false
		}
		for p.accept(token.COMMA) {
			if !p.expression() {
				return false
			}
		}
		return p.expect(token.RPAREN)
	case p.is(token.K_EXISTS):
		p.consume()
		if !p.expect(token.LPAREN) || !p.stmt() {
			return false
		}
		return p.expect(token.RPAREN)
	case p.is(token.K_SELECT):
		return p.stmt()
	case p.is(token.K_INTERVAL):
		p.consume()
		if !p.expression() {
			return false
		}
		return p.expect(token.INTERVAL_UNIT_TOK)
	case p.is(token.K_CASE):
		return p.caseExpression()
	case p.is(token.K_MATCH):
		return p.matchAgainstExpression()
	case p.is(token.K_ROW):
		p.consume()
		if !p.expect(token.LPAREN) || !p.expression() {
			return false
		}
		for p.accept(token.COMMA) {
			if !p.expression() {
				return false
			}
		}
		return p.expect(token.RPAREN)
	case p.is(token.PLUS), p.is(token.MINUS), p.is(token.BANG), p.is(token.TILDE),
		p.is(token.K_NOT), p.is(token.K_BINARY):
		p.consume()
		return p.expression()
	case p.is(token.IDENT):
		return p.identifierOrFunctionCall()
	default:
		return false
	}
}

// consumeStringLiteral swallows a run of adjacent string literals, which
// MySQL concatenates (e.g. charset-prefixed strings placed side by side).
func (p *Parser) consumeStringLiteral() {
	p.consume()
	for p.is(token.STRING) {
		p.consume()
	}
}

func (p *Parser) identifierOrFunctionCall() bool {
	p.consume()
	if p.accept(token.LPAREN) {
		if !p.is(token.RPAREN) {
			if !p.expression() {
				return false
			}
			for p.accept(token.COMMA) {
				if !p.expression() {
					return false
				}
			}
		}
		return p.expect(token.RPAREN)
	}
	return true
}

// caseExpression: CASE (expression)? (WHEN expression THEN expression)+
// (ELSE expression)? END.
func (p *Parser) caseExpression() bool {
	p.consume()
	if !p.is(token.K_WHEN) {
		if !p.expression() {
			return false
		}
	}
	if !p.is(token.K_WHEN) {
		return false
	}
	for p.accept(token.K_WHEN) {
		if !p.expression() || !p.expect(token.K_THEN) || !p.expression() {
			return false
		}
	}
	if p.accept(token.K_ELSE) {
		if !p.expression() {
			return false
		}
	}
	return p.expect(token.K_END)
}

// matchAgainstExpression: MATCH (expression (, expression)*) AGAINST
// (arithm_expression [WITH QUERY EXPANSION | IN (BOOLEAN MODE | NATURAL
// LANGUAGE MODE [WITH QUERY EXPANSION])]).
func (p *Parser) matchAgainstExpression() bool {
	p.consume()
	if !p.expect(token.LPAREN) || !p.expression() {
		return false
	}
	for p.accept(token.COMMA) {
		if !p.expression() {
			return false
		}
	}
	if !p.expect(token.RPAREN) || !p.expect(token.K_AGAINST) || !p.expect(token.LPAREN) {
		return false
	}
	if !p.arithmExpression() {
		return false
	}
	switch {
	case p.accept(token.K_WITH):
		if !p.expect(token.K_QUERY) || !p.expect(token.K_EXPANSION) {
			return false
		}
	case p.accept(token.K_IN):
		switch {
		case p.accept(token.K_BOOLEAN):
			if !p.expect(token.K_MODE) {
				return false
			}
		case p.accept(token.K_NATURAL):
			if !p.expect(token.K_LANGUAGE) || !p.expect(token.K_MODE) {
				return false
			}
			if p.accept(token.K_WITH) {
				if !p.expect(token.K_QUERY) || !p.expect(token.K_EXPANSION) {
					return false
				}
			}
		default:
			return false
		}
	}
	return p.expect(token.RPAREN)
}
