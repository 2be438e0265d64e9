package parser

import (
	"github.com/sqlshape/mysqlselect/result"
	"github.com/sqlshape/mysqlselect/token"
)

// stmt is the statement production. It requires SELECT, then runs each
// top-level clause in its fixed order, each wrapped in its own tracking
// scope so a clause that is absent leaves its section unpopulated.
//
// Every clause except modifiers/columns/flags names an introducing
// keyword (FROM, WHERE, GROUP BY, HAVING, ORDER BY, LIMIT, PROCEDURE,
// INTO) that stmt consumes itself, outside the tracked scope — captured
// sections hold the clause's body, not its introducing keyword, per the
// observed wire-format scenarios (e.g. a WHERE clause's section is
// `a = 1`, not `WHERE a = 1`). flags has no separable body (its content
// *is* "FOR UPDATE" or "LOCK IN SHARE MODE"), so it tracks its own
// keyword.
func (p *Parser) stmt() bool {
	if !p.expect(token.K_SELECT) {
		return false
	}
	if !p.track(result.Modifiers, p.modifiers) {
		return false
	}
	if !p.track(result.Columns, p.columns) {
		return false
	}
	if p.is(token.K_INTO) {
		p.consume()
		if !p.track(result.FirstInto, p.intoBody) {
			return false
		}
	}
	if p.is(token.K_FROM) {
		p.consume()
		if !p.track(result.Tables, p.tableList) {
			return false
		}
	}
	if p.is(token.K_WHERE) {
		p.consume()
		if !p.track(result.Where, p.expression) {
			return false
		}
	}
	if p.is(token.K_GROUP) {
		p.consume()
		if !p.expect(token.K_BY) {
			return false
		}
		if !p.track(result.GroupBy, p.orderableExprList) {
			return false
		}
	}
	if p.is(token.K_HAVING) {
		p.consume()
		if !p.track(result.Having, p.expression) {
			return false
		}
	}
	if p.is(token.K_ORDER) {
		p.consume()
		if !p.expect(token.K_BY) {
			return false
		}
		if !p.track(result.OrderBy, p.orderableExprList) {
			return false
		}
	}
	if p.is(token.K_LIMIT) {
		p.consume()
		if !p.track(result.Limit, p.limitBody) {
			return false
		}
	}
	if p.is(token.K_PROCEDURE) {
		p.consume()
		if !p.track(result.Procedure, p.procedureBody) {
			return false
		}
	}
	if p.is(token.K_INTO) {
		p.consume()
		if !p.track(result.SecondInto, p.intoBody) {
			return false
		}
	}
	if p.is(token.K_FOR) || p.is(token.K_LOCK) {
		if !p.track(result.Flags, p.flagsClause) {
			return false
		}
	}
	return true
}

func (p *Parser) modifiers() bool {
	switch {
	case p.accept(token.K_ALL):
	case p.accept(token.K_DISTINCT):
	case p.accept(token.K_DISTINCTROW):
	}
	p.accept(token.K_HIGH_PRIORITY)
	p.accept(token.K_STRAIGHT_JOIN)
	p.accept(token.K_SQL_SMALL_RESULT)
	p.accept(token.K_SQL_BIG_RESULT)
	p.accept(token.K_SQL_BUFFER_RESULT)
	switch {
	case p.accept(token.K_SQL_CACHE):
	case p.accept(token.K_SQL_NO_CACHE):
	case p.accept(token.K_SQL_CALC_FOUND_ROWS):
	}
	return true
}

func (p *Parser) columns() bool {
	if !p.columnExpr() {
		return false
	}
	for p.accept(token.COMMA) {
		if !p.columnExpr() {
			return false
		}
	}
	return true
}

func (p *Parser) columnExpr() bool {
	if !p.expression() {
		return false
	}
	return p.columnAlias()
}

func (p *Parser) columnAlias() bool {
	if p.accept(token.K_AS) {
		return p.identifier()
	}
	if p.is(token.IDENT) {
		p.consume()
	}
	return true
}

// intoBody handles the shared body of the first INTO (before FROM) and
// second INTO (after PROCEDURE) clauses, whose introducing INTO keyword
// stmt already consumed: OUTFILE with field/line formatting options,
// DUMPFILE, or a list of user variables.
func (p *Parser) intoBody() bool {
	switch {
	case p.accept(token.K_OUTFILE):
		if !p.expect(token.STRING) {
			return false
		}
		if p.accept(token.K_CHARACTER) {
			if !p.expect(token.K_SET) || !p.identifier() {
				return false
			}
		}
		if p.is(token.K_FIELDS) || p.is(token.K_COLUMNS) {
			p.consume()
			if p.accept(token.K_TERMINATED) {
				if !p.expect(token.K_BY) || !p.expect(token.STRING) {
					return false
				}
			}
			if p.is(token.K_ENCLOSED) || p.is(token.K_OPTIONALLY) {
				if p.accept(token.K_OPTIONALLY) {
					if !p.expect(token.K_ENCLOSED) {
						return false
					}
				} else {
					p.consume()
				}
				if !p.expect(token.K_BY) || !p.expect(token.STRING) {
					return false
				}
			}
			if p.accept(token.K_ESCAPED) {
				if !p.expect(token.K_BY) || !p.expect(token.STRING) {
					return false
				}
			}
		}
		if p.accept(token.K_LINES) {
			if p.accept(token.K_STARTING) {
				if !p.expect(token.K_BY) || !p.expect(token.STRING) {
					return false
				}
			}
			if p.accept(token.K_TERMINATED) {
				if !p.expect(token.K_BY) || !p.expect(token.STRING) {
					return false
				}
			}
		}
		return true
	case p.accept(token.K_DUMPFILE):
		return p.expect(token.STRING)
	case p.is(token.VARIABLE):
		p.consume()
		for p.accept(token.COMMA) {
			if !p.expect(token.VARIABLE) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// tableList is the body of the tables clause (FROM already consumed).
func (p *Parser) tableList() bool {
	if !p.joinedTable() {
		return false
	}
	for p.accept(token.COMMA) {
		if !p.joinedTable() {
			return false
		}
	}
	return true
}

// joinedTable is table_factor followed by zero or more join operators,
// each pulling in another table_factor.
func (p *Parser) joinedTable() bool {
	if !p.tableFactor() {
		return false
	}
	for {
		switch {
		case p.is(token.K_INNER), p.is(token.K_CROSS), p.is(token.K_STRAIGHT):
			p.consume()
			if !p.expect(token.K_JOIN) || !p.tableFactor() {
				return false
			}
			if !p.joinSpec() {
				return false
			}
		case p.is(token.K_JOIN):
			p.consume()
			if !p.tableFactor() {
				return false
			}
			if !p.joinSpec() {
				return false
			}
		case p.is(token.K_LEFT), p.is(token.K_RIGHT):
			p.consume()
			p.accept(token.K_OUTER)
			if !p.expect(token.K_JOIN) || !p.tableFactor() {
				return false
			}
			if !p.joinSpecRequired() {
				return false
			}
		case p.is(token.K_NATURAL):
			p.consume()
			switch {
			case p.accept(token.K_INNER):
			case p.accept(token.K_LEFT):
			case p.accept(token.K_RIGHT):
			}
			p.accept(token.K_OUTER)
			if !p.expect(token.K_JOIN) || !p.tableFactor() {
				return false
			}
		default:
			return true
		}
	}
}

// joinSpec is the optional ON expression / USING (ident-list) following a
// plain JOIN or INNER/CROSS/STRAIGHT JOIN.
func (p *Parser) joinSpec() bool {
	switch {
	case p.accept(token.K_ON):
		return p.expression()
	case p.accept(token.K_USING):
		if !p.expect(token.LPAREN) || !p.identList() {
			return false
		}
		return p.expect(token.RPAREN)
	default:
		return true
	}
}

// joinSpecRequired is joinSpec but mandatory, for LEFT/RIGHT JOIN.
func (p *Parser) joinSpecRequired() bool {
	if !p.is(token.K_ON) && !p.is(token.K_USING) {
		return false
	}
	return p.joinSpec()
}

func (p *Parser) tableFactor() bool {
	switch {
	case p.is(token.PLACEHOLDER):
		tok := p.consume()
		p.registerPlaceholder(tok.Offset)
		return true
	case p.is(token.LPAREN):
		return p.parenthesizedTableFactor()
	case p.is(token.IDENT), p.is(token.QUALIFIED_IDENT):
		return p.namedTableFactor()
	default:
		return false
	}
}

// parenthesizedTableFactor disambiguates a derived-table subquery from a
// parenthesised comma-list of plain table identifiers by checking for a
// leading SELECT.
func (p *Parser) parenthesizedTableFactor() bool {
	p.consume()
	if p.is(token.K_SELECT) {
		if !p.stmt() || !p.expect(token.RPAREN) {
			return false
		}
		p.tableAlias()
		if p.is(token.LPAREN) {
			return p.columnNameList()
		}
		return true
	}
	if !p.identifier() {
		return false
	}
	for p.accept(token.COMMA) {
		if !p.identifier() {
			return false
		}
	}
	return p.expect(token.RPAREN)
}

func (p *Parser) columnNameList() bool {
	p.consume()
	if !p.identList() {
		return false
	}
	return p.expect(token.RPAREN)
}

func (p *Parser) tableAlias() bool {
	if p.accept(token.K_AS) {
		return p.identifier()
	}
	if p.is(token.IDENT) {
		p.consume()
	}
	return true
}

// namedTableFactor is an identifier naming a real table, with optional
// PARTITION selector, alias, and chained index hints.
func (p *Parser) namedTableFactor() bool {
	if !p.consumeIdentOrQualified() {
		return false
	}
	if p.accept(token.K_PARTITION) {
		if !p.expect(token.LPAREN) || !p.identList() {
			return false
		}
		if !p.expect(token.RPAREN) {
			return false
		}
	}
	p.tableAlias()
	for p.is(token.K_USE) || p.is(token.K_FORCE) || p.is(token.K_IGNORE) {
		if !p.indexHint() {
			return false
		}
		if p.is(token.COMMA) && p.peekNextIsHintStart() {
			p.consume()
		}
	}
	return true
}

func (p *Parser) peekNextIsHintStart() bool {
	switch p.peekNextKind() {
	case token.K_USE, token.K_FORCE, token.K_IGNORE:
		return true
	default:
		return false
	}
}

func (p *Parser) indexHint() bool {
	p.consume()
	if !p.is(token.K_INDEX) && !p.is(token.K_KEY) {
		return false
	}
	p.consume()
	if p.accept(token.K_FOR) {
		switch {
		case p.accept(token.K_JOIN):
		case p.accept(token.K_ORDER):
			if !p.expect(token.K_BY) {
				return false
			}
		case p.accept(token.K_GROUP):
			if !p.expect(token.K_BY) {
				return false
			}
		default:
			return false
		}
	}
	if !p.expect(token.LPAREN) || !p.identList() {
		return false
	}
	return p.expect(token.RPAREN)
}

func (p *Parser) orderableExprList() bool {
	if !p.expression() {
		return false
	}
	p.acceptAscDesc()
	for p.accept(token.COMMA) {
		if !p.expression() {
			return false
		}
		p.acceptAscDesc()
	}
	return true
}

func (p *Parser) acceptAscDesc() {
	switch {
	case p.accept(token.K_ASC):
	case p.accept(token.K_DESC):
	}
}

// limitBody covers all four accepted forms after LIMIT: N, N N, N, N,
// and N OFFSET N.
func (p *Parser) limitBody() bool {
	if !p.limitOperand() {
		return false
	}
	switch {
	case p.accept(token.COMMA):
		return p.limitOperand()
	case p.accept(token.K_OFFSET):
		return p.limitOperand()
	case p.is(token.NUMBER), p.is(token.PLACEHOLDER):
		return p.limitOperand()
	default:
		return true
	}
}

func (p *Parser) limitOperand() bool {
	switch {
	case p.is(token.NUMBER):
		p.consume()
		return true
	case p.is(token.PLACEHOLDER):
		tok := p.consume()
		p.registerPlaceholder(tok.Offset)
		return true
	default:
		return false
	}
}

// procedureBody is the body of the procedure clause (PROCEDURE already
// consumed): an identifier naming the procedure plus its argument list.
func (p *Parser) procedureBody() bool {
	if !p.identifier() {
		return false
	}
	if !p.expect(token.LPAREN) {
		return false
	}
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

func (p *Parser) flagsClause() bool {
	switch {
	case p.accept(token.K_FOR):
		return p.expect(token.K_UPDATE)
	case p.accept(token.K_LOCK):
		return p.expect(token.K_IN) && p.expect(token.K_SHARE) && p.expect(token.K_MODE)
	default:
		return false
	}
}
