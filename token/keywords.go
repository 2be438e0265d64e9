package token

// keywords maps the lowercased spelling of every reserved word to its Kind.
// Lookup is case-insensitive: the lexer lowercases the scanned run before
// probing this table.
var keywords map[string]Kind

func init() {
	keywords = map[string]Kind{
		"and": K_AND,
		"or":  K_OR,
		"xor": K_XOR,
		"not": K_NOT,
		"div": K_DIV,
		"mod": K_MOD,

		"select":               K_SELECT,
		"all":                  K_ALL,
		"distinct":             K_DISTINCT,
		"distinctrow":          K_DISTINCTROW,
		"high_priority":        K_HIGH_PRIORITY,
		"straight_join":        K_STRAIGHT_JOIN,
		"sql_small_result":     K_SQL_SMALL_RESULT,
		"sql_big_result":       K_SQL_BIG_RESULT,
		"sql_buffer_result":    K_SQL_BUFFER_RESULT,
		"sql_cache":            K_SQL_CACHE,
		"sql_no_cache":         K_SQL_NO_CACHE,
		"sql_calc_found_rows":  K_SQL_CALC_FOUND_ROWS,
		"binary":               K_BINARY,
		"exists":               K_EXISTS,
		"null":                 K_NULL,
		"true":                 K_TRUE,
		"false":                K_FALSE,
		"collate":              K_COLLATE,
		"date":                 K_DATE,
		"time":                 K_TIME,
		"timestamp":            K_TIMESTAMP,
		"interval":             K_INTERVAL,
		"case":                 K_CASE,
		"when":                 K_WHEN,
		"then":                 K_THEN,
		"else":                 K_ELSE,
		"end":                  K_END,
		"match":                K_MATCH,
		"against":              K_AGAINST,
		"in":                   K_IN,
		"natural":              K_NATURAL,
		"language":             K_LANGUAGE,
		"mode":                 K_MODE,
		"with":                 K_WITH,
		"query":                K_QUERY,
		"expansion":            K_EXPANSION,
		"boolean":              K_BOOLEAN,
		"row":                  K_ROW,
		"sounds":               K_SOUNDS,
		"like":                 K_LIKE,
		"regexp":               K_REGEXP,
		"between":              K_BETWEEN,
		"escape":               K_ESCAPE,
		"is":                   K_IS,
		"unknown":              K_UNKNOWN,
		"any":                  K_ANY,
		"as":                   K_AS,
		"into":                 K_INTO,
		"dumpfile":             K_DUMPFILE,
		"outfile":              K_OUTFILE,
		"character":            K_CHARACTER,
		"set":                  K_SET,
		"columns":              K_COLUMNS,
		"fields":               K_FIELDS,
		"terminated":           K_TERMINATED,
		"by":                   K_BY,
		"optionally":           K_OPTIONALLY,
		"enclosed":             K_ENCLOSED,
		"escaped":              K_ESCAPED,
		"lines":                K_LINES,
		"starting":             K_STARTING,
		"from":                 K_FROM,
		"partition":            K_PARTITION,
		"use":                  K_USE,
		"index":                K_INDEX,
		"key":                  K_KEY,
		"for":                  K_FOR,
		"join":                 K_JOIN,
		"order":                K_ORDER,
		"group":                K_GROUP,
		"force":                K_FORCE,
		"ignore":               K_IGNORE,
		"inner":                K_INNER,
		"left":                 K_LEFT,
		"right":                K_RIGHT,
		"outer":                K_OUTER,
		"on":                   K_ON,
		"using":                K_USING,
		"straight":             K_STRAIGHT,
		"cross":                K_CROSS,
		"where":                K_WHERE,
		"having":                K_HAVING,
		"asc":                  K_ASC,
		"desc":                 K_DESC,
		"limit":                K_LIMIT,
		"offset":               K_OFFSET,
		"procedure":            K_PROCEDURE,
		"update":               K_UPDATE,
		"lock":                 K_LOCK,
		"share":                K_SHARE,

		// INTERVAL_UNIT pseudo-token: these spellings never lex as plain
		// identifiers, matching the original spec's §4.1 keyword table.
		"year":               INTERVAL_UNIT_TOK,
		"month":              INTERVAL_UNIT_TOK,
		"day":                INTERVAL_UNIT_TOK,
		"hour":                INTERVAL_UNIT_TOK,
		"minute":              INTERVAL_UNIT_TOK,
		"second":              INTERVAL_UNIT_TOK,
		"microsecond":         INTERVAL_UNIT_TOK,
		"year_month":          INTERVAL_UNIT_TOK,
		"day_hour":            INTERVAL_UNIT_TOK,
		"day_minute":          INTERVAL_UNIT_TOK,
		"day_second":          INTERVAL_UNIT_TOK,
		"hour_minute":         INTERVAL_UNIT_TOK,
		"hour_second":         INTERVAL_UNIT_TOK,
		"minute_second":       INTERVAL_UNIT_TOK,
		"second_microsecond":  INTERVAL_UNIT_TOK,
		"minute_microsecond":  INTERVAL_UNIT_TOK,
		"hour_microsecond":    INTERVAL_UNIT_TOK,
		"day_microsecond":     INTERVAL_UNIT_TOK,
	}
}

// LookupIdent returns the Kind for a lowercased identifier-shaped run: a
// keyword Kind on a hit, IDENT on a miss.
func LookupIdent(lowered string) Kind {
	if kind, ok := keywords[lowered]; ok {
		return kind
	}
	return IDENT
}
