// Package mysqlselect decomposes a MySQL-dialect SELECT statement into its
// top-level clauses, returning each clause's verbatim source substring and
// the byte offsets of any placeholders ('?') it contains at its own level.
//
// Basic usage:
//
//	res, status := mysqlselect.Parse([]byte("SELECT id FROM users WHERE id = ?"))
//	if status != result.OK {
//	    log.Fatal(status.Message())
//	}
//	where := res.Section(result.Where)
package mysqlselect

import (
	"github.com/sqlshape/mysqlselect/parser"
	"github.com/sqlshape/mysqlselect/result"
)

// Re-exported so callers need only import this package for common use.
type (
	Result      = result.Result
	Section     = result.Section
	SectionKind = result.SectionKind
	Status      = result.Status
)

const (
	OK              = result.OK
	InvalidArgument = result.InvalidArgument
	InvalidSyntax   = result.InvalidSyntax
)

// Parse decomposes sql into its clause sections. A nil or empty input is
// InvalidArgument; a syntactically invalid statement, or one with input
// left over after a successful parse, is InvalidSyntax.
func Parse(sql []byte) (*result.Result, result.Status) {
	if len(sql) == 0 {
		return nil, result.InvalidArgument
	}

	p := parser.Get(sql)
	defer parser.Put(p)

	res, err := p.Parse()
	if err != nil {
		if pe, ok := err.(*parser.ParseError); ok {
			return nil, pe.Status
		}
		return nil, result.InvalidSyntax
	}
	return res, result.OK
}
