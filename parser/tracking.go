package parser

import "github.com/sqlshape/mysqlselect/result"

// trackingState is the single depth-1 scope used to attribute a top-level
// clause's verbatim span and placeholder offsets. Only the outermost
// track() call for a given clause owns the scope; productions invoked
// while a scope is already open (subqueries, nested expressions) run
// inside it without opening one of their own, so a placeholder inside a
// subquery is attributed to the enclosing clause, not the subquery.
type trackingState struct {
	inProgress    bool
	sectionOffset int
	placeholders  []int
}

// track runs produce as the content of section kind. If no tracking scope
// is already open, track opens one (recording the current token's offset
// as the section's start) and, once produce returns, closes it and stores
// the clause's verbatim bytes and placeholder offsets — but only if
// produce actually consumed at least one token, so optional clauses that
// matched nothing leave their section unpopulated. The section is stored
// even when produce fails partway through, matching the "section content
// is whatever was consumed" behavior needed for property P1.
func (p *Parser) track(kind result.SectionKind, produce func() bool) bool {
	topLevel := !p.tracking.inProgress
	if topLevel {
		p.tracking.inProgress = true
		p.tracking.sectionOffset = p.peek().Offset
		p.tracking.placeholders = p.tracking.placeholders[:0]
		defer func() { p.tracking.inProgress = false }()
	}
	startCount := p.lx.TokensConsumed()

	ok := produce()

	if topLevel {
		if p.lx.TokensConsumed() > startCount {
			prev, _ := p.lx.PeekPrevious()
			length := prev.End() - p.tracking.sectionOffset
			if length > 0 {
				content := make([]byte, length)
				copy(content, p.buf[p.tracking.sectionOffset:p.tracking.sectionOffset+length])
				placeholders := make([]int, len(p.tracking.placeholders))
				copy(placeholders, p.tracking.placeholders)
				p.res.Sections[kind] = result.Section{Content: content, Placeholders: placeholders}
			}
		}
	}
	return ok
}

// registerPlaceholder records a '?' token's buffer offset, relative to the
// currently open section, if any. It is a no-op outside a tracked scope,
// which can only happen if a production calls it without being reachable
// through a top-level clause — a bug, not a runtime condition to guard
// verbosely against.
func (p *Parser) registerPlaceholder(offset int) {
	if !p.tracking.inProgress {
		return
	}
	p.tracking.placeholders = append(p.tracking.placeholders, offset-p.tracking.sectionOffset)
}
