package parser

import (
	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/diag"
	"github.com/wikiforge/ftml/token"
)

// parseMathBlock handles a "[[$ ... $]]" construct: the body between the
// delimiters is raw, uninterpreted LaTeX-like source, following the same
// raw-body discipline as the generic "raw" BodyKind.
func (p *Parser) parseMathBlock() *ast.Node {
	opener := p.advance()
	start := opener.Span

	bodyStart := p.pos
	for !p.atEnd() && p.peek().Kind != token.KindRightMath {
		p.advance()
	}
	raw := stringifyRange(p.tokens, bodyStart, p.pos)

	if p.atEnd() {
		p.errf(diag.RawBlockNotClosed, start, "")
		return ast.NewLeaf(ast.Math, map[string]string{"value": raw}, start.Join(p.peekAt(-1).Span))
	}

	closer := p.advance()
	full := start.Join(closer.Span)
	return ast.NewLeaf(ast.Math, map[string]string{"value": raw}, full)
}
