package parser

import (
	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/token"
)

// clearFloatAlign maps a ClearFloat* token kind to its alignment
// attribute value: each variant becomes a dedicated leaf element
// carrying an alignment rather than folding into another construct.
var clearFloatAlign = map[token.Kind]string{
	token.KindClearFloat:      "both",
	token.KindClearFloatLeft:  "left",
	token.KindClearFloatRight: "right",
}

// parseHorizontalRule consumes a TripleDash ("---+") token as a
// horizontal-rule leaf.
func (p *Parser) parseHorizontalRule() *ast.Node {
	tok := p.advance()
	return ast.NewLeaf(ast.HorizontalRule, nil, tok.Span)
}

// parseClearFloat consumes a ClearFloat/ClearFloatLeft/ClearFloatRight
// token as a clear-float leaf.
func (p *Parser) parseClearFloat() *ast.Node {
	tok := p.advance()
	return ast.NewLeaf(ast.ClearFloatEl, map[string]string{"align": clearFloatAlign[tok.Kind]}, tok.Span)
}
