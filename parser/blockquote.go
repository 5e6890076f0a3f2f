package parser

import (
	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/token"
)

// parseBlockquote consumes a run of consecutive Quote-prefixed lines into
// a single Blockquote container, with a LineBreak leaf inserted between
// each source line's content.
func (p *Parser) parseBlockquote() *ast.Node {
	start := p.peek().Span
	var children []*ast.Node

	for p.peek().Kind == token.KindQuote {
		p.advance()
		p.skipSpace()

		for {
			k := p.peek().Kind
			if k == token.KindLineBreak || k == token.KindParagraphBreak || k == token.KindInputEnd {
				break
			}
			node := p.parseInline()
			if node == nil {
				break
			}
			children = appendInline(children, node)
		}

		if p.peek().Kind != token.KindLineBreak {
			break
		}
		lb := p.advance()
		if p.peek().Kind == token.KindQuote {
			children = append(children, ast.NewLeaf(ast.LineBreak, nil, lb.Span))
		} else {
			p.pos-- // leave the line break for the top-level loop
			break
		}
	}

	span := start
	if len(children) > 0 {
		span = start.Join(children[len(children)-1].Span)
	}
	return ast.NewContainer(ast.Blockquote, nil, children, span)
}
