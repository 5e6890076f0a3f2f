package parser

import (
	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/token"
)

// parseList consumes a run of consecutive BulletItem/NumberedItem lines
// into a single List container. Each line becomes one ListItem, with its
// inline content parsed up to the terminating LineBreak/ParagraphBreak.
// Mixing bullet and numbered markers ends the list; the line with the
// other marker is not consumed here, so the caller parses it as the start
// of a separate list.
func (p *Parser) parseList() *ast.Node {
	kind := p.peek().Kind
	style := "bullet"
	if kind == token.KindNumberedItem {
		style = "numbered"
	}

	start := p.peek().Span
	var items []*ast.Node

	for p.peek().Kind == kind {
		itemStart := p.advance().Span
		p.skipSpace()

		var children []*ast.Node
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

		itemSpan := itemStart
		if len(children) > 0 {
			itemSpan = itemStart.Join(children[len(children)-1].Span)
		}
		items = append(items, ast.NewContainer(ast.ListItem, nil, children, itemSpan))

		if p.peek().Kind == token.KindLineBreak {
			p.advance()
		} else {
			break
		}
	}

	span := start
	if len(items) > 0 {
		span = start.Join(items[len(items)-1].Span)
	}
	return ast.NewContainer(ast.List, map[string]string{"style": style}, items, span)
}
