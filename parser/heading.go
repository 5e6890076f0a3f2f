package parser

import (
	"strconv"
	"strings"

	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/token"
)

// parseHeading consumes a Heading token and the inline content up to the
// next LineBreak, ParagraphBreak, or end of input. Level is the count of
// '+' characters, 1 to 6.
func (p *Parser) parseHeading() *ast.Node {
	tok := p.advance()
	level := len(strings.TrimSuffix(tok.Slice, "*"))
	if level > 6 {
		level = 6
	}

	p.skipSpace()

	var children []*ast.Node
	start := tok.Span
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

	span := start
	if len(children) > 0 {
		span = start.Join(children[len(children)-1].Span)
	}

	// A single trailing LineBreak terminates the heading line without
	// starting a new paragraph.
	if p.peek().Kind == token.KindLineBreak {
		p.advance()
	}

	return ast.NewContainer(ast.Heading, map[string]string{
		"level": strconv.Itoa(level),
	}, children, span)
}
