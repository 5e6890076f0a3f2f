package parser

import (
	"strings"

	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/token"
)

// tryPairFormatting implements a try-parse-with-balanced-closer rule:
// from the opener, recursively parse inline content until
// closeKind is seen (preferring the shortest balanced match, so nested
// same-kind delimiters resolve inner-first per the design note), a
// paragraph boundary is hit, or input ends. On success it commits; on
// failure it rolls back and emits the opener's own slice as literal
// text, leaving the remainder of the input for the caller's next
// parseInline call. No diagnostic is raised either way — an unmatched
// delimiter is a NoMatch, not an error.
func (p *Parser) tryPairFormatting(openKind, closeKind token.Kind, el ast.ElementType) *ast.Node {
	ck := p.save()
	opener := p.advance()

	var children []*ast.Node
	for {
		k := p.peek().Kind
		if k == closeKind {
			closer := p.advance()
			span := opener.Span.Join(closer.Span)
			return ast.NewContainer(el, nil, children, span)
		}
		if k == token.KindLineBreak || k == token.KindParagraphBreak || k == token.KindInputEnd {
			break
		}
		if isBlockBoundary(k) {
			break
		}
		node := p.parseInline()
		if node == nil {
			break
		}
		children = appendInline(children, node)
	}

	p.restore(ck)
	t := p.advance()
	return ast.NewText(t.Slice, t.Span)
}

// isBlockBoundary reports whether k opens a block-level construct that
// an in-progress inline formatting span must not cross into.
func isBlockBoundary(k token.Kind) bool {
	switch k {
	case token.KindLeftBlock, token.KindLeftBlockStar, token.KindLeftBlockAnchor, token.KindLeftBlockEnd:
		return true
	}
	return false
}

// parseColor handles "##color|text##": the run of tokens up to the
// first Pipe names a CSS color, the rest up to the matching closer is
// the wrapped content. If no Pipe is found before a closer, paragraph
// boundary, or end of input, it falls back to NoMatch just like any
// other pair rule.
func (p *Parser) parseColor() *ast.Node {
	ck := p.save()
	opener := p.advance()

	colorStart := p.pos
	for {
		k := p.peek().Kind
		if k == token.KindPipe {
			break
		}
		if k == token.KindColor || k == token.KindLineBreak || k == token.KindParagraphBreak || k == token.KindInputEnd {
			p.restore(ck)
			t := p.advance()
			return ast.NewText(t.Slice, t.Span)
		}
		p.advance()
	}
	color := strings.TrimSpace(stringifyRange(p.tokens, colorStart, p.pos))
	p.advance() // Pipe

	var children []*ast.Node
	for {
		k := p.peek().Kind
		if k == token.KindColor {
			closer := p.advance()
			span := opener.Span.Join(closer.Span)
			attrs := map[string]string{}
			if color != "" {
				attrs["color"] = color
			}
			return ast.NewContainer(ast.SpanEl, attrs, children, span)
		}
		if k == token.KindLineBreak || k == token.KindParagraphBreak || k == token.KindInputEnd || isBlockBoundary(k) {
			break
		}
		node := p.parseInline()
		if node == nil {
			break
		}
		children = appendInline(children, node)
	}

	p.restore(ck)
	t := p.advance()
	return ast.NewText(t.Slice, t.Span)
}
