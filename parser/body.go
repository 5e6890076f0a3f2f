package parser

import (
	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/catalogue"
	"github.com/wikiforge/ftml/diag"
	"github.com/wikiforge/ftml/token"
)

// parseBody dispatches on spec.Body and consumes through the matching
// "[[/name]]" closer (or its alias), recording BlockNotClosed if none is
// found before end of input. It returns the parsed children (nil for
// BodyNone) and the span covering body+closer.
func (p *Parser) parseBody(spec *catalogue.BlockSpec, name string) ([]*ast.Node, token.Span) {
	if spec.Special != catalogue.SpecialNone {
		return p.parseSpecialBody(spec, name)
	}
	switch spec.Body {
	case catalogue.BodyNone:
		return nil, p.noBody()
	case catalogue.BodyRaw:
		return p.parseRawBody(spec, name)
	case catalogue.BodyOther:
		return p.parseElementsBody(spec, name)
	default:
		return p.parseElementsBody(spec, name)
	}
}

// noBody returns a zero-width span at the cursor for a BodyNone block,
// which never has a closer to consume.
func (p *Parser) noBody() token.Span {
	return p.peek().Span
}

// parseRawBody slurps raw input bytes, with no token interpretation,
// until the literal (case-insensitive) "[[/name]]" or one of its alias
// spellings. The body is preserved verbatim, including any "@@" it
// contains; the matched text becomes a single Text child.
func (p *Parser) parseRawBody(spec *catalogue.BlockSpec, name string) ([]*ast.Node, token.Span) {
	bodyStart := p.pos
	for !p.atEnd() {
		if p.peek().Kind == token.KindLeftBlockEnd && p.matchesAnyCloser(spec, name) {
			bodyEnd := p.pos
			closerStart := p.peek().Span
			raw := stringifyRange(p.tokens, bodyStart, bodyEnd)
			closerSpan := p.consumeUntilRightBlock()
			full := closerStart.Join(closerSpan)

			var children []*ast.Node
			if raw != "" && bodyStart < bodyEnd {
				rawSpan := p.tokens[bodyStart].Span.Join(p.tokens[bodyEnd-1].Span)
				children = append(children, ast.NewText(raw, rawSpan))
			}
			return children, full
		}
		p.advance()
	}
	end := p.peekAt(-1).Span
	p.errf(diag.BlockNotClosed, end, name)
	raw := stringifyRange(p.tokens, bodyStart, p.pos)
	var children []*ast.Node
	if raw != "" {
		children = append(children, ast.NewText(raw, end))
	}
	return children, end
}

// parseElementsBody recursively parses top-level-style content (inline
// and nested blocks) until the matching closer. Content is grouped into
// implicit Paragraph containers only when the enclosing block is itself
// block-level (div,
// blockquote, collapsible, ...); an inline container (anchor, bold,
// span, ...) gets its children flat, since its Children field holds
// inline content directly rather than a list of paragraphs.
func (p *Parser) parseElementsBody(spec *catalogue.BlockSpec, name string) ([]*ast.Node, token.Span) {
	wrapParagraphs := isBlockLevelElement(elementForBlock(spec.Name))

	var top []*ast.Node
	var buf []*ast.Node
	last := p.peek().Span

	flush := func() {
		if len(buf) == 0 {
			return
		}
		if !wrapParagraphs {
			top = append(top, buf...)
			buf = nil
			return
		}
		span := buf[0].Span.Join(buf[len(buf)-1].Span)
		top = append(top, ast.NewContainer(ast.Paragraph, nil, buf, span))
		buf = nil
	}

	for !p.atEnd() {
		if p.peek().Kind == token.KindLeftBlockEnd && p.matchesAnyCloser(spec, name) {
			flush()
			closerSpan := p.consumeUntilRightBlock()
			return top, closerSpan
		}
		if p.peek().Kind == token.KindParagraphBreak {
			last = p.advance().Span
			flush()
			continue
		}
		if node, ok := p.tryBlockLevel(); ok {
			last = node.Span
			if isBlockLevelElement(node.Element) {
				flush()
				top = append(top, node)
			} else {
				buf = appendInline(buf, node)
			}
			continue
		}
		node := p.parseInline()
		if node == nil {
			break
		}
		last = node.Span
		buf = appendInline(buf, node)
	}

	flush()
	p.errf(diag.BlockNotClosed, last, name)
	return top, last
}

// parseSpecialBody hands off to a dedicated sub-parser named by
// spec.Special: module bodies are raw text up to the closer, include is
// a self-closing directive with no body or closer at all, and
// include-elements recursively parses elements like a generic container.
// Page-include expansion itself is out of scope; only the directive's
// shape is recorded.
func (p *Parser) parseSpecialBody(spec *catalogue.BlockSpec, name string) ([]*ast.Node, token.Span) {
	switch spec.Special {
	case catalogue.SpecialModule:
		return p.parseRawBody(spec, name)
	case catalogue.SpecialInclude:
		return nil, p.noBody()
	case catalogue.SpecialIncludeElements:
		return p.parseElementsBody(spec, name)
	default:
		return p.parseElementsBody(spec, name)
	}
}

// matchesAnyCloser reports whether the cursor (on a LeftBlockEnd token)
// opens the closer for name or any of spec's aliases.
func (p *Parser) matchesAnyCloser(spec *catalogue.BlockSpec, name string) bool {
	if p.matchesCloser(name) {
		return true
	}
	for _, alias := range spec.Aliases {
		if p.matchesCloser(alias) {
			return true
		}
	}
	return false
}
