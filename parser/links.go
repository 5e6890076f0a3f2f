package parser

import (
	"strings"

	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/diag"
	"github.com/wikiforge/ftml/token"
)

// parseTripleLink handles "[[[ target | label ]]]" and its star variant
// "[[[* target | label ]]]".
func (p *Parser) parseTripleLink() *ast.Node {
	opener := p.advance()
	star := opener.Kind == token.KindLeftLinkStar
	p.skipSpace()

	targetStart := p.pos
	for !p.atEnd() {
		k := p.peek().Kind
		if k == token.KindPipe || k == token.KindRightLink || k == token.KindLineBreak || k == token.KindParagraphBreak {
			break
		}
		p.advance()
	}
	target := strings.TrimSpace(stringifyRange(p.tokens, targetStart, p.pos))

	var children []*ast.Node
	if p.peek().Kind == token.KindPipe {
		p.advance()
		p.skipSpace()
		for {
			k := p.peek().Kind
			if k == token.KindRightLink || k == token.KindLineBreak || k == token.KindParagraphBreak || k == token.KindInputEnd {
				break
			}
			node := p.parseInline()
			if node == nil {
				break
			}
			children = appendInline(children, node)
		}
	}

	attrs := map[string]string{"target": target}
	if star {
		attrs["star"] = "true"
	}

	if p.peek().Kind != token.KindRightLink {
		end := p.peek().Span
		span := opener.Span.Join(end)
		p.errf(diag.InvalidUrl, span, target)
		return ast.NewContainer(ast.Link, attrs, children, span)
	}
	closer := p.advance()
	span := opener.Span.Join(closer.Span)
	if len(children) == 0 {
		children = []*ast.Node{ast.NewText(target, span)}
	}
	return ast.NewContainer(ast.Link, attrs, children, span)
}

// parseBracketLink handles "[ url label ]", "[# anchor label]" and their
// star variants. The bracket/link precedence ambiguity in pathological
// prefixes is resolved conservatively: a bare "[" only starts a link
// when followed (after an optional space) by a Url token or when it's the
// bracket-anchor variant; otherwise it's literal text (NoMatch, no
// diagnostic).
func (p *Parser) parseBracketLink() *ast.Node {
	opener := p.advance()
	star := opener.Kind == token.KindLeftBracketStar
	anchor := opener.Kind == token.KindLeftBracketAnchor
	afterOpener := p.save()
	p.skipSpace()

	if p.peek().Kind != token.KindUrl && !anchor {
		p.restore(afterOpener)
		return ast.NewText(opener.Slice, opener.Span)
	}

	var href string
	if p.peek().Kind == token.KindUrl {
		href = p.advance().Slice
	}
	p.skipSpace()

	var children []*ast.Node
	for {
		k := p.peek().Kind
		if k == token.KindRightBracket || k == token.KindLineBreak || k == token.KindParagraphBreak || k == token.KindInputEnd {
			break
		}
		node := p.parseInline()
		if node == nil {
			break
		}
		children = appendInline(children, node)
	}

	attrs := map[string]string{}
	if href != "" {
		attrs["href"] = href
	}
	if star {
		attrs["star"] = "true"
	}

	if p.peek().Kind != token.KindRightBracket {
		span := opener.Span
		if len(children) > 0 {
			span = span.Join(children[len(children)-1].Span)
		}
		p.errf(diag.InvalidUrl, span, href)
		return ast.NewContainer(ast.Anchor, attrs, children, span)
	}
	closer := p.advance()
	span := opener.Span.Join(closer.Span)
	if len(children) == 0 && href != "" {
		children = []*ast.Node{ast.NewText(href, span)}
	}
	return ast.NewContainer(ast.Anchor, attrs, children, span)
}
