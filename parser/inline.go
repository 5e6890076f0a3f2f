package parser

import (
	"strings"

	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/diag"
	"github.com/wikiforge/ftml/token"
)

// pairKinds maps a symmetric formatting delimiter (same token kind opens
// and closes) to the element it produces.
var pairKinds = map[token.Kind]ast.ElementType{
	token.KindBold:        ast.Bold,
	token.KindItalics:     ast.Italics,
	token.KindUnderline:   ast.Underline,
	token.KindSuperscript: ast.Superscript,
	token.KindSubscript:   ast.Subscript,
	token.KindDoubleDash:  ast.Strike,
}

// parseInline consumes exactly one inline unit at the cursor and returns
// its node. It never returns nil except when the cursor has nothing left
// to offer (callers treat nil as "stop"); comments are swallowed silently
// and never themselves produce nil, so a comment mid-line doesn't cut the
// surrounding content short.
func (p *Parser) parseInline() *ast.Node {
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.KindInputEnd:
			return nil

		case token.KindLeftComment:
			p.skipComment()
			continue

		case token.KindBold, token.KindItalics, token.KindUnderline,
			token.KindSuperscript, token.KindSubscript, token.KindDoubleDash:
			return p.tryPairFormatting(tok.Kind, tok.Kind, pairKinds[tok.Kind])

		case token.KindLeftMonospace:
			return p.tryPairFormatting(token.KindLeftMonospace, token.KindRightMonospace, ast.Monospace)

		case token.KindColor:
			return p.parseColor()

		case token.KindLeftLink, token.KindLeftLinkStar:
			return p.parseTripleLink()

		case token.KindLeftBracket, token.KindLeftBracketAnchor, token.KindLeftBracketStar:
			return p.parseBracketLink()

		case token.KindVariable:
			p.advance()
			name := strings.TrimSuffix(strings.TrimPrefix(tok.Slice, "{$"), "}")
			return ast.NewLeaf(ast.Variable, map[string]string{"name": name}, tok.Span)

		case token.KindUrl:
			p.advance()
			return ast.NewContainer(ast.Anchor, map[string]string{"href": tok.Slice},
				[]*ast.Node{ast.NewText(tok.Slice, tok.Span)}, tok.Span)

		case token.KindEmail:
			p.advance()
			return ast.NewContainer(ast.Anchor, map[string]string{"href": "mailto:" + tok.Slice},
				[]*ast.Node{ast.NewText(tok.Slice, tok.Span)}, tok.Span)

		case token.KindRaw:
			return p.parseRawSpan(token.KindRaw)

		case token.KindLeftRaw:
			return p.parseRawSpan(token.KindRightRaw)

		default:
			p.advance()
			return ast.NewText(tok.Slice, tok.Span)
		}
	}
}

// skipComment discards a "[!-- ... --]" span without producing a node.
func (p *Parser) skipComment() {
	opener := p.advance() // LeftComment
	for !p.atEnd() && p.peek().Kind != token.KindRightComment {
		p.advance()
	}
	if p.atEnd() {
		p.errf(diag.CommentNotClosed, opener.Span.Join(p.peekAt(-1).Span), "")
		return
	}
	p.advance() // RightComment
}

// parseRawSpan consumes a raw-text span whose opener was already peeked
// (not yet advanced past), stopping at closeKind. Content is stringified
// from the underlying tokens verbatim, producing a "raw" leaf; since
// Token.Slice concatenation always reproduces the source exactly, this
// is byte-accurate even though the lexer already tokenized the interior.
func (p *Parser) parseRawSpan(closeKind token.Kind) *ast.Node {
	opener := p.advance()
	start := p.pos
	for !p.atEnd() && p.peek().Kind != closeKind {
		p.advance()
	}
	raw := stringifyRange(p.tokens, start, p.pos)
	if p.atEnd() {
		p.errf(diag.RawBlockNotClosed, opener.Span, "")
		return ast.NewLeaf(ast.Raw, map[string]string{"value": raw}, opener.Span.Join(p.peekAt(-1).Span))
	}
	closer := p.advance()
	return ast.NewLeaf(ast.Raw, map[string]string{"value": raw}, opener.Span.Join(closer.Span))
}
