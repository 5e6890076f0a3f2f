package parser

import (
	"strings"

	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/catalogue"
	"github.com/wikiforge/ftml/diag"
	"github.com/wikiforge/ftml/token"
)

// blockElements maps a catalogue canonical block name to the ast.ElementType
// its AST node takes. Names absent here fall back to ast.Div for generic
// container blocks and ast.Text is never produced from this table (it is
// reserved for the NoSuchBlock fallback).
var blockElements = map[string]ast.ElementType{
	"div":               ast.Div,
	"span":              ast.SpanEl,
	"blockquote":        ast.Blockquote,
	"collapsible":       ast.Collapsible,
	"tabview":           ast.TabView,
	"tab":               ast.Tab,
	"ruby":              ast.Ruby,
	"b":                 ast.Bold,
	"i":                 ast.Italics,
	"u":                 ast.Underline,
	"s":                 ast.Strike,
	"sub":               ast.Subscript,
	"sup":               ast.Superscript,
	"mark":              ast.Mark,
	"ins":               ast.Ins,
	"invisible":         ast.Invisible,
	"hidden":            ast.Hidden,
	"monospace":         ast.Monospace,
	"size":              ast.Size,
	"a":                 ast.Anchor,
	"image":             ast.Image,
	"iframe":            ast.Iframe,
	"checkbox":          ast.Checkbox,
	"radio":             ast.Radio,
	"user":              ast.User,
	"date":              ast.Date,
	"module":            ast.Module,
	"include":           ast.Include,
	"include-elements":  ast.Include,
	"code":              ast.Code,
	"html":              ast.Html,
	"math":              ast.Math,
	"footnote":          ast.FootnoteRef,
	"footnoteblock":     ast.FootnoteBlock,
	"bibliography":      ast.BibliographyBlock,
	"bibcite":           ast.BibCite,
	"toc":               ast.TableOfContents,
	"char":              ast.Char,
	"table":             ast.Table,
	"row":               ast.TableRow,
	"cell":              ast.TableCell,
	"list":              ast.List,
	"li":                ast.ListItem,
	"dl":                ast.DefinitionList,
	"dt":                ast.DefinitionTerm,
	"dd":                ast.DefinitionDesc,
}

func elementForBlock(name string) ast.ElementType {
	if el, ok := blockElements[name]; ok {
		return el
	}
	return ast.Div
}

// parseBlock is the entry point for any "[[...", "[[*...", "[[#...", or
// "[[/..." construct. It always consumes at least the opening token and
// returns a node: either the parsed block, or a text fallback on
// failure. ok is always true; it exists so callers can treat every
// tryBlockLevel branch uniformly.
func (p *Parser) parseBlock() (*ast.Node, bool) {
	opener := p.peek()

	if opener.Kind == token.KindLeftBlockEnd {
		return p.orphanCloser(), true
	}

	star := opener.Kind == token.KindLeftBlockStar
	anchor := opener.Kind == token.KindLeftBlockAnchor
	start := opener.Span
	p.advance()

	score := false
	if p.peek().Kind == token.KindUnderscore {
		score = true
		p.advance()
	}

	idTok := p.peek()
	if idTok.Kind != token.KindIdentifier {
		return p.failBlock(start, diag.NoSuchBlock, ""), true
	}
	p.advance()
	name := strings.ToLower(idTok.Slice)

	spec, ok := p.cat.Resolve(name)
	if !ok {
		openerSpan, fullSpan := p.slurpUnknownBlock(start, name)
		p.errf(diag.NoSuchBlock, openerSpan, name)
		return ast.NewText(fullSpan.Slice(p.input), fullSpan), true
	}

	if star && !spec.AcceptsStar {
		p.errf(diag.InvalidFlag, start, name)
	}
	if score && !spec.AcceptsScore {
		p.errf(diag.InvalidFlag, start, name)
	}

	if p.depth >= p.maxDepth() {
		end := p.consumeUntilRightBlock()
		span := start.Join(end)
		return p.errorText(diag.RecursionLimit, span, name), true
	}

	head, fallback := p.parseHead(spec, start, name)
	if fallback != nil {
		return fallback, true
	}
	if anchor {
		if head.attrs == nil {
			head.attrs = map[string]string{}
		}
		head.attrs["anchor"] = "true"
	}

	p.depth++
	body, bodySpan := p.parseBody(spec, name)
	p.depth--

	el := elementForBlock(spec.Name)
	full := start.Join(bodySpan)

	switch spec.Body {
	case catalogue.BodyNone:
		return ast.NewLeaf(el, head.attrs, full), true
	default:
		return ast.NewContainer(el, head.attrs, body, full), true
	}
}

func (p *Parser) maxDepth() int {
	if p.settings.RecursionLimit <= 0 {
		return 100
	}
	return p.settings.RecursionLimit
}

// orphanCloser handles a "[[/name]]" with no corresponding open frame:
// it's a MismatchedCloser, text-fallback the whole closer.
func (p *Parser) orphanCloser() *ast.Node {
	start := p.peek().Span
	end := p.consumeUntilRightBlock()
	span := start.Join(end)
	return p.errorText(diag.MismatchedCloser, span, "")
}

// failBlock emits kind at span and falls back to span's slice as text,
// without attempting to recover a name.
func (p *Parser) failBlock(span token.Span, kind diag.Kind, tok string) *ast.Node {
	p.errf(kind, span, tok)
	return ast.NewText(span.Slice(p.input), span)
}

// errorText records a diagnostic and returns a Text fallback node whose
// Value and Span are the full matched slice (e.g. the whole unresolved
// block markup, not just its opener).
func (p *Parser) errorText(kind diag.Kind, span token.Span, tok string) *ast.Node {
	p.errf(kind, span, tok)
	return ast.NewText(span.Slice(p.input), span)
}

func (p *Parser) errf(kind diag.Kind, span token.Span, tok string) {
	if tok == "" {
		p.errors = append(p.errors, diag.New(kind, span))
	} else {
		p.errors = append(p.errors, diag.NewToken(kind, span, tok))
	}
}

// slurpUnknownBlock recovers from an unresolved block name by consuming
// raw tokens up to and including the matching "[[/name]]" closer (case
// insensitive), or to end of input if no such closer exists. It returns
// two spans: openerSpan covers just the opening "[[name ...]]" tag (the
// span the NoSuchBlock diagnostic attaches to), and fullSpan covers the
// entire construct through the closer, which
// collapses into one Text fallback rather than being reinterpreted
// token-by-token (which would raise spurious additional diagnostics for
// the orphaned closer).
func (p *Parser) slurpUnknownBlock(start token.Span, name string) (openerSpan, fullSpan token.Span) {
	openerSpan = p.consumeUntilRightBlock()
	last := openerSpan
	for !p.atEnd() {
		t := p.peek()
		if t.Kind == token.KindLeftBlockEnd {
			if p.matchesCloser(name) {
				end := p.consumeUntilRightBlock()
				return start.Join(openerSpan), start.Join(end)
			}
		}
		p.advance()
		last = t.Span
	}
	return start.Join(openerSpan), start.Join(last)
}

// matchesCloser reports whether the cursor (on a LeftBlockEnd token) is
// immediately followed by Identifier(name) and RightBlock, without
// consuming any tokens.
func (p *Parser) matchesCloser(name string) bool {
	idTok := p.peekAt(1)
	if idTok.Kind != token.KindIdentifier || !strings.EqualFold(idTok.Slice, name) {
		return false
	}
	return p.peekAt(2).Kind == token.KindRightBlock
}

// consumeUntilRightBlock advances the cursor past tokens up to and
// including the next RightBlock (or end of input), used for fallback
// recovery where the exact production couldn't be matched. It returns
// the span of the last token consumed.
func (p *Parser) consumeUntilRightBlock() token.Span {
	last := p.peek().Span
	for !p.atEnd() {
		t := p.advance()
		last = t.Span
		if t.Kind == token.KindRightBlock {
			break
		}
	}
	return last
}
