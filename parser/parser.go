// Package parser turns a consolidated token stream into an ast.SyntaxTree
// plus a list of non-fatal diag.ParseError values. Parsing never fails at
// the top level: every local problem is recovered via a text fallback.
//
// The parser walks the token stream with a cursor and a checkpoint/restore
// mechanism for speculative parses: inline formatting pairs are tried and
// rolled back to a saved position on failure. Catalogue blocks are not
// rolled back; a malformed block is consumed and emitted as a text
// fallback with a diagnostic.
package parser

import (
	"github.com/rs/zerolog"

	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/catalogue"
	"github.com/wikiforge/ftml/diag"
	"github.com/wikiforge/ftml/settings"
	"github.com/wikiforge/ftml/token"
)

// Parser holds all mutable state for one parse call. A Parser is not
// reused across calls to Parse; New allocates a fresh one each time.
type Parser struct {
	input    string
	tokens   []token.Token
	pos      int
	cat      *catalogue.Catalogue
	settings *settings.Settings
	errors   []diag.ParseError
	depth    int
	logger   *zerolog.Logger
}

// New builds a Parser over an already-lexed-and-consolidated token
// stream. cat and st must not be nil; logger may be nil (a no-op logger
// is substituted).
func New(input string, tokens []token.Token, cat *catalogue.Catalogue, st *settings.Settings, logger *zerolog.Logger) *Parser {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Parser{
		input:    input,
		tokens:   tokens,
		cat:      cat,
		settings: st,
		logger:   logger,
	}
}

// Parse consumes the entire token stream and returns the resulting tree
// and diagnostics. It is infallible: it never panics on malformed input
// and every emitted diagnostic's span lies within [0, len(input)).
func (p *Parser) Parse() (*ast.SyntaxTree, []diag.ParseError) {
	// Skip the InputStart bookend, if present.
	if p.peek().Kind == token.KindInputStart {
		p.advance()
	}
	p.logger.Debug().Int("tokens", len(p.tokens)).Msg("parse started")

	var top []*ast.Node
	var buf []*ast.Node

	flush := func() {
		if len(buf) == 0 {
			return
		}
		span := buf[0].Span.Join(buf[len(buf)-1].Span)
		top = append(top, ast.NewContainer(ast.Paragraph, nil, buf, span))
		buf = nil
	}

	for !p.atEnd() {
		tok := p.peek()

		if tok.Kind == token.KindParagraphBreak {
			p.advance()
			flush()
			continue
		}

		if node, ok := p.tryBlockLevel(); ok {
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
			continue
		}
		buf = appendInline(buf, node)
	}

	flush()
	p.logger.Debug().Int("nodes", len(top)).Int("errors", len(p.errors)).Msg("parse finished")
	return &ast.SyntaxTree{Children: top}, p.errors
}

// isBlockLevelElement reports whether an element type stands on its own
// at the top level rather than being grouped into an enclosing paragraph,
// unless the enclosing container suppresses paragraphs entirely.
func isBlockLevelElement(el ast.ElementType) bool {
	switch el {
	case ast.Div, ast.Table, ast.List, ast.Blockquote, ast.Collapsible,
		ast.TabView, ast.Code, ast.Html, ast.Math, ast.Module, ast.Include,
		ast.FootnoteBlock, ast.BibliographyBlock, ast.TableOfContents,
		ast.DefinitionList, ast.Heading, ast.HorizontalRule, ast.ClearFloatEl:
		return true
	}
	return false
}

// appendInline appends node to buf, coalescing consecutive Text leaves
// into one so that a run of independently-emitted text-fallback nodes
// (e.g. from an unresolved block name followed by its stray body/closer)
// reads back as a single Text node.
func appendInline(buf []*ast.Node, node *ast.Node) []*ast.Node {
	if len(buf) > 0 && buf[len(buf)-1].Element == ast.Text && node.Element == ast.Text {
		last := buf[len(buf)-1]
		last.Value += node.Value
		last.Span = last.Span.Join(node.Span)
		return buf
	}
	return append(buf, node)
}

// tryBlockLevel attempts to parse a block-level construct at the cursor
// (heading, horizontal rule, list, table, blockquote, block, math, clear
// float). It returns ok=false, without moving the cursor, if the current
// token doesn't start any of these.
func (p *Parser) tryBlockLevel() (*ast.Node, bool) {
	switch p.peek().Kind {
	case token.KindHeading:
		return p.parseHeading(), true
	case token.KindTripleDash:
		return p.parseHorizontalRule(), true
	case token.KindBulletItem, token.KindNumberedItem:
		return p.parseList(), true
	case token.KindTableColumn, token.KindTableColumnLeft, token.KindTableColumnRight,
		token.KindTableColumnCenter, token.KindTableColumnTitle:
		return p.parseTable(), true
	case token.KindQuote:
		return p.parseBlockquote(), true
	case token.KindLeftBlock, token.KindLeftBlockStar, token.KindLeftBlockAnchor, token.KindLeftBlockEnd:
		return p.parseBlock()
	case token.KindLeftMath:
		return p.parseMathBlock(), true
	case token.KindClearFloat, token.KindClearFloatLeft, token.KindClearFloatRight:
		return p.parseClearFloat(), true
	}
	return nil, false
}

// stringifyRange concatenates the Slice of tokens[from:to], reproducing
// their combined source text.
func stringifyRange(tokens []token.Token, from, to int) string {
	var b []byte
	for i := from; i < to && i < len(tokens); i++ {
		b = append(b, tokens[i].Slice...)
	}
	return string(b)
}
