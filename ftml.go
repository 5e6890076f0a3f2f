// Package ftml parses Wikidot-flavored wikitext into a typed syntax
// tree. Parse never fails: malformed input degrades to literal text plus
// diagnostics rather than aborting (see the diag package).
package ftml

import (
	"github.com/rs/zerolog"

	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/catalogue"
	"github.com/wikiforge/ftml/consolidate"
	"github.com/wikiforge/ftml/diag"
	"github.com/wikiforge/ftml/lexer"
	"github.com/wikiforge/ftml/parser"
	"github.com/wikiforge/ftml/settings"
	"github.com/wikiforge/ftml/token"
)

// Parse lexes, consolidates, and parses input against cat, returning the
// resulting syntax tree and any non-fatal diagnostics. cat and st must
// not be nil; logger may be nil.
func Parse(input string, cat *catalogue.Catalogue, st *settings.Settings, logger *zerolog.Logger) (*ast.SyntaxTree, []diag.ParseError) {
	toks := consolidate.Run(input, lexer.Lex(input))
	p := parser.New(input, toks, cat, st, logger)
	return p.Parse()
}

// Tokenize lexes and consolidates input, exposing the token stream for
// diagnostic tooling without running the block/formatting parser.
func Tokenize(input string) []token.Token {
	return consolidate.Run(input, lexer.Lex(input))
}
