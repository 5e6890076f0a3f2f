// Package lexer turns raw wikitext into a flat stream of token.Token
// values. It never fails: any byte that no rule claims becomes a single
// token.KindOther token, so the lexer is total over all UTF-8 input.
//
// Lexing is a byte-position dispatch loop over a priority-ordered rule
// table: at each position the first rule that matches wins, so more
// specific rules (URLs, variables, strings) must precede the generic
// identifier/other fallbacks in the table.
package lexer

import "github.com/wikiforge/ftml/token"

// Lex tokenizes input in full, bracketing the result with InputStart and
// InputEnd bookends so downstream stages never special-case the edges.
func Lex(input string) []token.Token {
	tokens := make([]token.Token, 0, len(input)/4+2)
	tokens = append(tokens, token.Token{
		Kind: token.KindInputStart,
		Span: token.NewSpan(0, 0),
	})

	i := 0
	for i < len(input) {
		kind, width, ok := tryRules(input, i)
		if !ok {
			kind = token.KindOther
			width = runeWidth(input, i)
		}
		span := token.NewSpan(i, width)
		tokens = append(tokens, token.New(kind, span, input))
		i += width
	}

	tokens = append(tokens, token.Token{
		Kind: token.KindInputEnd,
		Span: token.NewSpan(len(input), 0),
	})
	return tokens
}

// tryRules walks the rule table in priority order and commits to the
// first match at position i.
func tryRules(input string, i int) (token.Kind, int, bool) {
	for _, r := range table {
		if kind, width, ok := r(input, i); ok && width > 0 {
			return kind, width, true
		}
	}
	return 0, 0, false
}
