// Package consolidate merges adjacent Other-class tokens emitted by the
// lexer into single Text runs, so the parser never has to reason about
// individual stray characters.
package consolidate

import "github.com/wikiforge/ftml/token"

// Run merges every maximal run of token.Kind values for which
// Kind.IsTextClass reports true into a single token.KindText token
// spanning the whole run. All other tokens, including InputStart/
// InputEnd, Space, and Identifier, pass through unchanged.
func Run(input string, tokens []token.Token) []token.Token {
	out := make([]token.Token, 0, len(tokens))

	i := 0
	for i < len(tokens) {
		t := tokens[i]
		if !t.Kind.IsTextClass() {
			out = append(out, t)
			i++
			continue
		}

		j := i + 1
		for j < len(tokens) && tokens[j].Kind.IsTextClass() {
			j++
		}

		span := tokens[i].Span.Join(tokens[j-1].Span)
		out = append(out, token.New(token.KindText, span, input))
		i = j
	}

	return out
}
