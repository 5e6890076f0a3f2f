package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wikiforge/ftml/lexer"
	"github.com/wikiforge/ftml/token"
)

func TestRunMergesOtherRuns(t *testing.T) {
	input := "!!! hi !!!"
	tokens := lexer.Lex(input)
	merged := Run(input, tokens)

	var b []byte
	for _, tok := range merged[1 : len(merged)-1] {
		b = append(b, tok.Slice...)
	}
	assert.Equal(t, input, string(b))

	// The leading "!!!" (three Other tokens) becomes one Text token.
	assert.Equal(t, token.KindText, merged[1].Kind)
	assert.Equal(t, "!!!", merged[1].Slice)
}

func TestRunPreservesSpaceAndIdentifier(t *testing.T) {
	input := "!a !"
	tokens := lexer.Lex(input)
	merged := Run(input, tokens)

	var gotKinds []token.Kind
	for _, tok := range merged[1 : len(merged)-1] {
		gotKinds = append(gotKinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.KindText,       // "!"
		token.KindIdentifier, // "a"
		token.KindSpace,      // " "
		token.KindText,       // "!"
	}, gotKinds)
}
