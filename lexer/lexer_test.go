package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiforge/ftml/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestLexBookends(t *testing.T) {
	tokens := Lex("hi")
	require.True(t, len(tokens) >= 2)
	assert.Equal(t, token.KindInputStart, tokens[0].Kind)
	assert.Equal(t, token.KindInputEnd, tokens[len(tokens)-1].Kind)
}

func TestLexCoverage(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"**bold** //italic//",
		"[[div]]content[[/div]]",
		"[[[https://example.com|label]]]",
		"user@example.com and https://example.com/path",
		"+ heading\n>quote\n* bullet\n# numbered",
		"a\n\nb",
		`"a \"quoted\" string"`,
		"日本語 mixed with ascii",
	}
	for _, in := range inputs {
		tokens := Lex(in)
		var body []byte
		for _, tok := range tokens[1 : len(tokens)-1] {
			body = append(body, tok.Slice...)
		}
		assert.Equal(t, in, string(body), "coverage mismatch for %q", in)
	}
}

func TestLexBracketGreedy(t *testing.T) {
	// "[[[[" should become LeftBracket + LeftLink (1 + 3), not
	// LeftBlock + LeftBlock + LeftBracket.
	tokens := Lex("[[[[")
	got := kinds(tokens[1 : len(tokens)-1])
	assert.Equal(t, []token.Kind{token.KindLeftBracket, token.KindLeftLink}, got)
}

func TestLexBlockOpenClose(t *testing.T) {
	tokens := Lex("[[div]]x[[/div]]")
	got := kinds(tokens[1 : len(tokens)-1])
	assert.Equal(t, []token.Kind{
		token.KindLeftBlock,
		token.KindIdentifier,
		token.KindRightBlock,
		token.KindIdentifier,
		token.KindLeftBlockEnd,
		token.KindIdentifier,
		token.KindRightBlock,
	}, got)
}

func TestLexFormattingPairs(t *testing.T) {
	tokens := Lex("**a**")
	got := kinds(tokens[1 : len(tokens)-1])
	assert.Equal(t, []token.Kind{token.KindBold, token.KindIdentifier, token.KindBold}, got)
}

func TestLexBulletVsBold(t *testing.T) {
	// A lone '*' is a bullet; two in a row are Bold.
	tokens := Lex("* item")
	got := kinds(tokens[1 : len(tokens)-1])
	assert.Equal(t, token.KindBulletItem, got[0])

	tokens2 := Lex("**x**")
	got2 := kinds(tokens2[1 : len(tokens2)-1])
	assert.Equal(t, token.KindBold, got2[0])
}

func TestLexEmail(t *testing.T) {
	tokens := Lex("user@example.com")
	got := kinds(tokens[1 : len(tokens)-1])
	assert.Equal(t, []token.Kind{token.KindEmail}, got)
}

func TestLexUrl(t *testing.T) {
	tokens := Lex("https://example.com/a")
	got := kinds(tokens[1 : len(tokens)-1])
	require.Len(t, got, 1)
	assert.Equal(t, token.KindUrl, got[0])
}

func TestLexParagraphBreakVsLineBreak(t *testing.T) {
	tokens := Lex("a\nb\n\nc")
	got := kinds(tokens[1 : len(tokens)-1])
	assert.Equal(t, []token.Kind{
		token.KindIdentifier,
		token.KindLineBreak,
		token.KindIdentifier,
		token.KindParagraphBreak,
		token.KindIdentifier,
	}, got)
}

func TestLexOtherFallback(t *testing.T) {
	tokens := Lex("!")
	got := kinds(tokens[1 : len(tokens)-1])
	assert.Equal(t, []token.Kind{token.KindOther}, got)
}
