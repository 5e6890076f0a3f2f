package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiforge/ftml/ast"
	"github.com/wikiforge/ftml/catalogue"
	"github.com/wikiforge/ftml/consolidate"
	"github.com/wikiforge/ftml/lexer"
	"github.com/wikiforge/ftml/parser"
	"github.com/wikiforge/ftml/settings"
)

func parse(t *testing.T, input string) (*ast.SyntaxTree, []diagResult) {
	t.Helper()
	cat, err := catalogue.Default(nil)
	require.NoError(t, err)

	toks := consolidate.Run(input, lexer.Lex(input))
	p := parser.New(input, toks, cat, settings.Default(), nil)
	tree, errs := p.Parse()

	results := make([]diagResult, len(errs))
	for i, e := range errs {
		results[i] = diagResult{Kind: e.Kind.String(), Token: e.Token}
	}
	return tree, results
}

type diagResult struct {
	Kind  string
	Token string
}

// Scenario 1: **hello** -> Paragraph[Bold[Text("hello")]], no errors.
func TestScenarioBoldClosed(t *testing.T) {
	tree, errs := parse(t, "**hello**")
	require.Empty(t, errs)
	require.Len(t, tree.Children, 1)

	para := tree.Children[0]
	assert.Equal(t, ast.Paragraph, para.Element)
	require.Len(t, para.Children, 1)

	bold := para.Children[0]
	assert.Equal(t, ast.Bold, bold.Element)
	require.Len(t, bold.Children, 1)
	assert.Equal(t, ast.Text, bold.Children[0].Element)
	assert.Equal(t, "hello", bold.Children[0].Value)
}

// Scenario 2: "** not bold " (no closer) -> Paragraph[Text("** not bold ")], no errors.
func TestScenarioBoldUnclosed(t *testing.T) {
	tree, errs := parse(t, "** not bold ")
	require.Empty(t, errs)
	require.Len(t, tree.Children, 1)

	para := tree.Children[0]
	assert.Equal(t, ast.Paragraph, para.Element)
	require.Len(t, para.Children, 1)
	assert.Equal(t, ast.Text, para.Children[0].Element)
	assert.Equal(t, "** not bold ", para.Children[0].Value)
}

// Scenario 3: [[a href="/foo"]]link[[/a]] -> Paragraph[Anchor{href:/foo}[Text("link")]].
func TestScenarioAnchorBlock(t *testing.T) {
	tree, errs := parse(t, `[[a href="/foo"]]link[[/a]]`)
	require.Empty(t, errs)
	require.Len(t, tree.Children, 1)

	para := tree.Children[0]
	assert.Equal(t, ast.Paragraph, para.Element)
	require.Len(t, para.Children, 1)

	anchor := para.Children[0]
	assert.Equal(t, ast.Anchor, anchor.Element)
	assert.Equal(t, "/foo", anchor.Attributes["href"])
	require.Len(t, anchor.Children, 1)
	assert.Equal(t, "link", anchor.Children[0].Value)
}

// Scenario 4: [[code type="rust"]]@@ raw @@[[/code]] -> Code{type:rust, body verbatim}, not wrapped in Paragraph.
func TestScenarioCodeRawBody(t *testing.T) {
	tree, errs := parse(t, `[[code type="rust"]]@@ raw @@[[/code]]`)
	require.Empty(t, errs)
	require.Len(t, tree.Children, 1)

	code := tree.Children[0]
	assert.Equal(t, ast.Code, code.Element)
	assert.Equal(t, "rust", code.Attributes["type"])
	require.Len(t, code.Children, 1)
	assert.Equal(t, ast.Text, code.Children[0].Element)
	assert.Equal(t, "@@ raw @@", code.Children[0].Value)
}

// Scenario 5: [[foobar]]x[[/foobar]] -> Paragraph[Text(whole construct)] + one NoSuchBlock error.
func TestScenarioUnknownBlock(t *testing.T) {
	tree, errs := parse(t, "[[foobar]]x[[/foobar]]")
	require.Len(t, errs, 1)
	assert.Equal(t, "no-such-block", errs[0].Kind)

	require.Len(t, tree.Children, 1)
	para := tree.Children[0]
	assert.Equal(t, ast.Paragraph, para.Element)
	require.Len(t, para.Children, 1)
	assert.Equal(t, ast.Text, para.Children[0].Element)
	assert.Equal(t, "[[foobar]]x[[/foobar]]", para.Children[0].Value)
}

// Scenario 6: "+ Heading\n\nBody" -> [Heading{level:1}[Text("Heading")], Paragraph[Text("Body")]].
func TestScenarioHeadingThenParagraph(t *testing.T) {
	tree, errs := parse(t, "+ Heading\n\nBody")
	require.Empty(t, errs)
	require.Len(t, tree.Children, 2)

	heading := tree.Children[0]
	assert.Equal(t, ast.Heading, heading.Element)
	assert.Equal(t, "1", heading.Attributes["level"])
	require.Len(t, heading.Children, 1)
	assert.Equal(t, "Heading", heading.Children[0].Value)

	para := tree.Children[1]
	assert.Equal(t, ast.Paragraph, para.Element)
	require.Len(t, para.Children, 1)
	assert.Equal(t, "Body", para.Children[0].Value)
}

// Alias normalization: [[quote]] (alias of blockquote) produces the same
// element as [[blockquote]].
func TestAliasNormalization(t *testing.T) {
	tree1, errs1 := parse(t, "[[blockquote]]hi[[/blockquote]]")
	tree2, errs2 := parse(t, "[[quote]]hi[[/quote]]")
	require.Empty(t, errs1)
	require.Empty(t, errs2)

	require.Len(t, tree1.Children, 1)
	require.Len(t, tree2.Children, 1)
	assert.Equal(t, tree1.Children[0].Element, tree2.Children[0].Element)
	assert.Equal(t, ast.Blockquote, tree1.Children[0].Element)
}

// Totality: parsing never panics on malformed or empty input and always
// returns a tree.
func TestTotalityOnMalformedInput(t *testing.T) {
	for _, in := range []string{
		"",
		"[[",
		"[[/",
		"[[*]]",
		"**//__^^,,--{{",
		"[[[unterminated link",
		"[[div",
		`[[nosuch attr="x`,
	} {
		require.NotPanics(t, func() {
			tree, _ := parse(t, in)
			require.NotNil(t, tree)
		})
	}
}

func TestEmptyInputProducesEmptyTree(t *testing.T) {
	tree, errs := parse(t, "")
	require.Empty(t, errs)
	require.Empty(t, tree.Children)
}
