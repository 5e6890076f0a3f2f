package lexer

import "github.com/wikiforge/ftml/token"

// rule is one lexer production. It inspects input starting at byte offset i
// and either matches, returning the Kind and byte width it consumed, or
// declines by returning matched=false. Rules never backtrack internally;
// every rule is atomic.
//
// The lexer tries rules strictly in table order at every position and
// commits to the first match. "[" immediately before "[[[" is resolved by
// ruleBracketBeforeLink, which is tried ahead of the link openers: a run
// of four '[' becomes LeftBracket + LeftLink rather than LeftBlock +
// LeftBlock + LeftBracket (or LeftLink + LeftBracket).
type rule func(input string, i int) (kind token.Kind, width int, matched bool)

// table is the full, priority-ordered rule set. Longer / more specific
// sequences are listed ahead of their shorter prefixes throughout.
var table = []rule{
	// Raw + comment delimiters.
	literalRule(token.KindLeftComment, "[!--"),
	literalRule(token.KindRightComment, "--]"),
	literalRule(token.KindRaw, "@@"),
	literalRule(token.KindLeftRaw, "@<"),
	literalRule(token.KindRightRaw, ">@"),

	// Bracket / block / link / math combinations, longest prefix first.
	ruleBracketBeforeLink,
	literalRule(token.KindLeftLinkStar, "[[[*"),
	literalRule(token.KindLeftLink, "[[["),
	literalRule(token.KindLeftBlockEnd, "[[/"),
	literalRule(token.KindLeftBlockStar, "[[*"),
	literalRule(token.KindLeftBlockAnchor, "[[#"),
	literalRule(token.KindLeftMath, "[[$"),
	literalRule(token.KindLeftBlock, "[["),
	literalRule(token.KindLeftBracketAnchor, "[#"),
	literalRule(token.KindLeftBracketStar, "[*"),
	literalRule(token.KindLeftBracket, "["),
	literalRule(token.KindRightLink, "]]]"),
	literalRule(token.KindRightMath, "$]]"),
	literalRule(token.KindRightBlock, "]]"),
	literalRule(token.KindRightBracket, "]"),

	literalRule(token.KindLeftParens, "(("),
	literalRule(token.KindRightParens, "))"),

	// Text-like productions (string/variable must precede plain identifier).
	ruleString,
	ruleVariable,
	ruleEmail,
	ruleUrl,
	ruleIdentifier,

	// Tables: 3-char column modifiers before the bare "||".
	literalRule(token.KindTableColumnLeft, "||<"),
	literalRule(token.KindTableColumnRight, "||>"),
	literalRule(token.KindTableColumnCenter, "||="),
	literalRule(token.KindTableColumnTitle, "||~"),
	literalRule(token.KindTableColumn, "||"),

	// Formatting pairs, all fixed 2-char sequences.
	literalRule(token.KindBold, "**"),
	literalRule(token.KindItalics, "//"),
	literalRule(token.KindUnderline, "__"),
	literalRule(token.KindSuperscript, "^^"),
	literalRule(token.KindSubscript, ",,"),
	literalRule(token.KindColor, "##"),
	literalRule(token.KindLeftMonospace, "{{"),
	literalRule(token.KindRightMonospace, "}}"),

	// Singular / greedy symbols, longest runs first.
	literalRule(token.KindClearFloatLeft, "~~~<"),
	literalRule(token.KindClearFloatRight, "~~~>"),
	literalRule(token.KindClearFloat, "~~~+"),
	literalRule(token.KindTripleDash, "---+"),
	literalRule(token.KindDoubleDash, "--"),
	literalRule(token.KindDoubleTilde, "~~"),
	literalRule(token.KindLeftDoubleAngle, "<<"),

	ruleHeading,
	ruleQuote,
	ruleBulletItem,
	ruleNumberedItem,

	literalRule(token.KindPipe, "|"),
	literalRule(token.KindEquals, "="),
	literalRule(token.KindColon, ":"),
	literalRule(token.KindUnderscore, "_"),

	// Whitespace.
	ruleParagraphBreak,
	ruleLineBreak,
	ruleSpace,
}

// ruleBracketBeforeLink claims the first '[' of a "[[[[" run as a lone
// LeftBracket, so the "[[[" that follows lexes as a link opener.
func ruleBracketBeforeLink(input string, i int) (token.Kind, int, bool) {
	if i+4 > len(input) || input[i:i+4] != "[[[[" {
		return 0, 0, false
	}
	return token.KindLeftBracket, 1, true
}

// literalRule builds a rule matching a fixed literal byte sequence.
func literalRule(kind token.Kind, lit string) rule {
	n := len(lit)
	return func(input string, i int) (token.Kind, int, bool) {
		if i+n > len(input) {
			return 0, 0, false
		}
		if input[i:i+n] != lit {
			return 0, 0, false
		}
		return kind, n, true
	}
}
