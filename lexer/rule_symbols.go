package lexer

import "github.com/wikiforge/ftml/token"

// ruleHeading matches 1 to 6 '+' characters followed by an optional '*'
// (the "no-TOC" heading variant), e.g. "+", "++*", "++++++".
func ruleHeading(input string, i int) (token.Kind, int, bool) {
	j := i
	for j < len(input) && input[j] == '+' && j-i < 6 {
		j++
	}
	if j == i {
		return 0, 0, false
	}
	if j < len(input) && input[j] == '*' {
		j++
	}
	return token.KindHeading, j - i, true
}

// ruleQuote matches a run of '>' characters, with an optional trailing '+'
// (the "folded" blockquote depth marker).
func ruleQuote(input string, i int) (token.Kind, int, bool) {
	if input[i] != '>' {
		return 0, 0, false
	}
	j := i
	for j < len(input) && input[j] == '>' {
		j++
	}
	if j < len(input) && input[j] == '+' {
		j++
	}
	return token.KindQuote, j - i, true
}

// ruleBulletItem matches a single '*' not followed by another '*' (which
// would instead have already been claimed by the Bold rule earlier in the
// table).
func ruleBulletItem(input string, i int) (token.Kind, int, bool) {
	if input[i] != '*' {
		return 0, 0, false
	}
	if i+1 < len(input) && input[i+1] == '*' {
		return 0, 0, false
	}
	return token.KindBulletItem, 1, true
}

// ruleNumberedItem matches a single '#' not followed by another '#'.
func ruleNumberedItem(input string, i int) (token.Kind, int, bool) {
	if input[i] != '#' {
		return 0, 0, false
	}
	if i+1 < len(input) && input[i+1] == '#' {
		return 0, 0, false
	}
	return token.KindNumberedItem, 1, true
}
