package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/wikiforge/ftml/token"
)

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func isIdentByte(b byte) bool {
	return isAlnum(b) || b == '_' || b == '-'
}

// ruleIdentifier matches a run of alphanumeric characters. It is tried
// after the more specific Email/Url/Variable/String rules so that those
// win on their first byte when applicable.
func ruleIdentifier(input string, i int) (token.Kind, int, bool) {
	if !isAlnum(input[i]) {
		return 0, 0, false
	}
	j := i
	for j < len(input) && isAlnum(input[j]) {
		j++
	}
	return token.KindIdentifier, j - i, true
}

// ruleVariable matches "{$identifier}".
func ruleVariable(input string, i int) (token.Kind, int, bool) {
	const prefix = "{$"
	if !strings.HasPrefix(input[i:], prefix) {
		return 0, 0, false
	}
	j := i + len(prefix)
	start := j
	for j < len(input) && isIdentByte(input[j]) {
		j++
	}
	if j == start {
		return 0, 0, false
	}
	if j >= len(input) || input[j] != '}' {
		return 0, 0, false
	}
	j++
	return token.KindVariable, j - i, true
}

// schemes recognized by ruleUrl.
var urlSchemes = []string{"https://", "http://", "ftp://"}

// ruleUrl recognizes http/https/ftp URLs, stopping at whitespace or any of
// '|', '[', ']'.
func ruleUrl(input string, i int) (token.Kind, int, bool) {
	rest := input[i:]
	matchedScheme := ""
	for _, s := range urlSchemes {
		if strings.HasPrefix(rest, s) {
			matchedScheme = s
			break
		}
	}
	if matchedScheme == "" {
		return 0, 0, false
	}

	j := i + len(matchedScheme)
	start := j
	for j < len(input) {
		b := input[j]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' ||
			b == '|' || b == '[' || b == ']' {
			break
		}
		j++
	}
	if j == start {
		// Bare scheme with nothing following isn't a usable URL.
		return 0, 0, false
	}
	return token.KindUrl, j - i, true
}

// ruleEmail recognizes a run of non-whitespace that contains at least one
// '@' and, after the last '@', at least one '.', with no intervening
// whitespace anywhere in the matched run.
func ruleEmail(input string, i int) (token.Kind, int, bool) {
	if !isAlnum(input[i]) && input[i] != '.' && input[i] != '_' && input[i] != '-' {
		return 0, 0, false
	}

	j := i
	sawAt := false
	atIdx := -1
	for j < len(input) {
		b := input[j]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' ||
			b == '|' || b == '[' || b == ']' {
			break
		}
		if b == '@' {
			if sawAt {
				break // second '@' ends the run
			}
			sawAt = true
			atIdx = j
		}
		j++
	}

	if !sawAt {
		return 0, 0, false
	}
	if !strings.Contains(input[atIdx+1:j], ".") {
		return 0, 0, false
	}
	return token.KindEmail, j - i, true
}

// ruleString matches a double-quoted string. Backslash escapes any next
// character except a literal newline; newlines terminate the match with
// failure (the opening quote then falls through to Other).
//
// "\u" is deliberately not given special meaning here: it is treated
// like any other "\<char>" escape and the raw two-byte sequence is kept
// verbatim in the token's slice.
func ruleString(input string, i int) (token.Kind, int, bool) {
	if input[i] != '"' {
		return 0, 0, false
	}
	j := i + 1
	for j < len(input) {
		b := input[j]
		if b == '\n' {
			return 0, 0, false
		}
		if b == '\\' {
			if j+1 >= len(input) || input[j+1] == '\n' {
				return 0, 0, false
			}
			j += 2
			continue
		}
		if b == '"' {
			return token.KindString, j + 1 - i, true
		}
		j++
	}
	return 0, 0, false
}

// runeWidth returns the byte width of the rune starting at i, used for the
// Other fallback so multi-byte UTF-8 characters aren't split.
func runeWidth(input string, i int) int {
	if input[i] < utf8.RuneSelf {
		return 1
	}
	_, w := utf8.DecodeRuneInString(input[i:])
	if w == 0 {
		return 1
	}
	return w
}
