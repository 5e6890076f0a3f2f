package lexer

import "github.com/wikiforge/ftml/token"

// ruleParagraphBreak matches two or more newlines, with any run of spaces
// or tabs on the blank line(s) between them absorbed into the same token.
func ruleParagraphBreak(input string, i int) (token.Kind, int, bool) {
	j := i
	newlines := 0
	for j < len(input) {
		switch input[j] {
		case '\n':
			newlines++
			j++
		case '\r':
			j++
		case ' ', '\t':
			// Only absorb blank-line whitespace once a second newline is
			// still reachable; a trailing run of spaces with no further
			// newline belongs to ruleSpace instead.
			k := j
			for k < len(input) && (input[k] == ' ' || input[k] == '\t') {
				k++
			}
			if k < len(input) && (input[k] == '\n' || input[k] == '\r') {
				j = k
				continue
			}
			goto done
		default:
			goto done
		}
	}
done:
	if newlines < 2 {
		return 0, 0, false
	}
	return token.KindParagraphBreak, j - i, true
}

// ruleLineBreak matches exactly one newline (optionally preceded by a
// carriage return) not part of a paragraph break.
func ruleLineBreak(input string, i int) (token.Kind, int, bool) {
	if input[i] == '\r' && i+1 < len(input) && input[i+1] == '\n' {
		return token.KindLineBreak, 2, true
	}
	if input[i] == '\n' {
		return token.KindLineBreak, 1, true
	}
	return 0, 0, false
}

// ruleSpace matches a run of spaces and/or tabs.
func ruleSpace(input string, i int) (token.Kind, int, bool) {
	if input[i] != ' ' && input[i] != '\t' {
		return 0, 0, false
	}
	j := i
	for j < len(input) && (input[j] == ' ' || input[j] == '\t') {
		j++
	}
	return token.KindSpace, j - i, true
}
