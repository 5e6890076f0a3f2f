package parser

import "github.com/wikiforge/ftml/token"

// peek returns the token at the cursor without consuming it. Reading past
// the end of the stream (which shouldn't normally happen since every
// stream is bookended by InputEnd) returns a synthetic InputEnd token.
func (p *Parser) peek() token.Token {
	return p.peekAt(0)
}

// peekAt returns the token offset positions ahead of the cursor.
func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i < 0 || i >= len(p.tokens) {
		return token.Token{Kind: token.KindInputEnd}
	}
	return p.tokens[i]
}

// advance consumes and returns the token at the cursor.
func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// atEnd reports whether the cursor has reached the InputEnd bookend.
func (p *Parser) atEnd() bool {
	return p.peek().Kind == token.KindInputEnd
}

// skipSpace consumes a single Space token, if present.
func (p *Parser) skipSpace() {
	if p.peek().Kind == token.KindSpace {
		p.advance()
	}
}
