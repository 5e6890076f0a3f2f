package parser

// checkpoint is the opaque token returned by save(). restore(ckpt) rewinds
// the cursor and truncates any diagnostics appended since the checkpoint
// was taken; this is a correctness requirement, not an optimization, since
// a rolled-back try-parse must not leave stray diagnostics behind.
type checkpoint struct {
	pos    int
	errLen int
}

func (p *Parser) save() checkpoint {
	return checkpoint{pos: p.pos, errLen: len(p.errors)}
}

func (p *Parser) restore(c checkpoint) {
	p.pos = c.pos
	p.errors = p.errors[:c.errLen]
}
