package catalogue

import "strings"

// Catalogue is the immutable, post-validation mapping from every block
// alias to its BlockSpec. It is safe to share read-only across goroutines
// once Load has returned.
type Catalogue struct {
	blocks  map[string]*BlockSpec // canonical name -> spec
	byAlias map[string]*BlockSpec // case-folded alias (incl. name) -> spec
}

// Resolve looks up name case-insensitively against every block's name and
// aliases.
func (c *Catalogue) Resolve(name string) (*BlockSpec, bool) {
	spec, ok := c.byAlias[strings.ToLower(name)]
	return spec, ok
}

// Len returns the number of distinct blocks (not aliases) in the catalogue.
func (c *Catalogue) Len() int {
	return len(c.blocks)
}
