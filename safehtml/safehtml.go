// Package safehtml implements the pure attribute-allowlist filter the
// block parser consults when a BlockSpec permits passthrough HTML
// attributes. It does not touch values, only decides which attribute
// names are permitted; value sanitization (URLs, CSS) is a renderer
// concern, out of scope for this parsing core.
package safehtml

import "strings"

// allowed is the set of HTML attribute names considered safe to pass
// through verbatim from wikitext block heads into the AST's attribute
// map. Event handlers (onclick, onload, ...) and anything framework or
// style-injection adjacent are deliberately absent.
var allowed = map[string]bool{
	"id":    true,
	"class": true,
	"style": true,
	"title": true,
	"lang":  true,
	"dir":   true,
	"alt":   true,
	"width": true,
	"height": true,
	"target": true,
	"rel":    true,
	"colspan": true,
	"rowspan": true,
}

// IsAllowed reports whether name (case-insensitively) is a permitted
// passthrough HTML attribute.
func IsAllowed(name string) bool {
	return allowed[strings.ToLower(name)]
}

// Sanitize filters attrs down to only the allowed keys, lowercasing
// names for a stable, predictable output map.
func Sanitize(attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		lk := strings.ToLower(k)
		if allowed[lk] {
			out[lk] = v
		}
	}
	return out
}
