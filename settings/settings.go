// Package settings carries the per-call configuration accepted by
// parser.Parse: layout mode, HTML attribute policy, recursion depth, and
// an include switch. The parser reads only RecursionLimit; Layout,
// AllowHTMLAttributes and EnableInclude are carried but not consulted,
// so they do not change the tree or the diagnostics.
package settings

// Layout names one of the two historical Wikidot deployments. No parser
// rule depends on it.
type Layout string

const (
	LayoutWikidot Layout = "wikidot"
	LayoutWikijump Layout = "wikijump"
)

// Settings is passed explicitly into every parse; there are no
// module-level mutable singletons (spec "Global state" design note).
type Settings struct {
	Layout              Layout
	AllowHTMLAttributes bool
	RecursionLimit      int
	EnableInclude       bool
}

// Default returns the documented default settings: wikidot layout, a
// recursion limit of 100, HTML attributes and includes both disabled.
func Default() *Settings {
	return &Settings{
		Layout:              LayoutWikidot,
		AllowHTMLAttributes: false,
		RecursionLimit:      100,
		EnableInclude:       false,
	}
}
