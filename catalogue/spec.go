package catalogue

// HeadKind selects how a block's head (the part between the name and the
// closing "]]") is parsed.
type HeadKind string

const (
	HeadNone     HeadKind = "none"
	HeadValue    HeadKind = "value"
	HeadMap      HeadKind = "map"
	HeadValueMap HeadKind = "value+map"
)

// BodyKind selects how a block's body (the part between opener and
// "[[/name]]") is parsed.
type BodyKind string

const (
	BodyNone     BodyKind = "none"
	BodyRaw      BodyKind = "raw"
	BodyElements BodyKind = "elements"
	BodyOther    BodyKind = "other"
)

// Special names a dedicated sub-parser that takes over body/head
// interpretation for a block, instead of the generic head/body rules.
type Special string

const (
	SpecialNone             Special = ""
	SpecialModule           Special = "module"
	SpecialInclude          Special = "include"
	SpecialIncludeElements  Special = "include-elements"
)

// ArgumentSpec describes one recognized head argument for a block.
type ArgumentSpec struct {
	Type    string   `mapstructure:"type" validate:"required,oneof=string int float bool string[] int[] float[] bool[]"`
	Enum    []string `mapstructure:"enum"`
	Min     *float64 `mapstructure:"min"`
	Max     *float64 `mapstructure:"max"`
	Default string   `mapstructure:"default"`
}

// BlockSpec is the immutable description of one block, loaded once at
// startup from the catalogue source.
type BlockSpec struct {
	Name            string                  `mapstructure:"name" validate:"required,lowercase"`
	Aliases         []string                `mapstructure:"aliases"`
	ExcludeName     bool                    `mapstructure:"exclude_name"`
	AcceptsStar     bool                    `mapstructure:"accepts_star"`
	AcceptsScore    bool                    `mapstructure:"accepts_score"`
	AcceptsNewlines bool                    `mapstructure:"accepts_newlines"`
	Head            HeadKind                `mapstructure:"head" validate:"required,oneof=none value map value+map"`
	Body            BodyKind                `mapstructure:"body" validate:"required,oneof=none raw elements other"`
	HTMLAttributes  bool                    `mapstructure:"html_attributes"`
	Special         Special                 `mapstructure:"special"`
	Arguments       map[string]ArgumentSpec `mapstructure:"arguments" validate:"omitempty,dive"`
}
