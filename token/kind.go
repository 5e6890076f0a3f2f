package token

// Kind is the closed enumeration of token kinds the lexer may emit.
// Declaration order groups related kinds together; it is not itself the
// dispatch order (the lexer's rule table owns that), but keeping the two
// aligned makes the table easier to audit.
type Kind int

const (
	// Raw / comment delimiters.
	KindRaw Kind = iota // "@@"
	KindLeftRaw         // "@<"
	KindRightRaw        // ">@"
	KindLeftComment     // "[!--"
	KindRightComment    // "--]"

	// Text-like.
	KindIdentifier // alnum+
	KindUrl
	KindEmail
	KindVariable // "{$ident}"
	KindString   // "double-quoted"

	// Bracket combinations.
	KindLeftBracket
	KindLeftBracketAnchor // "[#"
	KindLeftBracketStar   // "[*"
	KindRightBracket      // "]"
	KindLeftBlock         // "[["
	KindLeftBlockEnd      // "[[/"
	KindLeftBlockAnchor   // "[[#"
	KindLeftBlockStar     // "[[*"
	KindLeftMath          // "[[$"
	KindLeftLink          // "[[["
	KindLeftLinkStar      // "[[[*"
	KindRightBlock        // "]]"
	KindRightMath         // "$]]"
	KindRightLink         // "]]]"

	KindLeftParens  // "(("
	KindRightParens // "))"

	// Formatting.
	KindBold          // "**"
	KindItalics       // "//"
	KindUnderline     // "__"
	KindSuperscript   // "^^"
	KindSubscript     // ",,"
	KindColor         // "##"
	KindLeftMonospace // "{{"
	KindRightMonospace // "}}"

	// Tables.
	KindTableColumn       // "||"
	KindTableColumnLeft   // "||<"
	KindTableColumnRight  // "||>"
	KindTableColumnCenter // "||="
	KindTableColumnTitle  // "||~"

	// Singular symbols.
	KindClearFloat      // "~~~+"
	KindClearFloatLeft  // "~~~<"
	KindClearFloatRight // "~~~>"
	KindTripleDash      // "---+"
	KindDoubleDash      // "--"
	KindDoubleTilde     // "~~"
	KindLeftDoubleAngle // "<<"
	KindPipe            // "|"
	KindEquals          // "="
	KindColon           // ":"
	KindUnderscore      // "_"
	KindQuote           // ">" runs, ">+"
	KindHeading         // "+"{1..6}, optional "*"
	KindBulletItem      // "*" not followed by "*"
	KindNumberedItem    // "#" not followed by "#"

	// Whitespace.
	KindParagraphBreak // >= 2 newlines
	KindLineBreak      // 1 newline
	KindSpace          // run of spaces/tabs

	// Fallback / text.
	KindOther // exactly one character
	KindText  // consolidated run of Other (and text-class) tokens

	// Stream bookends: not part of the ordinary lexical vocabulary, but
	// emitted once each at the start and end of every token stream so
	// downstream stages have an unambiguous marker for "before/after
	// input" without checking index bounds.
	KindInputStart
	KindInputEnd
)

// IsTextClass reports whether a Kind is folded into Text by consolidation
// when it appears as part of a run of otherwise-plain-text tokens. Only
// KindOther is textual; Space/Identifier are preserved distinctly.
func (k Kind) IsTextClass() bool {
	return k == KindOther
}

// String returns a human-readable name, used in diagnostics and the
// tokenize diagnostic tooling entry point.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var kindNames = map[Kind]string{
	KindRaw:               "Raw",
	KindLeftRaw:           "LeftRaw",
	KindRightRaw:          "RightRaw",
	KindLeftComment:       "LeftComment",
	KindRightComment:      "RightComment",
	KindIdentifier:        "Identifier",
	KindUrl:               "Url",
	KindEmail:             "Email",
	KindVariable:          "Variable",
	KindString:            "String",
	KindLeftBracket:       "LeftBracket",
	KindLeftBracketAnchor: "LeftBracketAnchor",
	KindLeftBracketStar:   "LeftBracketStar",
	KindRightBracket:      "RightBracket",
	KindLeftBlock:         "LeftBlock",
	KindLeftBlockEnd:      "LeftBlockEnd",
	KindLeftBlockAnchor:   "LeftBlockAnchor",
	KindLeftBlockStar:     "LeftBlockStar",
	KindLeftMath:          "LeftMath",
	KindLeftLink:          "LeftLink",
	KindLeftLinkStar:      "LeftLinkStar",
	KindRightBlock:        "RightBlock",
	KindRightMath:         "RightMath",
	KindRightLink:         "RightLink",
	KindLeftParens:        "LeftParens",
	KindRightParens:       "RightParens",
	KindBold:              "Bold",
	KindItalics:           "Italics",
	KindUnderline:         "Underline",
	KindSuperscript:       "Superscript",
	KindSubscript:         "Subscript",
	KindColor:             "Color",
	KindLeftMonospace:     "LeftMonospace",
	KindRightMonospace:    "RightMonospace",
	KindTableColumn:       "TableColumn",
	KindTableColumnLeft:   "TableColumnLeft",
	KindTableColumnRight:  "TableColumnRight",
	KindTableColumnCenter: "TableColumnCenter",
	KindTableColumnTitle:  "TableColumnTitle",
	KindClearFloat:        "ClearFloat",
	KindClearFloatLeft:    "ClearFloatLeft",
	KindClearFloatRight:   "ClearFloatRight",
	KindTripleDash:        "TripleDash",
	KindDoubleDash:        "DoubleDash",
	KindDoubleTilde:       "DoubleTilde",
	KindLeftDoubleAngle:   "LeftDoubleAngle",
	KindPipe:              "Pipe",
	KindEquals:            "Equals",
	KindColon:             "Colon",
	KindUnderscore:        "Underscore",
	KindQuote:             "Quote",
	KindHeading:           "Heading",
	KindBulletItem:        "BulletItem",
	KindNumberedItem:      "NumberedItem",
	KindParagraphBreak:    "ParagraphBreak",
	KindLineBreak:         "LineBreak",
	KindSpace:             "Space",
	KindOther:             "Other",
	KindText:              "Text",
	KindInputStart:        "InputStart",
	KindInputEnd:          "InputEnd",
}
