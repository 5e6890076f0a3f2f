package ast

// ElementType names one AST node kind. Values are the exact strings
// written into the "element" field of the external JSON contract, so
// renaming a constant here is a breaking wire change.
type ElementType string

// Container elements: may carry Children.
const (
	Paragraph      ElementType = "paragraph"
	Div            ElementType = "div"
	SpanEl         ElementType = "span"
	List           ElementType = "list"
	ListItem       ElementType = "list-item"
	Table          ElementType = "table"
	TableRow       ElementType = "table-row"
	TableCell      ElementType = "table-cell"
	Blockquote     ElementType = "blockquote"
	Collapsible    ElementType = "collapsible"
	TabView        ElementType = "tabview"
	Tab            ElementType = "tab"
	Ruby           ElementType = "ruby"
	Bold           ElementType = "bold"
	Italics        ElementType = "italics"
	Underline      ElementType = "underline"
	Strike         ElementType = "strike"
	Subscript      ElementType = "subscript"
	Superscript    ElementType = "superscript"
	Mark           ElementType = "mark"
	Ins            ElementType = "ins"
	Del            ElementType = "del"
	Invisible      ElementType = "invisible"
	Hidden         ElementType = "hidden"
	Monospace      ElementType = "monospace"
	Size           ElementType = "size"
	Anchor         ElementType = "anchor"
	Link           ElementType = "link"
	DefinitionList ElementType = "definition-list"
	DefinitionTerm ElementType = "definition-term"
	DefinitionDesc ElementType = "definition-description"
	Heading        ElementType = "heading"
)

// Leaf elements: carry Value (text) or Attributes only, never Children,
// except when built from a catalogue block with a raw or elements body
// (code, html, math, module, include, footnote-ref): the parser then
// stores that body as the node's Children.
const (
	Text              ElementType = "text"
	LineBreak         ElementType = "line-break"
	HorizontalRule    ElementType = "horizontal-rule"
	Image             ElementType = "image"
	Iframe            ElementType = "iframe"
	Checkbox          ElementType = "checkbox"
	Radio             ElementType = "radio"
	User              ElementType = "user"
	Date              ElementType = "date"
	Variable          ElementType = "variable"
	Raw               ElementType = "raw"
	Math              ElementType = "math"
	MathInline        ElementType = "math-inline"
	EquationRef       ElementType = "equation-ref"
	FootnoteRef       ElementType = "footnote-ref"
	FootnoteBlock     ElementType = "footnote-block"
	BibCite           ElementType = "bibcite"
	BibliographyBlock ElementType = "bibliography-block"
	Char              ElementType = "char"
	ClearFloatEl      ElementType = "clear-float"
	TableOfContents   ElementType = "table-of-contents"
	Code              ElementType = "code"
	Html              ElementType = "html"

	// Module/Include are recorded, never expanded: page-include and
	// module expansion are a separate concern from parsing to a tree.
	Module  ElementType = "module"
	Include ElementType = "include"
)
