// Package diag defines the parser's diagnostic taxonomy. Diagnostics are
// never raised as Go errors mid-parse: they accumulate on a list returned
// alongside the AST, so a single malformed block never aborts the whole
// document.
package diag

import (
	"encoding/json"
	"fmt"

	"github.com/wikiforge/ftml/token"
)

// Kind enumerates the recognized diagnostic categories.
type Kind int

const (
	NoSuchBlock Kind = iota
	BlockNotClosed
	UnknownArgument
	InvalidArgumentValue
	MissingRequiredArgument
	InvalidFlag
	RecursionLimit
	MismatchedCloser
	InvalidUrl
	InvalidColor
	InvalidRuby
	InvalidInclude
	RawBlockNotClosed
	CommentNotClosed
)

var kindNames = map[Kind]string{
	NoSuchBlock:             "no-such-block",
	BlockNotClosed:          "block-not-closed",
	UnknownArgument:         "unknown-argument",
	InvalidArgumentValue:    "invalid-argument-value",
	MissingRequiredArgument: "missing-required-argument",
	InvalidFlag:             "invalid-flag",
	RecursionLimit:          "recursion-limit",
	MismatchedCloser:        "mismatched-closer",
	InvalidUrl:              "invalid-url",
	InvalidColor:            "invalid-color",
	InvalidRuby:             "invalid-ruby",
	InvalidInclude:          "invalid-include",
	RawBlockNotClosed:       "raw-block-not-closed",
	CommentNotClosed:        "comment-not-closed",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

var namesToKind = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, s := range kindNames {
		m[s] = k
	}
	return m
}()

// MarshalJSON renders Kind as its kebab-case name, matching the external
// error JSON contract ({"kind": "…", ...}).
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a Kind back from its kebab-case name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, ok := namesToKind[s]
	if !ok {
		return fmt.Errorf("diag: unknown kind %q", s)
	}
	*k = kind
	return nil
}

// ParseError is one non-fatal diagnostic attached to a parse. Token is the
// offending token's slice, when the diagnostic was raised in response to a
// specific token rather than a whole block; it is empty otherwise.
type ParseError struct {
	Kind  Kind       `json:"kind"`
	Span  token.Span `json:"span"`
	Token string     `json:"token,omitempty"`
}

// New builds a ParseError with no associated token text.
func New(kind Kind, span token.Span) ParseError {
	return ParseError{Kind: kind, Span: span}
}

// NewToken builds a ParseError tied to the offending token's slice.
func NewToken(kind Kind, span token.Span, tok string) ParseError {
	return ParseError{Kind: kind, Span: span, Token: tok}
}

func (e ParseError) Error() string {
	if e.Token != "" {
		return e.Kind.String() + ": " + e.Token
	}
	return e.Kind.String()
}
