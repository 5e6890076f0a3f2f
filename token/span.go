package token

import (
	"encoding/json"
	"fmt"
)

// Span is a half-open byte range [Start, End) over the original input.
// Concatenating the slices of a total token sequence's spans, in order,
// reproduces the original input exactly.
type Span struct {
	Start int
	End   int
}

// NewSpan builds a Span from a start offset and a byte width.
func NewSpan(start, width int) Span {
	return Span{Start: start, End: start + width}
}

// Len returns the byte width of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Slice returns the substring of input covered by s.
func (s Span) Slice(input string) string {
	return input[s.Start:s.End]
}

// MarshalJSON renders a Span as the two-element [start, end] array form
// used throughout the external AST/diagnostic JSON contract.
func (s Span) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", s.Start, s.End)), nil
}

// UnmarshalJSON parses the [start, end] array form back into a Span.
func (s *Span) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	s.Start = pair[0]
	s.End = pair[1]
	return nil
}

// Join returns the smallest span covering both s and other.
func (s Span) Join(other Span) Span {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}
