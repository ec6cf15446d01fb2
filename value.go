package hltext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationError reports a structured value missing required fields.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "hltext: structured value missing required field(s): " + strings.Join(e.Missing, ", ")
}

// Value is a highlighted-text value as supplied by the host. It holds either
// an already-segmented list or the structured "full text plus highlight
// spans" shape; both decode from the host's JSON forms.
type Value struct {
	structured bool
	segments   []Segment
	text       string
	highlights []Span
}

// SegmentsValue wraps an already-segmented list. Normalization passes it
// through unchanged unless merging is requested.
func SegmentsValue(segments []Segment) *Value {
	return &Value{segments: segments}
}

// StructuredValue wraps a full text with highlight spans addressed by
// character offsets.
func StructuredValue(text string, highlights []Span) *Value {
	return &Value{structured: true, text: text, highlights: highlights}
}

// Structured reports whether the value carries the text+highlights shape.
func (v *Value) Structured() bool {
	return v.structured
}

// Text returns the backing text of a structured value, or "" otherwise.
func (v *Value) Text() string {
	return v.text
}

// Highlights returns the highlight spans of a structured value.
func (v *Value) Highlights() []Span {
	return v.highlights
}

// UnmarshalJSON accepts either of the host wire shapes: a list of
// ["text", label] tuples, or an object with "text" and "highlights" keys.
// An object missing either key yields a *ValidationError naming the missing
// field(s).
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("hltext: empty value")
	}
	if string(trimmed) == "null" {
		*v = Value{}
		return nil
	}
	switch trimmed[0] {
	case '[':
		var segments []Segment
		if err := json.Unmarshal(data, &segments); err != nil {
			return err
		}
		*v = Value{segments: segments}
		return nil
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		var missing []string
		text, hasText := raw["text"]
		highlights, hasHighlights := raw["highlights"]
		if !hasText {
			missing = append(missing, "text")
		}
		if !hasHighlights {
			missing = append(missing, "highlights")
		}
		if len(missing) > 0 {
			return &ValidationError{Missing: missing}
		}
		var out Value
		out.structured = true
		if err := json.Unmarshal(text, &out.text); err != nil {
			return err
		}
		if err := json.Unmarshal(highlights, &out.highlights); err != nil {
			return err
		}
		*v = out
		return nil
	default:
		return fmt.Errorf("hltext: value must be a segment list or a text/highlights object")
	}
}

// MarshalJSON encodes the value back into the wire shape it was built from.
func (v *Value) MarshalJSON() ([]byte, error) {
	if v.structured {
		return json.Marshal(struct {
			Text       string `json:"text"`
			Highlights []Span `json:"highlights"`
		}{v.text, v.highlights})
	}
	if v.segments == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v.segments)
}
