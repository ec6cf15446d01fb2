package hltext

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LabelKind discriminates the three label shapes the host protocol allows:
// absent (unhighlighted), a category name, or a numeric score.
type LabelKind int

const (
	// LabelNone marks an unhighlighted segment.
	LabelNone LabelKind = iota
	// LabelName marks a segment highlighted with a category name.
	LabelName
	// LabelScore marks a segment carrying a numeric attribution score.
	LabelScore
)

// Label is the highlight category of a segment. The zero Label means
// "unhighlighted". Labels are plain comparable values, so == works for the
// merge pass (two zero Labels compare equal).
type Label struct {
	Kind  LabelKind
	Name  string
	Score float64
}

// Name returns a category-name label.
func Name(name string) Label {
	return Label{Kind: LabelName, Name: name}
}

// Score returns a numeric score label.
func Score(score float64) Label {
	return Label{Kind: LabelScore, Score: score}
}

// IsZero reports whether the label is the unhighlighted zero value.
func (l Label) IsZero() bool {
	return l.Kind == LabelNone
}

// String returns the label in display form: the category name, the score, or
// "" when unhighlighted.
func (l Label) String() string {
	switch l.Kind {
	case LabelName:
		return l.Name
	case LabelScore:
		return strconv.FormatFloat(l.Score, 'g', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON encodes the label as a string, a number, or null.
func (l Label) MarshalJSON() ([]byte, error) {
	switch l.Kind {
	case LabelName:
		return json.Marshal(l.Name)
	case LabelScore:
		return json.Marshal(l.Score)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a string, a number, or null into the label.
func (l *Label) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*l = Label{}
	case string:
		*l = Name(v)
	case float64:
		*l = Score(v)
	default:
		return fmt.Errorf("hltext: label must be a string, number, or null, got %T", raw)
	}
	return nil
}

// Segment is one contiguous, possibly-unhighlighted run of characters.
// Concatenating the Text of a normalized (unmerged) segment sequence in order
// reproduces the backing text.
type Segment struct {
	Text  string
	Label Label
}

// MarshalJSON encodes the segment in the host wire shape, a two-element
// ["text", label] tuple.
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{s.Text, s.Label})
}

// UnmarshalJSON decodes the ["text", label] tuple shape.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("hltext: segment tuple must have 2 elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &s.Text); err != nil {
		return err
	}
	return json.Unmarshal(tuple[1], &s.Label)
}

// Span is a labeled character range within a backing text. Start and End are
// half-open character (rune) offsets, matching the host protocol's string
// indexing. Spans passed to the normalizer must not overlap; overlapping
// input is clamped rather than rejected (see Value.Segments).
type Span struct {
	Label Label `json:"highlight_type"`
	Start int   `json:"start"`
	End   int   `json:"end"`
}
