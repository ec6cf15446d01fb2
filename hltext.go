// Package hltext implements the non-UI core of a highlighted textbox widget:
// a textarea whose string value carries labeled spans.
//
// The package normalizes the two value shapes a host can supply — an ordered
// list of (text, label) segments, or a full text with highlight spans
// addressed by character offsets — into one uniform segment list, optionally
// merging adjacent same-label segments. It also provides the token-level
// scaffold for leave-one-out interpretation: masked input variants for an
// external scoring function and reassembly of per-token scores into display
// segments.
//
// Rendering, event dispatch, and styling stay with the host widget; this
// package is pure data transformation.
//
// Main API:
//   - New(): build a Textbox from functional options
//   - Textbox.Postprocess(): value → normalized segments
//   - Textbox.Interpreter(): leave-one-out / mask interpretation scaffold
//   - FromMarkdown(): markdown → structured highlighted value
//
// Example:
//
//	tb := hltext.New(hltext.WithCombineAdjacent(" "))
//	v := hltext.StructuredValue("The cat sat", []hltext.Span{
//		{Label: hltext.Name("ANIMAL"), Start: 4, End: 7},
//	})
//	segments := tb.Postprocess(v)
package hltext

import "github.com/hltext/hltext-go/internal/textutil"

// Textbox is the value core of a highlighted textbox. Its configuration is
// fixed at construction, so a Textbox is safe for concurrent use.
type Textbox struct {
	config *Config
}

// New builds a Textbox from the given options.
func New(opts ...Option) *Textbox {
	return &Textbox{config: applyOptions(opts...)}
}

// Config returns a copy of the textbox configuration.
func (tb *Textbox) Config() Config {
	return *tb.config
}

// Preprocess prepares host input for the wrapped function. Input passes
// through unchanged except for optional NFKC normalization; nil stays nil.
func (tb *Textbox) Preprocess(raw *string) *string {
	if raw == nil {
		return nil
	}
	text := *raw
	if tb.config.NormalizeInput {
		text = textutil.Normalize(text)
	}
	return &text
}

// Postprocess normalizes a function's output value into the segment list the
// host renders, applying the configured combine-adjacent policy. A nil value
// yields nil.
func (tb *Textbox) Postprocess(v *Value) []Segment {
	return Normalize(v, tb.config.CombineAdjacent, tb.config.AdjacentSeparator)
}

// PostprocessJSON decodes a raw host value and normalizes it. A structured
// object missing "text" or "highlights" returns a *ValidationError.
func (tb *Textbox) PostprocessJSON(raw []byte) ([]Segment, error) {
	var v Value
	if err := v.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return tb.Postprocess(&v), nil
}

// Interpreter returns the interpretation scaffold bound to the configured
// separator and replacement.
func (tb *Textbox) Interpreter() *Interpreter {
	return NewInterpreter(tb.config.Separator, tb.config.Replacement)
}

// Legend builds the legend entries for a segment list using the configured
// color map.
func (tb *Textbox) Legend(segments []Segment) []LegendEntry {
	return Legend(segments, tb.config.ColorMap)
}
