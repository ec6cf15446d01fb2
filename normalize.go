package hltext

import (
	"sort"

	"github.com/hltext/hltext-go/internal/runes"
)

// Normalize converts a highlighted-text value into an ordered segment list.
// A segment-list value passes through as-is; a structured value is expanded
// span by span. When combineAdjacent is true, consecutive segments sharing a
// label are merged, joined by adjacentSeparator. A nil value stays nil.
func Normalize(v *Value, combineAdjacent bool, adjacentSeparator string) []Segment {
	if v == nil {
		return nil
	}
	segments := v.segments
	if v.structured {
		segments = expandSpans(v.text, v.highlights)
	}
	if combineAdjacent {
		return MergeAdjacent(segments, adjacentSeparator)
	}
	return segments
}

// expandSpans walks highlight spans in start order, emitting the
// unhighlighted gap before each span, the span itself, and the trailing gap.
// Every gap is emitted even when empty, so the unmerged output always
// alternates gap/highlight and concatenates back to the original text for
// non-overlapping input. Offsets are clamped and the cursor never moves
// backwards, so overlapping spans produce well-formed (if partial) output
// instead of a panic.
func expandSpans(text string, spans []Span) []Segment {
	if len(spans) == 0 {
		return []Segment{{Text: text}}
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	offsets := runes.ByteOffsets(text)
	out := make([]Segment, 0, 2*len(sorted)+1)
	cursor := 0
	for _, span := range sorted {
		out = append(out, Segment{Text: runes.Slice(text, offsets, cursor, span.Start)})
		out = append(out, Segment{
			Text:  runes.Slice(text, offsets, span.Start, span.End),
			Label: span.Label,
		})
		if span.End > cursor {
			cursor = span.End
		}
	}
	out = append(out, Segment{Text: runes.Slice(text, offsets, cursor, runes.Count(offsets))})
	return out
}

// MergeAdjacent merges consecutive segments sharing a label (the zero label
// included), joining their text with separator. Segments whose label differs
// from the running one but whose text is empty are dropped silently; these
// are the empty gaps span expansion inserts around touching highlights.
// Merging is idempotent: merging an already-merged list is a no-op when the
// separator is empty or no adjacent labels repeat.
func MergeAdjacent(segments []Segment, separator string) []Segment {
	out := make([]Segment, 0, len(segments))
	var running Segment
	started := false
	for _, seg := range segments {
		switch {
		case !started:
			if seg.Text == "" && seg.Label.IsZero() {
				// Leading empty gap from span expansion; absorb it too.
				continue
			}
			running = seg
			started = true
		case seg.Label == running.Label:
			running.Text += separator + seg.Text
		case seg.Text == "":
			// Empty gap from span expansion; absorb it.
		default:
			out = append(out, running)
			running = seg
		}
	}
	if started {
		out = append(out, running)
	}
	return out
}
