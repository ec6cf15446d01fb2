// Package mdspan flattens a goldmark AST into plain text plus highlight
// spans for the inline constructs it can label.
package mdspan

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// Span is a labeled character range in the flattened text. Start and End are
// half-open rune offsets. Emitted spans never overlap: nested inline
// constructs take the outermost label.
type Span struct {
	Label string
	Start int
	End   int
}

// Inline construct labels.
const (
	LabelEmphasis      = "em"
	LabelStrong        = "strong"
	LabelCode          = "code"
	LabelLink          = "link"
	LabelStrikethrough = "del"
)

type scope struct {
	label string
	start int
}

// Walker accumulates plain text and spans while traversing a goldmark AST.
type Walker struct {
	// Skipped, when set, is called once per node kind the walker flattens
	// without labeling.
	Skipped func(kind string)

	source  []byte
	text    strings.Builder
	runeLen int
	stack   []scope
	spans   []Span
	skipped map[string]struct{}
}

// New creates a Walker over the given markdown source.
func New(source []byte) *Walker {
	return &Walker{source: source, skipped: make(map[string]struct{})}
}

// Walk is the callback for ast.Walk.
func (w *Walker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Document:

	case *ast.Paragraph, *ast.Heading:
		if entering {
			w.gap("\n\n")
		}

	case *ast.TextBlock:
		// List item content.
		if entering {
			w.gap("\n")
		}

	case *ast.Text:
		if entering {
			w.write(string(n.Segment.Value(w.source)))
			if n.HardLineBreak() {
				w.write("\n")
			} else if n.SoftLineBreak() {
				w.write(" ")
			}
		}

	case *ast.String:
		if entering {
			w.write(string(n.Value))
		}

	case *ast.Emphasis:
		label := LabelEmphasis
		if n.Level >= 2 {
			label = LabelStrong
		}
		w.inline(label, entering)

	case *ast.CodeSpan:
		w.inline(LabelCode, entering)

	case *ast.Link:
		w.inline(LabelLink, entering)

	case *ast.AutoLink:
		if entering {
			start := w.runeLen
			w.write(string(n.URL(w.source)))
			w.emit(LabelLink, start)
		}

	case *east.Strikethrough:
		w.inline(LabelStrikethrough, entering)

	case *ast.FencedCodeBlock:
		if entering {
			w.writeCodeBlock(n)
		}
		return ast.WalkSkipChildren, nil

	case *ast.CodeBlock:
		if entering {
			w.writeCodeBlock(n)
		}
		return ast.WalkSkipChildren, nil

	case *ast.List, *ast.ListItem:
		// Structure flattens; items still emit via their text blocks.

	default:
		if entering {
			w.flatten(node.Kind().String())
		}
	}
	return ast.WalkContinue, nil
}

// Result returns the flattened text and the spans collected so far.
func (w *Walker) Result() (string, []Span) {
	return w.text.String(), w.spans
}

func (w *Walker) write(s string) {
	w.text.WriteString(s)
	w.runeLen += utf8.RuneCountInString(s)
}

// gap separates block content once text has been written.
func (w *Walker) gap(sep string) {
	if w.text.Len() > 0 {
		w.write(sep)
	}
}

func (w *Walker) inline(label string, entering bool) {
	if entering {
		w.stack = append(w.stack, scope{label: label, start: w.runeLen})
		return
	}
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.emit(top.label, top.start)
}

// emit records a span unless an enclosing inline scope is still open, which
// keeps the emitted spans non-overlapping.
func (w *Walker) emit(label string, start int) {
	if len(w.stack) > 0 {
		return
	}
	if w.runeLen > start {
		w.spans = append(w.spans, Span{Label: label, Start: start, End: w.runeLen})
	}
}

func (w *Walker) writeCodeBlock(block ast.Node) {
	w.gap("\n\n")
	start := w.runeLen
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		w.write(string(seg.Value(w.source)))
	}
	w.emit(LabelCode, start)
}

func (w *Walker) flatten(kind string) {
	if _, ok := w.skipped[kind]; ok {
		return
	}
	w.skipped[kind] = struct{}{}
	if w.Skipped != nil {
		w.Skipped(kind)
	}
}
