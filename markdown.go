package hltext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/hltext/hltext-go/internal/mdspan"
)

// FromMarkdown parses markdown and returns a structured value whose
// highlight spans label the inline constructs: "strong", "em", "code",
// "del", and "link". Block structure flattens into plain text; constructs
// with no span mapping (tables, blockquotes, raw HTML) are flattened too and
// noted once each on the package Logger.
func FromMarkdown(markdown string) *Value {
	source := []byte(markdown)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	node := md.Parser().Parse(text.NewReader(source))

	walker := mdspan.New(source)
	walker.Skipped = func(kind string) {
		Logger.Printf("markdown: flattening %s without a highlight label", kind)
	}
	_ = ast.Walk(node, walker.Walk)

	plain, raw := walker.Result()
	highlights := make([]Span, len(raw))
	for i, span := range raw {
		highlights[i] = Span{Label: Name(span.Label), Start: span.Start, End: span.End}
	}
	return StructuredValue(plain, highlights)
}
