package parser

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dgallion1/linkgest/internal/runlog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource emits the raw text of every leaf block plus the destination
// of every link, autolink and image. Destinations cover reference-style
// links whose definitions never appear in a block.
type MarkdownSource struct{}

func (s *MarkdownSource) Fragments(path string, _ runlog.Sink, emit EmitFunc) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read markdown: %w", err)
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	return ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			emit(string(node.Destination))
		case *ast.Image:
			emit(string(node.Destination))
		case *ast.AutoLink:
			emit(string(node.URL(src)))
		}
		if n.Type() == ast.TypeBlock {
			if t := blockLines(n, src); t != "" {
				emit(t)
			}
		}
		return ast.WalkContinue, nil
	})
}

// blockLines returns the raw source lines of a leaf block.
func blockLines(n ast.Node, src []byte) string {
	lines := n.Lines()
	if lines == nil || lines.Len() == 0 {
		return ""
	}
	var buf bytes.Buffer
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return buf.String()
}
