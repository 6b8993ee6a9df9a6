package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/dgallion1/linkgest/internal/runlog"
	"golang.org/x/net/html"
)

// HTMLSource emits every visible text node and every href/src attribute.
type HTMLSource struct{}

func (s *HTMLSource) Fragments(path string, _ runlog.Sink, emit EmitFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open html: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return fmt.Errorf("parse html: %w", err)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			// Skip non-content elements.
			switch n.Data {
			case "script", "style":
				return
			}
			for _, attr := range n.Attr {
				if attr.Key == "href" || attr.Key == "src" {
					emit(attr.Val)
				}
			}
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				emit(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return nil
}
