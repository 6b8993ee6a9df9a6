package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownSource_BlocksAndLinks(t *testing.T) {
	input := `# Links https://heading.example.com

Intro text with [inline](http://inline.example.com/a) and <https://auto.example.com/x>.

- item http://list.example.com
- [ref link][r]

` + "```\ncode ftp://code.example.com/f\n```\n\n[r]: http://ref.example.com/def\n"

	path := writeTemp(t, "doc.md", input)
	frags, err := collect(t, &MarkdownSource{}, path, nil)
	require.NoError(t, err)

	joined := strings.Join(frags, "\n")
	for _, want := range []string{
		"https://heading.example.com",
		"http://inline.example.com/a",
		"https://auto.example.com/x",
		"http://list.example.com",
		"ftp://code.example.com/f",
		"http://ref.example.com/def",
	} {
		assert.Contains(t, joined, want)
	}
}

func TestMarkdownSource_EmptyInput(t *testing.T) {
	path := writeTemp(t, "empty.md", "")
	frags, err := collect(t, &MarkdownSource{}, path, nil)
	require.NoError(t, err)
	assert.Empty(t, frags)
}
