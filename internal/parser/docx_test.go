package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDOCX(t *testing.T, paragraphs ...string) string {
	t.Helper()
	w := docx.New().WithDefaultTheme()
	for _, p := range paragraphs {
		w.AddParagraph().AddText(p)
	}

	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = w.WriteTo(f)
	require.NoError(t, err)
	return path
}

func TestDOCXSource_ParagraphFragments(t *testing.T) {
	path := writeDOCX(t,
		"Intro with https://docs.example.com/start",
		"",
		"Second paragraph http://x.com/a and http://x.com/a again",
	)

	frags, err := collect(t, &DOCXSource{}, path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Intro with https://docs.example.com/start",
		"Second paragraph http://x.com/a and http://x.com/a again",
	}, frags)
}

func TestDOCXSource_NotADocument(t *testing.T) {
	path := writeTemp(t, "fake.docx", "this is not a zip archive")
	_, err := collect(t, &DOCXSource{}, path, nil)
	assert.Error(t, err)
}

func TestDOCXSource_MissingFile(t *testing.T) {
	_, err := collect(t, &DOCXSource{}, filepath.Join(t.TempDir(), "none.docx"), nil)
	assert.Error(t, err)
}
