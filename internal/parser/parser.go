package parser

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/dgallion1/linkgest/internal/runlog"
)

// EmitFunc receives one text fragment (a cell, paragraph, row value or page).
type EmitFunc func(fragment string)

// FragmentSource streams the text fragments of one document kind.
// Implementations open the file at path, call emit for each fragment and
// close everything they opened before returning.
type FragmentSource interface {
	Fragments(path string, sink runlog.Sink, emit EmitFunc) error
}

// Options tunes the sources built by DefaultRegistry.
type Options struct {
	CSVFieldSizeLimit    int
	PDFFallbackPdftotext bool
}

// DefaultCSVFieldSizeLimit is the largest csv field accepted by default.
const DefaultCSVFieldSizeLimit = 1_000_000

// Registry maps lower-cased file extensions to sources.
type Registry struct {
	sources map[string]FragmentSource
}

func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]FragmentSource)}
}

// Register binds ext (with or without the leading dot) to src.
func (r *Registry) Register(ext string, src FragmentSource) {
	r.sources[normalizeExt(ext)] = src
}

// ForFile returns the source for filename's extension.
func (r *Registry) ForFile(filename string) (FragmentSource, bool) {
	src, ok := r.sources[normalizeExt(filepath.Ext(filename))]
	return src, ok
}

// Extensions lists registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.sources))
	for ext := range r.sources {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// DefaultRegistry returns a registry with every built-in source.
func DefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	r.Register(".csv", &CSVSource{FieldSizeLimit: opts.CSVFieldSizeLimit})
	r.Register(".txt", &TextSource{})
	r.Register(".docx", &DOCXSource{})
	r.Register(".xlsx", &XLSXSource{})

	db := &SQLiteSource{}
	r.Register(".db", db)
	r.Register(".sqlite", db)
	r.Register(".sqlite3", db)

	md := &MarkdownSource{}
	r.Register(".md", md)
	r.Register(".markdown", md)

	html := &HTMLSource{}
	r.Register(".html", html)
	r.Register(".htm", html)

	r.Register(".pdf", &PDFSource{FallbackPdftotext: opts.PDFFallbackPdftotext})
	return r
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
